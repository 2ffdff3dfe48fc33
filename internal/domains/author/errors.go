package author

import "errors"

var (
	// ErrAuthorNotFound means the identifier did not resolve to an
	// existing author.
	ErrAuthorNotFound = errors.New("author not found")
)
