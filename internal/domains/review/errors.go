package review

import "errors"

var (
	// ErrReviewNotFound means the identifier did not resolve to an
	// existing review.
	ErrReviewNotFound = errors.New("review not found")
)
