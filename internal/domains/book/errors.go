package book

import "errors"

var (
	// ErrBookNotFound means the identifier did not resolve to an
	// existing book.
	ErrBookNotFound = errors.New("book not found")

	// ErrAuthorReference means authorId did not resolve to an existing
	// author at write time.
	ErrAuthorReference = errors.New("referenced author does not exist")
)
