package services

import "errors"

var (
	// ErrNotFound is returned when an article file or the article directory does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArticle is returned when an article file fails validation.
	ErrInvalidArticle = errors.New("invalid article")
)
