package urlify

import "errors"

var (
	ErrEmptySeparator = errors.New("urlify: separator cannot be empty")
	ErrEmptyLocale    = errors.New("urlify: locale cannot be empty")
	ErrInvalidLength  = errors.New("urlify: length cannot be negative")
)
