package tables

import "errors"

var (
	ErrInvalidLocaleFile = errors.New("tables: invalid locale file")
	ErrEmptyLocale       = errors.New("tables: locale cannot be empty")
)
