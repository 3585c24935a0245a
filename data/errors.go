package data

import "errors"

// Standard errors returned by the store and its components.
var (
	// Path resolution errors
	ErrInvalidPath = errors.New("fsindex: invalid path detected")
	ErrNotExist    = errors.New("fsindex: file does not exist")

	// Operation errors
	ErrIsDirectory = errors.New("fsindex: is a directory")
)
