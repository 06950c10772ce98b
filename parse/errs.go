package parse

import "errors"

var (
	// ErrUnknownFormat is returned when no decoder accepts the input
	// and the format could not be determined.
	ErrUnknownFormat = errors.New("unknown document format")

	// ErrFileNotFound is returned by ParseFile for missing inputs.
	ErrFileNotFound = errors.New("file not found")
)
