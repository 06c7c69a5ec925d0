package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNoActiveTab is returned when the session holds no tabs.
	ErrNoActiveTab = errors.New("no active tab")

	// ErrTabOutOfRange indicates a tab index outside the session.
	ErrTabOutOfRange = errors.New("tab index out of range")

	// ErrEmptyQuery is returned by Find for an empty search string.
	ErrEmptyQuery = errors.New("search query is empty")

	// ErrUnknownPalette indicates a palette value outside the fixed set.
	ErrUnknownPalette = errors.New("unknown palette color")

	// ErrInvalidEncoding indicates file content that is not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("file is not valid UTF-8 text")
)

// FileAccessError reports a failed open or save. The buffer involved is left
// unchanged.
type FileAccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}
