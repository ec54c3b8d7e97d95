// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fileio

import (
	"errors"
	"fmt"
)

// Error categories for file operations.
var (
	ErrRead  = errors.New("file read error")
	ErrWrite = errors.New("file write error")

	// ErrInvalidText is the cause of a ReadError when the file is not valid UTF-8.
	ErrInvalidText = errors.New("not valid UTF-8 text")
)

// ReadError reports a failure to load a source file.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

func (e *ReadError) Is(target error) bool {
	return target == ErrRead
}

// WriteError reports a failure to store an output file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}
