package core

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrNotExist is returned when a file or directory does not exist.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a file or directory already exists.
	// Re-exported from io/fs for convenience.
	ErrExist = fs.ErrExist

	// ErrInvalid is returned for malformed arguments, such as an unknown
	// open mode or a stream paired with an explicit filesystem.
	// Re-exported from io/fs for convenience.
	ErrInvalid = fs.ErrInvalid

	// ErrPermission is returned when permission is denied.
	// Re-exported from io/fs for convenience.
	ErrPermission = fs.ErrPermission

	// ErrClosed is returned when an operation is performed on a closed
	// file. Re-exported from io/fs for convenience.
	ErrClosed = fs.ErrClosed

	// ErrNotEmpty is returned when a non-recursive delete targets a
	// directory that still has children.
	ErrNotEmpty = errors.New("directory not empty")

	// ErrNotSupported is returned when an operation is meaningless for the
	// backend's semantics, such as a metadata stat on a flat object store.
	ErrNotSupported = errors.New("operation not supported")

	// ErrNotImplemented is returned when a backend declines to provide an
	// otherwise valid operation.
	ErrNotImplemented = errors.New("operation not implemented")

	// ErrUnknownFilesystem is returned by the resolver when a foreign
	// filesystem value cannot be classified by its type ancestry.
	ErrUnknownFilesystem = errors.New("unrecognized filesystem")
)

// PathError wraps err in a *fs.PathError carrying the operation name and the
// offending path.
func PathError(op, path string, err error) error {
	return &fs.PathError{Op: op, Path: path, Err: err}
}

// PathErrorf formats a new error and wraps it in a *fs.PathError. The format
// may use %w to preserve a sentinel for errors.Is checks.
func PathErrorf(op, path, format string, args ...any) error {
	return &fs.PathError{Op: op, Path: path, Err: fmt.Errorf(format, args...)}
}
