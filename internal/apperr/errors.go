// Package apperr defines sentinel errors shared across layers.
package apperr

import "errors"

var (
	// ErrNotFound indicates a requested file or vault root does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidPath indicates a path that is absolute or escapes the vault root.
	ErrInvalidPath = errors.New("invalid path")
	// ErrInvalidAddress indicates a resource URI the router cannot parse.
	ErrInvalidAddress = errors.New("invalid address")
)
