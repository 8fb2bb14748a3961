package core

import "errors"

// Common errors.
var (
	ErrNotFound     = errors.New("key not found")
	ErrReadOnly     = errors.New("storage is in read-only mode")
	ErrEmptyKey     = errors.New("key cannot be empty")
	ErrMalformed    = errors.New("stored value is malformed")
	ErrNotWatchable = errors.New("storage does not support watching")
)
