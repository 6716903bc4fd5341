package lru

import "errors"

var (
	// ErrInvalidArgument is returned for a non-positive capacity or a nil key or value.
	ErrInvalidArgument = errors.New("lru: invalid argument")

	// ErrNotFound is returned by Get when the key is not cached.
	ErrNotFound = errors.New("lru: key not found")
)
