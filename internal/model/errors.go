package model

import "errors"

// ErrNotFound is returned by stores when no row matches a lookup.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateKey is returned by stores when a unique constraint is violated.
var ErrDuplicateKey = errors.New("duplicate key")
