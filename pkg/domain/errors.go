package domain

import "errors"

// ErrInvalidHitPolicy is returned when a hit policy code is not recognized.
var ErrInvalidHitPolicy = errors.New("invalid hit policy")

// ErrTableNotFound is returned when a decision table cannot be found in the store.
var ErrTableNotFound = errors.New("decision table not found")

// ErrInvalidTable is returned when a stored table is missing mandatory fields.
var ErrInvalidTable = errors.New("invalid decision table")
