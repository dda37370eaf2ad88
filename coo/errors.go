// SPDX-License-Identifier: MIT
// Package coo: sentinel error set (unified, consistent).
// All operations MUST return these sentinels and tests MUST check them
// via errors.Is. Put either fully records a triple or fully fails;
// consumers fail before mutating any output.

package coo

import "errors"

var (
	// ErrInvalidDimensions indicates that a construction size (rows,
	// cols or capacity) was not strictly positive.
	ErrInvalidDimensions = errors.New("coo: dimensions and capacity must be > 0")

	// ErrIndexOutOfBounds indicates a row/column index at or beyond the
	// declared bounds of the store.
	ErrIndexOutOfBounds = errors.New("coo: index out of bounds")

	// ErrCapacityExceeded is returned by Put once the store holds its
	// fixed maximum number of triples. Recovery is a caller policy
	// (typically re-create with a larger capacity).
	ErrCapacityExceeded = errors.New("coo: triplet capacity exceeded")

	// ErrDimensionMismatch indicates a vector or matrix whose shape is
	// incompatible with the operation's expectation.
	ErrDimensionMismatch = errors.New("coo: dimension mismatch")
)
