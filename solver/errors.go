// SPDX-License-Identifier: MIT

package solver

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive system order at construction.
	ErrInvalidDimensions = errors.New("solver: system order must be > 0")

	// ErrNonSquare is returned by Factorize for a rectangular triplet
	// store; LU factorization is defined for square systems only.
	ErrNonSquare = errors.New("solver: matrix is not square")

	// ErrDimensionMismatch indicates a store or vector whose shape does
	// not match the solver's declared order.
	ErrDimensionMismatch = errors.New("solver: dimension mismatch")

	// ErrNotFactorized is returned by Solve before a successful Factorize.
	ErrNotFactorized = errors.New("solver: matrix is not factorized")

	// ErrUnknownKind marks a Config.Kind this build has no backend for.
	ErrUnknownKind = errors.New("solver: unknown solver kind")

	// ErrSolverFailure wraps a failure reported by the external kernel
	// (e.g. a singular matrix during factorization). The backend's native
	// message is preserved in the wrap chain for diagnostics.
	ErrSolverFailure = errors.New("solver: external kernel failure")
)
