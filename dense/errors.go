// SPDX-License-Identifier: MIT
// Package dense: sentinel error set (unified, consistent).
// All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.

package dense

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dense: ..." for consistency and to allow
// easy grepping across logs. If call-site context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) — callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	// Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("dense: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside
	// the valid range. Public indexers (At/Set/Add) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("dense: index out of bounds")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. an eigenvalue receiver shorter than the matrix order.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("dense: matrix is not square")

	// ErrSingular is reported when LU factorization meets an exactly zero
	// pivot and the solve cannot proceed.
	ErrSingular = errors.New("dense: singular matrix")

	// ErrEigenFailed indicates that the external symmetric eigen kernel
	// (dsyev) did not converge.
	ErrEigenFailed = errors.New("dense: eigen decomposition failed")
)
