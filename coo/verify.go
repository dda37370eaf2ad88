// SPDX-License-Identifier: MIT

package coo

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/blas/blas64"

	"github.com/numstack/linsys/dense"
)

// Verification is the immutable result of checking a candidate solution
// of the linear system a ⋅ x = rhs against the assembled triplet data.
type Verification struct {
	// MaxAbsA is the maximum absolute value among stored coefficients
	// (insertion order, ties broken by first occurrence).
	MaxAbsA float64
	// MaxAbsAx is the maximum absolute component of the product a ⋅ x.
	MaxAbsAx float64
	// MaxAbsDiff is the maximum absolute component of the residual
	// a ⋅ x − rhs.
	MaxAbsDiff float64
	// RelativeError is MaxAbsDiff / (MaxAbsA + 1). The +1 keeps the
	// metric well-defined even for an all-zero matrix.
	RelativeError float64
	// Elapsed is the wall-clock time spent in the numeric phase.
	Elapsed time.Duration
}

// Verify recomputes the residual of a candidate solution x for the
// system assembled in t with right-hand side rhs:
//
//	diff := |a ⋅ x − rhs|
//
// triangular selects how t is interpreted by the product, exactly as in
// MulVec — it is a caller decision, not read from the store's flag.
//
// Verification is a diagnostic: any failure is immediate and terminal,
// nothing is retried. Errors: ErrDimensionMismatch when x.Len() != ncol
// or rhs.Len() != nrow. Complexity: O(Len() + nrow).
func Verify(t *Triplet, x, rhs *dense.Vector, triangular bool) (Verification, error) {
	if x.Len() != t.ncol {
		return Verification{}, fmt.Errorf("Verify: x has %d components, want %d: %w",
			x.Len(), t.ncol, ErrDimensionMismatch)
	}
	if rhs.Len() != t.nrow {
		return Verification{}, fmt.Errorf("Verify: rhs has %d components, want %d: %w",
			rhs.Len(), t.nrow, ErrDimensionMismatch)
	}

	start := time.Now()

	// Largest stored coefficient magnitude via the idamax kernel.
	var maxAbsA float64
	if idx := dense.Iamax(t.Values()); idx >= 0 {
		maxAbsA = math.Abs(t.values[idx])
	}

	// Product and its largest magnitude.
	ax, err := t.MulVec(x, triangular)
	if err != nil {
		return Verification{}, err
	}
	maxAbsAx := dense.VectorNorm(ax, dense.NormMax)

	// ax := ax − rhs via daxpy, then the residual magnitude.
	blas64.Axpy(-1.0,
		blas64.Vector{N: rhs.Len(), Inc: 1, Data: rhs.Data()},
		blas64.Vector{N: ax.Len(), Inc: 1, Data: ax.Data()})
	maxAbsDiff := dense.VectorNorm(ax, dense.NormMax)

	return Verification{
		MaxAbsA:       maxAbsA,
		MaxAbsAx:      maxAbsAx,
		MaxAbsDiff:    maxAbsDiff,
		RelativeError: maxAbsDiff / (maxAbsA + 1.0),
		Elapsed:       time.Since(start),
	}, nil
}
