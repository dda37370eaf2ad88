// SPDX-License-Identifier: MIT

package coo

import (
	"fmt"

	"github.com/numstack/linsys/dense"
)

// ToDense scatters the stored triples into the dense target a.
//
// The target's shape (m, n) may be smaller than the declared bounds to
// extract a leading sub-block window; larger is rejected with
// ErrDimensionMismatch. The target is zero-filled first, then every
// stored triple whose indices fall inside the window is ADDED (not
// assigned) at its position, in insertion order — the additive scatter
// is what realizes duplicate summation.
//
// The symTriangular flag is deliberately not consulted here: the dense
// image reproduces exactly the stored coefficients, so callers can
// inspect the raw stored triangle or a pre-mirrored full matrix
// depending on how they populated the store.
// Complexity: O(m*n + Len()).
func (t *Triplet) ToDense(a *dense.Matrix) error {
	m, n := a.Dims()
	if m > t.nrow || n > t.ncol {
		return fmt.Errorf("Triplet.ToDense: target %dx%d exceeds store %dx%d: %w",
			m, n, t.nrow, t.ncol, ErrDimensionMismatch)
	}
	a.Fill(0)
	for p := 0; p < t.pos; p++ {
		if t.rowIdx[p] < m && t.colIdx[p] < n {
			_ = a.Add(t.rowIdx[p], t.colIdx[p], t.values[p]) // bounds pre-checked
		}
	}

	return nil
}

// AsDense materializes the full nrow×ncol dense image of the store.
// Convenience wrapper over ToDense with a full-size target.
// Complexity: O(nrow*ncol + Len()).
func (t *Triplet) AsDense() *dense.Matrix {
	a, _ := dense.NewMatrix(t.nrow, t.ncol) // store dims are validated > 0
	_ = t.ToDense(a)                        // full window cannot mismatch

	return a
}
