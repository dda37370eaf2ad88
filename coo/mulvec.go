// SPDX-License-Identifier: MIT

package coo

import (
	"fmt"

	"github.com/numstack/linsys/dense"
)

// MulVec computes the matrix-vector product directly from triplet data:
//
//	v  :=   a   ⋅  u
//	(m)    (m,n)   (n)
//
// For each stored triple (i, j, aij) in insertion order it accumulates
// v[i] += aij·u[j]; when triangular is true and i != j it additionally
// accumulates v[j] += aij·u[i], mirroring the implicit symmetric
// counterpart without ever materializing it.
//
// Callers who stored a full symmetric matrix explicitly (both triangles)
// must pass triangular=false to avoid double-mirroring; callers who
// stored only one triangle pass triangular=true. The same storage format
// thus serves both interpretations without a distinct type.
//
// Errors: ErrDimensionMismatch when u.Len() != ncol, or when triangular
// is requested on a non-square store (mirroring is undefined there).
// Complexity: O(Len()); not the fastest product, but exact for
// verification work.
func (t *Triplet) MulVec(u *dense.Vector, triangular bool) (*dense.Vector, error) {
	if u.Len() != t.ncol {
		return nil, fmt.Errorf("Triplet.MulVec: u has %d components, want %d: %w",
			u.Len(), t.ncol, ErrDimensionMismatch)
	}
	if triangular && t.nrow != t.ncol {
		return nil, fmt.Errorf("Triplet.MulVec: triangular mode on %dx%d store: %w",
			t.nrow, t.ncol, ErrDimensionMismatch)
	}
	v, err := dense.NewVector(t.nrow)
	if err != nil {
		return nil, err
	}

	vd, ud := v.Data(), u.Data()
	for p := 0; p < t.pos; p++ {
		i, j, aij := t.rowIdx[p], t.colIdx[p], t.values[p]
		vd[i] += aij * ud[j]
		if triangular && i != j {
			vd[j] += aij * ud[i]
		}
	}

	return v, nil
}
