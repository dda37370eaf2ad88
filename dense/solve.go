// SPDX-License-Identifier: MIT

package dense

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// SolveLinSys solves the dense linear system
//
//	a ⋅ x = b
//
// through the external dgetrf/dgetrs kernels. Both arguments are
// overwritten: a with its PLU factors and b with the solution x. Callers
// who need the originals must Clone first.
//
// Errors: ErrNonSquare for a non-square a, ErrDimensionMismatch when
// b.Len() != n, ErrSingular when factorization meets a zero pivot.
// Complexity: kernel-bound, O(n³).
func SolveLinSys(a *Matrix, b *Vector) error {
	m, n := a.Dims()
	if m != n {
		return ErrNonSquare
	}
	if b.Len() != n {
		return ErrDimensionMismatch
	}

	ga := blas64.General{Rows: n, Cols: n, Stride: n, Data: a.Data()}
	ipiv := make([]int, n)
	if ok := lapack64.Getrf(ga, ipiv); !ok {
		return ErrSingular
	}
	gb := blas64.General{Rows: n, Cols: 1, Stride: 1, Data: b.Data()}
	lapack64.Getrs(blas.NoTrans, ga, gb, ipiv)

	return nil
}
