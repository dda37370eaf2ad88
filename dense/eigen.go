// SPDX-License-Identifier: MIT

package dense

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// EigenSym computes the eigenvalues and eigenvectors of the symmetric
// matrix a through the external dsyev kernel, such that
//
//	a ⋅ vⱼ = lⱼ ⋅ vⱼ
//
// where lⱼ is component j of l and vⱼ is column j of the overwritten a.
//
// On input only the upper triangle of a is read; on output a holds the
// orthonormal eigenvectors as columns and l the eigenvalues in ascending
// order. Errors: ErrNonSquare for a non-square a, ErrDimensionMismatch
// when l.Len() != n, ErrEigenFailed when the kernel does not converge.
func EigenSym(l *Vector, a *Matrix) error {
	m, n := a.Dims()
	if m != n {
		return ErrNonSquare
	}
	if l.Len() != n {
		return ErrDimensionMismatch
	}
	sym := blas64.Symmetric{N: n, Stride: n, Uplo: blas.Upper, Data: a.Data()}

	// Workspace query first (lwork == -1), then the real call.
	work := make([]float64, 1)
	lapack64.Syev(lapack.EVCompute, sym, l.Data(), work, -1)
	lwork := int(work[0])
	if lwork < 3*n-1 {
		lwork = 3*n - 1
	}
	work = make([]float64, lwork)
	if ok := lapack64.Syev(lapack.EVCompute, sym, l.Data(), work, lwork); !ok {
		return ErrEigenFailed
	}

	return nil
}
