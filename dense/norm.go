// SPDX-License-Identifier: MIT

// Package dense: norm kernel surface. The selector bytes mirror the
// LAPACK dlange convention ('1', 'I', 'F', 'M') so the wire contract to
// the external kernel stays visible at the call site.

package dense

import (
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// Norm selects a matrix/vector norm kind.
type Norm byte

const (
	// NormOne is the one-norm (maximum absolute column sum), dlange '1'.
	NormOne Norm = '1'
	// NormInf is the infinity-norm (maximum absolute row sum), dlange 'I'.
	NormInf Norm = 'I'
	// NormFro is the Frobenius norm (sqrt of sum of squares), dlange 'F'.
	NormFro Norm = 'F'
	// NormMax is the maximum absolute entry, dlange 'M'.
	NormMax Norm = 'M'
	// NormEuc is the Euclidean norm; for matrices it aliases Frobenius,
	// for vectors it is dnrm2.
	NormEuc Norm = 'E'
)

// MatrixNorm computes the requested norm of a via the external dlange
// kernel. An unknown kind falls back to NormOne, matching the kernel's
// strictest selector. Complexity: kernel-bound, O(r*c).
func MatrixNorm(a *Matrix, kind Norm) float64 {
	m, n := a.Dims()
	if m == 0 || n == 0 {
		return 0
	}
	var norm lapack.MatrixNorm
	switch kind {
	case NormInf:
		norm = lapack.MaxRowSum
	case NormFro, NormEuc:
		norm = lapack.Frobenius
	case NormMax:
		norm = lapack.MaxAbs
	default:
		norm = lapack.MaxColumnSum
	}
	// Lange needs scratch of length n only for the column-sum norm; sizing
	// it unconditionally keeps the call branch-free.
	work := make([]float64, n)

	return lapack64.Lange(norm, blas64.General{Rows: m, Cols: n, Stride: n, Data: a.Data()}, work)
}

// VectorNorm computes the requested norm of v through BLAS level-1
// kernels: dasum for One, dnrm2 for Euc/Fro, idamax+abs for Max/Inf.
// Complexity: kernel-bound, O(n).
func VectorNorm(v *Vector, kind Norm) float64 {
	if v.Len() == 0 {
		return 0
	}
	x := blas64.Vector{N: v.Len(), Inc: 1, Data: v.Data()}
	switch kind {
	case NormOne:
		return blas64.Asum(x)
	case NormEuc, NormFro:
		return blas64.Nrm2(x)
	default: // NormMax, NormInf
		return math.Abs(v.Data()[blas64.Iamax(x)])
	}
}

// Iamax returns the index of the component of x with the largest
// absolute value, ties broken by first occurrence (the idamax contract).
// Returns -1 for an empty slice.
func Iamax(x []float64) int {
	if len(x) == 0 {
		return -1
	}

	return blas64.Iamax(blas64.Vector{N: len(x), Inc: 1, Data: x})
}
