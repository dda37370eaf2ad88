// Package dense_test contains unit tests for the symmetric eigen wrapper.
package dense_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/numstack/linsys/dense"
)

// TestEigenSymShapeErrors validates the argument guards.
func TestEigenSymShapeErrors(t *testing.T) {
	a, err := dense.NewMatrix(2, 3)
	require.NoError(t, err)
	l, err := dense.NewVector(2)
	require.NoError(t, err)
	require.ErrorIs(t, dense.EigenSym(l, a), dense.ErrNonSquare)

	a, err = dense.NewMatrix(3, 3)
	require.NoError(t, err)
	require.ErrorIs(t, dense.EigenSym(l, a), dense.ErrDimensionMismatch)
}

// TestEigenSym2x2 checks eigenvalues of a matrix with a known spectrum
// and verifies the eigenpair equation a·v = λ·v column by column.
func TestEigenSym2x2(t *testing.T) {
	a, err := dense.MatrixFrom([][]float64{
		{2, 1},
		{1, 2},
	})
	require.NoError(t, err)
	orig := a.Clone()

	l, err := dense.NewVector(2)
	require.NoError(t, err)
	require.NoError(t, dense.EigenSym(l, a))

	// Ascending eigenvalues of [[2,1],[1,2]] are 1 and 3.
	require.InDelta(t, 1.0, l.Data()[0], 1e-14)
	require.InDelta(t, 3.0, l.Data()[1], 1e-14)

	checkEigenPairs(t, orig, l, a, 1e-14)
}

// TestEigenSymDiagonal verifies a trivially diagonal input.
func TestEigenSymDiagonal(t *testing.T) {
	a, err := dense.MatrixFrom([][]float64{
		{3, 0, 0},
		{0, 1, 0},
		{0, 0, 2},
	})
	require.NoError(t, err)
	orig := a.Clone()

	l, err := dense.NewVector(3)
	require.NoError(t, err)
	require.NoError(t, dense.EigenSym(l, a))

	require.InDelta(t, 1.0, l.Data()[0], 1e-14)
	require.InDelta(t, 2.0, l.Data()[1], 1e-14)
	require.InDelta(t, 3.0, l.Data()[2], 1e-14)

	checkEigenPairs(t, orig, l, a, 1e-14)
}

// checkEigenPairs asserts a·vⱼ = lⱼ·vⱼ for every eigenvector column vⱼ
// of v, and that each column has unit Euclidean length.
func checkEigenPairs(t *testing.T, a *dense.Matrix, l *dense.Vector, v *dense.Matrix, tol float64) {
	t.Helper()
	n := a.Rows()
	for j := 0; j < n; j++ {
		var norm2 float64
		for i := 0; i < n; i++ {
			var av float64
			for k := 0; k < n; k++ {
				aik, err := a.At(i, k)
				require.NoError(t, err)
				vkj, err := v.At(k, j)
				require.NoError(t, err)
				av += aik * vkj
			}
			vij, err := v.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, l.Data()[j]*vij, av, tol)
			norm2 += vij * vij
		}
		require.InDelta(t, 1.0, math.Sqrt(norm2), tol)
	}
}
