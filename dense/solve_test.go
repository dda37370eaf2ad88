// Package dense_test contains unit tests for the dense LU solve wrapper.
package dense_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/numstack/linsys/dense"
)

// TestSolveLinSysShapeErrors validates the argument guards.
func TestSolveLinSysShapeErrors(t *testing.T) {
	a, err := dense.NewMatrix(2, 3)
	require.NoError(t, err)
	b, err := dense.NewVector(2)
	require.NoError(t, err)
	require.ErrorIs(t, dense.SolveLinSys(a, b), dense.ErrNonSquare)

	a, err = dense.NewMatrix(3, 3)
	require.NoError(t, err)
	require.ErrorIs(t, dense.SolveLinSys(a, b), dense.ErrDimensionMismatch)
}

// TestSolveLinSys3x3 solves a system with a known integer solution.
func TestSolveLinSys3x3(t *testing.T) {
	a, err := dense.MatrixFrom([][]float64{
		{1, 3, -2},
		{3, 5, 6},
		{2, 4, 3},
	})
	require.NoError(t, err)
	b, err := dense.VectorFrom([]float64{5, 7, 8})
	require.NoError(t, err)

	require.NoError(t, dense.SolveLinSys(a, b))

	want := []float64{-15, 8, 2}
	for i, x := range b.Data() {
		require.InDelta(t, want[i], x, 1e-12)
	}
}

// TestSolveLinSysSingular ensures an exactly singular matrix is reported.
func TestSolveLinSysSingular(t *testing.T) {
	a, err := dense.MatrixFrom([][]float64{
		{1, 2},
		{2, 4},
	})
	require.NoError(t, err)
	b, err := dense.VectorFrom([]float64{1, 2})
	require.NoError(t, err)

	require.ErrorIs(t, dense.SolveLinSys(a, b), dense.ErrSingular)
}
