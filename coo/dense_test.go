// Package coo_test contains unit tests for dense materialization,
// including the duplicate-summation and windowing laws.
package coo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/numstack/linsys/coo"
	"github.com/numstack/linsys/dense"
)

// assembleSplit builds the canonical 4×4 store whose (0,0) coefficient
// arrives as two half-contributions.
func assembleSplit(t *testing.T) *coo.Triplet {
	t.Helper()
	trip, err := coo.New(4, 4, 7, false)
	require.NoError(t, err)
	require.NoError(t, trip.Put(0, 0, 0.5)) // (0, 0, a00/2)
	require.NoError(t, trip.Put(0, 0, 0.5)) // (0, 0, a00/2)
	require.NoError(t, trip.Put(0, 1, 2.0))
	require.NoError(t, trip.Put(1, 0, 3.0))
	require.NoError(t, trip.Put(1, 1, 4.0))
	require.NoError(t, trip.Put(2, 2, 5.0))
	require.NoError(t, trip.Put(3, 3, 6.0))

	return trip
}

// TestToDenseDuplicateSummation checks that repeated (i,j) entries fold
// by summation at materialization time: two 0.5 puts equal one 1.0 put.
func TestToDenseDuplicateSummation(t *testing.T) {
	trip := assembleSplit(t)

	a, err := dense.NewMatrix(4, 4)
	require.NoError(t, err)
	require.NoError(t, trip.ToDense(a))

	require.Equal(t, []float64{
		1, 2, 0, 0,
		3, 4, 0, 0,
		0, 0, 5, 0,
		0, 0, 0, 6,
	}, a.Data())
}

// TestToDenseWindow verifies a smaller target receives exactly the
// leading sub-block of the full materialization.
func TestToDenseWindow(t *testing.T) {
	trip := assembleSplit(t)

	a, err := dense.NewMatrix(3, 3)
	require.NoError(t, err)
	require.NoError(t, trip.ToDense(a))

	require.Equal(t, []float64{
		1, 2, 0,
		3, 4, 0,
		0, 0, 5,
	}, a.Data())
}

// TestToDenseRejectsLargerTarget ensures a target exceeding the declared
// bounds in either direction fails before mutating anything.
func TestToDenseRejectsLargerTarget(t *testing.T) {
	trip, err := coo.New(2, 2, 1, false)
	require.NoError(t, err)

	tall, err := dense.NewMatrix(3, 2)
	require.NoError(t, err)
	require.ErrorIs(t, trip.ToDense(tall), coo.ErrDimensionMismatch)

	wide, err := dense.NewMatrix(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, trip.ToDense(wide), coo.ErrDimensionMismatch)
}

// TestToDenseOverwritesTarget verifies the zero-fill stage: stale target
// content never leaks into the materialized image.
func TestToDenseOverwritesTarget(t *testing.T) {
	trip, err := coo.New(2, 2, 1, false)
	require.NoError(t, err)
	require.NoError(t, trip.Put(0, 0, 7))

	a, err := dense.NewMatrix(2, 2)
	require.NoError(t, err)
	a.Fill(123)

	require.NoError(t, trip.ToDense(a))
	require.Equal(t, []float64{7, 0, 0, 0}, a.Data())
}

// TestToDenseIgnoresTriangularFlag pins the deliberate asymmetry: the
// store's flag does not mirror entries during materialization, so a
// triangle-only store materializes as exactly the stored triangle.
func TestToDenseIgnoresTriangularFlag(t *testing.T) {
	trip, err := coo.New(2, 2, 3, true)
	require.NoError(t, err)
	require.NoError(t, trip.Put(0, 0, 2))
	require.NoError(t, trip.Put(1, 1, 2))
	require.NoError(t, trip.Put(1, 0, -1))

	require.Equal(t, []float64{
		2, 0,
		-1, 2,
	}, trip.AsDense().Data())
}

// TestToDenseRectangular covers a non-square store end to end.
func TestToDenseRectangular(t *testing.T) {
	trip, err := coo.New(2, 3, 4, false)
	require.NoError(t, err)
	require.NoError(t, trip.Put(0, 2, 1.5))
	require.NoError(t, trip.Put(1, 0, -2))

	require.Equal(t, []float64{
		0, 0, 1.5,
		-2, 0, 0,
	}, trip.AsDense().Data())
}
