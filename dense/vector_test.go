// Package dense_test contains unit tests for the Vector container.
package dense_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/numstack/linsys/dense"
)

// TestNewVectorInvalidDimensions ensures NewVector rejects non-positive lengths.
func TestNewVectorInvalidDimensions(t *testing.T) {
	_, err := dense.NewVector(0)
	require.ErrorIs(t, err, dense.ErrInvalidDimensions)

	_, err = dense.NewVector(-2)
	require.ErrorIs(t, err, dense.ErrInvalidDimensions)

	_, err = dense.VectorFrom(nil)
	require.ErrorIs(t, err, dense.ErrInvalidDimensions)
}

// TestVectorFromCopies verifies VectorFrom copies rather than aliases.
func TestVectorFromCopies(t *testing.T) {
	src := []float64{1, 2, 3}
	v, err := dense.VectorFrom(src)
	require.NoError(t, err)

	src[0] = 99
	x, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, x)
}

// TestVectorSetGetAdd validates element access and additive updates.
func TestVectorSetGetAdd(t *testing.T) {
	v, err := dense.NewVector(3)
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())

	require.NoError(t, v.Set(1, 2.5))
	require.NoError(t, v.Add(1, 0.5))
	x, err := v.At(1)
	require.NoError(t, err)
	require.Equal(t, 3.0, x)

	_, err = v.At(3)
	require.ErrorIs(t, err, dense.ErrIndexOutOfBounds)
	require.ErrorIs(t, v.Set(-1, 0), dense.ErrIndexOutOfBounds)
	require.ErrorIs(t, v.Add(3, 0), dense.ErrIndexOutOfBounds)
}

// TestVectorFilled verifies the constant constructor and Fill.
func TestVectorFilled(t *testing.T) {
	v, err := dense.Filled(4, 1.0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 1, 1}, v.Data())

	v.Fill(-2)
	require.Equal(t, []float64{-2, -2, -2, -2}, v.Data())
}

// TestVectorCloneIndependence ensures Clone does not share storage.
func TestVectorCloneIndependence(t *testing.T) {
	v, err := dense.VectorFrom([]float64{1, 2})
	require.NoError(t, err)

	clone := v.Clone()
	require.NoError(t, clone.Set(0, 9))

	x, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, x)
}

// TestVectorString checks the debug representation.
func TestVectorString(t *testing.T) {
	v, err := dense.VectorFrom([]float64{1, -2.5, 3})
	require.NoError(t, err)
	require.Equal(t, "[1, -2.5, 3]", v.String())
}
