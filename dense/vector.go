// SPDX-License-Identifier: MIT

package dense

import (
	"fmt"
	"strings"
)

// Vector is a fixed-length column of float64 values with explicit
// mutation. It is the shape the sparse evaluator and the solver boundary
// exchange; Data exposes the contiguous buffer for BLAS level-1 calls.
type Vector struct {
	data []float64
}

// NewVector creates a zero-initialized vector of length n.
// Returns ErrInvalidDimensions when n <= 0. Complexity: O(n).
func NewVector(n int) (*Vector, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Vector{data: make([]float64, n)}, nil
}

// VectorFrom builds a Vector by copying the given values.
// Returns ErrInvalidDimensions for an empty input. Complexity: O(n).
func VectorFrom(values []float64) (*Vector, error) {
	if len(values) == 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]float64, len(values))
	copy(data, values)

	return &Vector{data: data}, nil
}

// Filled creates a length-n vector with every component set to v.
// Complexity: O(n).
func Filled(n int, v float64) (*Vector, error) {
	u, err := NewVector(n)
	if err != nil {
		return nil, err
	}
	u.Fill(v)

	return u, nil
}

// Len returns the number of components. Complexity: O(1).
func (v *Vector) Len() int { return len(v.data) }

// At retrieves component i, or ErrIndexOutOfBounds. Complexity: O(1).
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("Vector.At(%d): %w", i, ErrIndexOutOfBounds)
	}

	return v.data[i], nil
}

// Set assigns component i, or ErrIndexOutOfBounds. Complexity: O(1).
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("Vector.Set(%d): %w", i, ErrIndexOutOfBounds)
	}
	v.data[i] = x

	return nil
}

// Add accumulates x into component i, or ErrIndexOutOfBounds. Complexity: O(1).
func (v *Vector) Add(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("Vector.Add(%d): %w", i, ErrIndexOutOfBounds)
	}
	v.data[i] += x

	return nil
}

// Fill sets every component to x. Complexity: O(n).
func (v *Vector) Fill(x float64) {
	for i := range v.data {
		v.data[i] = x
	}
}

// Data exposes the backing slice. Mutating it mutates the vector.
func (v *Vector) Data() []float64 { return v.data }

// Clone returns an independent deep copy. Complexity: O(n).
func (v *Vector) Clone() *Vector {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)

	return &Vector{data: cp}
}

// String implements fmt.Stringer. Complexity: O(n).
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g", x)
	}
	b.WriteString("]")

	return b.String()
}
