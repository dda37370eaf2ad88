// SPDX-License-Identifier: MIT

// Package dense: Matrix is a concrete, row-major container storing
// elements in a flat slice for performance and cache friendliness. The
// flat layout is also what the BLAS/LAPACK kernel surface consumes
// directly (stride == Cols), so no copies happen at the kernel boundary.

package dense

import (
	"fmt"
	"strings"
)

// Matrix is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Matrix struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewMatrix creates an r×c Matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Matrix or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// MatrixFrom builds a Matrix from a rectangular [][]float64 literal.
// Every row must have the same length, else ErrDimensionMismatch.
// Complexity: O(r*c).
func MatrixFrom(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewMatrix(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("MatrixFrom: row %d: %w", i, ErrDimensionMismatch)
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.c }

// Dims returns the (rows, cols) pair. Complexity: O(1).
func (m *Matrix) Dims() (int, int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrIndexOutOfBounds for invalid indices. Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrIndexOutOfBounds for invalid indices. Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Add accumulates v into the element at (row, col) — additive, not
// assignment. This is the primitive that realizes duplicate summation
// when a sparse store scatters into a dense window. Complexity: O(1).
func (m *Matrix) Add(row, col int, v float64) error {
	idx, err := m.indexOf("Add", row, col)
	if err != nil {
		return err
	}
	m.data[idx] += v

	return nil
}

// Fill sets every element to v. Complexity: O(r*c).
func (m *Matrix) Fill(v float64) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Data exposes the flat row-major backing slice. Mutating it mutates the
// matrix; the kernel wrappers rely on this view to avoid copies.
func (m *Matrix) Data() []float64 { return m.data }

// Clone returns a deep copy of the Matrix. Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Matrix{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Matrix) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString("[")
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
