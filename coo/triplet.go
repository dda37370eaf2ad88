// SPDX-License-Identifier: MIT

// Package coo: the Triplet store itself. Parallel index/value slabs are
// the hand-off format external direct solvers consume (raw row indices,
// column indices and values of length Len), so the layout here is part
// of the system boundary, not an implementation detail.

package coo

import "fmt"

// Triplet holds a sparse matrix as (row, col, value) triples.
//
// Only non-zero values need to be stored, repeated (row, col) indices
// are allowed, and repeated entries have their values summed at
// consumption time (ToDense, MulVec, Verify) — never during assembly.
// The maximum number of triples, including repeats, is fixed at
// construction.
type Triplet struct {
	nrow, ncol int       // declared matrix bounds for valid indices
	pos        int       // number of stored triples, ≤ max
	max        int       // fixed capacity of the slabs below
	rowIdx     []int     // [max] row indices; first pos entries meaningful
	colIdx     []int     // [max] column indices; first pos entries meaningful
	values     []float64 // [max] coefficient values
	symTri     bool      // one-triangle symmetric storage was supplied
}

// New creates a Triplet store for an nrow×ncol matrix holding at most
// max triples (repeats included).
//
// symTriangular records that the caller intends to supply only one side
// of the diagonal of a symmetric matrix. The flag is carried for
// consumers (solvers mirror it; MulVec takes its own triangular switch;
// ToDense deliberately ignores it and reproduces exactly what was
// stored).
//
// Returns ErrInvalidDimensions unless nrow, ncol and max are all > 0.
// Complexity: O(max) allocation.
func New(nrow, ncol, max int, symTriangular bool) (*Triplet, error) {
	if nrow <= 0 || ncol <= 0 || max <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Triplet{
		nrow:   nrow,
		ncol:   ncol,
		max:    max,
		rowIdx: make([]int, max),
		colIdx: make([]int, max),
		values: make([]float64, max),
		symTri: symTriangular,
	}, nil
}

// Put appends the triple (i, j, v) to the store.
//
// No deduplication, no sorting: the same (i, j) pair may be appended any
// number of times, and consumers fold the repeats in this exact
// insertion order. Errors: ErrIndexOutOfBounds when i ≥ nrow or
// j ≥ ncol (negative likewise), ErrCapacityExceeded once Len() == Cap().
// Complexity: O(1).
func (t *Triplet) Put(i, j int, v float64) error {
	if i < 0 || i >= t.nrow {
		return fmt.Errorf("Triplet.Put: row %d outside [0,%d): %w", i, t.nrow, ErrIndexOutOfBounds)
	}
	if j < 0 || j >= t.ncol {
		return fmt.Errorf("Triplet.Put: col %d outside [0,%d): %w", j, t.ncol, ErrIndexOutOfBounds)
	}
	if t.pos >= t.max {
		return fmt.Errorf("Triplet.Put: %w (cap %d)", ErrCapacityExceeded, t.max)
	}
	t.rowIdx[t.pos] = i
	t.colIdx[t.pos] = j
	t.values[t.pos] = v
	t.pos++

	return nil
}

// Reset forgets all stored triples, keeping the backing storage so the
// same store can be refilled without a fresh allocation. A Put sequence
// after Reset behaves identically to one on a freshly created store.
// Complexity: O(1).
func (t *Triplet) Reset() { t.pos = 0 }

// Dims returns the declared (nrow, ncol) bounds. Complexity: O(1).
func (t *Triplet) Dims() (int, int) { return t.nrow, t.ncol }

// Len returns the number of stored triples. Complexity: O(1).
func (t *Triplet) Len() int { return t.pos }

// Cap returns the fixed maximum number of triples. Complexity: O(1).
func (t *Triplet) Cap() int { return t.max }

// SymTriangular reports whether the store was declared to hold only one
// triangle of a symmetric matrix. Complexity: O(1).
func (t *Triplet) SymTriangular() bool { return t.symTri }

// Indices returns views over the stored row and column indices, length
// Len(). The slices alias the store's slabs: they are the raw arrays an
// external factorization kernel consumes, and they stay valid until the
// next Put or Reset. Callers must not modify them.
func (t *Triplet) Indices() (rows, cols []int) {
	return t.rowIdx[:t.pos], t.colIdx[:t.pos]
}

// Values returns a view over the stored coefficients, length Len().
// Same aliasing rules as Indices.
func (t *Triplet) Values() []float64 { return t.values[:t.pos] }

// String implements fmt.Stringer with a compact summary.
func (t *Triplet) String() string {
	return fmt.Sprintf(`{"nrow": %d, "ncol": %d, "nnz": %d, "max": %d, "symTriangular": %t}`,
		t.nrow, t.ncol, t.pos, t.max, t.symTri)
}
