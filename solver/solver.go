// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/edp1096/sparse"

	"github.com/numstack/linsys/coo"
	"github.com/numstack/linsys/dense"
)

// Solver owns one factorized system of fixed order. The lifecycle is
// New → Factorize → Solve (repeatable) → Free; Factorize may be called
// again after the owning store was Reset and refilled.
//
// A Solver is not safe for concurrent use: it wraps a mutable native
// matrix, exclusively owned like the triplet store that feeds it.
type Solver struct {
	neq      int
	cfg      Config
	mat      *sparse.Matrix
	factored bool
}

// New allocates a solver for a system of order neq.
// Errors: ErrInvalidDimensions for neq < 1, ErrUnknownKind for a Kind
// this build has no backend for, ErrSolverFailure if the native matrix
// cannot be allocated.
func New(cfg Config, neq int) (*Solver, error) {
	if neq < 1 {
		return nil, ErrInvalidDimensions
	}
	if cfg.Kind != SparseLU {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, cfg.Kind)
	}

	mat, err := sparse.Create(int64(neq), &sparse.Configuration{
		Real:           true,
		Complex:        false,
		Expandable:     true,
		Translate:      true, // reloading a reordered matrix needs index translation
		ModifiedNodal:  false,
		TiesMultiplier: 5,
		PrinterWidth:   140,
		Annotate:       0,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create: %v", ErrSolverFailure, err)
	}

	return &Solver{neq: neq, cfg: cfg, mat: mat}, nil
}

// Order returns the declared system order.
func (s *Solver) Order() int { return s.neq }

// Factorize loads the triples of t into the native matrix and performs
// the ordered LU factorization.
//
// Coefficients are loaded additively, so a store with repeated (i, j)
// entries folds its duplicates here exactly as the verification path
// does. When t.SymTriangular() is set, every off-diagonal entry is
// mirrored across the diagonal: the LU backend factorizes the full
// matrix even when only one triangle was assembled.
//
// Errors: ErrNonSquare for a rectangular store, ErrDimensionMismatch
// when the store's order differs from the solver's, ErrSolverFailure
// when the native kernel rejects the factorization (singularity etc.).
func (s *Solver) Factorize(t *coo.Triplet) error {
	nrow, ncol := t.Dims()
	if nrow != ncol {
		return fmt.Errorf("Factorize: store is %dx%d: %w", nrow, ncol, ErrNonSquare)
	}
	if nrow != s.neq {
		return fmt.Errorf("Factorize: store order %d, solver order %d: %w", nrow, s.neq, ErrDimensionMismatch)
	}

	// Start from a clean slate so Factorize can be called repeatedly.
	s.mat.Clear()
	s.factored = false

	rows, cols := t.Indices()
	vals := t.Values()
	for p := range vals {
		i, j := int64(rows[p]+1), int64(cols[p]+1) // native matrix is 1-based
		s.mat.GetElement(i, j).Real += vals[p]
		if t.SymTriangular() && i != j {
			s.mat.GetElement(j, i).Real += vals[p]
		}
	}

	rhs := make([]float64, s.neq+1) // ordering probe, 1-based like the backend's vectors
	if err := s.mat.OrderAndFactor(rhs, s.cfg.RelThreshold, s.cfg.AbsThreshold, s.cfg.DiagPivoting); err != nil {
		return fmt.Errorf("%w: factorize: %v", ErrSolverFailure, err)
	}
	s.factored = true

	return nil
}

// Solve computes x such that a ⋅ x = rhs using the factorized matrix.
// The solver's own vectors are 1-based; the shift happens here, the only
// place that needs it.
//
// Errors: ErrNotFactorized before a successful Factorize,
// ErrDimensionMismatch for wrong vector lengths, ErrSolverFailure for a
// native substitution failure.
func (s *Solver) Solve(x, rhs *dense.Vector) error {
	if !s.factored {
		return ErrNotFactorized
	}
	if x.Len() != s.neq || rhs.Len() != s.neq {
		return fmt.Errorf("Solve: x %d, rhs %d, want %d: %w", x.Len(), rhs.Len(), s.neq, ErrDimensionMismatch)
	}

	b := make([]float64, s.neq+1)
	copy(b[1:], rhs.Data())
	sol, err := s.mat.Solve(b)
	if err != nil {
		return fmt.Errorf("%w: solve: %v", ErrSolverFailure, err)
	}
	copy(x.Data(), sol[1:s.neq+1])

	return nil
}

// Free releases the native matrix. Safe to call more than once; the
// Solver is unusable afterwards.
func (s *Solver) Free() {
	if s.mat != nil {
		s.mat.Destroy()
		s.mat = nil
		s.factored = false
	}
}
