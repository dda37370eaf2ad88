// Package solver is the boundary to external direct sparse solvers.
//
// A Solver consumes the raw triplet arrays of a coo.Triplet (row
// indices, column indices, values), builds the backend's internal sparse
// representation, factorizes once, and solves for as many right-hand
// sides as needed. The shipped backend is the Sparse 1.3 LU port
// (github.com/edp1096/sparse); the Kind enum leaves room for others.
//
// ⚙️ Usage:
//
//	t, _ := coo.New(3, 3, 5, true) // lower triangle of an SPD system
//	// ... Put coefficients ...
//	s, _ := solver.New(solver.DefaultConfig(), 3)
//	defer s.Free()
//	if err := s.Factorize(t); err != nil { ... }
//	err := s.Solve(x, rhs)
//
// Triangular stores are mirrored into the full matrix during Factorize,
// since the LU backend wants both triangles — the verification path in
// package coo never needs that expansion.
//
// Configuration is an explicit value passed at construction; there is no
// process-wide state (thread counts, orderings) mutated behind the
// caller's back. Native failures surface as ErrSolverFailure with the
// backend's own message preserved in the wrap chain.
package solver
