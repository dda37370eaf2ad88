// Package linsys is a support layer for numerical linear algebra:
// dense matrix/vector primitives backed by BLAS/LAPACK kernels, and a
// sparse coordinate (triplet) assembly format feeding external direct
// solvers.
//
// 🚀 What is linsys?
//
//	A small, deterministic toolkit that brings together:
//		• Dense containers: fixed-shape Matrix & Vector with explicit mutation
//		• Kernel surface: norms (dlange), symmetric eigen (dsyev), dense LU
//		• Triplet store: additive (row, col, value) assembly with duplicates
//		• Verification: independent residual & relative-error checks, timed
//		• Solver boundary: factorize/solve through a direct sparse LU backend
//
// ✨ Why choose linsys?
//
//   - Assembly-friendly – repeated (i,j) contributions append without lookup
//   - Reproducible – duplicate folding follows insertion order, bit for bit
//   - Honest errors – sentinel values matched with errors.Is, no panics
//   - Thin kernels – BLAS/LAPACK and sparse LU stay external collaborators
//
// Under the hood, everything is organized into focused subpackages:
//
//	dense/  — Matrix & Vector containers + norm/eigen/solve kernel wrappers
//	coo/    — sparse triplet store, materialization, mat-vec, verification
//	solver/ — direct sparse solver lifecycle (factorize, solve, free)
//	mmio/   — Matrix-Market coordinate ingestion into a triplet store
//
// Quick ASCII example:
//
//	put(0,0,0.5) put(0,0,0.5) put(0,1,2) ──▶ │ 1 2 │
//	put(1,0,3)   put(1,1,4)              ──▶ │ 3 4 │
//
//	two half-contributions on (0,0) fold into 1 at consumption time.
//
// Dive into the package docs for the full contracts, including the
// triangular-storage rules used to halve symmetric-matrix memory.
//
//	go get github.com/numstack/linsys
package linsys
