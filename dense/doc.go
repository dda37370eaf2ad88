// Package dense provides fixed-shape dense containers (Matrix, Vector)
// and a thin wrapper over the external BLAS/LAPACK kernel surface.
//
// Containers are plain value holders: row-major flat storage, explicit
// Set/Add/Fill mutation, no implicit resizing. All numerically hard work
// (norms, symmetric eigen-decomposition, LU solves, index-of-max) is
// delegated to gonum's blas64/lapack64 implementations — this package
// never reimplements a kernel, it only shapes buffers for one.
//
// ⚙️ Usage:
//
//	a, _ := dense.NewMatrix(2, 2)
//	_ = a.Set(0, 0, -2)
//	_ = a.Set(0, 1, 2)
//	_ = a.Set(1, 0, 1)
//	_ = a.Set(1, 1, -4)
//
//	one := dense.MatrixNorm(a, dense.NormOne) // 6
//	max := dense.MatrixNorm(a, dense.NormMax) // 4
//
// Determinism & Policy:
//   - No global state: kernel backend selection is a build-time concern
//     (see netlib_cgo.go), never a runtime mutable.
//   - Errors are package sentinels matched via errors.Is; methods never
//     panic on user input.
//
// Complexity: container ops are O(1) per element access, O(r*c) for
// whole-matrix operations; kernel costs are the kernels' own.
package dense
