// Package coo implements the sparse coordinate (triplet) assembly format
// and its consumers: dense materialization, matrix-vector evaluation and
// independent linear-system verification.
//
// 🚀 What is a triplet store?
//
//	A sparse matrix held as parallel (row, col, value) sequences.
//	Entries with repeated (row, col) indices are allowed and are NOT
//	merged on Put — independent contributions (finite-element style
//	local-to-global assembly) append without a lookup. Consumers fold
//	duplicates by summation, strictly in insertion order, which keeps
//	floating-point results bit-reproducible for a fixed Put sequence.
//
// ✨ Key features:
//   - fixed capacity decided up front; Reset reuses the backing storage
//   - optional triangular storage: keep one side of a symmetric matrix,
//     MulVec mirrors the implied side without materializing it
//   - windowed materialization: scatter a leading sub-block into any
//     dense target no larger than the declared shape
//   - Verify recomputes the residual of a candidate solution and reports
//     a scale-relative error metric with wall-clock timing
//
// ⚙️ Usage:
//
//	t, _ := coo.New(4, 4, 7, false)
//	_ = t.Put(0, 0, 0.5) // half a contribution ...
//	_ = t.Put(0, 0, 0.5) // ... and the other half
//	_ = t.Put(0, 1, 2.0)
//	a := t.AsDense()     // a[0][0] == 1
//
// Concurrency: a Triplet is exclusively owned by one assembler at a
// time; serialize concurrent Put callers externally. Verification
// results and materialized matrices are plain values afterwards.
package coo
