// SPDX-License-Identifier: MIT

package solver

// Kind selects the direct-solver backend.
type Kind int

const (
	// SparseLU is the Sparse 1.3 LU factorization backend, the one this
	// build ships. Additional kinds slot in here without touching callers.
	SparseLU Kind = iota
)

// String implements fmt.Stringer for reports and logs.
func (k Kind) String() string {
	switch k {
	case SparseLU:
		return "SparseLU"
	default:
		return "Unknown"
	}
}

// Config carries the explicit knobs of a Solver. A zero value is not
// meaningful; start from DefaultConfig and adjust.
//
// There is deliberately no global thread-count or ordering switch here:
// whatever parallelism the native kernel applies is its own concern,
// configured per Solver instance, never process-wide.
type Config struct {
	// Kind selects the backend implementation.
	Kind Kind

	// RelThreshold is the relative pivot threshold handed to the
	// factorization (0 keeps the backend's default).
	RelThreshold float64

	// AbsThreshold is the absolute pivot threshold (0 keeps the
	// backend's default).
	AbsThreshold float64

	// DiagPivoting prefers diagonal pivots during ordering, the usual
	// choice for assembly-style matrices with strong diagonals.
	DiagPivoting bool
}

// DefaultConfig returns the configuration used by the CLI and tests:
// SparseLU with backend-default thresholds and diagonal pivoting.
func DefaultConfig() Config {
	return Config{
		Kind:         SparseLU,
		RelThreshold: 0,
		AbsThreshold: 0,
		DiagPivoting: true,
	}
}
