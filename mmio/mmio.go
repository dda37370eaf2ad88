// SPDX-License-Identifier: MIT

package mmio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/numstack/linsys/coo"
)

// ErrBadFormat indicates a file that is not in the supported
// Matrix-Market coordinate-real subset, or whose data lines are
// malformed or inconsistent with the declared sizes.
var ErrBadFormat = errors.New("mmio: bad matrix-market format")

const header = "%%MatrixMarket"

// Read opens path and parses it as a Matrix-Market coordinate file,
// returning the populated store and whether the file declared symmetry.
//
// mirror controls how a symmetric file's single stored triangle is
// ingested: true expands every off-diagonal entry to both (i,j) and
// (j,i) — the store's triangular flag stays off — while false keeps the
// triangle as stored with the flag on. Requesting mirror for a general
// (unsymmetric) file is an error, since there is nothing to mirror.
// Symmetric files must store the lower triangle; an entry above the
// diagonal is rejected as malformed.
func Read(path string, mirror bool) (*coo.Triplet, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("mmio: %w", err)
	}
	defer f.Close()

	return ReadFrom(f, mirror)
}

// ReadFrom is Read over an arbitrary reader. See Read for the contract.
func ReadFrom(r io.Reader, mirror bool) (*coo.Triplet, bool, error) {
	sc := bufio.NewScanner(r)

	// Banner line: "%%MatrixMarket matrix coordinate real <symmetry>".
	if !sc.Scan() {
		return nil, false, fmt.Errorf("%w: empty input", ErrBadFormat)
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 5 || fields[0] != header {
		return nil, false, fmt.Errorf("%w: missing %s banner", ErrBadFormat, header)
	}
	if fields[1] != "matrix" || fields[2] != "coordinate" || fields[3] != "real" {
		return nil, false, fmt.Errorf("%w: unsupported kind %q", ErrBadFormat, strings.Join(fields[1:4], " "))
	}
	var symmetric bool
	switch fields[4] {
	case "general":
		symmetric = false
	case "symmetric":
		symmetric = true
	default:
		return nil, false, fmt.Errorf("%w: unsupported symmetry %q", ErrBadFormat, fields[4])
	}
	if mirror && !symmetric {
		return nil, false, fmt.Errorf("%w: cannot mirror a general matrix", ErrBadFormat)
	}

	// Size line: "m n nnz", after any % comment lines.
	var trip *coo.Triplet
	var nnz int
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		sizes := strings.Fields(line)
		if len(sizes) != 3 {
			return nil, false, fmt.Errorf("%w: size line %q", ErrBadFormat, line)
		}
		m, err1 := strconv.Atoi(sizes[0])
		n, err2 := strconv.Atoi(sizes[1])
		k, err3 := strconv.Atoi(sizes[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, false, fmt.Errorf("%w: size line %q", ErrBadFormat, line)
		}
		if k < 0 {
			return nil, false, fmt.Errorf("%w: size line %q", ErrBadFormat, line)
		}
		nnz = k
		max := nnz
		if symmetric && mirror {
			max = 2 * nnz // worst case: every entry off-diagonal
		}
		if max == 0 {
			max = 1 // an all-zero matrix is legal; the store still needs capacity
		}
		trip, err1 = coo.New(m, n, max, symmetric && !mirror)
		if err1 != nil {
			return nil, false, fmt.Errorf("mmio: %w", err1)
		}
		break
	}
	if trip == nil {
		return nil, false, fmt.Errorf("%w: missing size line", ErrBadFormat)
	}

	// Data lines: "i j v", 1-based indices.
	seen := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields = strings.Fields(line)
		if len(fields) != 3 {
			return nil, false, fmt.Errorf("%w: data line %q", ErrBadFormat, line)
		}
		i, err1 := strconv.Atoi(fields[0])
		j, err2 := strconv.Atoi(fields[1])
		v, err3 := strconv.ParseFloat(fields[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, false, fmt.Errorf("%w: data line %q", ErrBadFormat, line)
		}
		if symmetric && i < j {
			// Symmetric coordinate files store the lower triangle only.
			return nil, false, fmt.Errorf("%w: entry (%d,%d) above the diagonal in symmetric file", ErrBadFormat, i, j)
		}
		if err := trip.Put(i-1, j-1, v); err != nil {
			return nil, false, fmt.Errorf("mmio: line %q: %w", line, err)
		}
		if mirror && i != j {
			if err := trip.Put(j-1, i-1, v); err != nil {
				return nil, false, fmt.Errorf("mmio: line %q: %w", line, err)
			}
		}
		seen++
	}
	if err := sc.Err(); err != nil {
		return nil, false, fmt.Errorf("mmio: %w", err)
	}
	if seen != nnz {
		return nil, false, fmt.Errorf("%w: declared %d entries, found %d", ErrBadFormat, nnz, seen)
	}

	return trip, symmetric, nil
}
