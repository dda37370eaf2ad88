// SPDX-License-Identifier: MIT

//go:build cgo && netlib

package dense

// This file registers the netlib BLAS/LAPACK implementations which use
// system libraries (Accelerate on macOS, OpenBLAS on Linux) when built
// with the netlib tag and CGO available.

import (
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
	netblas "gonum.org/v1/netlib/blas/netlib"
	netlapack "gonum.org/v1/netlib/lapack/netlib"
)

func init() {
	blas64.Use(netblas.Implementation{})
	lapack64.Use(netlapack.Implementation{})
	log.Debug().Msg("⚡ CGO/BLAS acceleration enabled (netlib)")
}
