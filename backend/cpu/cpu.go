// Copyright 2026 Neuronika Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu is the public API for the CPU compute backend.
package cpu

import (
	internalcpu "github.com/CohenAriel/neuronika/internal/backend/cpu"
	"github.com/CohenAriel/neuronika/tensor"
)

// Backend is the CPU implementation of the kernel interface: pure Go
// element-wise kernels plus BLAS-backed linear algebra.
type Backend = internalcpu.Backend

var _ tensor.Backend = (*Backend)(nil)

// New creates a CPU backend with the default parallelism configuration.
func New() *Backend {
	return internalcpu.New()
}
