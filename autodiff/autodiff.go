// Copyright 2026 Neuronika Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff is the public API for the dynamic computation graph.
//
// Variables record operations into a define-by-run graph. Nothing is computed
// until Forward (or Backward, which runs the forward pass first); results are
// memoized until the graph is explicitly reset.
//
// Example:
//
//	backend := cpu.New()
//	w, _ := autodiff.NewParameter(weights, backend)
//	x := autodiff.New(inputs, backend)
//
//	y, _ := x.MatMul(w)
//	loss, _ := y.Sum()
//	_ = loss.Backward()   // w.Grad() now holds dloss/dw
package autodiff

import (
	"github.com/CohenAriel/neuronika/internal/tensor"
	"github.com/CohenAriel/neuronika/internal/variable"
)

// Var is a handle on one value in the computation graph.
type Var = variable.Var

// New wraps a tensor as an untracked input variable.
func New(value *tensor.RawTensor, backend tensor.Backend) *Var {
	return variable.New(value, backend)
}

// NewParameter wraps a tensor as a tracked leaf whose gradient accumulates
// across backward passes.
func NewParameter(value *tensor.RawTensor, backend tensor.Backend) (*Var, error) {
	return variable.NewParameter(value, backend)
}

// Cat concatenates variables along the given axis.
func Cat(vars []*Var, axis int) (*Var, error) {
	return variable.Cat(vars, axis)
}
