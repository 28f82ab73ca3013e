// Copyright 2026 Neuronika Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn is the public API for neural-network layers and losses.
package nn

import (
	"math/rand"

	"github.com/CohenAriel/neuronika/internal/nn"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Module is a composable network component.
type Module = nn.Module

// Parameter is a named tracked variable owned by a module.
type Parameter = nn.Parameter

// Linear is a fully connected layer.
type Linear = nn.Linear

// NewLinear creates a fully connected layer with Xavier-uniform weights and
// zero bias.
func NewLinear(in, out int, dtype tensor.DataType, backend tensor.Backend, rng *rand.Rand) (*Linear, error) {
	return nn.NewLinear(in, out, dtype, backend, rng)
}

// Sequential chains modules, feeding each one's output to the next.
type Sequential = nn.Sequential

// NewSequential builds a chain from the given modules in order.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// Parameterless activation modules.
type (
	ReLU    = nn.ReLU
	Sigmoid = nn.Sigmoid
	Tanh    = nn.Tanh
	Softmax = nn.Softmax
)

// Reduction selects how a per-element loss collapses to a scalar.
type Reduction = nn.Reduction

// Loss reductions.
const (
	ReduceMean Reduction = nn.ReduceMean
	ReduceSum  Reduction = nn.ReduceSum
)

// MSELoss is mean squared error.
type MSELoss = nn.MSELoss

// BCELoss is binary cross-entropy over probabilities.
type BCELoss = nn.BCELoss

// ZeroGrad clears the gradient accumulators of every parameter in m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}
