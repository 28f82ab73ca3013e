// Copyright 2026 Neuronika Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim is the public API for optimizers, penalties, and
// learning-rate schedulers.
package optim

import (
	"github.com/CohenAriel/neuronika/internal/nn"
	"github.com/CohenAriel/neuronika/internal/optim"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Optimizer updates parameters from their accumulated gradients.
type Optimizer = optim.Optimizer

// SGD is stochastic gradient descent with optional momentum and penalty.
type (
	SGD       = optim.SGD
	SGDConfig = optim.SGDConfig
)

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD(params []nn.Parameter, backend tensor.Backend, cfg SGDConfig) (*SGD, error) {
	return optim.NewSGD(params, backend, cfg)
}

// Adam is the Adam optimizer with bias-corrected moment estimates.
type (
	Adam       = optim.Adam
	AdamConfig = optim.AdamConfig
)

// NewAdam creates an Adam optimizer over the given parameters.
func NewAdam(params []nn.Parameter, backend tensor.Backend, cfg AdamConfig) (*Adam, error) {
	return optim.NewAdam(params, backend, cfg)
}

// Weight penalties.
type (
	Penalty = optim.Penalty
	L1      = optim.L1
	L2      = optim.L2
)

// Scheduler adjusts an optimizer's learning rate on an epoch schedule.
type Scheduler = optim.Scheduler

// Learning-rate schedulers.
type (
	LambdaLR         = optim.LambdaLR
	MultiplicativeLR = optim.MultiplicativeLR
	StepLR           = optim.StepLR
	MultiStepLR      = optim.MultiStepLR
	ExponentialLR    = optim.ExponentialLR
)

// NewLambdaLR sets lr = initial·fn(epoch).
func NewLambdaLR(opt Optimizer, fn func(epoch int) float64) *LambdaLR {
	return optim.NewLambdaLR(opt, fn)
}

// NewMultiplicativeLR multiplies the current lr by fn(epoch) every epoch.
func NewMultiplicativeLR(opt Optimizer, fn func(epoch int) float64) *MultiplicativeLR {
	return optim.NewMultiplicativeLR(opt, fn)
}

// NewStepLR decays the lr by gamma once every stepSize epochs.
func NewStepLR(opt Optimizer, stepSize int, gamma float64) *StepLR {
	return optim.NewStepLR(opt, stepSize, gamma)
}

// NewMultiStepLR decays the lr by gamma at each milestone epoch.
func NewMultiStepLR(opt Optimizer, milestones []int, gamma float64) *MultiStepLR {
	return optim.NewMultiStepLR(opt, milestones, gamma)
}

// NewExponentialLR sets lr = initial·gammaᵉᵖᵒᶜʰ.
func NewExponentialLR(opt Optimizer, gamma float64) *ExponentialLR {
	return optim.NewExponentialLR(opt, gamma)
}
