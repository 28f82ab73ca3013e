// Package optim provides gradient-descent optimizers and learning-rate
// schedulers operating on tracked parameters.
//
// Optimizers mutate parameter tensors in place; the graph keeps referencing
// the same buffers, so after a step the caller resets the loss's memoization
// (ResetComputation) before the next forward pass.
package optim

import (
	"github.com/CohenAriel/neuronika/internal/nn"
)

// Optimizer updates parameters from their accumulated gradients.
type Optimizer interface {
	// Step applies one update from the gradients currently accumulated.
	Step() error

	// ZeroGrad clears every parameter's gradient accumulator.
	ZeroGrad()

	// LearningRate returns the current learning rate.
	LearningRate() float64

	// SetLearningRate overrides the learning rate; schedulers drive this.
	SetLearningRate(lr float64)
}

func zeroGrads(params []nn.Parameter) {
	for _, p := range params {
		p.Var.ZeroGrad()
	}
}
