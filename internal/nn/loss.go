package nn

import (
	"fmt"

	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
	"github.com/CohenAriel/neuronika/internal/variable"
)

// Reduction selects how a per-element loss collapses to a scalar.
type Reduction uint8

const (
	// ReduceMean averages the per-element losses.
	ReduceMean Reduction = iota
	// ReduceSum adds them.
	ReduceSum
)

func reduce(loss *variable.Var, r Reduction) (*variable.Var, error) {
	switch r {
	case ReduceSum:
		return loss.Sum()
	default:
		return loss.Mean()
	}
}

// MSELoss is mean squared error, composed from graph primitives so gradient
// flows through it like any other expression.
type MSELoss struct {
	Reduction Reduction
}

// Forward records (pred - target)² reduced to a scalar.
func (l MSELoss) Forward(pred, target *variable.Var) (*variable.Var, error) {
	if !pred.Shape().Equal(target.Shape()) {
		return nil, fmt.Errorf("%w: mse prediction %v vs target %v",
			graph.ErrShapeMismatch, pred.Shape(), target.Shape())
	}
	diff, err := pred.Sub(target)
	if err != nil {
		return nil, err
	}
	sq, err := diff.Mul(diff)
	if err != nil {
		return nil, err
	}
	return reduce(sq, l.Reduction)
}

// BCELoss is binary cross-entropy over probabilities in (0, 1):
// -(t·ln p + (1-t)·ln(1-p)).
type BCELoss struct {
	Reduction Reduction
}

// Forward records the binary cross-entropy of pred against target.
func (l BCELoss) Forward(pred, target *variable.Var) (*variable.Var, error) {
	if !pred.Shape().Equal(target.Shape()) {
		return nil, fmt.Errorf("%w: bce prediction %v vs target %v",
			graph.ErrShapeMismatch, pred.Shape(), target.Shape())
	}

	ones, err := tensor.Ones(pred.Shape(), pred.DType())
	if err != nil {
		return nil, err
	}
	one := variable.New(ones, pred.Backend())

	logP, err := pred.Log()
	if err != nil {
		return nil, err
	}
	posTerm, err := target.Mul(logP)
	if err != nil {
		return nil, err
	}

	oneMinusT, err := one.Sub(target)
	if err != nil {
		return nil, err
	}
	oneMinusP, err := one.Sub(pred)
	if err != nil {
		return nil, err
	}
	logOneMinusP, err := oneMinusP.Log()
	if err != nil {
		return nil, err
	}
	negTerm, err := oneMinusT.Mul(logOneMinusP)
	if err != nil {
		return nil, err
	}

	sum, err := posTerm.Add(negTerm)
	if err != nil {
		return nil, err
	}
	loss, err := sum.Neg()
	if err != nil {
		return nil, err
	}
	return reduce(loss, l.Reduction)
}
