package ops

import (
	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Sum reduces all elements to a scalar.
type Sum struct{ forwardNode }

func NewSum(x graph.Node, backend tensor.Backend) *Sum {
	return &Sum{newUnaryForward(x, tensor.Shape{}, backend)}
}

func (n *Sum) Forward() error {
	if n.computed {
		return nil
	}
	vals, err := n.values()
	if err != nil {
		return err
	}
	if err := n.data.Replace(n.backend.Sum(vals[0])); err != nil {
		return err
	}
	n.computed = true
	return nil
}

// SumBackward broadcasts the scalar output gradient back to the input shape.
type SumBackward struct {
	backwardNode
	x Operand
}

func NewSumBackward(out *graph.Data, x Operand, backend tensor.Backend) (*SumBackward, error) {
	base, err := newBackward(out, backend, x)
	if err != nil {
		return nil, err
	}
	return &SumBackward{base, x}, nil
}

func (n *SumBackward) Backward() error {
	acc := n.x.grad()
	if acc == nil {
		return nil
	}
	contrib, err := tensor.Full(n.x.Data.Shape(), n.x.Data.DType(), n.grad.Gradient().Item())
	if err != nil {
		return err
	}
	return acc.Push(contrib)
}
