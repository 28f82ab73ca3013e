package ops

import (
	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Mean reduces all elements to their scalar average.
type Mean struct{ forwardNode }

func NewMean(x graph.Node, backend tensor.Backend) *Mean {
	return &Mean{newUnaryForward(x, tensor.Shape{}, backend)}
}

func (n *Mean) Forward() error {
	if n.computed {
		return nil
	}
	vals, err := n.values()
	if err != nil {
		return err
	}
	if err := n.data.Replace(n.backend.Mean(vals[0])); err != nil {
		return err
	}
	n.computed = true
	return nil
}

// MeanBackward spreads the scalar output gradient uniformly, scaled by 1/N.
type MeanBackward struct {
	backwardNode
	x Operand
}

func NewMeanBackward(out *graph.Data, x Operand, backend tensor.Backend) (*MeanBackward, error) {
	base, err := newBackward(out, backend, x)
	if err != nil {
		return nil, err
	}
	return &MeanBackward{base, x}, nil
}

func (n *MeanBackward) Backward() error {
	acc := n.x.grad()
	if acc == nil {
		return nil
	}
	shape := n.x.Data.Shape()
	v := n.grad.Gradient().Item() / float64(shape.NumElements())
	contrib, err := tensor.Full(shape, n.x.Data.DType(), v)
	if err != nil {
		return err
	}
	return acc.Push(contrib)
}
