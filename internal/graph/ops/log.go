package ops

import (
	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Log is the element-wise natural logarithm.
type Log struct{ forwardNode }

func NewLog(x graph.Node, backend tensor.Backend) *Log {
	return &Log{newUnaryForward(x, x.Data().Shape(), backend)}
}

func (n *Log) Forward() error {
	if n.computed {
		return nil
	}
	vals, err := n.values()
	if err != nil {
		return err
	}
	if err := n.data.Replace(n.backend.Log(vals[0])); err != nil {
		return err
	}
	n.computed = true
	return nil
}

// LogBackward: d/dx ln x = 1/x.
type LogBackward struct {
	backwardNode
	x Operand
}

func NewLogBackward(out *graph.Data, x Operand, backend tensor.Backend) (*LogBackward, error) {
	base, err := newBackward(out, backend, x)
	if err != nil {
		return nil, err
	}
	return &LogBackward{base, x}, nil
}

func (n *LogBackward) Backward() error {
	if acc := n.x.grad(); acc != nil {
		return acc.Push(n.backend.Div(n.grad.Gradient(), n.x.value()))
	}
	return nil
}
