package variable

import (
	"github.com/CohenAriel/neuronika/internal/graph"
	"github.com/CohenAriel/neuronika/internal/graph/ops"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// operand pairs this variable's value cell with its backward mirror for VJP
// delivery. The mirror is nil on untracked variables.
func (v *Var) operand() ops.Operand {
	return ops.Operand{Node: v.grad, Data: v.node.Data()}
}

// derived wraps a freshly built forward node, attaching the backward mirror
// only when at least one operand is tracked.
func (v *Var) derived(node graph.Node, mkBackward func() (graph.BackwardNode, error), tracked bool) (*Var, error) {
	out := &Var{node: node, backend: v.backend}
	if tracked {
		b, err := mkBackward()
		if err != nil {
			return nil, err
		}
		out.grad = b
	}
	return out, nil
}

// Add returns v + other with broadcasting.
func (v *Var) Add(other *Var) (*Var, error) {
	n, err := ops.NewAdd(v.node, other.node, v.backend)
	if err != nil {
		return nil, err
	}
	return v.derived(n, func() (graph.BackwardNode, error) {
		return ops.NewAddBackward(n.Data(), v.operand(), other.operand(), v.backend)
	}, v.Tracked() || other.Tracked())
}

// Sub returns v - other with broadcasting.
func (v *Var) Sub(other *Var) (*Var, error) {
	n, err := ops.NewSub(v.node, other.node, v.backend)
	if err != nil {
		return nil, err
	}
	return v.derived(n, func() (graph.BackwardNode, error) {
		return ops.NewSubBackward(n.Data(), v.operand(), other.operand(), v.backend)
	}, v.Tracked() || other.Tracked())
}

// Mul returns the element-wise product v * other with broadcasting.
func (v *Var) Mul(other *Var) (*Var, error) {
	n, err := ops.NewMul(v.node, other.node, v.backend)
	if err != nil {
		return nil, err
	}
	return v.derived(n, func() (graph.BackwardNode, error) {
		return ops.NewMulBackward(n.Data(), v.operand(), other.operand(), v.backend)
	}, v.Tracked() || other.Tracked())
}

// Div returns the element-wise quotient v / other with broadcasting.
func (v *Var) Div(other *Var) (*Var, error) {
	n, err := ops.NewDiv(v.node, other.node, v.backend)
	if err != nil {
		return nil, err
	}
	return v.derived(n, func() (graph.BackwardNode, error) {
		return ops.NewDivBackward(n.Data(), v.operand(), other.operand(), v.backend)
	}, v.Tracked() || other.Tracked())
}

// MatMul returns the 2-D matrix product v · other.
func (v *Var) MatMul(other *Var) (*Var, error) {
	n, err := ops.NewMatMul(v.node, other.node, v.backend)
	if err != nil {
		return nil, err
	}
	return v.derived(n, func() (graph.BackwardNode, error) {
		return ops.NewMatMulBackward(n.Data(), v.operand(), other.operand(), v.backend)
	}, v.Tracked() || other.Tracked())
}

// Neg returns -v.
func (v *Var) Neg() (*Var, error) {
	n := ops.NewNeg(v.node, v.backend)
	return v.derived(n, func() (graph.BackwardNode, error) {
		return ops.NewNegBackward(n.Data(), v.operand(), v.backend)
	}, v.Tracked())
}

// Pow raises every element to a fixed scalar exponent.
func (v *Var) Pow(exponent float64) (*Var, error) {
	n := ops.NewPow(v.node, exponent, v.backend)
	return v.derived(n, func() (graph.BackwardNode, error) {
		return ops.NewPowBackward(n.Data(), v.operand(), exponent, v.backend)
	}, v.Tracked())
}

// Exp returns the element-wise exponential.
func (v *Var) Exp() (*Var, error) {
	n := ops.NewExp(v.node, v.backend)
	return v.derived(n, func() (graph.BackwardNode, error) {
		return ops.NewExpBackward(n.Data(), v.operand(), v.backend)
	}, v.Tracked())
}

// Log returns the element-wise natural logarithm.
func (v *Var) Log() (*Var, error) {
	n := ops.NewLog(v.node, v.backend)
	return v.derived(n, func() (graph.BackwardNode, error) {
		return ops.NewLogBackward(n.Data(), v.operand(), v.backend)
	}, v.Tracked())
}

// Sqrt returns the element-wise square root.
func (v *Var) Sqrt() (*Var, error) {
	n := ops.NewSqrt(v.node, v.backend)
	return v.derived(n, func() (graph.BackwardNode, error) {
		return ops.NewSqrtBackward(n.Data(), v.operand(), v.backend)
	}, v.Tracked())
}

// ReLU returns the element-wise rectifier max(0, v).
func (v *Var) ReLU() (*Var, error) {
	n := ops.NewReLU(v.node, v.backend)
	return v.derived(n, func() (graph.BackwardNode, error) {
		return ops.NewReLUBackward(n.Data(), v.operand(), v.backend)
	}, v.Tracked())
}

// Sigmoid returns the element-wise logistic function.
func (v *Var) Sigmoid() (*Var, error) {
	n := ops.NewSigmoid(v.node, v.backend)
	return v.derived(n, func() (graph.BackwardNode, error) {
		return ops.NewSigmoidBackward(n.Data(), v.operand(), v.backend)
	}, v.Tracked())
}

// Tanh returns the element-wise hyperbolic tangent.
func (v *Var) Tanh() (*Var, error) {
	n := ops.NewTanh(v.node, v.backend)
	return v.derived(n, func() (graph.BackwardNode, error) {
		return ops.NewTanhBackward(n.Data(), v.operand(), v.backend)
	}, v.Tracked())
}

// Softmax normalizes along one axis into a probability distribution.
func (v *Var) Softmax(axis int) (*Var, error) {
	n, err := ops.NewSoftmax(v.node, axis, v.backend)
	if err != nil {
		return nil, err
	}
	return v.derived(n, func() (graph.BackwardNode, error) {
		return ops.NewSoftmaxBackward(n.Data(), v.operand(), axis, v.backend)
	}, v.Tracked())
}

// Sum reduces all elements to a scalar.
func (v *Var) Sum() (*Var, error) {
	n := ops.NewSum(v.node, v.backend)
	return v.derived(n, func() (graph.BackwardNode, error) {
		return ops.NewSumBackward(n.Data(), v.operand(), v.backend)
	}, v.Tracked())
}

// Mean reduces all elements to their scalar average.
func (v *Var) Mean() (*Var, error) {
	n := ops.NewMean(v.node, v.backend)
	return v.derived(n, func() (graph.BackwardNode, error) {
		return ops.NewMeanBackward(n.Data(), v.operand(), v.backend)
	}, v.Tracked())
}

// SumAxis reduces along one axis, optionally keeping it as size 1.
func (v *Var) SumAxis(axis int, keepDim bool) (*Var, error) {
	n, err := ops.NewSumAxis(v.node, axis, keepDim, v.backend)
	if err != nil {
		return nil, err
	}
	return v.derived(n, func() (graph.BackwardNode, error) {
		return ops.NewSumAxisBackward(n.Data(), v.operand(), axis, keepDim, v.backend)
	}, v.Tracked())
}

// Transpose permutes dimensions; with no axes, reverses them all.
func (v *Var) Transpose(axes ...int) (*Var, error) {
	n, err := ops.NewTranspose(v.node, v.backend, axes...)
	if err != nil {
		return nil, err
	}
	return v.derived(n, func() (graph.BackwardNode, error) {
		return ops.NewTransposeBackward(n.Data(), v.operand(), n.Axes(), v.backend)
	}, v.Tracked())
}

// Reshape reinterprets the variable under a new shape.
func (v *Var) Reshape(shape tensor.Shape) (*Var, error) {
	n, err := ops.NewReshape(v.node, shape, v.backend)
	if err != nil {
		return nil, err
	}
	return v.derived(n, func() (graph.BackwardNode, error) {
		return ops.NewReshapeBackward(n.Data(), v.operand(), v.backend)
	}, v.Tracked())
}

// Unsqueeze inserts a size-1 dimension at axis.
func (v *Var) Unsqueeze(axis int) (*Var, error) {
	n, err := ops.NewUnsqueeze(v.node, axis, v.backend)
	if err != nil {
		return nil, err
	}
	return v.derived(n, func() (graph.BackwardNode, error) {
		return ops.NewUnsqueezeBackward(n.Data(), v.operand(), axis, v.backend)
	}, v.Tracked())
}

// Squeeze removes a size-1 dimension at axis.
func (v *Var) Squeeze(axis int) (*Var, error) {
	n, err := ops.NewSqueeze(v.node, axis, v.backend)
	if err != nil {
		return nil, err
	}
	return v.derived(n, func() (graph.BackwardNode, error) {
		return ops.NewSqueezeBackward(n.Data(), v.operand(), axis, v.backend)
	}, v.Tracked())
}

// Cat concatenates variables along the given axis. The result is tracked if
// any operand is tracked.
func Cat(vars []*Var, axis int) (*Var, error) {
	if len(vars) == 0 {
		return nil, graph.ErrShapeMismatch
	}

	nodes := make([]graph.Node, len(vars))
	operands := make([]ops.Operand, len(vars))
	tracked := false
	for i, v := range vars {
		nodes[i] = v.node
		operands[i] = v.operand()
		tracked = tracked || v.Tracked()
	}

	first := vars[0]
	n, err := ops.NewCat(nodes, axis, first.backend)
	if err != nil {
		return nil, err
	}
	return first.derived(n, func() (graph.BackwardNode, error) {
		return ops.NewCatBackward(n.Data(), operands, axis, first.backend)
	}, tracked)
}
