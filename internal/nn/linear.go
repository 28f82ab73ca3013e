package nn

import (
	"fmt"
	"math/rand"

	"github.com/CohenAriel/neuronika/internal/tensor"
	"github.com/CohenAriel/neuronika/internal/variable"
)

// Linear is a fully connected layer: y = x·W + b with W of shape [in, out]
// and b of shape [1, out], broadcast over the batch dimension.
type Linear struct {
	weight *variable.Var
	bias   *variable.Var
}

// NewLinear creates a fully connected layer with Xavier-uniform weights and
// zero bias.
func NewLinear(in, out int, dtype tensor.DataType, backend tensor.Backend, rng *rand.Rand) (*Linear, error) {
	if in <= 0 || out <= 0 {
		return nil, fmt.Errorf("linear: dimensions must be positive, got in=%d out=%d", in, out)
	}

	w, err := xavierUniform(in, out, dtype, rng)
	if err != nil {
		return nil, err
	}
	weight, err := variable.NewParameter(w, backend)
	if err != nil {
		return nil, err
	}

	b, err := tensor.Zeros(tensor.Shape{1, out}, dtype)
	if err != nil {
		return nil, err
	}
	bias, err := variable.NewParameter(b, backend)
	if err != nil {
		return nil, err
	}

	return &Linear{weight: weight, bias: bias}, nil
}

// Forward records x·W + b. x must be [batch, in].
func (l *Linear) Forward(x *variable.Var) (*variable.Var, error) {
	y, err := x.MatMul(l.weight)
	if err != nil {
		return nil, err
	}
	return y.Add(l.bias)
}

// Parameters returns the layer's weight and bias.
func (l *Linear) Parameters() []Parameter {
	return []Parameter{
		{Name: "weight", Var: l.weight},
		{Name: "bias", Var: l.bias},
	}
}
