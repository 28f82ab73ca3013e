package nn

import "github.com/CohenAriel/neuronika/internal/variable"

// ReLU is the rectifier activation as a parameterless module.
type ReLU struct{}

func (ReLU) Forward(x *variable.Var) (*variable.Var, error) { return x.ReLU() }
func (ReLU) Parameters() []Parameter                        { return nil }

// Sigmoid is the logistic activation as a parameterless module.
type Sigmoid struct{}

func (Sigmoid) Forward(x *variable.Var) (*variable.Var, error) { return x.Sigmoid() }
func (Sigmoid) Parameters() []Parameter                        { return nil }

// Tanh is the hyperbolic-tangent activation as a parameterless module.
type Tanh struct{}

func (Tanh) Forward(x *variable.Var) (*variable.Var, error) { return x.Tanh() }
func (Tanh) Parameters() []Parameter                        { return nil }

// Softmax normalizes along Axis into a probability distribution.
type Softmax struct {
	Axis int
}

func (s Softmax) Forward(x *variable.Var) (*variable.Var, error) { return x.Softmax(s.Axis) }
func (Softmax) Parameters() []Parameter                          { return nil }
