package optim

import (
	"fmt"

	"github.com/CohenAriel/neuronika/internal/nn"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// SGD is stochastic gradient descent with optional momentum and weight
// penalty.
type SGD struct {
	params   []nn.Parameter
	backend  tensor.Backend
	lr       float64
	momentum float64
	penalty  Penalty

	velocity []*tensor.RawTensor
}

// SGDConfig configures NewSGD. Momentum 0 disables the velocity buffers;
// Penalty nil disables regularization.
type SGDConfig struct {
	LR       float64
	Momentum float64
	Penalty  Penalty
}

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD(params []nn.Parameter, backend tensor.Backend, cfg SGDConfig) (*SGD, error) {
	if cfg.LR <= 0 {
		return nil, fmt.Errorf("sgd: learning rate must be positive, got %v", cfg.LR)
	}
	if cfg.Momentum < 0 {
		return nil, fmt.Errorf("sgd: momentum must be non-negative, got %v", cfg.Momentum)
	}
	return &SGD{
		params:   params,
		backend:  backend,
		lr:       cfg.LR,
		momentum: cfg.Momentum,
		penalty:  cfg.Penalty,
	}, nil
}

// Step applies w ← w - lr·v, where v is the (optionally momentum-smoothed,
// optionally penalized) gradient.
func (s *SGD) Step() error {
	if s.momentum > 0 && s.velocity == nil {
		if err := s.allocVelocity(); err != nil {
			return err
		}
	}

	for i, p := range s.params {
		value := p.Var.Value()
		grad := p.Var.Grad()
		if grad == nil {
			return fmt.Errorf("sgd: parameter %q has no gradient accumulator", p.Name)
		}

		if s.penalty != nil {
			grad = grad.Clone()
			s.penalty.Apply(s.backend, value, grad)
		}

		if s.momentum > 0 {
			v := s.velocity[i]
			s.backend.Scale(s.momentum, v)
			s.backend.Axpy(1, grad, v)
			grad = v
		}

		s.backend.Axpy(-s.lr, grad, value)
	}
	return nil
}

func (s *SGD) allocVelocity() error {
	s.velocity = make([]*tensor.RawTensor, len(s.params))
	for i, p := range s.params {
		v, err := tensor.Zeros(p.Var.Shape(), p.Var.DType())
		if err != nil {
			return err
		}
		s.velocity[i] = v
	}
	return nil
}

// ZeroGrad clears every parameter's gradient accumulator.
func (s *SGD) ZeroGrad() { zeroGrads(s.params) }

// LearningRate returns the current learning rate.
func (s *SGD) LearningRate() float64 { return s.lr }

// SetLearningRate overrides the learning rate.
func (s *SGD) SetLearningRate(lr float64) { s.lr = lr }
