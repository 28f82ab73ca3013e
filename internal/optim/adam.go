package optim

import (
	"fmt"
	"math"

	"github.com/CohenAriel/neuronika/internal/nn"
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Adam implements the Adam optimizer with per-parameter first and second
// moment estimates and bias correction.
type Adam struct {
	params  []nn.Parameter
	backend tensor.Backend
	lr      float64
	beta1   float64
	beta2   float64
	eps     float64
	penalty Penalty

	step int
	m    []*tensor.RawTensor
	v    []*tensor.RawTensor
}

// AdamConfig configures NewAdam. Zero-valued Beta1, Beta2, and Eps take the
// standard defaults 0.9, 0.999, and 1e-8.
type AdamConfig struct {
	LR      float64
	Beta1   float64
	Beta2   float64
	Eps     float64
	Penalty Penalty
}

// NewAdam creates an Adam optimizer over the given parameters.
func NewAdam(params []nn.Parameter, backend tensor.Backend, cfg AdamConfig) (*Adam, error) {
	if cfg.LR <= 0 {
		return nil, fmt.Errorf("adam: learning rate must be positive, got %v", cfg.LR)
	}
	if cfg.Beta1 == 0 {
		cfg.Beta1 = 0.9
	}
	if cfg.Beta2 == 0 {
		cfg.Beta2 = 0.999
	}
	if cfg.Eps == 0 {
		cfg.Eps = 1e-8
	}
	if cfg.Beta1 < 0 || cfg.Beta1 >= 1 || cfg.Beta2 < 0 || cfg.Beta2 >= 1 {
		return nil, fmt.Errorf("adam: betas must lie in [0, 1), got %v and %v", cfg.Beta1, cfg.Beta2)
	}

	return &Adam{
		params:  params,
		backend: backend,
		lr:      cfg.LR,
		beta1:   cfg.Beta1,
		beta2:   cfg.Beta2,
		eps:     cfg.Eps,
		penalty: cfg.Penalty,
	}, nil
}

// Step applies one Adam update. Bias correction is folded into the step
// size: lrₜ = lr·√(1-β₂ᵗ)/(1-β₁ᵗ).
func (a *Adam) Step() error {
	if a.m == nil {
		if err := a.allocMoments(); err != nil {
			return err
		}
	}

	a.step++
	t := float64(a.step)
	lrT := a.lr * math.Sqrt(1-math.Pow(a.beta2, t)) / (1 - math.Pow(a.beta1, t))

	for i, p := range a.params {
		value := p.Var.Value()
		grad := p.Var.Grad()
		if grad == nil {
			return fmt.Errorf("adam: parameter %q has no gradient accumulator", p.Name)
		}

		if a.penalty != nil {
			grad = grad.Clone()
			a.penalty.Apply(a.backend, value, grad)
		}

		m, v := a.m[i], a.v[i]
		a.backend.Scale(a.beta1, m)
		a.backend.Axpy(1-a.beta1, grad, m)

		gradSq := a.backend.Mul(grad, grad)
		a.backend.Scale(a.beta2, v)
		a.backend.Axpy(1-a.beta2, gradSq, v)

		denom := a.backend.AddScalar(a.backend.Sqrt(v), a.eps)
		a.backend.Axpy(-lrT, a.backend.Div(m, denom), value)
	}
	return nil
}

func (a *Adam) allocMoments() error {
	a.m = make([]*tensor.RawTensor, len(a.params))
	a.v = make([]*tensor.RawTensor, len(a.params))
	for i, p := range a.params {
		m, err := tensor.Zeros(p.Var.Shape(), p.Var.DType())
		if err != nil {
			return err
		}
		v, err := tensor.Zeros(p.Var.Shape(), p.Var.DType())
		if err != nil {
			return err
		}
		a.m[i], a.v[i] = m, v
	}
	return nil
}

// ZeroGrad clears every parameter's gradient accumulator.
func (a *Adam) ZeroGrad() { zeroGrads(a.params) }

// LearningRate returns the current learning rate.
func (a *Adam) LearningRate() float64 { return a.lr }

// SetLearningRate overrides the learning rate.
func (a *Adam) SetLearningRate(lr float64) { a.lr = lr }
