package optim

import (
	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Penalty is a weight regularizer. Apply adds the penalty's gradient with
// respect to value into grad in place; optimizers call it on a scratch copy
// so the accumulated gradient itself stays untouched.
type Penalty interface {
	Apply(backend tensor.Backend, value, grad *tensor.RawTensor)
}

// L2 penalizes λ‖w‖²; its gradient contribution is 2λw.
type L2 struct {
	Lambda float64
}

func (p L2) Apply(backend tensor.Backend, value, grad *tensor.RawTensor) {
	backend.Axpy(2*p.Lambda, value, grad)
}

// L1 penalizes λ‖w‖₁; its gradient contribution is λ·sign(w).
type L1 struct {
	Lambda float64
}

func (p L1) Apply(backend tensor.Backend, value, grad *tensor.RawTensor) {
	switch value.DType() {
	case tensor.Float32:
		v, g := value.AsFloat32(), grad.AsFloat32()
		l := float32(p.Lambda)
		for i := range v {
			g[i] += l * sign32(v[i])
		}
	case tensor.Float64:
		v, g := value.AsFloat64(), grad.AsFloat64()
		for i := range v {
			g[i] += p.Lambda * sign64(v[i])
		}
	}
}

func sign32(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func sign64(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
