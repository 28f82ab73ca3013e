package cpu

import (
	"math"

	"github.com/CohenAriel/neuronika/internal/tensor"
)

// Add performs element-wise addition with broadcasting.
func (c *Backend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binary("add", a, b,
		func(x, y float32) float32 { return x + y },
		func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (c *Backend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binary("sub", a, b,
		func(x, y float32) float32 { return x - y },
		func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (c *Backend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binary("mul", a, b,
		func(x, y float32) float32 { return x * y },
		func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with broadcasting.
func (c *Backend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binary("div", a, b,
		func(x, y float32) float32 { return x / y },
		func(x, y float64) float64 { return x / y })
}

// Neg negates every element.
func (c *Backend) Neg(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary("neg", x,
		func(v float32) float32 { return -v },
		func(v float64) float64 { return -v })
}

// Exp computes the element-wise exponential.
func (c *Backend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary("exp", x,
		func(v float32) float32 { return float32(math.Exp(float64(v))) },
		math.Exp)
}

// Log computes the element-wise natural logarithm.
func (c *Backend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary("log", x,
		func(v float32) float32 { return float32(math.Log(float64(v))) },
		math.Log)
}

// Sqrt computes the element-wise square root.
func (c *Backend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary("sqrt", x,
		func(v float32) float32 { return float32(math.Sqrt(float64(v))) },
		math.Sqrt)
}

// Pow raises every element to a scalar exponent.
func (c *Backend) Pow(x *tensor.RawTensor, exponent float64) *tensor.RawTensor {
	return c.unary("pow", x,
		func(v float32) float32 { return float32(math.Pow(float64(v), exponent)) },
		func(v float64) float64 { return math.Pow(v, exponent) })
}

// MulScalar multiplies every element by a scalar.
func (c *Backend) MulScalar(x *tensor.RawTensor, s float64) *tensor.RawTensor {
	s32 := float32(s)
	return c.unary("mulscalar", x,
		func(v float32) float32 { return v * s32 },
		func(v float64) float64 { return v * s })
}

// AddScalar adds a scalar to every element.
func (c *Backend) AddScalar(x *tensor.RawTensor, s float64) *tensor.RawTensor {
	s32 := float32(s)
	return c.unary("addscalar", x,
		func(v float32) float32 { return v + s32 },
		func(v float64) float64 { return v + s })
}

// GreaterScalar returns a 0/1 mask marking elements strictly greater than s.
func (c *Backend) GreaterScalar(x *tensor.RawTensor, s float64) *tensor.RawTensor {
	s32 := float32(s)
	return c.unary("greaterscalar", x,
		func(v float32) float32 {
			if v > s32 {
				return 1
			}
			return 0
		},
		func(v float64) float64 {
			if v > s {
				return 1
			}
			return 0
		})
}

// ReLU computes max(0, x) element-wise.
func (c *Backend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary("relu", x,
		func(v float32) float32 { return max(v, 0) },
		func(v float64) float64 { return max(v, 0) })
}

// Sigmoid computes 1/(1+exp(-x)) element-wise.
func (c *Backend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary("sigmoid", x,
		func(v float32) float32 { return float32(1 / (1 + math.Exp(float64(-v)))) },
		func(v float64) float64 { return 1 / (1 + math.Exp(-v)) })
}

// Tanh computes the element-wise hyperbolic tangent.
func (c *Backend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary("tanh", x,
		func(v float32) float32 { return float32(math.Tanh(float64(v))) },
		math.Tanh)
}
