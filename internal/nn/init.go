package nn

import (
	"math"
	"math/rand"

	"github.com/CohenAriel/neuronika/internal/tensor"
)

// xavierUniform fills a freshly allocated [fanIn, fanOut] tensor with values
// drawn from U(-a, a), a = sqrt(6 / (fanIn + fanOut)).
func xavierUniform(fanIn, fanOut int, dtype tensor.DataType, rng *rand.Rand) (*tensor.RawTensor, error) {
	t, err := tensor.NewRaw(tensor.Shape{fanIn, fanOut}, dtype)
	if err != nil {
		return nil, err
	}

	bound := math.Sqrt(6 / float64(fanIn+fanOut))
	switch dtype {
	case tensor.Float32:
		data := t.AsFloat32()
		for i := range data {
			data[i] = float32((rng.Float64()*2 - 1) * bound)
		}
	case tensor.Float64:
		data := t.AsFloat64()
		for i := range data {
			data[i] = (rng.Float64()*2 - 1) * bound
		}
	}
	return t, nil
}
