package serialization

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CohenAriel/neuronika/internal/backend/cpu"
	"github.com/CohenAriel/neuronika/internal/nn"
	"github.com/CohenAriel/neuronika/internal/tensor"
	"github.com/CohenAriel/neuronika/internal/variable"
)

func makeParam(t *testing.T, name string, values []float64, shape tensor.Shape) nn.Parameter {
	t.Helper()
	raw, err := tensor.FromSlice(values, shape)
	require.NoError(t, err)
	v, err := variable.NewParameter(raw, cpu.New())
	require.NoError(t, err)
	return nn.Parameter{Name: name, Var: v}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	src := []nn.Parameter{
		makeParam(t, "weight", []float64{1.5, -2, 3, 0.25}, tensor.Shape{2, 2}),
		makeParam(t, "bias", []float64{0.1, 0.2}, tensor.Shape{1, 2}),
	}

	data, err := Save(src)
	require.NoError(t, err)

	dst := []nn.Parameter{
		makeParam(t, "weight", []float64{0, 0, 0, 0}, tensor.Shape{2, 2}),
		makeParam(t, "bias", []float64{0, 0}, tensor.Shape{1, 2}),
	}
	require.NoError(t, Load(data, dst))

	assert.Equal(t, src[0].Var.Value().AsFloat64(), dst[0].Var.Value().AsFloat64())
	assert.Equal(t, src[1].Var.Value().AsFloat64(), dst[1].Var.Value().AsFloat64())
}

func TestLoadDetectsCorruption(t *testing.T) {
	params := []nn.Parameter{makeParam(t, "w", []float64{1, 2}, tensor.Shape{2})}

	data, err := Save(params)
	require.NoError(t, err)

	data[len(data)/2] ^= 0xff
	err = Load(data, params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checksum")
}

func TestLoadRejectsTruncated(t *testing.T) {
	assert.Error(t, Load([]byte{1, 2}, nil))
}

func TestLoadMissingParameter(t *testing.T) {
	data, err := Save([]nn.Parameter{makeParam(t, "w", []float64{1}, tensor.Shape{1})})
	require.NoError(t, err)

	err = Load(data, []nn.Parameter{makeParam(t, "other", []float64{0}, tensor.Shape{1})})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "other")
}

func TestLoadShapeMismatch(t *testing.T) {
	data, err := Save([]nn.Parameter{makeParam(t, "w", []float64{1, 2}, tensor.Shape{2})})
	require.NoError(t, err)

	err = Load(data, []nn.Parameter{makeParam(t, "w", []float64{1, 2}, tensor.Shape{2, 1})})
	assert.Error(t, err)
}

func TestFloat32RoundTrip(t *testing.T) {
	raw, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3})
	require.NoError(t, err)
	v, err := variable.NewParameter(raw, cpu.New())
	require.NoError(t, err)
	src := []nn.Parameter{{Name: "w", Var: v}}

	data, err := Save(src)
	require.NoError(t, err)

	zero, err := tensor.Zeros(tensor.Shape{3}, tensor.Float32)
	require.NoError(t, err)
	dv, err := variable.NewParameter(zero, cpu.New())
	require.NoError(t, err)
	require.NoError(t, Load(data, []nn.Parameter{{Name: "w", Var: dv}}))

	assert.Equal(t, []float32{1, 2, 3}, dv.Value().AsFloat32())
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.nk")
	src := []nn.Parameter{makeParam(t, "w", []float64{4, 5}, tensor.Shape{2})}

	require.NoError(t, SaveFile(path, src))

	dst := []nn.Parameter{makeParam(t, "w", []float64{0, 0}, tensor.Shape{2})}
	require.NoError(t, LoadFile(path, dst))
	assert.Equal(t, []float64{4, 5}, dst[0].Var.Value().AsFloat64())
}
