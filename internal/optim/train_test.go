package optim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CohenAriel/neuronika/internal/backend/cpu"
	"github.com/CohenAriel/neuronika/internal/nn"
	"github.com/CohenAriel/neuronika/internal/tensor"
	"github.com/CohenAriel/neuronika/internal/variable"
)

// End-to-end check: fitting y = 2x - 1 with a single linear layer drives the
// loss down by orders of magnitude.
func TestTrainingReducesLoss(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(3))

	const n = 32
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		x := rng.Float64()*2 - 1
		xs[i] = x
		ys[i] = 2*x - 1
	}

	xRaw, err := tensor.FromSlice(xs, tensor.Shape{n, 1})
	require.NoError(t, err)
	yRaw, err := tensor.FromSlice(ys, tensor.Shape{n, 1})
	require.NoError(t, err)

	model, err := nn.NewLinear(1, 1, tensor.Float64, backend, rng)
	require.NoError(t, err)

	pred, err := model.Forward(variable.New(xRaw, backend))
	require.NoError(t, err)
	loss, err := nn.MSELoss{Reduction: nn.ReduceMean}.Forward(pred, variable.New(yRaw, backend))
	require.NoError(t, err)

	opt, err := NewSGD(model.Parameters(), backend, SGDConfig{LR: 0.5})
	require.NoError(t, err)

	initial, err := loss.Item()
	require.NoError(t, err)

	for epoch := 0; epoch < 100; epoch++ {
		loss.ResetComputation()
		opt.ZeroGrad()
		require.NoError(t, loss.Backward())
		require.NoError(t, opt.Step())
	}

	loss.ResetComputation()
	final, err := loss.Item()
	require.NoError(t, err)

	require.Less(t, final, initial/100, "loss did not drop: %v -> %v", initial, final)

	w := model.Parameters()[0].Var.Value().AsFloat64()[0]
	b := model.Parameters()[1].Var.Value().AsFloat64()[0]
	require.InDelta(t, 2, w, 0.05)
	require.InDelta(t, -1, b, 0.05)
}
