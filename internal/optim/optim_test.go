package optim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CohenAriel/neuronika/internal/backend/cpu"
	"github.com/CohenAriel/neuronika/internal/nn"
	"github.com/CohenAriel/neuronika/internal/tensor"
	"github.com/CohenAriel/neuronika/internal/variable"
)

func makeParam(t *testing.T, name string, values []float64) nn.Parameter {
	t.Helper()
	raw, err := tensor.FromSlice(values, tensor.Shape{len(values)})
	require.NoError(t, err)
	v, err := variable.NewParameter(raw, cpu.New())
	require.NoError(t, err)
	return nn.Parameter{Name: name, Var: v}
}

func pushGrad(t *testing.T, p nn.Parameter, values []float64) {
	t.Helper()
	g, err := tensor.FromSlice(values, tensor.Shape{len(values)})
	require.NoError(t, err)
	require.NoError(t, p.Var.Accumulator().Push(g))
}

func TestSGDStep(t *testing.T) {
	p := makeParam(t, "w", []float64{1, 2})
	pushGrad(t, p, []float64{1, -1})

	opt, err := NewSGD([]nn.Parameter{p}, cpu.New(), SGDConfig{LR: 0.1})
	require.NoError(t, err)
	require.NoError(t, opt.Step())

	got := p.Var.Value().AsFloat64()
	assert.InDelta(t, 0.9, got[0], 1e-12)
	assert.InDelta(t, 2.1, got[1], 1e-12)
}

func TestSGDMomentum(t *testing.T) {
	p := makeParam(t, "w", []float64{0})
	opt, err := NewSGD([]nn.Parameter{p}, cpu.New(), SGDConfig{LR: 1, Momentum: 0.5})
	require.NoError(t, err)

	// Constant unit gradient: v₁ = 1, v₂ = 1.5, position -1 then -2.5.
	pushGrad(t, p, []float64{1})
	require.NoError(t, opt.Step())
	assert.InDelta(t, -1, p.Var.Value().AsFloat64()[0], 1e-12)

	p.Var.ZeroGrad()
	pushGrad(t, p, []float64{1})
	require.NoError(t, opt.Step())
	assert.InDelta(t, -2.5, p.Var.Value().AsFloat64()[0], 1e-12)
}

func TestSGDL2Penalty(t *testing.T) {
	p := makeParam(t, "w", []float64{2})
	pushGrad(t, p, []float64{0})

	opt, err := NewSGD([]nn.Parameter{p}, cpu.New(), SGDConfig{LR: 0.1, Penalty: L2{Lambda: 0.5}})
	require.NoError(t, err)
	require.NoError(t, opt.Step())

	// Effective gradient 2λw = 2; step moves w by -0.2.
	assert.InDelta(t, 1.8, p.Var.Value().AsFloat64()[0], 1e-12)
	// The accumulated gradient itself is untouched.
	assert.Zero(t, p.Var.Grad().AsFloat64()[0])
}

func TestL1PenaltySign(t *testing.T) {
	p := makeParam(t, "w", []float64{-3, 0, 3})
	pushGrad(t, p, []float64{0, 0, 0})

	opt, err := NewSGD([]nn.Parameter{p}, cpu.New(), SGDConfig{LR: 1, Penalty: L1{Lambda: 0.5}})
	require.NoError(t, err)
	require.NoError(t, opt.Step())

	got := p.Var.Value().AsFloat64()
	assert.InDelta(t, -2.5, got[0], 1e-12)
	assert.InDelta(t, 0, got[1], 1e-12)
	assert.InDelta(t, 2.5, got[2], 1e-12)
}

func TestSGDRejectsBadConfig(t *testing.T) {
	_, err := NewSGD(nil, cpu.New(), SGDConfig{LR: 0})
	assert.Error(t, err)
	_, err = NewSGD(nil, cpu.New(), SGDConfig{LR: 0.1, Momentum: -1})
	assert.Error(t, err)
}

func TestAdamFirstStepMovesByLearningRate(t *testing.T) {
	p := makeParam(t, "w", []float64{1})
	pushGrad(t, p, []float64{10})

	opt, err := NewAdam([]nn.Parameter{p}, cpu.New(), AdamConfig{LR: 0.01})
	require.NoError(t, err)
	require.NoError(t, opt.Step())

	// On the first step m̂/√v̂ is the gradient's sign, so the update is ≈ lr.
	assert.InDelta(t, 0.99, p.Var.Value().AsFloat64()[0], 1e-6)
}

func TestAdamRejectsBadConfig(t *testing.T) {
	_, err := NewAdam(nil, cpu.New(), AdamConfig{LR: -1})
	assert.Error(t, err)
	_, err = NewAdam(nil, cpu.New(), AdamConfig{LR: 0.1, Beta1: 1})
	assert.Error(t, err)
}

func TestOptimizerZeroGrad(t *testing.T) {
	p := makeParam(t, "w", []float64{1})
	pushGrad(t, p, []float64{5})

	opt, err := NewSGD([]nn.Parameter{p}, cpu.New(), SGDConfig{LR: 0.1})
	require.NoError(t, err)

	opt.ZeroGrad()
	assert.Zero(t, p.Var.Grad().AsFloat64()[0])
}

func newTestOpt(t *testing.T, lr float64) *SGD {
	t.Helper()
	opt, err := NewSGD(nil, cpu.New(), SGDConfig{LR: lr})
	require.NoError(t, err)
	return opt
}

func TestStepLR(t *testing.T) {
	opt := newTestOpt(t, 1)
	sched := NewStepLR(opt, 2, 0.1)

	want := []float64{1, 0.1, 0.1, 0.01}
	for _, w := range want {
		sched.Step()
		assert.InDelta(t, w, sched.LastLR(), 1e-12)
	}
}

func TestMultiStepLR(t *testing.T) {
	opt := newTestOpt(t, 1)
	sched := NewMultiStepLR(opt, []int{2, 4}, 0.5)

	want := []float64{1, 0.5, 0.5, 0.25, 0.25}
	for _, w := range want {
		sched.Step()
		assert.InDelta(t, w, sched.LastLR(), 1e-12)
	}
}

func TestExponentialLR(t *testing.T) {
	opt := newTestOpt(t, 2)
	sched := NewExponentialLR(opt, 0.5)

	want := []float64{1, 0.5, 0.25}
	for _, w := range want {
		sched.Step()
		assert.InDelta(t, w, sched.LastLR(), 1e-12)
	}
}

func TestLambdaLR(t *testing.T) {
	opt := newTestOpt(t, 0.1)
	sched := NewLambdaLR(opt, func(epoch int) float64 { return 1 / float64(epoch+1) })

	sched.Step()
	assert.InDelta(t, 0.05, sched.LastLR(), 1e-12)
	sched.Step()
	assert.InDelta(t, 0.1/3, sched.LastLR(), 1e-12)
}

func TestMultiplicativeLR(t *testing.T) {
	opt := newTestOpt(t, 1)
	sched := NewMultiplicativeLR(opt, func(int) float64 { return 0.9 })

	sched.Step()
	sched.Step()
	assert.InDelta(t, 0.81, sched.LastLR(), 1e-12)
}
