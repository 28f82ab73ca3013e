// Command neuronika trains a small regression MLP on synthetic data. It
// exists to exercise the full stack end to end: graph construction, lazy
// forward evaluation, backward passes, optimizers, schedulers, and parameter
// snapshots.
package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/CohenAriel/neuronika"
	"github.com/CohenAriel/neuronika/autodiff"
	"github.com/CohenAriel/neuronika/backend/cpu"
	"github.com/CohenAriel/neuronika/internal/serialization"
	"github.com/CohenAriel/neuronika/nn"
	"github.com/CohenAriel/neuronika/optim"
	"github.com/CohenAriel/neuronika/tensor"
)

var (
	epochs    = flag.Int("epochs", 200, "Training epochs")
	samples   = flag.Int("samples", 256, "Synthetic samples")
	features  = flag.Int("features", 4, "Input features")
	hidden    = flag.Int("hidden", 16, "Hidden layer width")
	lr        = flag.Float64("lr", 0.05, "Learning rate")
	momentum  = flag.Float64("momentum", 0.9, "SGD momentum (ignored with -optimizer adam)")
	optimizer = flag.String("optimizer", "sgd", "Optimizer (sgd, adam)")
	weightDec = flag.Float64("l2", 0, "L2 penalty coefficient")
	stepSize  = flag.Int("step-size", 50, "Epochs between learning-rate decays")
	gamma     = flag.Float64("gamma", 0.5, "Learning-rate decay factor")
	seed      = flag.Int64("seed", 42, "RNG seed")
	snapshot  = flag.String("snapshot", "", "Path to save trained parameters")
	debug     = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("training failed")
	}
}

func run() error {
	rng := rand.New(rand.NewSource(*seed))
	backend := cpu.New()

	x, y, err := syntheticRegression(*samples, *features, rng)
	if err != nil {
		return err
	}

	model := nn.NewSequential(
		mustLinear(*features, *hidden, backend, rng),
		nn.Tanh{},
		mustLinear(*hidden, 1, backend, rng),
	)

	inputs := autodiff.New(x, backend)
	targets := autodiff.New(y, backend)

	pred, err := model.Forward(inputs)
	if err != nil {
		return err
	}
	loss, err := nn.MSELoss{Reduction: nn.ReduceMean}.Forward(pred, targets)
	if err != nil {
		return err
	}

	var opt optim.Optimizer
	var penalty optim.Penalty
	if *weightDec > 0 {
		penalty = optim.L2{Lambda: *weightDec}
	}
	switch *optimizer {
	case "adam":
		opt, err = optim.NewAdam(model.Parameters(), backend, optim.AdamConfig{LR: *lr, Penalty: penalty})
	default:
		opt, err = optim.NewSGD(model.Parameters(), backend, optim.SGDConfig{
			LR: *lr, Momentum: *momentum, Penalty: penalty,
		})
	}
	if err != nil {
		return err
	}
	sched := optim.NewStepLR(opt, *stepSize, *gamma)

	log.Info().
		Str("version", neuronika.Version).
		Int("samples", *samples).
		Int("features", *features).
		Int("hidden", *hidden).
		Str("optimizer", *optimizer).
		Float64("lr", *lr).
		Msg("training")

	for epoch := 1; epoch <= *epochs; epoch++ {
		// The graph is built once; each epoch re-evaluates it after the
		// previous step's parameter updates.
		loss.ResetComputation()
		opt.ZeroGrad()

		if err := loss.Backward(); err != nil {
			return err
		}
		if err := opt.Step(); err != nil {
			return err
		}
		sched.Step()

		if epoch%10 == 0 || epoch == 1 {
			v, err := loss.Item()
			if err != nil {
				return err
			}
			log.Info().Int("epoch", epoch).Float64("loss", v).Float64("lr", sched.LastLR()).Msg("step")
		} else if e := log.Debug(); e.Enabled() {
			v, err := loss.Item()
			if err != nil {
				return err
			}
			e.Int("epoch", epoch).Float64("loss", v).Msg("step")
		}
	}

	if *snapshot != "" {
		if err := serialization.SaveFile(*snapshot, model.Parameters()); err != nil {
			return err
		}
		log.Info().Str("path", *snapshot).Msg("saved snapshot")
	}
	return nil
}

func mustLinear(in, out int, backend tensor.Backend, rng *rand.Rand) *nn.Linear {
	l, err := nn.NewLinear(in, out, tensor.Float32, backend, rng)
	if err != nil {
		log.Fatal().Err(err).Msg("building layer")
	}
	return l
}

// syntheticRegression samples x ~ U(-1, 1) and a smooth target with additive
// noise, so the MLP has something nonlinear to fit.
func syntheticRegression(n, features int, rng *rand.Rand) (x, y *tensor.RawTensor, err error) {
	xs := make([]float32, n*features)
	for i := range xs {
		xs[i] = float32(rng.Float64()*2 - 1)
	}
	ys := make([]float32, n)
	for i := 0; i < n; i++ {
		var s float64
		for j := 0; j < features; j++ {
			s += float64(xs[i*features+j]) * float64(j+1) / float64(features)
		}
		ys[i] = float32(s*s + 0.1*rng.NormFloat64())
	}

	x, err = tensor.FromSlice(xs, tensor.Shape{n, features})
	if err != nil {
		return nil, nil, err
	}
	y, err = tensor.FromSlice(ys, tensor.Shape{n, 1})
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}
