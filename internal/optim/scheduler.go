package optim

import "math"

// Scheduler adjusts an optimizer's learning rate on an epoch schedule. Step
// advances one epoch and installs the new rate.
type Scheduler interface {
	Step()
	LastLR() float64
}

// LambdaLR sets lr = initial·fn(epoch).
type LambdaLR struct {
	opt     Optimizer
	initial float64
	fn      func(epoch int) float64
	epoch   int
}

// NewLambdaLR captures the optimizer's current rate as the initial rate.
func NewLambdaLR(opt Optimizer, fn func(epoch int) float64) *LambdaLR {
	return &LambdaLR{opt: opt, initial: opt.LearningRate(), fn: fn}
}

func (s *LambdaLR) Step() {
	s.epoch++
	s.opt.SetLearningRate(s.initial * s.fn(s.epoch))
}

func (s *LambdaLR) LastLR() float64 { return s.opt.LearningRate() }

// MultiplicativeLR multiplies the current lr by fn(epoch) every epoch.
type MultiplicativeLR struct {
	opt   Optimizer
	fn    func(epoch int) float64
	epoch int
}

func NewMultiplicativeLR(opt Optimizer, fn func(epoch int) float64) *MultiplicativeLR {
	return &MultiplicativeLR{opt: opt, fn: fn}
}

func (s *MultiplicativeLR) Step() {
	s.epoch++
	s.opt.SetLearningRate(s.opt.LearningRate() * s.fn(s.epoch))
}

func (s *MultiplicativeLR) LastLR() float64 { return s.opt.LearningRate() }

// StepLR decays the lr by gamma once every stepSize epochs.
type StepLR struct {
	opt      Optimizer
	stepSize int
	gamma    float64
	epoch    int
}

func NewStepLR(opt Optimizer, stepSize int, gamma float64) *StepLR {
	return &StepLR{opt: opt, stepSize: stepSize, gamma: gamma}
}

func (s *StepLR) Step() {
	s.epoch++
	if s.epoch%s.stepSize == 0 {
		s.opt.SetLearningRate(s.opt.LearningRate() * s.gamma)
	}
}

func (s *StepLR) LastLR() float64 { return s.opt.LearningRate() }

// MultiStepLR decays the lr by gamma at each listed milestone epoch.
type MultiStepLR struct {
	opt        Optimizer
	milestones map[int]bool
	gamma      float64
	epoch      int
}

func NewMultiStepLR(opt Optimizer, milestones []int, gamma float64) *MultiStepLR {
	set := make(map[int]bool, len(milestones))
	for _, m := range milestones {
		set[m] = true
	}
	return &MultiStepLR{opt: opt, milestones: set, gamma: gamma}
}

func (s *MultiStepLR) Step() {
	s.epoch++
	if s.milestones[s.epoch] {
		s.opt.SetLearningRate(s.opt.LearningRate() * s.gamma)
	}
}

func (s *MultiStepLR) LastLR() float64 { return s.opt.LearningRate() }

// ExponentialLR sets lr = initial·gammaᵉᵖᵒᶜʰ.
type ExponentialLR struct {
	opt     Optimizer
	initial float64
	gamma   float64
	epoch   int
}

func NewExponentialLR(opt Optimizer, gamma float64) *ExponentialLR {
	return &ExponentialLR{opt: opt, initial: opt.LearningRate(), gamma: gamma}
}

func (s *ExponentialLR) Step() {
	s.epoch++
	s.opt.SetLearningRate(s.initial * math.Pow(s.gamma, float64(s.epoch)))
}

func (s *ExponentialLR) LastLR() float64 { return s.opt.LearningRate() }
