// Package nn builds neural-network layers on top of the variable API. Layers
// hold tracked parameters and compose by recording operations on variables;
// the graph machinery below takes care of evaluation and gradients.
package nn

import (
	"github.com/CohenAriel/neuronika/internal/variable"
)

// Parameter is a named tracked variable owned by a module. Names are stable
// within a module and namespaced by containers, so snapshots can address
// every tensor unambiguously.
type Parameter struct {
	Name string
	Var  *variable.Var
}

// Module is a composable network component.
type Module interface {
	// Forward records this module's computation on x and returns the
	// output handle. No numeric work happens until the result (or a loss
	// derived from it) is evaluated.
	Forward(x *variable.Var) (*variable.Var, error)

	// Parameters returns the module's tracked parameters, including those
	// of nested modules.
	Parameters() []Parameter
}

// ZeroGrad clears the gradient accumulators of every parameter in m.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.Var.ZeroGrad()
	}
}
