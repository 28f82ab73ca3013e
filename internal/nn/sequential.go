package nn

import (
	"fmt"

	"github.com/CohenAriel/neuronika/internal/variable"
)

// Sequential chains modules, feeding each one's output to the next.
type Sequential struct {
	modules []Module
}

// NewSequential builds a chain from the given modules in order.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{modules: modules}
}

// Forward threads x through every module in order.
func (s *Sequential) Forward(x *variable.Var) (*variable.Var, error) {
	var err error
	for i, m := range s.modules {
		x, err = m.Forward(x)
		if err != nil {
			return nil, fmt.Errorf("sequential module %d: %w", i, err)
		}
	}
	return x, nil
}

// Parameters returns every nested parameter, names prefixed with the owning
// module's position in the chain.
func (s *Sequential) Parameters() []Parameter {
	var params []Parameter
	for i, m := range s.modules {
		for _, p := range m.Parameters() {
			params = append(params, Parameter{
				Name: fmt.Sprintf("%d.%s", i, p.Name),
				Var:  p.Var,
			})
		}
	}
	return params
}
