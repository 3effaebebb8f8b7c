// Package interp holds the named interpolation strategies an animation
// applies to its properties on every frame.
//
// A Strategy receives the progress followed by the property's from values
// and then the target arguments, flattened into one list, and returns the
// interpolated value.
package interp

import (
	"sort"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownStrategy is returned for names missing from a Registry.
	ErrUnknownStrategy = errors.New("unknown strategy")
	// ErrOddValues is returned when values can't be split in two halves.
	ErrOddValues = errors.New("odd number of values")
	// ErrChunking is returned when points don't divide into segments.
	ErrChunking = errors.New("points don't divide into segments")
)

// A Strategy computes an interpolated value at progress t.
type Strategy func(t float64, values ...float64) ([]float64, error)

// Registry maps strategy names to strategies.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	r := new(Registry)
	r.strategies = make(map[string]Strategy)
	return r
}

// DefaultRegistry creates a Registry holding the built in strategies.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("linear", Linear)
	r.Register("path", Path)
	r.Register("polyline", Polyline)
	r.Register("polyline-uniform", UniformPolyline)
	r.Register("steps", Steps)
	r.Register("hcl", HCL)
	return r
}

// Register adds or replaces the strategy called name.
func (r *Registry) Register(name string, s Strategy) {
	r.strategies[name] = s
}

// Lookup returns the strategy called name.
func (r *Registry) Lookup(name string) (Strategy, error) {
	s, ok := r.strategies[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownStrategy, "%q", name)
	}
	return s, nil
}

// Names lists the registered strategies in alphabetical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
