package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// Plan is the resolved, ordered sequence of steps together with the dependency edges
// that produced it. Every step appears once and after all of its dependencies.
type Plan struct {
	order []Step
	index map[Step]int
	deps  map[Step][]Step
}

// NewPlan creates an empty Plan.
func NewPlan() *Plan {
	return &Plan{
		index: make(map[Step]int),
		deps:  make(map[Step][]Step),
	}
}

// Append adds step at the end of the plan and records its immediate dependencies.
// It returns an error if the step is already planned.
func (p *Plan) Append(step Step, deps []Step) error {
	if _, exists := p.index[step]; exists {
		return zerr.With(ErrStepAlreadyPlanned, "step", step.String())
	}
	p.index[step] = len(p.order)
	p.order = append(p.order, step)
	p.deps[step] = slices.Clone(deps)
	return nil
}

// Len returns the number of planned steps.
func (p *Plan) Len() int {
	return len(p.order)
}

// Steps returns a copy of the planned steps in execution order.
func (p *Plan) Steps() []Step {
	return slices.Clone(p.order)
}

// Walk returns an iterator that yields steps in execution order.
func (p *Plan) Walk() iter.Seq2[int, Step] {
	return func(yield func(int, Step) bool) {
		for i, step := range p.order {
			if !yield(i, step) {
				return
			}
		}
	}
}

// Index returns the position of step in the plan, or -1 if it is not planned.
func (p *Plan) Index(step Step) int {
	i, ok := p.index[step]
	if !ok {
		return -1
	}
	return i
}

// Contains reports whether step is planned.
func (p *Plan) Contains(step Step) bool {
	_, ok := p.index[step]
	return ok
}

// DependenciesOf returns the immediate dependencies recorded for step.
func (p *Plan) DependenciesOf(step Step) []Step {
	return slices.Clone(p.deps[step])
}

// Validate checks that every recorded dependency is planned and precedes its dependant.
func (p *Plan) Validate() error {
	for i, step := range p.order {
		for _, dep := range p.deps[step] {
			j, ok := p.index[dep]
			if !ok {
				return zerr.With(zerr.With(ErrMissingDependency, "step", step.String()), "dependency", dep.String())
			}
			if j >= i {
				return zerr.With(zerr.With(ErrOrderViolation, "step", step.String()), "dependency", dep.String())
			}
		}
	}
	return nil
}
