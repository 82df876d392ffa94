// Package resolver computes the dependency closure of root steps as an ordered plan.
package resolver

import (
	"strings"

	"go.trai.ch/stagehand/internal/core/domain"
	"go.trai.ch/stagehand/internal/core/ports"
	"go.trai.ch/zerr"
)

type mark uint8

const (
	unvisited mark = iota
	visiting
	done
)

// Resolver expands root steps through a set of dependency rules.
type Resolver struct {
	rules ports.DependencyRules
}

// New creates a Resolver backed by rules.
func New(rules ports.DependencyRules) *Resolver {
	return &Resolver{rules: rules}
}

// frame is one entry of the explicit depth-first work stack.
type frame struct {
	step domain.Step
	deps []domain.Step
	next int
}

// Resolve returns every step reachable from roots, each exactly once, ordered so that a
// step appears after all of its dependencies.
//
// Roots are processed in the given order and dependencies in the order the rules return
// them, so the output is deterministic. A step is marked before its dependencies are
// expanded and appended once they are all planned (postorder). Reaching a step that is
// still being expanded means the rules contain a cycle; that is reported as
// ErrCycleDetected and no plan is returned.
func (r *Resolver) Resolve(roots []domain.Step) (*domain.Plan, error) {
	plan := domain.NewPlan()
	marks := make(map[domain.Step]mark)
	var stack []frame

	push := func(step domain.Step) error {
		if !step.Valid() {
			return zerr.With(domain.ErrUnhandledSource, "step", step.String())
		}
		deps, err := r.rules.Dependencies(step)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrDependencyRuleFailed.Error()), "step", step.String())
		}
		marks[step] = visiting
		stack = append(stack, frame{step: step, deps: deps})
		return nil
	}

	for _, root := range roots {
		if marks[root] != unvisited {
			continue
		}
		if err := push(root); err != nil {
			return nil, err
		}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(top.deps) {
				dep := top.deps[top.next]
				top.next++

				switch marks[dep] {
				case unvisited:
					if err := push(dep); err != nil {
						return nil, err
					}
				case visiting:
					return nil, cycleError(stack, dep)
				default:
					// Already planned through another branch.
				}
				continue
			}

			marks[top.step] = done
			if err := plan.Append(top.step, top.deps); err != nil {
				return nil, err
			}
			stack = stack[:len(stack)-1]
		}
	}

	return plan, nil
}

// cycleError builds an error whose metadata spells out the cycle closing at dep.
func cycleError(stack []frame, dep domain.Step) error {
	start := 0
	for i, f := range stack {
		if f.step == dep {
			start = i
			break
		}
	}

	var b strings.Builder
	for _, f := range stack[start:] {
		b.WriteString(f.step.String())
		b.WriteString(" -> ")
	}
	b.WriteString(dep.String())
	return zerr.With(domain.ErrCycleDetected, "cycle", b.String())
}
