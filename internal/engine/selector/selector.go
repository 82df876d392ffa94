// Package selector derives the root steps of a plan from the configuration and the request.
package selector

import (
	"go.trai.ch/stagehand/internal/core/domain"
)

// Roots returns the root steps to resolve for req, in resolution order.
//
// When req names actions, one step per recognised name is built for the requested
// target (explicit mode) and unrecognised names are returned in unknown. Otherwise the
// documentation umbrella plus one compiler-library root per selected host and one
// standard-library root per selected host/target pair are returned (default mode).
func Roots(cfg *domain.Config, req domain.Request) (roots []domain.Step, unknown []string) {
	if len(req.Actions) > 0 {
		return explicitRoots(cfg, req)
	}
	return defaultRoots(cfg, req), nil
}

// ExplicitBase returns the step explicit-mode actions are addressed at, together with
// the context their payloads are drawn from.
//
// The host is the first requested host, falling back to the build triple. The target is
// the first requested target, falling back to the host.
func ExplicitBase(cfg *domain.Config, req domain.Request) (domain.Step, domain.ActionContext) {
	host := cfg.Build
	if len(req.Hosts) > 0 {
		host = req.Hosts[0]
	}
	target := host
	if len(req.Targets) > 0 {
		target = req.Targets[0]
	}

	ctx := domain.ActionContext{
		Stage:    req.Stage,
		Compiler: domain.At(cfg.Build).CompilerAt(req.Stage),
		Host:     host,
	}
	return domain.At(target), ctx
}

func explicitRoots(cfg *domain.Config, req domain.Request) ([]domain.Step, []string) {
	base, ctx := ExplicitBase(cfg, req)

	var roots []domain.Step
	var unknown []string
	for _, name := range req.Actions {
		kind, ok := domain.ParseKind(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		step, err := base.StepFor(kind, ctx)
		if err != nil {
			unknown = append(unknown, name)
			continue
		}
		roots = append(roots, step)
	}
	return roots, unknown
}

func defaultRoots(cfg *domain.Config, req domain.Request) []domain.Step {
	stage := req.Stage
	native := domain.At(cfg.Build)

	roots := []domain.Step{native.Doc(stage)}
	for _, host := range cfg.Hosts {
		if !cfg.HostSelected(host, req.Hosts) {
			continue
		}
		hostStep := native.Retarget(host)
		if host == cfg.Build {
			roots = append(roots, hostStep.Librustc(stage, hostStep.CompilerAt(stage)))
		} else {
			roots = append(roots, hostStep.LibrustcLink(stage, native.CompilerAt(stage), host))
		}

		for _, target := range cfg.Targets {
			if !cfg.TargetSelected(target, req.Targets) {
				continue
			}
			if host == cfg.Build {
				roots = append(roots, hostStep.Retarget(target).Libstd(stage, hostStep.CompilerAt(stage)))
			} else {
				roots = append(roots, hostStep.Retarget(target).LibstdLink(stage, native.CompilerAt(stage), host))
			}
		}
	}
	return roots
}
