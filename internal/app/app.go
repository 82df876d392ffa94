// Package app implements the application layer for stagehand.
package app

import (
	"context"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"go.trai.ch/stagehand/internal/core/domain"
	"go.trai.ch/stagehand/internal/core/ports"
	"go.trai.ch/stagehand/internal/engine/resolver"
	"go.trai.ch/stagehand/internal/engine/rules"
	"go.trai.ch/stagehand/internal/engine/selector"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	tracer       ports.Tracer
	renderer     ports.Renderer
	cacheSize    int
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	tracer ports.Tracer,
	renderer ports.Renderer,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		tracer:       tracer,
		renderer:     renderer,
		cacheSize:    rules.DefaultCacheSize,
	}
}

// WithCacheSize sets the number of rule expansions memoised per plan.
func (a *App) WithCacheSize(size int) *App {
	a.cacheSize = size
	return a
}

// ConfiguredStage is the PlanOptions.Stage value that keeps the configured stage.
const ConfiguredStage = -1

// PlanOptions is the invocation-time selection for Plan and Explain.
type PlanOptions struct {
	// ConfigPath is the stagehand.yaml to load.
	ConfigPath string
	// Stage is the stage to reach. ConfiguredStage selects the stage from the configuration;
	// any other negative value is rejected.
	Stage int
	// Hosts restricts the configured hosts.
	Hosts []string
	// Targets restricts the configured targets.
	Targets []string
	// Actions are explicitly requested action names.
	Actions []string
	// Strict turns unknown action names into an error instead of a warning.
	Strict bool
}

// Plan loads the configuration and resolves the requested steps into an ordered plan.
func (a *App) Plan(ctx context.Context, opts PlanOptions) (*domain.Plan, error) {
	ctx, span := a.tracer.Start(ctx, "plan")
	defer span.End()

	plan, err := a.plan(ctx, span, opts)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return plan, nil
}

func (a *App) plan(ctx context.Context, span ports.Span, opts PlanOptions) (*domain.Plan, error) {
	cfg, req, err := a.prepare(opts)
	if err != nil {
		return nil, err
	}
	span.SetAttribute("stage", req.Stage)

	roots, unknown := selector.Roots(cfg, req)
	if len(unknown) > 0 {
		if opts.Strict {
			return nil, zerr.With(domain.ErrUnknownAction, "action", strings.Join(unknown, ", "))
		}
		for _, name := range unknown {
			a.logger.Warn(fmt.Sprintf("ignoring unknown action %q", name))
		}
	}
	span.SetAttribute("roots", len(roots))

	ruleSet, err := rules.NewCached(rules.New(cfg.Build), a.cacheSize)
	if err != nil {
		return nil, err
	}

	plan, err := resolver.New(ruleSet).Resolve(roots)
	if err != nil {
		return nil, err
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	span.SetAttribute("steps", plan.Len())

	names := make([]string, 0, plan.Len())
	for _, step := range plan.Walk() {
		names = append(names, step.String())
	}
	a.tracer.EmitPlan(ctx, names)

	return plan, nil
}

// Render writes plan to w in the given format.
func (a *App) Render(w io.Writer, plan *domain.Plan, format domain.Format) error {
	return a.renderer.Render(w, plan, format)
}

// Explanation is a single step together with its immediate dependencies.
type Explanation struct {
	Step         domain.Step
	Dependencies []domain.Step
}

// Explain returns the step the action resolves to in explicit mode and its immediate
// dependencies. Unknown actions are always an error here.
func (a *App) Explain(_ context.Context, opts PlanOptions, action string) (*Explanation, error) {
	kind, ok := domain.ParseKind(action)
	if !ok {
		return nil, zerr.With(domain.ErrUnknownAction, "action", action)
	}

	cfg, req, err := a.prepare(opts)
	if err != nil {
		return nil, err
	}

	base, actx := selector.ExplicitBase(cfg, req)
	step, err := base.StepFor(kind, actx)
	if err != nil {
		return nil, err
	}

	deps, err := rules.New(cfg.Build).Dependencies(step)
	if err != nil {
		return nil, err
	}
	return &Explanation{Step: step, Dependencies: deps}, nil
}

// Actions returns every canonical action name.
func (a *App) Actions() []string {
	kinds := domain.AllKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

// prepare loads the configuration and builds the request opts describes.
func (a *App) prepare(opts PlanOptions) (*domain.Config, domain.Request, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, domain.Request{}, zerr.Wrap(err, "failed to load configuration")
	}

	req := domain.Request{
		Stage:   cfg.Stage,
		Hosts:   domain.NewTriples(opts.Hosts),
		Targets: domain.NewTriples(opts.Targets),
		Actions: opts.Actions,
	}
	if opts.Stage != ConfiguredStage {
		if opts.Stage < 0 || uint64(opts.Stage) > math.MaxUint32 {
			return nil, domain.Request{}, zerr.With(domain.ErrInvalidStage, "stage", opts.Stage)
		}
		req.Stage = uint32(opts.Stage)
	}

	for _, h := range req.Hosts {
		if !slices.Contains(cfg.Hosts, h) {
			return nil, domain.Request{}, zerr.With(domain.ErrTripleNotConfigured, "host", h.String())
		}
	}
	for _, t := range req.Targets {
		if !slices.Contains(cfg.Targets, t) {
			return nil, domain.Request{}, zerr.With(domain.ErrTripleNotConfigured, "target", t.String())
		}
	}

	return cfg, req, nil
}
