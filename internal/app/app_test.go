package app_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stagehand/internal/app"
	"go.trai.ch/stagehand/internal/core/domain"
	"go.trai.ch/stagehand/internal/core/ports"
	"go.trai.ch/stagehand/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const configPath = "stagehand.yaml"

var (
	build = domain.NewTriple("x86_64-host")
	arm   = domain.NewTriple("arm-host")
)

type fixture struct {
	app      *app.App
	loader   *mocks.MockConfigLoader
	logger   *mocks.MockLogger
	tracer   *mocks.MockTracer
	span     *mocks.MockSpan
	renderer *mocks.MockRenderer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		tracer:   mocks.NewMockTracer(ctrl),
		span:     mocks.NewMockSpan(ctrl),
		renderer: mocks.NewMockRenderer(ctrl),
	}
	f.app = app.New(f.loader, f.logger, f.tracer, f.renderer)
	return f
}

// expectSpan allows the plan span to be opened, annotated and closed.
func (f *fixture) expectSpan() {
	f.tracer.EXPECT().Start(gomock.Any(), "plan").
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, f.span
		}).
		AnyTimes()
	f.span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	f.span.EXPECT().End().Times(1)
}

func nativeConfig() *domain.Config {
	cfg := &domain.Config{Build: build, Stage: domain.DefaultStage}
	cfg.Normalize()
	return cfg
}

func crossConfig() *domain.Config {
	cfg := &domain.Config{Build: build, Hosts: []domain.Triple{build, arm}, Targets: []domain.Triple{build}, Stage: 2}
	cfg.Normalize()
	return cfg
}

func TestApp_Plan_Default(t *testing.T) {
	f := newFixture(t)
	f.expectSpan()
	f.loader.EXPECT().Load(configPath).Return(nativeConfig(), nil)

	var emitted []string
	f.tracer.EXPECT().EmitPlan(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, steps []string) { emitted = steps })

	plan, err := f.app.Plan(context.Background(), app.PlanOptions{ConfigPath: configPath, Stage: -1})
	require.NoError(t, err)

	assert.Equal(t, 18, plan.Len())
	require.Len(t, emitted, 18)
	assert.Equal(t, "llvm [x86_64-host]", emitted[0])
	assert.Equal(t, "doc(stage=2) [x86_64-host]", emitted[17])
}

func TestApp_Plan_StageOverride(t *testing.T) {
	f := newFixture(t)
	// Registered before the catch-all so it is matched first.
	f.span.EXPECT().SetAttribute("stage", uint32(0)).Times(1)
	f.expectSpan()
	f.loader.EXPECT().Load(configPath).Return(nativeConfig(), nil)
	f.tracer.EXPECT().EmitPlan(gomock.Any(), gomock.Any())

	plan, err := f.app.Plan(context.Background(), app.PlanOptions{
		ConfigPath: configPath,
		Stage:      0,
		Actions:    []string{"rustc"},
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.Step{domain.At(build).Rustc(0)}, plan.Steps())
}

func TestApp_Plan_UnknownActionWarns(t *testing.T) {
	f := newFixture(t)
	f.expectSpan()
	f.loader.EXPECT().Load(configPath).Return(nativeConfig(), nil)
	f.logger.EXPECT().Warn(`ignoring unknown action "lvm"`).Times(1)
	f.tracer.EXPECT().EmitPlan(gomock.Any(), []string{})

	plan, err := f.app.Plan(context.Background(), app.PlanOptions{
		ConfigPath: configPath,
		Stage:      -1,
		Actions:    []string{"lvm"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, plan.Len())
}

func TestApp_Plan_UnknownActionStrict(t *testing.T) {
	f := newFixture(t)
	f.expectSpan()
	f.span.EXPECT().RecordError(gomock.Any()).Times(1)
	f.loader.EXPECT().Load(configPath).Return(nativeConfig(), nil)

	_, err := f.app.Plan(context.Background(), app.PlanOptions{
		ConfigPath: configPath,
		Stage:      -1,
		Actions:    []string{"llvm", "lvm", "docs"},
		Strict:     true,
	})
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, domain.ErrUnknownAction.Error(), zErr.Message())
	assert.Equal(t, "lvm, docs", zErr.Metadata()["action"])
}

func TestApp_Plan_HostSubset(t *testing.T) {
	f := newFixture(t)
	f.expectSpan()
	f.loader.EXPECT().Load(configPath).Return(crossConfig(), nil)
	f.tracer.EXPECT().EmitPlan(gomock.Any(), gomock.Any())

	plan, err := f.app.Plan(context.Background(), app.PlanOptions{
		ConfigPath: configPath,
		Stage:      -1,
		Hosts:      []string{"arm-host"},
	})
	require.NoError(t, err)

	c2 := domain.NewCompiler(2, build)
	assert.True(t, plan.Contains(domain.At(arm).LibrustcLink(2, c2, arm)))
	assert.True(t, plan.Contains(domain.At(build).LibstdLink(2, c2, arm)))
	assert.True(t, plan.Contains(domain.At(arm).Rustc(2)))
	require.NoError(t, plan.Validate())
}

func TestApp_Plan_Errors(t *testing.T) {
	tests := []struct {
		name    string
		opts    app.PlanOptions
		loadErr error
		wantMsg string
	}{
		{
			name:    "config failure",
			opts:    app.PlanOptions{ConfigPath: configPath, Stage: -1},
			loadErr: errors.New("boom"),
			wantMsg: "failed to load configuration: boom",
		},
		{
			name:    "host not configured",
			opts:    app.PlanOptions{ConfigPath: configPath, Stage: -1, Hosts: []string{"riscv-host"}},
			wantMsg: domain.ErrTripleNotConfigured.Error(),
		},
		{
			name:    "target not configured",
			opts:    app.PlanOptions{ConfigPath: configPath, Stage: -1, Targets: []string{"wasm32-target"}},
			wantMsg: domain.ErrTripleNotConfigured.Error(),
		},
		{
			name:    "negative stage",
			opts:    app.PlanOptions{ConfigPath: configPath, Stage: -5},
			wantMsg: domain.ErrInvalidStage.Error(),
		},
		{
			name:    "stage out of range",
			opts:    app.PlanOptions{ConfigPath: configPath, Stage: math.MaxInt},
			wantMsg: domain.ErrInvalidStage.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectSpan()
			f.span.EXPECT().RecordError(gomock.Any()).Times(1)
			if tt.loadErr != nil {
				f.loader.EXPECT().Load(configPath).Return(nil, tt.loadErr)
			} else {
				f.loader.EXPECT().Load(configPath).Return(nativeConfig(), nil)
			}

			plan, err := f.app.Plan(context.Background(), tt.opts)
			require.Error(t, err)
			assert.Nil(t, plan)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestApp_Render(t *testing.T) {
	f := newFixture(t)
	plan := domain.NewPlan()
	var buf bytes.Buffer

	f.renderer.EXPECT().Render(&buf, plan, domain.FormatJSON).Return(nil)
	require.NoError(t, f.app.Render(&buf, plan, domain.FormatJSON))
}

func TestApp_Explain(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(configPath).Return(nativeConfig(), nil)

	exp, err := f.app.Explain(context.Background(), app.PlanOptions{ConfigPath: configPath, Stage: -1}, "libstd")
	require.NoError(t, err)

	h := domain.At(build)
	assert.Equal(t, h.Libstd(2, h.CompilerAt(2)), exp.Step)
	assert.Equal(t, []domain.Step{h.CompilerRt(), h.Rustc(2)}, exp.Dependencies)
}

func TestApp_Explain_UnknownAction(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.Explain(context.Background(), app.PlanOptions{ConfigPath: configPath, Stage: -1}, "lvm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrUnknownAction.Error())
}

func TestApp_Actions(t *testing.T) {
	f := newFixture(t)
	actions := f.app.Actions()

	assert.Len(t, actions, len(domain.AllKinds()))
	assert.Equal(t, "rustc", actions[0])
	assert.Contains(t, actions, "doc-standalone")
	assert.Contains(t, actions, "check")
}
