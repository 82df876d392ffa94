package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stagehand/internal/adapters/render"
	"go.trai.ch/stagehand/internal/adapters/telemetry"
	"go.trai.ch/stagehand/internal/app"
	"go.trai.ch/stagehand/internal/core/domain"
	"go.trai.ch/stagehand/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newProvider(t *testing.T) (ComponentProvider, *mocks.MockConfigLoader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	application := app.New(loader, logger, telemetry.NewNoOpTracer(), render.New())
	provider := func(context.Context) (*app.Components, error) {
		return app.NewComponents(application, logger, telemetry.NewNoOpTracer()), nil
	}
	return provider, loader, logger
}

func TestRun_Success(t *testing.T) {
	provider, _, _ := newProvider(t)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "stagehand version")
}

func TestRun_Plan(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	provider, loader, _ := newProvider(t)

	cfg := &domain.Config{Build: domain.NewTriple("x86_64-host"), Stage: 2}
	cfg.Normalize()
	loader.EXPECT().Load("stagehand.yaml").Return(cfg, nil)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"plan", "llvm"}, stdout, stderr, provider)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "Plan: 1 step\n  1. llvm [x86_64-host]\n", stdout.String())
}

func TestRun_ShutsDownTracer(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	tracer := mocks.NewMockTracer(ctrl)
	application := app.New(mocks.NewMockConfigLoader(ctrl), logger, tracer, render.New())
	provider := func(context.Context) (*app.Components, error) {
		return app.NewComponents(application, logger, tracer), nil
	}

	flushErr := errors.New("flush failed")
	tracer.EXPECT().Shutdown(gomock.Any()).Return(flushErr)
	logger.EXPECT().Error(flushErr)

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_ExecutionError(t *testing.T) {
	provider, loader, logger := newProvider(t)

	loadErr := errors.New("config missing")
	loader.EXPECT().Load("stagehand.yaml").Return(nil, loadErr)
	logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, loadErr)
	})

	exitCode := run(context.Background(), []string{"plan"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}
