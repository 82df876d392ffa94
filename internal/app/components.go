package app

import "go.trai.ch/stagehand/internal/core/ports"

// Components groups what the entry point needs from the dependency graph.
type Components struct {
	App    *App
	Logger ports.Logger
	Tracer ports.Tracer
}

// NewComponents creates a new Components instance.
func NewComponents(app *App, logger ports.Logger, tracer ports.Tracer) *Components {
	return &Components{App: app, Logger: logger, Tracer: tracer}
}
