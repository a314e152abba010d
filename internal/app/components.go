package app

import (
	"context"

	"go.trai.ch/rpn/internal/core/ports"
)

// Components groups the wired application with the adapters the CLI needs directly.
type Components struct {
	App    *App
	Logger ports.Logger
	Tracer ports.Tracer
}

// NewComponents creates a new Components instance.
func NewComponents(a *App, log ports.Logger, tracer ports.Tracer) *Components {
	return &Components{
		App:    a,
		Logger: log,
		Tracer: tracer,
	}
}

// Shutdown flushes the tracer if it holds resources. Tracers without a
// Shutdown method are left alone.
func (c *Components) Shutdown(ctx context.Context) error {
	if s, ok := c.Tracer.(interface{ Shutdown(context.Context) error }); ok {
		return s.Shutdown(ctx)
	}
	return nil
}
