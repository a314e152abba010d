package generator

import (
	"context"

	"go.trai.ch/rpn/internal/core/domain"
	"go.trai.ch/rpn/internal/core/ports"
)

// NewCacheFrom creates a Cache that fills itself from generate instead of running the search.
// This is exported for testing purposes only.
func NewCacheFrom(
	settings domain.Settings,
	logger ports.Logger,
	tracer ports.Tracer,
	generate func(context.Context) ([]int32, error),
) *Cache {
	c := NewCache(settings, logger, tracer)
	c.generate = generate
	return c
}
