package generator

import (
	"context"
	"encoding/binary"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/rpn/internal/core/domain"
	"go.trai.ch/rpn/internal/core/ports"
	"go.trai.ch/zerr"
)

// Cache holds the sorted list of RPN values for the lifetime of its owner.
// The first lookup runs the generation pass; later lookups read the stored list.
// A failed pass stores nothing, so the next lookup tries again.
type Cache struct {
	settings domain.Settings
	generate func(context.Context) ([]int32, error)
	logger   ports.Logger
	tracer   ports.Tracer

	mu          sync.RWMutex
	values      []int32
	fingerprint uint64
}

// NewCache creates an empty Cache that generates with the given settings.
func NewCache(settings domain.Settings, logger ports.Logger, tracer ports.Tracer) *Cache {
	return &Cache{
		settings: settings,
		generate: New(settings.Workers).Generate,
		logger:   logger,
		tracer:   tracer,
	}
}

// Lookup returns the RPN value at the 1-based index.
// Out-of-range indices fail with domain.ErrInvalidIndex before any generation.
func (c *Cache) Lookup(ctx context.Context, index int) (int32, error) {
	if index < domain.MinIndex || index > domain.MaxIndex {
		return 0, invalidIndex(index)
	}

	values, err := c.populate(ctx)
	if err != nil {
		return 0, err
	}

	if index > len(values) {
		err := zerr.Wrap(domain.ErrNotFound, fmt.Sprintf(
			"no RPN value at index %d, only %d generated", index, len(values),
		))
		return 0, zerr.With(zerr.With(err, "index", index), "count", len(values))
	}
	return values[index-1], nil
}

// Values returns a copy of the sorted list.
func (c *Cache) Values(ctx context.Context) ([]int32, error) {
	values, err := c.populate(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(values), nil
}

// Fingerprint returns an xxhash digest of the sorted list.
// Two passes that found the same values in any order share a fingerprint.
func (c *Cache) Fingerprint(ctx context.Context) (uint64, error) {
	if _, err := c.populate(ctx); err != nil {
		return 0, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fingerprint, nil
}

// Populated reports whether the generation pass has completed.
func (c *Cache) Populated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values != nil
}

// Reset drops the stored list. The next lookup regenerates it.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = nil
	c.fingerprint = 0
}

func (c *Cache) populate(ctx context.Context) ([]int32, error) {
	c.mu.RLock()
	values := c.values
	c.mu.RUnlock()
	if values != nil {
		return values, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have finished while we waited for the lock.
	if c.values != nil {
		return c.values, nil
	}

	ctx, span := c.tracer.Start(ctx, "rpn.populate")
	defer span.End()
	span.SetAttribute("rpn.workers", c.settings.Workers)
	span.SetAttribute("rpn.validated", c.settings.Validate)

	if c.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.settings.Timeout)
		defer cancel()
	}

	start := time.Now()
	values, err := c.generate(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	slices.Sort(values)

	if c.settings.Validate {
		if err := Verify(values); err != nil {
			span.RecordError(err)
			return nil, err
		}
	}

	c.values = values
	c.fingerprint = fingerprint(values)

	span.SetAttribute("rpn.count", len(values))
	c.logger.Debug("rpn cache populated",
		"count", len(values),
		"workers", c.settings.Workers,
		"validated", c.settings.Validate,
		"elapsed", time.Since(start),
	)

	return values, nil
}

func invalidIndex(index int) error {
	err := zerr.Wrap(domain.ErrInvalidIndex, fmt.Sprintf(
		"invalid RPN index of %d, value must be an integer n where %d <= n <= %d",
		index, domain.MinIndex, domain.MaxIndex,
	))
	err = zerr.With(err, "index", index)
	err = zerr.With(err, "min", domain.MinIndex)
	return zerr.With(err, "max", domain.MaxIndex)
}

func fingerprint(values []int32) uint64 {
	d := xxhash.New()
	var buf [4]byte
	for _, v := range values {
		binary.BigEndian.PutUint32(buf[:], uint32(v))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
