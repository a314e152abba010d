// Package generator discovers every robustly prime number that fits in a signed
// 32-bit integer and serves index lookups against the sorted result.
package generator

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/rpn/internal/core/domain"
	"go.trai.ch/rpn/internal/engine/primality"
	"golang.org/x/sync/errgroup"
)

// Generator runs the digit-extension search.
type Generator struct {
	workers int
}

// New creates a Generator that explores at most workers branches concurrently.
func New(workers int) *Generator {
	if workers < 1 {
		workers = 1
	}
	return &Generator{workers: workers}
}

// Generate returns every RPN value reachable from the seed primes, in no particular order.
// It either completes or fails; it never returns a partial result.
func (g *Generator) Generate(ctx context.Context) ([]int32, error) {
	acc := &accumulator{values: make([]int32, 0, domain.MaxIndex)}
	acc.merge(domain.Seeds[:])

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(g.workers)

	for _, seed := range domain.Seeds {
		grp.Go(func() error {
			return g.run(ctx, grp, acc, seed)
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, errors.Join(domain.ErrGenerationFailed, err)
	}
	return acc.values, nil
}

// run is one work item. Values found while it runs are collected locally and
// merged into acc once it returns.
func (g *Generator) run(ctx context.Context, grp *errgroup.Group, acc *accumulator, base int32) error {
	var local []int32
	err := g.extend(ctx, grp, acc, base, &local)
	acc.merge(local)
	return err
}

// extend prepends each digit 1..9 to base. Prime candidates are recorded and
// extended further, on a new worker when one is free and inline otherwise.
func (g *Generator) extend(
	ctx context.Context,
	grp *errgroup.Group,
	acc *accumulator,
	base int32,
	local *[]int32,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	scale := pow10(digits(base))
	for d := int64(1); d <= 9; d++ {
		candidate := d*scale + int64(base)
		// Candidates grow with d, so nothing past the first overflow fits either.
		if candidate > domain.MaxValue {
			break
		}
		if !primality.IsPrime(candidate) {
			continue
		}

		value := int32(candidate)
		*local = append(*local, value)

		if grp.TryGo(func() error { return g.run(ctx, grp, acc, value) }) {
			continue
		}
		if err := g.extend(ctx, grp, acc, value, local); err != nil {
			return err
		}
	}
	return nil
}

type accumulator struct {
	mu     sync.Mutex
	values []int32
}

func (a *accumulator) merge(values []int32) {
	if len(values) == 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.values = append(a.values, values...)
}

func digits(v int32) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

func pow10(n int) int64 {
	p := int64(1)
	for range n {
		p *= 10
	}
	return p
}
