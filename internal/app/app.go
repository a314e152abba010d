// Package app implements the application layer for rpn.
package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.trai.ch/rpn/internal/core/domain"
	"go.trai.ch/rpn/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader  ports.ConfigLoader
	logger  ports.Logger
	factory ports.SequenceFactory

	mu       sync.Mutex
	settings domain.Settings
	sequence ports.Sequence
}

// New creates a new App instance.
// The sequence is built lazily with domain.DefaultSettings unless Configure runs first.
func New(loader ports.ConfigLoader, log ports.Logger, factory ports.SequenceFactory) *App {
	return &App{
		loader:   loader,
		logger:   log,
		factory:  factory,
		settings: domain.DefaultSettings(),
	}
}

// Configure loads settings from the config file at path, applies overrides in
// order, and replaces the sequence. Values computed before are discarded.
func (a *App) Configure(path string, overrides ...func(*domain.Settings)) error {
	settings, err := a.loader.Load(path)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	for _, override := range overrides {
		override(&settings)
	}
	if err := settings.Check(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.settings = settings
	a.sequence = a.factory(settings)
	return nil
}

// Settings returns the settings the sequence generates with.
func (a *App) Settings() domain.Settings {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.settings
}

func (a *App) seq() ports.Sequence {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.sequence == nil {
		a.sequence = a.factory(a.settings)
	}
	return a.sequence
}

// Compute returns the RPN value at the 1-based index and how long the lookup took.
func (a *App) Compute(ctx context.Context, index int) (domain.Result, error) {
	start := time.Now()
	value, err := a.seq().Lookup(ctx, index)
	if err != nil {
		return domain.Result{}, err
	}
	return domain.Result{
		Index:   index,
		Value:   value,
		Elapsed: time.Since(start),
	}, nil
}

// ComputeInput parses input as a base-10 index and computes it.
func (a *App) ComputeInput(ctx context.Context, input string) (domain.Result, error) {
	trimmed := strings.TrimSpace(input)
	index, err := strconv.Atoi(trimmed)
	if err != nil {
		return domain.Result{}, zerr.With(
			zerr.Wrap(domain.ErrInvalidInput, fmt.Sprintf("could not parse '%s' as int", trimmed)),
			"input", trimmed,
		)
	}
	return a.Compute(ctx, index)
}

// Describe computes input and renders the outcome as a single line.
// Failures are rendered too, so the caller always has something to print.
func (a *App) Describe(ctx context.Context, input string) string {
	res, err := a.ComputeInput(ctx, input)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidInput) && !errors.Is(err, domain.ErrInvalidIndex) {
			a.logger.Error(err)
		}
		return Message(err)
	}
	return fmt.Sprintf("RPN index of %d has a value of %d, calculated in %dms",
		res.Index, res.Value, res.Elapsed.Milliseconds())
}

// Stats summarises the full sequence.
func (a *App) Stats(ctx context.Context) (domain.Stats, error) {
	seq := a.seq()

	values, err := seq.Values(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	fp, err := seq.Fingerprint(ctx)
	if err != nil {
		return domain.Stats{}, err
	}

	stats := domain.Stats{
		Count:       len(values),
		Fingerprint: fp,
		Digits:      make(map[int]int),
	}
	if len(values) > 0 {
		stats.Min = values[0]
		stats.Max = values[len(values)-1]
	}
	for _, v := range values {
		stats.Digits[len(strconv.Itoa(int(v)))]++
	}
	return stats, nil
}

// Message returns the outermost message of err without its cause chain when
// err is a zerr error, and err.Error() otherwise.
func Message(err error) string {
	if zErr, ok := err.(*zerr.Error); ok && zErr.Message() != "" {
		return zErr.Message()
	}
	return err.Error()
}
