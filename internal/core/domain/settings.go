package domain

import (
	"runtime"
	"time"

	"go.trai.ch/zerr"
)

// Settings controls how the generation pass runs.
type Settings struct {
	// Workers bounds the number of goroutines exploring branches concurrently.
	Workers int
	// Validate re-checks every generated value with the independent validator.
	Validate bool
	// Timeout bounds a generation pass. Zero means no deadline.
	Timeout time.Duration
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Workers: runtime.NumCPU(),
	}
}

// Check reports whether the settings are usable.
func (s Settings) Check() error {
	if s.Workers < 1 {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "workers must be at least 1"), "workers", s.Workers)
	}
	if s.Timeout < 0 {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "timeout must not be negative"), "timeout", s.Timeout.String())
	}
	return nil
}
