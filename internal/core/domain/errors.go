package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidIndex is returned when a requested index lies outside [MinIndex, MaxIndex].
	ErrInvalidIndex = zerr.New("invalid RPN index")

	// ErrInvalidInput is returned when textual input cannot be parsed as an integer index.
	ErrInvalidInput = zerr.New("could not parse input as int")

	// ErrCacheCorruption is returned when self-validation finds a cached value that is not an RPN.
	ErrCacheCorruption = zerr.New("cached value is not a robustly prime number")

	// ErrNotFound is returned when the generation pass discovered fewer values than the requested index.
	ErrNotFound = zerr.New("no RPN value at index")

	// ErrGenerationFailed is returned when the generation pass did not run to completion.
	ErrGenerationFailed = zerr.New("RPN generation failed")

	// ErrConfigReadFailed is returned when the config file exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when settings fail validation.
	ErrInvalidConfig = zerr.New("invalid configuration")
)
