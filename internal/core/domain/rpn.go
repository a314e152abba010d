package domain

import (
	"math"
	"time"
)

const (
	// MinIndex is the smallest valid 1-based RPN index.
	MinIndex = 1
	// MaxIndex is the number of RPN values representable as a signed 32-bit integer.
	MaxIndex = 2209
	// MaxValue is the largest candidate the generator accepts.
	MaxValue = math.MaxInt32
)

// Seeds are the single-digit primes. Every RPN value ends in one of them.
var Seeds = [...]int32{2, 3, 5, 7}

// IsSeedDigit reports whether d is one of the seed primes.
func IsSeedDigit(d int64) bool {
	for _, s := range Seeds {
		if int64(s) == d {
			return true
		}
	}
	return false
}

// Result is a single answered lookup.
type Result struct {
	Index   int
	Value   int32
	Elapsed time.Duration
}

// Stats summarises a populated cache.
type Stats struct {
	Count       int
	Min         int32
	Max         int32
	Fingerprint uint64
	// Digits maps a decimal length to how many cached values have it.
	Digits map[int]int
}
