package generator

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/rpn/internal/core/domain"
	"go.trai.ch/rpn/internal/engine/primality"
	"go.trai.ch/zerr"
)

// IsRPN checks value against the definition directly: no zero digit, a seed
// prime as the last digit, and every suffix of its decimal form prime.
// It shares nothing with the search and is slow on purpose.
func IsRPN(value int64) bool {
	if value <= 0 {
		return false
	}

	s := strconv.FormatInt(value, 10)
	if strings.ContainsRune(s, '0') {
		return false
	}
	if !domain.IsSeedDigit(value % 10) {
		return false
	}

	for i := range len(s) {
		suffix, err := strconv.ParseInt(s[i:], 10, 64)
		if err != nil || !primality.IsPrime(suffix) {
			return false
		}
	}
	return true
}

// Verify checks a sorted list of generated values: each must be an RPN and
// none may repeat.
func Verify(sorted []int32) error {
	for i, v := range sorted {
		if !IsRPN(int64(v)) {
			err := zerr.Wrap(domain.ErrCacheCorruption, fmt.Sprintf("%d is not a robustly prime number", v))
			return zerr.With(err, "value", v)
		}
		if i > 0 && sorted[i-1] == v {
			err := zerr.Wrap(domain.ErrCacheCorruption, fmt.Sprintf("%d was generated more than once", v))
			return zerr.With(zerr.With(err, "value", v), "duplicate", true)
		}
	}
	if !slices.IsSorted(sorted) {
		return zerr.Wrap(domain.ErrCacheCorruption, "values are not in ascending order")
	}
	return nil
}
