// Package primality implements trial-division primality testing.
package primality

// IsPrime reports whether value is prime.
// Even numbers other than 2 are rejected up front and only odd divisors up to
// the integer square root are tried.
func IsPrime(value int64) bool {
	if value <= 1 {
		return false
	}
	if value == 2 {
		return true
	}
	if value%2 == 0 {
		return false
	}

	for d := int64(3); d <= value/d; d += 2 {
		if value%d == 0 {
			return false
		}
	}
	return true
}
