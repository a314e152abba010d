package ports

import (
	"context"

	"go.trai.ch/rpn/internal/core/domain"
)

// Sequence serves index lookups against the ordered list of RPN values.
//
//go:generate mockgen -source=sequence.go -destination=mocks/mock_sequence.go -package=mocks
type Sequence interface {
	// Lookup returns the value at the 1-based index, populating the list on first use.
	Lookup(ctx context.Context, index int) (int32, error)
	// Values returns the ordered list, populating it on first use.
	Values(ctx context.Context) ([]int32, error)
	// Fingerprint returns a stable hash of the ordered list.
	Fingerprint(ctx context.Context) (uint64, error)
}

// SequenceFactory builds a Sequence that generates with the given settings.
type SequenceFactory func(settings domain.Settings) Sequence
