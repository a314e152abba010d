package generator_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rpn/internal/core/domain"
	"go.trai.ch/rpn/internal/engine/generator"
)

func TestGenerator_Generate(t *testing.T) {
	values, err := generator.New(4).Generate(context.Background())
	require.NoError(t, err)
	require.Len(t, values, domain.MaxIndex)

	seen := make(map[int32]struct{}, len(values))
	for _, v := range values {
		_, dup := seen[v]
		require.False(t, dup, "value %d generated twice", v)
		seen[v] = struct{}{}
		require.True(t, generator.IsRPN(int64(v)), "value %d is not an RPN", v)
	}

	for _, seed := range domain.Seeds {
		assert.Contains(t, values, seed)
	}
}

func TestGenerator_Generate_ConfluentAcrossWorkerCounts(t *testing.T) {
	var want []int32
	for _, workers := range []int{1, 2, 7, 32} {
		values, err := generator.New(workers).Generate(context.Background())
		require.NoError(t, err)
		slices.Sort(values)

		if want == nil {
			want = values
			continue
		}
		assert.Equal(t, want, values, "workers=%d", workers)
	}
}

func TestGenerator_Generate_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	values, err := generator.New(2).Generate(ctx)
	require.Error(t, err)
	assert.Nil(t, values)
	assert.True(t, errors.Is(err, domain.ErrGenerationFailed))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNew_ClampsWorkers(t *testing.T) {
	values, err := generator.New(0).Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, values, domain.MaxIndex)
}

func BenchmarkGenerate(b *testing.B) {
	g := generator.New(8)
	for b.Loop() {
		if _, err := g.Generate(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}
