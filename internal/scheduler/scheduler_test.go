package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunGathersInOrder(t *testing.T) {
	n := 50
	results, err := Run(context.Background(), n, Config{Limit: 4}, func(_ context.Context, i int) (int, error) {
		return i * i, nil
	})
	require.NoError(t, err)
	require.Len(t, results, n)
	for i, v := range results {
		require.Equal(t, i*i, v)
	}
}

func TestRunPropagatesFirstError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Run(context.Background(), 10, Config{Limit: 2}, func(ctx context.Context, i int) (int, error) {
		if i == 3 {
			return 0, boom
		}
		<-ctx.Done()
		return 0, ctx.Err()
	})
	require.ErrorIs(t, err, boom)
}

func TestRunUnboundedLimit(t *testing.T) {
	results, err := Run(context.Background(), 5, Config{}, func(_ context.Context, i int) (int, error) {
		return i, nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, results)
}
