package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	DefaultRetryNum      = 1
	DefaultRetryDuration = 5 * time.Second
)

var (
	_ Source     = (*retryingSource)(nil)
	_ GoldSource = (*retryingGoldSource)(nil)
)

// WithRetry wraps the source, failed fetches are repeated retryNum times with a constant backoff
func WithRetry(next Source, retryNum uint64, retryDuration time.Duration) Source {
	return &retryingSource{next: next, retryNum: retryNum, retryDuration: retryDuration}
}

// WithGoldRetry is WithRetry for gold price sources
func WithGoldRetry(next GoldSource, retryNum uint64, retryDuration time.Duration) GoldSource {
	return &retryingGoldSource{next: next, retryNum: retryNum, retryDuration: retryDuration}
}

type retryingSource struct {
	next          Source
	retryNum      uint64
	retryDuration time.Duration
}

func (s *retryingSource) FetchRates(ctx context.Context) ([]ExchangeRate, error) {
	return fetchWithRetry(ctx, s.retryNum, s.retryDuration, s.next.FetchRates)
}

type retryingGoldSource struct {
	next          GoldSource
	retryNum      uint64
	retryDuration time.Duration
}

func (s *retryingGoldSource) FetchGoldPrices(ctx context.Context) ([]GoldPrice, error) {
	return fetchWithRetry(ctx, s.retryNum, s.retryDuration, s.next.FetchGoldPrices)
}

func fetchWithRetry[T any](
	ctx context.Context, retryNum uint64, retryDuration time.Duration, fetch func(context.Context) ([]T, error),
) ([]T, error) {
	b, err := retry.NewConstant(retryDuration)
	if err != nil {
		return nil, fmt.Errorf("retry.NewConstant: %w", err)
	}

	b = retry.WithMaxRetries(retryNum, b)

	var list []T
	if err := retry.Do(ctx, b, func(ctx context.Context) error {
		fetched, err := fetch(ctx)
		if err != nil {
			return retry.RetryableError(err)
		}

		list = fetched

		return nil
	}); err != nil {
		return nil, err
	}

	return list, nil
}
