// Package board keeps the rate and gold price lists shown next to the calculator.
// Each list is replaced only when its own fetch succeeds
package board

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/kyat/internal/logging"
	"github.com/robotomize/kyat/provider"
)

const DefaultRequestTimeout = 10 * time.Second

type Option func(*Board)

// WithRequestTimeout set a timeout for each list fetch
func WithRequestTimeout(t time.Duration) Option {
	return func(b *Board) {
		b.requestTimeout = t
	}
}

// New returns a board. A nil gold source disables the gold list
func New(rates provider.Source, gold provider.GoldSource, opts ...Option) *Board {
	b := &Board{
		rateSource:     rates,
		goldSource:     gold,
		requestTimeout: DefaultRequestTimeout,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

type Board struct {
	rateSource     provider.Source
	goldSource     provider.GoldSource
	requestTimeout time.Duration

	mtx   sync.RWMutex
	rates []provider.ExchangeRate
	gold  []provider.GoldPrice
}

// Rates returns a copy of the last fetched rate list
func (b *Board) Rates() []provider.ExchangeRate {
	b.mtx.RLock()
	defer b.mtx.RUnlock()

	list := make([]provider.ExchangeRate, len(b.rates))
	copy(list, b.rates)

	return list
}

// Gold returns a copy of the last fetched gold price list
func (b *Board) Gold() []provider.GoldPrice {
	b.mtx.RLock()
	defer b.mtx.RUnlock()

	list := make([]provider.GoldPrice, len(b.gold))
	copy(list, b.gold)

	return list
}

// RatesUpdated is the update time of the first rate, zero if the list is empty
func (b *Board) RatesUpdated() time.Time {
	b.mtx.RLock()
	defer b.mtx.RUnlock()

	if len(b.rates) == 0 {
		return time.Time{}
	}

	return b.rates[0].Updated
}

// GoldUpdated is the update time of the first gold price, zero if the list is empty
func (b *Board) GoldUpdated() time.Time {
	b.mtx.RLock()
	defer b.mtx.RUnlock()

	if len(b.gold) == 0 {
		return time.Time{}
	}

	return b.gold[0].Updated
}

func (b *Board) RefreshRates(ctx context.Context) error {
	logger := logging.FromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, b.requestTimeout)
	defer cancel()

	if b.rateSource == nil {
		return provider.ErrNoSources
	}

	list, err := b.rateSource.FetchRates(ctx)
	if err != nil {
		logger.Printf("error: refresh rate list: %v", err)
		return fmt.Errorf("fetch rates: %w", err)
	}

	b.mtx.Lock()
	b.rates = list
	b.mtx.Unlock()

	logger.Printf("rate list replaced: %d records", len(list))

	return nil
}

func (b *Board) RefreshGold(ctx context.Context) error {
	logger := logging.FromContext(ctx)

	if b.goldSource == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, b.requestTimeout)
	defer cancel()

	list, err := b.goldSource.FetchGoldPrices(ctx)
	if err != nil {
		logger.Printf("error: refresh gold list: %v", err)
		return fmt.Errorf("fetch gold prices: %w", err)
	}

	b.mtx.Lock()
	b.gold = list
	b.mtx.Unlock()

	logger.Printf("gold list replaced: %d records", len(list))

	return nil
}

// Refresh reloads both lists concurrently, the returned error holds every failed list
func (b *Board) Refresh(ctx context.Context) error {
	var group multierror.Group

	group.Go(func() error {
		return b.RefreshRates(ctx)
	})

	group.Go(func() error {
		return b.RefreshGold(ctx)
	})

	return group.Wait().ErrorOrNil()
}
