package provider

import (
	"context"
	"time"

	"github.com/robotomize/kyat/label"
)

// Source is an interface for getting exchange rates from the remote store. A source returns the full
// collection sorted by currency code or an error, partial results are never returned
//
//go:generate mockgen -source source.go -destination mock_source.go -package provider
type Source interface {
	// FetchRates returns every exchange rate record known to the store
	FetchRates(ctx context.Context) ([]ExchangeRate, error)
}

// GoldSource is an interface for getting gold prices, sorted by price type
type GoldSource interface {
	FetchGoldPrices(ctx context.Context) ([]GoldPrice, error)
}

// ExchangeRate is one record of the exchange rate collection.
// RateToReference is the amount of the reference currency equal to one unit of Code
type ExchangeRate struct {
	ID              string
	Code            label.Symbol
	Name            string
	RateToReference float64
	Flag            string
	Updated         time.Time
}
