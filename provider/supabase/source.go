package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"sort"

	"github.com/robotomize/kyat/provider"
	"github.com/robotomize/kyat/provider/httputil"
)

const restPath = "/rest/v1"

const (
	TableExchangeRates = "exchange_rates"
	TableGoldPrices    = "gold_prices"
)

var ErrMissingCredentials = errors.New("supabase url and anon key are required")

var (
	_ provider.Source     = (*source)(nil)
	_ provider.GoldSource = (*source)(nil)
)

type fetcher struct {
	u *url.URL
	httputil.SourceHTTPClient
}

// NewSource returns the PostgREST backed store. The anon key is sent both as apikey and as bearer token
func NewSource(client *http.Client, rawURL, anonKey string) (*source, error) {
	if rawURL == "" || anonKey == "" {
		return nil, ErrMissingCredentials
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("url parse: %w", err)
	}

	u.Path = path.Join("/", u.Path, restPath)

	return &source{
		client: fetcher{
			u: u,
			SourceHTTPClient: httputil.NewHTTPClient(
				client,
				httputil.WithHeader("apikey", anonKey),
				httputil.WithHeader("Authorization", "Bearer "+anonKey),
				httputil.WithHeader("Accept", "application/json"),
			),
		},
	}, nil
}

type source struct {
	client fetcher
}

// FetchRates selects every row of exchange_rates ordered by currency_code
func (s *source) FetchRates(ctx context.Context) ([]provider.ExchangeRate, error) {
	b, err := s.client.Get(ctx, s.tableURL(TableExchangeRates, "currency_code"))
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", TableExchangeRates, err)
	}

	list, err := decodeRates(b)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Code < list[j].Code
	})

	return list, nil
}

// FetchGoldPrices selects every row of gold_prices ordered by price_type
func (s *source) FetchGoldPrices(ctx context.Context) ([]provider.GoldPrice, error) {
	b, err := s.client.Get(ctx, s.tableURL(TableGoldPrices, "price_type"))
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", TableGoldPrices, err)
	}

	list, err := decodeGoldPrices(b)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Type < list[j].Type
	})

	return list, nil
}

func (s *source) tableURL(table, orderBy string) url.URL {
	u := *s.client.u
	u.Path = path.Join(u.Path, table)

	query := make(url.Values)
	query.Set("select", "*")
	query.Set("order", orderBy+".asc")
	u.RawQuery = query.Encode()

	return u
}
