package cbm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/robotomize/kyat/label"
	"github.com/robotomize/kyat/provider"
	"github.com/robotomize/kyat/provider/httputil"
)

const hostname = "forex.cbm.gov.mm"

const latestRawPath = "/index.php/fxrate"

var defaultLatestResource = url.URL{Scheme: "https", Host: hostname, Path: latestRawPath}

type fetcher struct {
	u url.URL
	httputil.SourceHTTPClient
}

var _ provider.Source = (*source)(nil)

// NewSource returns the Central Bank of Myanmar reference rate source
func NewSource(client *http.Client) *source {
	return &source{
		client: fetcher{
			u:                defaultLatestResource,
			SourceHTTPClient: httputil.NewHTTPClient(client),
		},
	}
}

// NewSourceURL is NewSource with a custom page location, e.g. a mirror
func NewSourceURL(client *http.Client, rawURL string) (*source, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("url parse: %w", err)
	}

	s := NewSource(client)
	s.client.u = *u

	return s, nil
}

type source struct {
	client fetcher
}

func (s *source) FetchRates(ctx context.Context) ([]provider.ExchangeRate, error) {
	b, err := s.client.Get(ctx, s.client.u)
	if err != nil {
		return nil, fmt.Errorf("fetching: %w", err)
	}

	list, err := s.decode(b)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return list, nil
}

func (s *source) decode(b []byte) ([]provider.ExchangeRate, error) {
	daily, err := parseHTML(b)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	list := make([]provider.ExchangeRate, 0, len(daily.rates))
	for _, r := range daily.rates {
		ccy := label.Currencies[r.symbol]
		name := r.name
		if name == "" {
			name = ccy.Name
		}

		list = append(list, provider.ExchangeRate{
			ID:              string(r.symbol),
			Code:            r.symbol,
			Name:            name,
			RateToReference: r.rate,
			Flag:            ccy.Flag,
			Updated:         daily.time,
		})
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Code < list[j].Code
	})

	return list, nil
}
