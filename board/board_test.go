package board

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/robotomize/kyat/internal/logging"
	"github.com/robotomize/kyat/label"
	"github.com/robotomize/kyat/provider"
)

var (
	errRates = errors.New("rates unavailable")
	errGold  = errors.New("gold unavailable")
)

var (
	ratesUpdated = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	goldUpdated  = time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)
)

var (
	rateList = []provider.ExchangeRate{
		{ID: "2", Code: label.EUR, Name: "Euro", RateToReference: 2300, Updated: ratesUpdated},
		{ID: "1", Code: label.USD, Name: "US Dollar", RateToReference: 2100, Updated: ratesUpdated.Add(-time.Hour)},
	}
	goldList = []provider.GoldPrice{
		{ID: "1", Type: provider.PriceTypeMyanmar16Pae, Price: 4500000, Currency: "MMK", Unit: "per_tical", Updated: goldUpdated},
		{ID: "2", Type: provider.PriceTypeWorld, Price: 2330.5, Currency: "USD", Unit: "per_ounce"},
	}
)

func testContext() context.Context {
	return logging.WithLogger(context.Background(), logging.Discard())
}

func TestBoard_Refresh(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		ratesErr     error
		goldErr      error
		errs         []error
		expRates     []provider.ExchangeRate
		expGold      []provider.GoldPrice
		ratesUpdated time.Time
		goldUpdated  time.Time
	}{
		{
			name:         "test_refresh_both_ok",
			expRates:     rateList,
			expGold:      goldList,
			ratesUpdated: ratesUpdated,
			goldUpdated:  goldUpdated,
		},
		{
			name:        "test_refresh_rates_failed",
			ratesErr:    errRates,
			errs:        []error{errRates},
			expRates:    []provider.ExchangeRate{},
			expGold:     goldList,
			goldUpdated: goldUpdated,
		},
		{
			name:     "test_refresh_both_failed",
			ratesErr: errRates,
			goldErr:  errGold,
			errs:     []error{errRates, errGold},
			expRates: []provider.ExchangeRate{},
			expGold:  []provider.GoldPrice{},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			rates := provider.NewMockSource(ctrl)
			gold := provider.NewMockGoldSource(ctrl)

			if tc.ratesErr != nil {
				rates.EXPECT().FetchRates(gomock.Any()).Return(nil, tc.ratesErr)
			} else {
				rates.EXPECT().FetchRates(gomock.Any()).Return(rateList, nil)
			}

			if tc.goldErr != nil {
				gold.EXPECT().FetchGoldPrices(gomock.Any()).Return(nil, tc.goldErr)
			} else {
				gold.EXPECT().FetchGoldPrices(gomock.Any()).Return(goldList, nil)
			}

			b := New(rates, gold, WithRequestTimeout(time.Second))
			err := b.Refresh(testContext())
			for _, want := range tc.errs {
				if !errors.Is(err, want) {
					t.Errorf("expected %v in %v", want, err)
				}
			}

			if len(tc.errs) == 0 && err != nil {
				t.Fatalf("refresh: %v", err)
			}

			if diff := cmp.Diff(tc.expRates, b.Rates()); diff != "" {
				t.Errorf("bad rates (-want, +got): %s", diff)
			}

			if diff := cmp.Diff(tc.expGold, b.Gold()); diff != "" {
				t.Errorf("bad gold (-want, +got): %s", diff)
			}

			if !b.RatesUpdated().Equal(tc.ratesUpdated) {
				t.Errorf("bad rates updated, want %v, got %v", tc.ratesUpdated, b.RatesUpdated())
			}

			if !b.GoldUpdated().Equal(tc.goldUpdated) {
				t.Errorf("bad gold updated, want %v, got %v", tc.goldUpdated, b.GoldUpdated())
			}
		})
	}
}

func TestBoard_FailureKeepsList(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	rates := provider.NewMockSource(ctrl)
	gomock.InOrder(
		rates.EXPECT().FetchRates(gomock.Any()).Return(rateList, nil),
		rates.EXPECT().FetchRates(gomock.Any()).Return(nil, errRates),
	)

	b := New(rates, nil)
	if err := b.RefreshRates(testContext()); err != nil {
		t.Fatalf("refresh rates: %v", err)
	}

	if err := b.RefreshRates(testContext()); !errors.Is(err, errRates) {
		t.Fatalf("expected %v, got %v", errRates, err)
	}

	if diff := cmp.Diff(rateList, b.Rates()); diff != "" {
		t.Errorf("rate list changed (-want, +got): %s", diff)
	}

	if err := b.RefreshGold(testContext()); err != nil {
		t.Errorf("refresh without gold source: %v", err)
	}
}
