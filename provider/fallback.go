package provider

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

var _ Source = (*chainSource)(nil)

// Chain returns a source that asks the sources in order and returns the first successful result.
// When every source fails the errors of all of them are returned
func Chain(sources ...Source) Source {
	list := make([]Source, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			list = append(list, s)
		}
	}

	return &chainSource{sources: list}
}

type chainSource struct {
	sources []Source
}

func (c *chainSource) FetchRates(ctx context.Context) ([]ExchangeRate, error) {
	if len(c.sources) == 0 {
		return nil, ErrNoSources
	}

	var ferr *multierror.Error
	for i, s := range c.sources {
		if err := ctx.Err(); err != nil {
			ferr = multierror.Append(ferr, fmt.Errorf("ctx cancelled: %w", err))
			break
		}

		rates, err := s.FetchRates(ctx)
		if err != nil {
			ferr = multierror.Append(ferr, fmt.Errorf("source %d: %w", i, err))
			continue
		}

		return rates, nil
	}

	return nil, ferr.ErrorOrNil()
}
