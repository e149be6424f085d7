package kyat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robotomize/kyat/internal/logging"
	"github.com/robotomize/kyat/label"
	"github.com/robotomize/kyat/provider"
)

var (
	ErrFetch            = errors.New("can not fetch rates")
	ErrCurrencyNotFound = errors.New("currency symbol is not in the rate set")
	ErrInvalidAmount    = errors.New("amount is not a decimal number")
	ErrMissingSource    = errors.New("rate source is not set")
)

const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultRetryNum       = provider.DefaultRetryNum
	DefaultRetryDuration  = provider.DefaultRetryDuration
)

type Option func(*Calculator)

type Options struct {
	RetryNum       uint64
	RetryDuration  time.Duration
	RequestTimeout time.Duration
}

// WithRetryNum set number of repeated requests for data retrieval errors from the store
func WithRetryNum(n uint64) Option {
	return func(c *Calculator) {
		c.opts.RetryNum = n
	}
}

// WithRetryDuration constant retry backoff
func WithRetryDuration(t time.Duration) Option {
	return func(c *Calculator) {
		c.opts.RetryDuration = t
	}
}

// WithRequestTimeout set a timeout for a whole refresh, retries included
func WithRequestTimeout(t time.Duration) Option {
	return func(c *Calculator) {
		c.opts.RequestTimeout = t
	}
}

// WithInitialState replaces DefaultState
func WithInitialState(s State) Option {
	return func(c *Calculator) {
		c.state = s
	}
}

// WithRates preloads the rate set, the calculator starts idle
func WithRates(set RateSet) Option {
	return func(c *Calculator) {
		c.rates = WithReference(set)
		c.loading = false
	}
}

// New returns a calculator that loads rates from the source. It is loading until the first Refresh
// settles
func New(source provider.Source, opts ...Option) *Calculator {
	c := &Calculator{
		opts: Options{
			RetryNum:       DefaultRetryNum,
			RetryDuration:  DefaultRetryDuration,
			RequestTimeout: DefaultRequestTimeout,
		},
		state:   DefaultState(),
		loading: true,
	}

	for _, opt := range opts {
		opt(c)
	}

	if source != nil {
		c.source = provider.WithRetry(source, c.opts.RetryNum, c.opts.RetryDuration)
	}
	c.fingerprint, _ = c.rates.Fingerprint()
	if !c.loading {
		c.state = Reduce(c.rates, c.state, RatesRefreshed())
	}

	return c
}

// Calculator keeps two amounts in sync through the rate set. Events run to completion one at
// a time, Refresh does not block them while it waits for the store
type Calculator struct {
	opts   Options
	source provider.Source

	// refreshing serializes Refresh calls
	refreshing sync.Mutex

	mtx         sync.RWMutex
	rates       RateSet
	fingerprint string
	state       State
	loading     bool
	// edited is set when an event was handled while loading
	edited bool
}

type RefreshResult struct {
	Rates       RateSet
	Fingerprint string
	Changed     bool
}

// Refresh fetches the rate set and replaces it only on success, the previous set is kept on error.
// The calculator is loading for the duration of the call
func (c *Calculator) Refresh(ctx context.Context) (RefreshResult, error) {
	logger := logging.FromContext(ctx)

	c.refreshing.Lock()
	defer c.refreshing.Unlock()

	c.mtx.Lock()
	c.loading = true
	c.edited = false
	c.mtx.Unlock()

	next, fp, err := c.fetch(ctx)

	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.loading = false

	if err != nil {
		logger.Printf("error: refresh rates: %v", err)
		if c.edited {
			c.state = Reduce(c.rates, c.state, RatesRefreshed())
		}

		return RefreshResult{Rates: c.rates, Fingerprint: c.fingerprint}, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	changed := fp != c.fingerprint
	if changed {
		logger.Printf("rate set replaced: %d currencies, fingerprint %s", next.Len(), fp)
	} else {
		logger.Printf("rate set unchanged: fingerprint %s", fp)
	}

	c.rates = next
	c.fingerprint = fp
	c.state = Reduce(c.rates, c.state, RatesRefreshed())

	return RefreshResult{Rates: next, Fingerprint: fp, Changed: changed}, nil
}

func (c *Calculator) fetch(ctx context.Context) (RateSet, string, error) {
	if c.source == nil {
		return RateSet{}, "", ErrMissingSource
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.RequestTimeout)
	defer cancel()

	records, err := c.source.FetchRates(ctx)
	if err != nil {
		return RateSet{}, "", fmt.Errorf("fetch rates: %w", err)
	}

	set := WithReference(RateSetFromRecords(records))

	fp, err := set.Fingerprint()
	if err != nil {
		return RateSet{}, "", err
	}

	return set, fp, nil
}

// Dispatch reduces the event against the current rate set, while loading no field is derived
func (c *Calculator) Dispatch(e Event) State {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return c.dispatch(e)
}

func (c *Calculator) dispatch(e Event) State {
	rates := c.rates
	if c.loading {
		rates = RateSet{}
		c.edited = true
	}

	c.state = Reduce(rates, c.state, e)

	return c.state
}

// SetSourceAmount makes the source amount authoritative
func (c *Calculator) SetSourceAmount(raw string) (State, error) {
	if !ValidAmount(raw) {
		return c.State(), fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	return c.Dispatch(SourceAmountChanged(raw)), nil
}

// SetTargetAmount makes the target amount authoritative
func (c *Calculator) SetTargetAmount(raw string) (State, error) {
	if !ValidAmount(raw) {
		return c.State(), fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	return c.Dispatch(TargetAmountChanged(raw)), nil
}

func (c *Calculator) SelectSource(code label.Symbol) (State, error) {
	return c.selectCurrency(code, SourceCurrencySelected(code))
}

func (c *Calculator) SelectTarget(code label.Symbol) (State, error) {
	return c.selectCurrency(code, TargetCurrencySelected(code))
}

func (c *Calculator) selectCurrency(code label.Symbol, e Event) (State, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if !c.loading && c.rates.Len() > 0 && !c.rates.Has(code) {
		return c.state, fmt.Errorf("%w: %s", ErrCurrencyNotFound, code)
	}

	return c.dispatch(e), nil
}

// Swap exchanges the currencies, the previous target amount becomes the source amount
func (c *Calculator) Swap() State {
	return c.Dispatch(Swapped())
}

func (c *Calculator) State() State {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	return c.state
}

func (c *Calculator) Rates() RateSet {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	return c.rates
}

func (c *Calculator) Loading() bool {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	return c.loading
}
