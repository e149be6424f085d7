package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/robotomize/kyat"
	"github.com/robotomize/kyat/board"
	"github.com/robotomize/kyat/internal/config"
	"github.com/robotomize/kyat/internal/strutil"
	"github.com/robotomize/kyat/label"
	"github.com/robotomize/kyat/provider"
	"github.com/robotomize/kyat/provider/cbm"
	"github.com/robotomize/kyat/provider/httputil"
	"github.com/robotomize/kyat/provider/supabase"
)

var ErrNoGoldSource = errors.New("gold prices are only served by the supabase store")

// newSources builds the rate and gold sources of the configured store, the gold source is nil for
// the central bank store
func newSources(cfg *config.Config) (provider.Source, provider.GoldSource, error) {
	client := httputil.DefaultHTTPClient()

	var bank provider.Source = cbm.NewSource(client)
	if cfg.CBMURL != "" {
		s, err := cbm.NewSourceURL(client, cfg.CBMURL)
		if err != nil {
			return nil, nil, fmt.Errorf("cbm.NewSourceURL: %w", err)
		}
		bank = s
	}

	switch cfg.Store {
	case config.StoreCBM:
		return bank, nil, nil
	case config.StoreSupabase:
		store, err := supabase.NewSource(client, cfg.SupabaseURL, cfg.SupabaseAnonKey)
		if err != nil {
			return nil, nil, fmt.Errorf("supabase.NewSource: %w", err)
		}

		if cfg.CBMFallback {
			return provider.Chain(store, bank), store, nil
		}

		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownStore, cfg.Store)
	}
}

type app struct {
	cfg   *config.Config
	rates provider.Source
	gold  provider.GoldSource
	in    io.Reader
	out   io.Writer
}

func (a *app) run(ctx context.Context, args []string) error {
	cmd, args := args[0], args[1:]
	switch cmd {
	case "rates":
		return a.runRates(ctx, args)
	case "gold":
		return a.runGold(ctx, args)
	case "convert":
		return a.runConvert(ctx, args)
	case "calc":
		return a.runCalc(ctx, args)
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

func (a *app) parse(name string, args []string, setup func(fs *flag.FlagSet)) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	if setup != nil {
		setup(fs)
	}

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("flag parse: %w", err)
	}

	return nil
}

func (a *app) board() *board.Board {
	var gold provider.GoldSource
	if a.gold != nil {
		gold = provider.WithGoldRetry(a.gold, a.cfg.RetryNum, a.cfg.RetryDuration)
	}

	return board.New(
		provider.WithRetry(a.rates, a.cfg.RetryNum, a.cfg.RetryDuration),
		gold,
		board.WithRequestTimeout(a.cfg.RequestTimeout),
	)
}

func (a *app) calculator() *kyat.Calculator {
	return kyat.New(
		a.rates,
		kyat.WithRetryNum(a.cfg.RetryNum),
		kyat.WithRetryDuration(a.cfg.RetryDuration),
		kyat.WithRequestTimeout(a.cfg.RequestTimeout),
	)
}

func (a *app) runRates(ctx context.Context, args []string) error {
	if err := a.parse("rates", args, nil); err != nil {
		return err
	}

	b := a.board()
	if err := b.RefreshRates(ctx); err != nil {
		return err
	}

	return printRates(a.out, b.Rates(), b.RatesUpdated())
}

func (a *app) runGold(ctx context.Context, args []string) error {
	if err := a.parse("gold", args, nil); err != nil {
		return err
	}

	if a.gold == nil {
		return ErrNoGoldSource
	}

	b := a.board()
	if err := b.RefreshGold(ctx); err != nil {
		return err
	}

	return printGold(a.out, b.Gold(), b.GoldUpdated())
}

func (a *app) runConvert(ctx context.Context, args []string) error {
	var from, to, amount string
	var reverse bool

	if err := a.parse("convert", args, func(fs *flag.FlagSet) {
		fs.StringVar(&from, "from", label.USD.String(), "source currency code")
		fs.StringVar(&to, "to", label.Reference.String(), "target currency code")
		fs.StringVar(&amount, "amount", "1", "amount to convert")
		fs.BoolVar(&reverse, "reverse", false, "the amount is in the target currency")
	}); err != nil {
		return err
	}

	c := a.calculator()
	if _, err := c.Refresh(ctx); err != nil {
		return err
	}

	return convert(c, a.out, symbol(from), symbol(to), amount, reverse)
}

func convert(c *kyat.Calculator, out io.Writer, from, to label.Symbol, amount string, reverse bool) error {
	if _, err := c.SelectSource(from); err != nil {
		return err
	}

	if _, err := c.SelectTarget(to); err != nil {
		return err
	}

	set := c.SetSourceAmount
	if reverse {
		set = c.SetTargetAmount
	}

	s, err := set(amount)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, formatState(s))

	return nil
}

func (a *app) runCalc(ctx context.Context, args []string) error {
	if err := a.parse("calc", args, nil); err != nil {
		return err
	}

	c := a.calculator()
	if _, err := c.Refresh(ctx); err != nil {
		fmt.Fprintf(a.out, "warning: %v\n", err)
	}

	return calc(ctx, c, a.in, a.out)
}

func symbol(s string) label.Symbol {
	return label.Symbol(strutil.CurrencyCode(s))
}
