package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/robotomize/kyat/internal/config"
	"github.com/robotomize/kyat/internal/logging"
)

var ErrUnknownCommand = errors.New("unknown command")

const usage = `usage: kyat [-v] <command> [flags]

commands:
  rates                                   list exchange rates, 1 foreign currency = MMK
  gold                                    list gold prices
  convert -from USD -to MMK -amount 10    convert an amount, -reverse takes the amount in -to
  calc                                    interactive calculator
`

var flagKyat = flag.NewFlagSet("kyat", flag.ContinueOnError)

var verbose = flagKyat.Bool("v", false, "log fetches and rate set changes")

func main() {
	ctx := logging.WithLogger(context.Background(), logging.DefaultLogger())
	logger := logging.FromContext(ctx)

	flagKyat.Usage = func() {
		fmt.Fprint(flagKyat.Output(), usage)
	}

	if err := flagKyat.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Fatalf("flag parse: %v", err)
	}

	if !*verbose {
		ctx = logging.WithLogger(ctx, logging.Discard())
	}

	if err := realMain(ctx, flagKyat.Args(), os.Stdin, os.Stdout); err != nil {
		logger.Fatal(err)
	}
}

func realMain(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return ErrUnknownCommand
	}

	cfg, err := config.LoadConfig(ctx)
	if err != nil {
		return fmt.Errorf("config.LoadConfig: %w", err)
	}

	rates, gold, err := newSources(cfg)
	if err != nil {
		return fmt.Errorf("new sources: %w", err)
	}

	a := &app{cfg: cfg, rates: rates, gold: gold, in: in, out: out}

	return a.run(ctx, args)
}
