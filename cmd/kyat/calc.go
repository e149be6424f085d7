package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/robotomize/kyat"
)

const prompt = "> "

const calcHelp = `from <amount>   type the source amount
to <amount>     type the target amount
src <code>      select the source currency
dst <code>      select the target currency
swap            swap the currencies
refresh         reload the rates
show            print the conversion
quit            leave
`

// calc reads one command per line until quit or the end of input
func calc(ctx context.Context, c *kyat.Calculator, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, formatState(c.State()))
	fmt.Fprint(out, prompt)

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			fmt.Fprint(out, prompt)
			continue
		}

		var arg string
		if len(fields) > 1 {
			arg = fields[1]
		}

		var err error
		switch strings.ToLower(fields[0]) {
		case "from":
			_, err = c.SetSourceAmount(arg)
		case "to":
			_, err = c.SetTargetAmount(arg)
		case "src":
			_, err = c.SelectSource(symbol(arg))
		case "dst":
			_, err = c.SelectTarget(symbol(arg))
		case "swap":
			c.Swap()
		case "refresh":
			var res kyat.RefreshResult
			if res, err = c.Refresh(ctx); err == nil && res.Changed {
				fmt.Fprintf(out, "rates updated: %d currencies\n", res.Rates.Len())
			}
		case "show":
		case "help":
			fmt.Fprint(out, calcHelp)
		case "quit", "exit":
			return nil
		default:
			err = fmt.Errorf("%w: %q, type help", ErrUnknownCommand, fields[0])
		}

		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}

		fmt.Fprintln(out, formatState(c.State()))
		fmt.Fprint(out, prompt)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	return nil
}
