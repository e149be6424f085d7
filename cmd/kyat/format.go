package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/robotomize/kyat"
	"github.com/robotomize/kyat/label"
	"github.com/robotomize/kyat/provider"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const updatedLayout = "2006-01-02 15:04"

var printer = message.NewPrinter(language.English)

// formatState prints both fields, the typed one is marked with *
func formatState(s kyat.State) string {
	src, dst := groupAmount(s.SourceAmount), groupAmount(s.TargetAmount)
	if s.Authoritative == kyat.FieldSource {
		src += "*"
	} else {
		dst += "*"
	}

	return fmt.Sprintf("%s %s = %s %s", src, s.Source, dst, s.Target)
}

// groupAmount adds thousands separators to a decimal literal keeping its places, empty is shown as -
func groupAmount(raw string) string {
	if raw == "" {
		return "-"
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return raw
	}

	places := -d.Exponent()
	if places < 0 {
		places = 0
	}

	return printer.Sprint(number.Decimal(d.InexactFloat64(), number.Scale(int(places))))
}

func formatUpdated(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}

	return t.Local().Format(updatedLayout)
}

func printRates(out io.Writer, rates []provider.ExchangeRate, updated time.Time) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "1 Foreign Currency = %s\n", label.Reference)
	for _, r := range rates {
		printer.Fprintf(w, "%s\t%s\t%s\t%.2f\n", r.Flag, r.Code, r.Name, r.RateToReference)
	}
	fmt.Fprintf(w, "Last updated: %s\n", formatUpdated(updated))

	return w.Flush()
}

func printGold(out io.Writer, prices []provider.GoldPrice, updated time.Time) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	for _, g := range prices {
		printer.Fprintf(w, "%s\t%s\t%s\t%.2f %s\n", g.Type.Icon(), g.Type.Label(), g.UnitLabel(), g.Price, g.Currency)
	}
	fmt.Fprintf(w, "Last updated: %s\n", formatUpdated(updated))

	return w.Flush()
}
