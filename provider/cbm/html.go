package cbm

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/kyat/internal/strutil"
	"github.com/robotomize/kyat/label"
	"golang.org/x/net/html"
)

const (
	dateSelector  = "#rates-date"
	rowsSelector  = "table#rates tbody tr"
	dateLayout    = "02-01-2006"
	datePrefixLen = len("Date")
)

var (
	ErrHTMLNotValid      = errors.New("html not valid")
	errParseAttrNotValid = errors.New("attr is not valid")
)

// parseHTML reads the reference rate table. A row is "<code> [units]", "<name>", "<kyat per units>",
// rates quoted per 100 units are divided down to one unit
func parseHTML(b []byte) (kyatLatestRates, error) {
	var dailyRates kyatLatestRates
	root, err := html.Parse(bytes.NewReader(b))
	if err != nil {
		return dailyRates, fmt.Errorf("%w: html parse: %v", ErrHTMLNotValid, err)
	}

	doc := goquery.NewDocumentFromNode(root)

	date := strutil.RemoveExtraSpaces(doc.Find(dateSelector).Text())
	if len(date) <= datePrefixLen {
		return dailyRates, fmt.Errorf("%w: missing date", ErrHTMLNotValid)
	}

	dt, err := time.Parse(dateLayout, strings.TrimSpace(date[datePrefixLen:]))
	if err != nil {
		return dailyRates, fmt.Errorf("%w: date: %v", errParseAttrNotValid, err)
	}

	dailyRates.time = dt

	var rowErr *multierror.Error

	doc.Find(rowsSelector).Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}

		symbol, units := parseCode(cells.Eq(0).Text())
		if _, ok := label.Currencies[symbol]; !ok {
			return
		}

		rate, err := strconv.ParseFloat(strutil.StripNumberSeparators(cells.Eq(2).Text()), 64)
		if err != nil || rate <= 0 {
			rowErr = multierror.Append(rowErr, fmt.Errorf("%w: row %d rate %q", errParseAttrNotValid, i, cells.Eq(2).Text()))
			return
		}

		dailyRates.rates = append(dailyRates.rates, kyatExchangeRate{
			symbol: symbol,
			name:   strutil.CurrencyName(cells.Eq(1).Text()),
			rate:   rate / units,
		})
	})

	if err := rowErr.ErrorOrNil(); err != nil {
		return kyatLatestRates{}, err
	}

	if len(dailyRates.rates) == 0 {
		return kyatLatestRates{}, fmt.Errorf("%w: no rates", ErrHTMLNotValid)
	}

	return dailyRates, nil
}

// parseCode splits "JPY 100" into JPY and 100
func parseCode(s string) (label.Symbol, float64) {
	fields := strings.Fields(strutil.RemoveContentIntoBrackets(s))
	if len(fields) == 0 {
		return "", 1
	}

	units := 1.0
	if len(fields) > 1 {
		if n, err := strconv.ParseFloat(strutil.StripNumberSeparators(fields[1]), 64); err == nil && n > 0 {
			units = n
		}
	}

	return label.Symbol(strutil.CurrencyCode(fields[0])), units
}
