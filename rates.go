package kyat

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/robotomize/kyat/internal/hashio"
	"github.com/robotomize/kyat/label"
	"github.com/robotomize/kyat/provider"
)

// Rate is the value of one currency in the reference currency
type Rate struct {
	Code            label.Symbol
	Name            string
	RateToReference float64
	Glyph           string
	Updated         time.Time
}

// ReferenceRate is the synthetic entry of the reference currency, the store does not keep it
func ReferenceRate() Rate {
	ccy := label.Currencies[label.Reference]

	return Rate{
		Code:            ccy.Symbol,
		Name:            ccy.Name,
		RateToReference: 1,
		Glyph:           ccy.Flag,
	}
}

// RateSet is an immutable ordered collection of rates. The zero value is an empty set
type RateSet struct {
	rates []Rate
	index map[label.Symbol]int
}

// NewRateSet copies the rates, the first rate of a code wins and rates that are not
// finite positive numbers are dropped
func NewRateSet(rates ...Rate) RateSet {
	set := RateSet{
		rates: make([]Rate, 0, len(rates)),
		index: make(map[label.Symbol]int, len(rates)),
	}

	for _, r := range rates {
		if r.Code == "" || !(r.RateToReference > 0) || math.IsInf(r.RateToReference, 0) {
			continue
		}

		if _, ok := set.index[r.Code]; ok {
			continue
		}

		set.index[r.Code] = len(set.rates)
		set.rates = append(set.rates, r)
	}

	return set
}

// RateSetFromRecords maps store records into a rate set
func RateSetFromRecords(records []provider.ExchangeRate) RateSet {
	rates := make([]Rate, 0, len(records))
	for _, rec := range records {
		rates = append(rates, Rate{
			Code:            rec.Code,
			Name:            rec.Name,
			RateToReference: rec.RateToReference,
			Glyph:           rec.Flag,
			Updated:         rec.Updated,
		})
	}

	return NewRateSet(rates...)
}

// WithReference prepends the reference currency unless the set already has it
func WithReference(set RateSet) RateSet {
	if set.Has(label.Reference) {
		return set
	}

	return NewRateSet(append([]Rate{ReferenceRate()}, set.rates...)...)
}

func (s RateSet) Len() int {
	return len(s.rates)
}

func (s RateSet) Has(code label.Symbol) bool {
	_, ok := s.index[code]
	return ok
}

func (s RateSet) Lookup(code label.Symbol) (Rate, bool) {
	idx, ok := s.index[code]
	if !ok {
		return Rate{}, false
	}

	return s.rates[idx], true
}

// All returns a copy of the rates in set order
func (s RateSet) All() []Rate {
	list := make([]Rate, len(s.rates))
	copy(list, s.rates)

	return list
}

func (s RateSet) Codes() []label.Symbol {
	codes := make([]label.Symbol, len(s.rates))
	for i, r := range s.rates {
		codes[i] = r.Code
	}

	return codes
}

// Glyph returns the decorative symbol of the code or the default flag
func (s RateSet) Glyph(code label.Symbol) string {
	if r, ok := s.Lookup(code); ok && r.Glyph != "" {
		return r.Glyph
	}

	return label.DefaultFlag
}

// Fingerprint is the md5 of the codes, names, glyphs and rates in set order.
// Update timestamps are not part of it
func (s RateSet) Fingerprint() (string, error) {
	var buf bytes.Buffer
	for _, r := range s.rates {
		buf.WriteString(string(r.Code))
		buf.WriteByte('|')
		buf.WriteString(strconv.FormatFloat(r.RateToReference, 'g', -1, 64))
		buf.WriteByte('|')
		buf.WriteString(r.Name)
		buf.WriteByte('|')
		buf.WriteString(r.Glyph)
		buf.WriteByte('\n')
	}

	fp, err := hashio.Fingerprint(buf.Bytes(), hashio.MD5HashFunc())
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}

	return fp, nil
}
