package kyat

import (
	"fmt"

	"github.com/robotomize/kyat/label"
)

// Field names one of the two amount fields
type Field byte

const (
	FieldSource Field = iota
	FieldTarget
)

func (f Field) String() string {
	if f == FieldTarget {
		return "target"
	}

	return "source"
}

// DefaultSwapAmount is the source amount after a swap when the target amount was empty
const DefaultSwapAmount = "1"

// State is the calculator form. Authoritative is the field the user typed into last, the other
// amount is always derived from it
type State struct {
	Source        label.Symbol
	Target        label.Symbol
	SourceAmount  string
	TargetAmount  string
	Authoritative Field
}

// DefaultState converts one US dollar into kyat
func DefaultState() State {
	return State{
		Source:        label.USD,
		Target:        label.Reference,
		SourceAmount:  "1",
		Authoritative: FieldSource,
	}
}

// Line is the conversion result, "10 USD = 21000.00 MMK", empty while there is no result
func (s State) Line() string {
	if s.SourceAmount == "" || s.TargetAmount == "" {
		return ""
	}

	return fmt.Sprintf("%s %s = %s %s", s.SourceAmount, s.Source, s.TargetAmount, s.Target)
}

type EventType byte

const (
	EventSourceAmountChanged EventType = iota
	EventTargetAmountChanged
	EventSourceCurrencySelected
	EventTargetCurrencySelected
	EventSwapped
	EventRatesRefreshed
)

// Event is a discrete trigger handled by Reduce
type Event struct {
	Type     EventType
	Amount   string
	Currency label.Symbol
}

func SourceAmountChanged(raw string) Event {
	return Event{Type: EventSourceAmountChanged, Amount: raw}
}

func TargetAmountChanged(raw string) Event {
	return Event{Type: EventTargetAmountChanged, Amount: raw}
}

func SourceCurrencySelected(code label.Symbol) Event {
	return Event{Type: EventSourceCurrencySelected, Currency: code}
}

func TargetCurrencySelected(code label.Symbol) Event {
	return Event{Type: EventTargetCurrencySelected, Currency: code}
}

func Swapped() Event {
	return Event{Type: EventSwapped}
}

func RatesRefreshed() Event {
	return Event{Type: EventRatesRefreshed}
}

// Reduce applies the event to the state. An empty rate set means the rates are loading:
// edits are stored but nothing is derived.
//
//	event                     stores                        authoritative  derives
//	SourceAmountChanged       SourceAmount                  source         target
//	TargetAmountChanged       TargetAmount                  target         source
//	SourceCurrencySelected    Source                        unchanged      other field
//	TargetCurrencySelected    Target                        unchanged      other field
//	Swapped                   currencies, SourceAmount      source         target
//	RatesRefreshed            -                             unchanged      other field
func Reduce(rates RateSet, s State, e Event) State {
	switch e.Type {
	case EventSourceAmountChanged:
		if !ValidAmount(e.Amount) {
			return s
		}
		s.SourceAmount = e.Amount
		s.Authoritative = FieldSource
	case EventTargetAmountChanged:
		if !ValidAmount(e.Amount) {
			return s
		}
		s.TargetAmount = e.Amount
		s.Authoritative = FieldTarget
	case EventSourceCurrencySelected:
		if rates.Len() > 0 && !rates.Has(e.Currency) {
			return s
		}
		s.Source = e.Currency
	case EventTargetCurrencySelected:
		if rates.Len() > 0 && !rates.Has(e.Currency) {
			return s
		}
		s.Target = e.Currency
	case EventSwapped:
		amount := s.TargetAmount
		if amount == "" {
			amount = DefaultSwapAmount
		}
		s.Source, s.Target = s.Target, s.Source
		s.SourceAmount = amount
		s.Authoritative = FieldSource
	case EventRatesRefreshed:
	default:
		return s
	}

	return derive(rates, s)
}

// derive recomputes the field that is not authoritative
func derive(rates RateSet, s State) State {
	if rates.Len() == 0 {
		return s
	}

	from, to, raw := s.Source, s.Target, s.SourceAmount
	derived := &s.TargetAmount
	if s.Authoritative == FieldTarget {
		from, to, raw = s.Target, s.Source, s.TargetAmount
		derived = &s.SourceAmount
	}

	amount, ok := ParseAmount(raw)
	if !ok {
		*derived = ""
		return s
	}

	fromRate, ok := rates.Lookup(from)
	if !ok {
		return s
	}

	toRate, ok := rates.Lookup(to)
	if !ok {
		return s
	}

	*derived = FormatAmount(Convert(amount, fromRate.RateToReference, toRate.RateToReference))

	return s
}
