package provider

import (
	"time"

	"github.com/robotomize/kyat/internal/strutil"
)

type PriceType string

const (
	PriceTypeWorld        PriceType = "world"
	PriceTypeMyanmar16Pae PriceType = "myanmar_16_pae"
	PriceTypeMyanmar15Pae PriceType = "myanmar_15_pae"
)

// Label returns the display name of the price type, unknown types are shown as is
func (p PriceType) Label() string {
	switch p {
	case PriceTypeWorld:
		return "World Gold Price"
	case PriceTypeMyanmar16Pae:
		return "Myanmar 16 Pae Yay"
	case PriceTypeMyanmar15Pae:
		return "Myanmar 15 Pae Yay"
	default:
		return string(p)
	}
}

func (p PriceType) Icon() string {
	if p == PriceTypeWorld {
		return "🌍"
	}

	return "🇲🇲"
}

// GoldPrice is one record of the gold price collection
type GoldPrice struct {
	ID       string
	Type     PriceType
	Price    float64
	Currency string
	Unit     string
	Updated  time.Time
}

func (g GoldPrice) UnitLabel() string {
	return strutil.UnitLabel(g.Unit)
}
