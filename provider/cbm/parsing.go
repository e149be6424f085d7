package cbm

import (
	"time"

	"github.com/robotomize/kyat/label"
)

type kyatLatestRates struct {
	time  time.Time
	rates []kyatExchangeRate
}

// kyatExchangeRate is the amount of kyat for one unit of symbol
type kyatExchangeRate struct {
	symbol label.Symbol
	name   string
	rate   float64
}
