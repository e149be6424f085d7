package supabase

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/robotomize/kyat/internal/strutil"
	"github.com/robotomize/kyat/label"
	"github.com/robotomize/kyat/provider"
)

var (
	ErrRecordNotValid = errors.New("record is not valid")
	errTimeNotValid   = errors.New("timestamp is not valid")
)

var validate = validator.New()

// postgres renders timestamptz differently depending on the column type and the client
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999-07",
	"2006-01-02 15:04:05.999999-07:00",
}

// recordID accepts both uuid and serial primary keys
type recordID string

func (r *recordID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("%w: id: %v", ErrRecordNotValid, err)
		}
		*r = recordID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("%w: id: %v", ErrRecordNotValid, err)
	}
	*r = recordID(n.String())

	return nil
}

type timestamp time.Time

func (t *timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("%w: %s", errTimeNotValid, b)
	}

	if s == "" {
		return nil
	}

	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = timestamp(parsed)
			return nil
		}
	}

	return fmt.Errorf("%w: %s", errTimeNotValid, s)
}

type rateRecord struct {
	ID           recordID  `json:"id" validate:"required"`
	CurrencyCode string    `json:"currency_code" validate:"required,alphanum"`
	CurrencyName string    `json:"currency_name"`
	RateToMMK    float64   `json:"rate_to_mmk" validate:"gt=0"`
	FlagEmoji    string    `json:"flag_emoji"`
	LastUpdated  timestamp `json:"last_updated"`
}

type goldRecord struct {
	ID          recordID  `json:"id" validate:"required"`
	PriceType   string    `json:"price_type" validate:"required"`
	Price       float64   `json:"price" validate:"gte=0"`
	Currency    string    `json:"currency"`
	Unit        string    `json:"unit"`
	LastUpdated timestamp `json:"last_updated"`
}

func decodeRates(b []byte) ([]provider.ExchangeRate, error) {
	var records []rateRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	list := make([]provider.ExchangeRate, 0, len(records))
	for _, rec := range records {
		rec.CurrencyCode = strutil.CurrencyCode(rec.CurrencyCode)
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrRecordNotValid, rec.ID, err)
		}

		code := label.Symbol(rec.CurrencyCode)
		name := strutil.CurrencyName(rec.CurrencyName)
		if name == "" {
			if ccy, ok := label.Currencies[code]; ok {
				name = ccy.Name
			}
		}

		flag := rec.FlagEmoji
		if flag == "" {
			flag = label.FlagOf(code)
		}

		list = append(list, provider.ExchangeRate{
			ID:              string(rec.ID),
			Code:            code,
			Name:            name,
			RateToReference: rec.RateToMMK,
			Flag:            flag,
			Updated:         time.Time(rec.LastUpdated),
		})
	}

	return list, nil
}

func decodeGoldPrices(b []byte) ([]provider.GoldPrice, error) {
	var records []goldRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	list := make([]provider.GoldPrice, 0, len(records))
	for _, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrRecordNotValid, rec.ID, err)
		}

		list = append(list, provider.GoldPrice{
			ID:       string(rec.ID),
			Type:     provider.PriceType(rec.PriceType),
			Price:    rec.Price,
			Currency: rec.Currency,
			Unit:     rec.Unit,
			Updated:  time.Time(rec.LastUpdated),
		})
	}

	return list, nil
}
