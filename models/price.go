package models

import (
	"encoding/json"
	"reflect"

	"github.com/shopspring/decimal"
)

const (
	// PriceScale is the number of decimal places a price may carry.
	PriceScale = 2

	// PriceMaxDigits is the total number of digits a price may carry.
	PriceMaxDigits = 5
)

// Price is a non-negative fixed-point amount with two decimal places.
//
// It decodes from a JSON number or string, renders as a string with
// exactly two decimals ("5.50") and reads/writes through database/sql
// via the embedded decimal.Decimal.
type Price struct {
	decimal.Decimal
}

// NewPrice parses s into a Price.
func NewPrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, err
	}
	return Price{Decimal: d}, nil
}

// MustPrice is like NewPrice but panics on malformed input.
func MustPrice(s string) Price {
	p, err := NewPrice(s)
	if err != nil {
		panic(err)
	}
	return p
}

// MarshalJSON renders the price as a quoted string with two decimals.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.StringFixed(PriceScale) + `"`), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string. Anything else is
// reported as a *json.UnmarshalTypeError so the decoder can name the field.
func (p *Price) UnmarshalJSON(data []byte) error {
	if err := p.Decimal.UnmarshalJSON(data); err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: reflect.TypeFor[Price]()}
	}
	return nil
}

// Valid reports whether the price fits the stored precision: non-negative,
// at most PriceScale decimals and PriceMaxDigits digits in total.
func (p Price) Valid() bool {
	return !p.IsNegative() && p.FitsScale() && p.FitsDigits()
}

// FitsScale reports whether the price has at most PriceScale decimals.
func (p Price) FitsScale() bool {
	return p.Equal(p.Truncate(PriceScale))
}

// FitsDigits reports whether the integer part leaves room for PriceScale
// decimals within PriceMaxDigits.
func (p Price) FitsDigits() bool {
	return p.Abs().LessThan(decimal.New(1, PriceMaxDigits-PriceScale))
}
