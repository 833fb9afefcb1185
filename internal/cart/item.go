package cart

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Item is one line item in the cart. Items have no identity beyond their
// position in the stored list; duplicate skus are allowed.
type Item struct {
	SKU   string `json:"sku"`
	Name  string `json:"name"`
	Desc  string `json:"desc"`
	Price Price  `json:"price"`
}

// Price is a line item price as persisted. Slots written by older pages or
// edited by hand may hold strings or garbage, so decoding never fails: a value
// that is not numeric decodes as an invalid Price and is written back verbatim.
type Price struct {
	amount float64
	valid  bool
	raw    json.RawMessage
}

// NewPrice returns a valid price.
func NewPrice(amount float64) Price {
	return Price{amount: amount, valid: true}
}

// Amount returns the numeric value and whether the price is numeric.
func (p Price) Amount() (float64, bool) {
	return p.amount, p.valid
}

// MarshalJSON implements json.Marshaler.
func (p Price) MarshalJSON() ([]byte, error) {
	if len(p.raw) > 0 {
		return p.raw, nil
	}
	if !p.valid || math.IsNaN(p.amount) || math.IsInf(p.amount, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, p.amount, 'f', -1, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Price) UnmarshalJSON(data []byte) error {
	*p = Price{}
	data = bytes.TrimSpace(data)

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		p.amount, p.valid = n, true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, ok := parseNumber(s); ok {
			p.amount, p.valid = v, true
		}
	}
	p.raw = append(json.RawMessage(nil), data...)
	return nil
}

// parseNumber converts a decimal string the way a form field would be read:
// surrounding space is ignored and the empty string is zero.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
