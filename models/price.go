package models

import (
	"bytes"
	"encoding/json"
	"math"
)

// PriceValue keeps avg_price exactly as the backend sent it. The backend does
// not guarantee a number, so the decision between currency formatting and raw
// display is left to the renderer.
type PriceValue struct {
	raw json.RawMessage
}

// NewPriceValue encodes v as a price value. Values that cannot be encoded are treated as absent.
func NewPriceValue(v interface{}) PriceValue {
	data, err := json.Marshal(v)
	if err != nil {
		return PriceValue{}
	}
	return PriceValue{raw: data}
}

func (p *PriceValue) UnmarshalJSON(data []byte) error {
	p.raw = append(p.raw[:0], data...)
	return nil
}

func (p PriceValue) MarshalJSON() ([]byte, error) {
	if len(p.raw) == 0 {
		return []byte("null"), nil
	}
	return p.raw, nil
}

// Number reports the price as a float64 when it was sent as a finite JSON number.
// Numeric strings such as "12.5" are not numbers.
func (p PriceValue) Number() (float64, bool) {
	trimmed := bytes.TrimSpace(p.raw)
	if len(trimmed) == 0 {
		return 0, false
	}
	if first := trimmed[0]; first != '-' && (first < '0' || first > '9') {
		return 0, false
	}

	var value float64
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return 0, false
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

// Raw returns the textual form of the value: strings unquoted, null or absent as
// the empty string, anything else as its JSON text.
func (p PriceValue) Raw() string {
	trimmed := bytes.TrimSpace(p.raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}

	if trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err == nil {
			return text
		}
	}
	return string(trimmed)
}
