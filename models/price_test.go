package models

import (
	"encoding/json"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceValueDecoding(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantNum  float64
		isNumber bool
		wantRaw  string
	}{
		{name: "number", body: `{"avg_price": 12.5}`, wantNum: 12.5, isNumber: true, wantRaw: "12.5"},
		{name: "negative number", body: `{"avg_price": -3}`, wantNum: -3, isNumber: true, wantRaw: "-3"},
		{name: "numeric string", body: `{"avg_price": "12.5"}`, wantRaw: "12.5"},
		{name: "text", body: `{"avg_price": "n/a"}`, wantRaw: "n/a"},
		{name: "null", body: `{"avg_price": null}`, wantRaw: ""},
		{name: "absent", body: `{}`, wantRaw: ""},
		{name: "boolean", body: `{"avg_price": true}`, wantRaw: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entry PricingEntry
			require.NoError(t, json.Unmarshal([]byte(tt.body), &entry))

			number, ok := entry.AvgPrice.Number()
			assert.Equal(t, tt.isNumber, ok)
			assert.Equal(t, tt.wantNum, number)
			assert.Equal(t, tt.wantRaw, entry.AvgPrice.Raw())
		})
	}
}

func TestPriceValueMarshalKeepsBackendText(t *testing.T) {
	var entry PricingEntry
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"Grains","avg_price":"call us","count":2}`), &entry))

	out, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"Grains","avg_price":"call us","count":2}`, string(out))

	out, err = json.Marshal(PricingEntry{Category: "Tubers"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"Tubers","avg_price":null,"count":0}`, string(out))
}

func TestPriceValueNumberProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("any finite float survives as a number", prop.ForAll(
		func(value float64) bool {
			number, ok := NewPriceValue(value).Number()
			return ok && number == value
		},
		gen.Float64Range(-1e9, 1e9),
	))

	properties.Property("strings are never numbers and render unquoted", prop.ForAll(
		func(text string) bool {
			price := NewPriceValue(text)
			_, ok := price.Number()
			return !ok && price.Raw() == text
		},
		gen.AnyString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
