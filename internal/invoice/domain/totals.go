package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Totals aggregates line items. Sums are exact float64 arithmetic; rounding
// for display is the caller's concern.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	TaxTotal   float64 `json:"taxTotal"`
	GrandTotal float64 `json:"grandTotal"`
}

// ComputeTotals prices validated line items:
// subtotal = sum(quantity*price), taxTotal = sum(quantity*price*taxRate/100).
func ComputeTotals(items []InvoiceItem) Totals {
	var totals Totals
	for _, item := range items {
		line := item.Quantity * item.Price
		totals.Subtotal += line
		totals.TaxTotal += line * item.TaxRate / 100
	}
	totals.GrandTotal = totals.Subtotal + totals.TaxTotal
	return totals
}

// RawItem carries row values as entered, before validation. Fields may hold
// numbers, numeric strings, or garbage.
type RawItem struct {
	Quantity any `json:"quantity"`
	Price    any `json:"price"`
	TaxRate  any `json:"taxRate"`
}

// ComputeRawTotals prices unvalidated rows: anything that does not coerce to
// a finite number counts as zero, so a half-filled form still totals.
func ComputeRawTotals(items []RawItem) Totals {
	var totals Totals
	for _, item := range items {
		line := toNumber(item.Quantity) * toNumber(item.Price)
		totals.Subtotal += line
		totals.TaxTotal += line * toNumber(item.TaxRate) / 100
	}
	totals.GrandTotal = totals.Subtotal + totals.TaxTotal
	return totals
}

func toNumber(value any) float64 {
	var parsed float64
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		parsed = v
	case float32:
		parsed = float64(v)
	case int:
		parsed = float64(v)
	case int32:
		parsed = float64(v)
	case int64:
		parsed = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		parsed = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		parsed = f
	default:
		return 0
	}
	if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0
	}
	return parsed
}
