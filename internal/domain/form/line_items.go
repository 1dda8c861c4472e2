package form

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// LineItem is one priced row of a quotation or invoice draft. Total is
// derived from Quantity and UnitPrice and is never set on its own.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// NewLineItem returns an empty item with a client-side id derived from now.
func NewLineItem(now time.Time) LineItem {
	return LineItem{
		ID:       "item-" + strconv.FormatInt(now.UnixMilli(), 10),
		Quantity: 1,
	}
}

// Valid reports whether the item may be persisted.
func (li LineItem) Valid() bool {
	return strings.TrimSpace(li.Description) != "" && li.Quantity > 0 && li.UnitPrice > 0
}

func (li LineItem) recomputed() LineItem {
	li.Total = round2(li.Quantity * li.UnitPrice)
	return li
}

// UpdateLineItem returns a copy of items with one field of the item at
// index changed and that item's total recomputed. Unknown fields and
// out-of-range indexes leave the items unchanged.
func UpdateLineItem(items []LineItem, index int, field string, value any) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	if index < 0 || index >= len(out) {
		return out
	}
	it := out[index]
	switch field {
	case "description":
		if s, ok := value.(string); ok {
			it.Description = s
		}
	case "quantity":
		if f, ok := toFloat(value); ok {
			it.Quantity = f
		}
	case "unit_price":
		if f, ok := toFloat(value); ok {
			it.UnitPrice = f
		}
	}
	out[index] = it.recomputed()
	return out
}

// RemoveLineItem drops the item at index, keeping at least one row.
func RemoveLineItem(items []LineItem, index int, now time.Time) []LineItem {
	if index < 0 || index >= len(items) {
		return items
	}
	out := make([]LineItem, 0, len(items)-1)
	out = append(out, items[:index]...)
	out = append(out, items[index+1:]...)
	if len(out) == 0 {
		out = append(out, NewLineItem(now))
	}
	return out
}

// ValidItems filters out rows that cannot be persisted.
func ValidItems(items []LineItem) []LineItem {
	var out []LineItem
	for _, it := range items {
		if it.Valid() {
			out = append(out, it)
		}
	}
	return out
}

type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	TaxAmount      float64 `json:"tax_amount"`
	TotalAmount    float64 `json:"total_amount"`
}

// ComputeTotals derives the aggregate amounts. Tax applies after discount.
func ComputeTotals(items []LineItem, discountPercentage, taxRate float64) Totals {
	subtotal := 0.0
	for _, it := range items {
		subtotal += it.Quantity * it.UnitPrice
	}
	subtotal = round2(subtotal)
	discount := round2(subtotal * discountPercentage / 100)
	tax := round2((subtotal - discount) * taxRate / 100)
	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxAmount:      tax,
		TotalAmount:    round2(subtotal - discount + tax),
	}
}

// ApplyTotals writes the aggregates of r's items into r.
func ApplyTotals(r Record) Totals {
	discount, _ := r.Float(KeyDiscountPercentage.Name())
	tax, _ := r.Float(KeyTaxRate.Name())
	items := KeyItems.Get(r)
	totals := ComputeTotals(items, discount, tax)
	KeyItems.Set(r, items)
	KeySubtotal.Set(r, totals.Subtotal)
	KeyDiscountAmount.Set(r, totals.DiscountAmount)
	KeyTaxAmount.Set(r, totals.TaxAmount)
	KeyTotalAmount.Set(r, totals.TotalAmount)
	return totals
}

func toLineItems(v any) []LineItem {
	switch items := v.(type) {
	case []LineItem:
		out := make([]LineItem, len(items))
		for i, it := range items {
			out[i] = it.recomputed()
		}
		return out
	case []any:
		out := make([]LineItem, 0, len(items))
		for _, raw := range items {
			m, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			r := Record(m)
			it := LineItem{
				ID:          r.String("id"),
				Description: r.String("description"),
			}
			it.Quantity, _ = r.Float("quantity")
			it.UnitPrice, _ = r.Float("unit_price")
			out = append(out, it.recomputed())
		}
		return out
	case []map[string]any:
		raw := make([]any, len(items))
		for i := range items {
			raw[i] = items[i]
		}
		return toLineItems(raw)
	default:
		return nil
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
