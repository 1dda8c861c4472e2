package form

import "testing"

func TestUpdateLineItem(t *testing.T) {
	items := []LineItem{{ID: "a", Description: "Split AC", Quantity: 1, UnitPrice: 100, Total: 100}}

	t.Run("quantity recomputes total", func(t *testing.T) {
		out := UpdateLineItem(items, 0, "quantity", 3.0)
		if out[0].Total != 300 {
			t.Fatalf("expected 300, got %v", out[0].Total)
		}
		if items[0].Quantity != 1 {
			t.Fatalf("input must not be mutated")
		}
	})

	t.Run("unit price from string", func(t *testing.T) {
		out := UpdateLineItem(items, 0, "unit_price", "250.5")
		if out[0].Total != 250.5 {
			t.Fatalf("expected 250.5, got %v", out[0].Total)
		}
	})

	t.Run("total is not settable", func(t *testing.T) {
		out := UpdateLineItem(items, 0, "total", 999.0)
		if out[0].Total != 100 {
			t.Fatalf("expected derived total, got %v", out[0].Total)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		out := UpdateLineItem(items, 4, "quantity", 2.0)
		if out[0].Quantity != 1 {
			t.Fatalf("expected unchanged items")
		}
	})
}

func TestRemoveLineItem(t *testing.T) {
	out := RemoveLineItem([]LineItem{{ID: "a"}}, 0, fixedNow)
	if len(out) != 1 || out[0].ID == "a" {
		t.Fatalf("expected a fresh row, got %+v", out)
	}
}

func TestComputeTotals(t *testing.T) {
	cases := []struct {
		name                      string
		items                     []LineItem
		discount, tax             float64
		subtotal, disc, taxAmt, t float64
	}{
		{
			name:     "quotation example",
			items:    []LineItem{{Description: "AC unit", Quantity: 2, UnitPrice: 15000}},
			tax:      18,
			subtotal: 30000, taxAmt: 5400, t: 35400,
		},
		{
			name:     "discount before tax",
			items:    []LineItem{{Quantity: 1, UnitPrice: 1000}, {Quantity: 4, UnitPrice: 250}},
			discount: 10, tax: 18,
			subtotal: 2000, disc: 200, taxAmt: 324, t: 2124,
		},
		{
			name:     "rounding to cents",
			items:    []LineItem{{Quantity: 3, UnitPrice: 33.333}},
			tax:      18,
			subtotal: 100, taxAmt: 18, t: 118,
		},
		{
			name: "no items",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeTotals(tc.items, tc.discount, tc.tax)
			if got.Subtotal != tc.subtotal || got.DiscountAmount != tc.disc || got.TaxAmount != tc.taxAmt || got.TotalAmount != tc.t {
				t.Fatalf("unexpected totals: %+v", got)
			}
			if got.TotalAmount != got.Subtotal-got.DiscountAmount+got.TaxAmount {
				t.Fatalf("total does not add up: %+v", got)
			}
		})
	}
}

func TestRecordItems(t *testing.T) {
	r := Record{"items": []any{
		map[string]any{"id": "x", "description": "Duct", "quantity": "2", "unit_price": 50.0, "total": 1.0},
		"garbage",
	}}
	items := r.Items("items")
	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}
	if items[0].Total != 100 {
		t.Fatalf("expected recomputed total, got %v", items[0].Total)
	}
}

func TestLineItemValid(t *testing.T) {
	tests := []struct {
		name string
		item LineItem
		want bool
	}{
		{name: "complete", item: LineItem{Description: "Filter", Quantity: 1, UnitPrice: 50}, want: true},
		{name: "blank description", item: LineItem{Description: "   ", Quantity: 1, UnitPrice: 50}, want: false},
		{name: "zero quantity", item: LineItem{Description: "Filter", UnitPrice: 50}, want: false},
		{name: "zero price", item: LineItem{Description: "Filter", Quantity: 1}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Valid(); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}

	if got := ValidItems([]LineItem{{Description: "\t", Quantity: 2, UnitPrice: 10}}); len(got) != 0 {
		t.Fatalf("expected whitespace-only item to be dropped, got %v", got)
	}
}
