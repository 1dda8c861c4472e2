package form

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

var fixedNow = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

func TestDefaultsAt(t *testing.T) {
	t.Run("deterministic for a fixed clock", func(t *testing.T) {
		for _, m := range Modules() {
			d, _ := For(m, sampleRefs())
			a := DefaultsAt(d, fixedNow)
			b := DefaultsAt(d, fixedNow)
			if !reflect.DeepEqual(a, b) {
				t.Fatalf("%s: expected identical defaults\n%v\n%v", m, a, b)
			}
		}
	})

	t.Run("quotation defaults", func(t *testing.T) {
		r := DefaultsAt(QuotationForm(nil, nil, nil), fixedNow)
		if r["customer_type"] != CustomerConsultation {
			t.Fatalf("expected consultation customer type, got %v", r["customer_type"])
		}
		if r["tax_rate"] != 18.0 || r["discount_percentage"] != 0.0 {
			t.Fatalf("unexpected rates: %v %v", r["tax_rate"], r["discount_percentage"])
		}
		if r["quote_number"] != "QT-"+"1792143000000" {
			t.Fatalf("unexpected quote number %v", r["quote_number"])
		}
		if r["quote_date"] != "2026-10-16" {
			t.Fatalf("unexpected quote date %v", r["quote_date"])
		}
		items := KeyItems.Get(r)
		if len(items) != 1 || items[0].Description != "" || items[0].ID == "" {
			t.Fatalf("expected one empty item, got %+v", items)
		}
		if r["status"] != "draft" {
			t.Fatalf("expected first status option, got %v", r["status"])
		}
		if _, ok := r["customer_id"]; !ok {
			t.Fatalf("expected select default even with empty options")
		}
	})

	t.Run("invoice number shares the timestamp pattern", func(t *testing.T) {
		a := DefaultsAt(InvoiceForm(nil, nil, nil), fixedNow)
		b := DefaultsAt(InvoiceForm(nil, nil, nil), fixedNow.Add(time.Second))
		na, nb := a["invoice_number"].(string), b["invoice_number"].(string)
		if !strings.HasPrefix(na, "INV-") || !strings.HasPrefix(nb, "INV-") {
			t.Fatalf("unexpected invoice numbers %q %q", na, nb)
		}
		if na == nb {
			t.Fatalf("expected numbers derived from the clock")
		}
	})

	t.Run("time and number defaults", func(t *testing.T) {
		r := DefaultsAt(InstallationForm(nil, nil), fixedNow)
		if r["installation_time"] != DefaultTime {
			t.Fatalf("expected %s, got %v", DefaultTime, r["installation_time"])
		}
		if r["quantity"] != 1.0 {
			t.Fatalf("expected quantity min as default, got %v", r["quantity"])
		}
		if r["brand"] != "" {
			t.Fatalf("expected empty text, got %v", r["brand"])
		}
	})

	t.Run("display fields get computed aggregates only", func(t *testing.T) {
		r := DefaultsAt(QuotationForm(nil, nil, nil), fixedNow)
		if r["total_amount"] != 0.0 {
			t.Fatalf("expected zero total, got %v", r["total_amount"])
		}
		lead := DefaultsAt(LeadForm(), fixedNow)
		if _, ok := lead["total_amount"]; ok {
			t.Fatalf("unexpected aggregate on lead defaults")
		}
	})
}
