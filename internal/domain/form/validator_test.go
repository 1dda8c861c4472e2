package form

import "testing"

func janeQuotation() Record {
	return Record{
		"customer_type":       CustomerNew,
		"customer_name":       "Jane Doe",
		"customer_email":      "jane@x.com",
		"customer_phone":      "9999999999",
		"customer_address":    "123 St",
		"project_id":          "p-1",
		"tax_rate":            18.0,
		"discount_percentage": 0.0,
		"items": []any{
			map[string]any{"id": "item-1", "description": "AC unit", "quantity": 2.0, "unit_price": 15000.0},
		},
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	for _, m := range Modules() {
		d, _ := For(m, ReferenceData{})
		t.Run(string(m), func(t *testing.T) {
			blank := Record{}
			for _, vf := range d.walk(blank) {
				blank[vf.Name] = "   "
			}
			got := Validate(blank, d)
			for _, vf := range d.walk(blank) {
				if !vf.Visible || vf.Type == TypeDisplay {
					continue
				}
				_, flagged := got[vf.Name]
				if vf.Required && !flagged {
					t.Fatalf("expected required error on %s", vf.Name)
				}
			}
		})
	}

	t.Run("optional empty fields produce no errors", func(t *testing.T) {
		d := LeadForm()
		r := Record{
			"name":          "Jane",
			"email":         "jane@x.com",
			"phone":         "+91 98765 43210",
			"service_type":  "ac_repair",
			"city":          "",
			"message":       "  ",
			"urgency":       "",
			"property_type": nil,
		}
		if got := Validate(r, d); !got.Empty() {
			t.Fatalf("expected no errors, got %v", got)
		}
	})
}

func TestValidate_Email(t *testing.T) {
	d := Descriptor{Module: ModuleLeads, Sections: []Section{{Columns: 1, Fields: []Field{
		{Name: "email", Label: "Email", Type: TypeEmail},
	}}}}

	if got := Validate(Record{"email": "not-an-email"}, d); got["email"] == "" {
		t.Fatalf("expected email error")
	}
	if got := Validate(Record{"email": "a@b.com"}, d); !got.Empty() {
		t.Fatalf("expected valid email, got %v", got)
	}
}

func TestValidate_Phone(t *testing.T) {
	d := Descriptor{Sections: []Section{{Columns: 1, Fields: []Field{{Name: "phone", Label: "Phone", Type: TypeTel}}}}}
	cases := map[string]bool{
		"9999999999":      true,
		"+91 98765 43210": true,
		"(555) 123-4567":  true,
		"12":              false,
		"call me":         false,
	}
	for in, ok := range cases {
		got := Validate(Record{"phone": in}, d)
		if ok != got.Empty() {
			t.Fatalf("phone %q: expected valid=%v, got %v", in, ok, got)
		}
	}
}

func TestValidate_NumbersAndCustom(t *testing.T) {
	d := AMCContractForm(nil, nil)
	r := Record{
		"customer_id":     "c-1",
		"start_date":      "2026-01-10",
		"end_date":        "2025-12-31",
		"contract_value":  0.0,
		"visits_per_year": 20.0,
	}
	got := Validate(r, d)
	if got["end_date"] == "" {
		t.Fatalf("expected end_date error, got %v", got)
	}
	if got["contract_value"] == "" {
		t.Fatalf("expected contract_value error, got %v", got)
	}
	if got["visits_per_year"] == "" {
		t.Fatalf("expected visits_per_year error, got %v", got)
	}

	if got := Validate(Record{"customer_id": "c-1", "start_date": "2026-01-10", "end_date": "2026-12-31", "contract_value": "abc"}, d); got["contract_value"] == "" {
		t.Fatalf("expected number error, got %v", got)
	}
}

func TestValidate_HiddenFieldsSkipped(t *testing.T) {
	d := QuotationForm(nil, nil, nil)
	r := janeQuotation()
	r["customer_type"] = CustomerExisting
	r["customer_id"] = "c-1"
	r["customer_email"] = "not-an-email"

	if got := Validate(r, d); !got.Empty() {
		t.Fatalf("expected hidden new-customer block to be ignored, got %v", got)
	}
}

func TestValidate_Quotation(t *testing.T) {
	d := QuotationForm(nil, nil, nil)

	t.Run("new customer without name", func(t *testing.T) {
		r := janeQuotation()
		r["customer_name"] = ""
		delete(r, "project_id")
		got := Validate(r, d)
		if got["customer_name"] == "" {
			t.Fatalf("expected customer_name error, got %v", got)
		}
		if got["project_id"] == "" {
			t.Fatalf("expected project_id error, got %v", got)
		}
	})

	t.Run("complete new customer passes", func(t *testing.T) {
		if got := Validate(janeQuotation(), d); !got.Empty() {
			t.Fatalf("expected no errors, got %v", got)
		}
	})

	t.Run("existing customer needs an id", func(t *testing.T) {
		r := janeQuotation()
		r["customer_type"] = CustomerExisting
		if got := Validate(r, d); got["customer_id"] == "" {
			t.Fatalf("expected customer_id error, got %v", got)
		}
	})

	t.Run("items must be complete", func(t *testing.T) {
		r := janeQuotation()
		r["items"] = []any{map[string]any{"description": "AC unit", "quantity": 2.0, "unit_price": 0.0}}
		if got := Validate(r, d); got["items"] == "" {
			t.Fatalf("expected items error, got %v", got)
		}
	})
}

func TestValidate_Invoice(t *testing.T) {
	d := InvoiceForm(nil, nil, nil)
	valid := func() Record {
		return Record{
			"invoice_type":  "standard",
			"project_id":    "p-1",
			"customer_id":   "c-1",
			"invoice_date":  "2026-10-16",
			"due_date":      "2026-11-15",
			"payment_terms": "net_30",
			"tax_rate":      18.0,
			"items":         []LineItem{{Description: "Service", Quantity: 1, UnitPrice: 500}},
		}
	}

	t.Run("valid", func(t *testing.T) {
		if got := Validate(valid(), d); !got.Empty() {
			t.Fatalf("expected no errors, got %v", got)
		}
	})

	t.Run("due before invoice date", func(t *testing.T) {
		r := valid()
		r["due_date"] = "2026-10-01"
		if got := Validate(r, d); got["due_date"] == "" {
			t.Fatalf("expected due_date error, got %v", got)
		}
	})

	t.Run("mandatory links", func(t *testing.T) {
		r := valid()
		delete(r, "project_id")
		r["customer_id"] = ""
		got := Validate(r, d)
		if got["project_id"] == "" || got["customer_id"] == "" {
			t.Fatalf("expected project and customer errors, got %v", got)
		}
	})

	t.Run("total must be positive", func(t *testing.T) {
		r := valid()
		r["discount_percentage"] = 100.0
		if got := Validate(r, d); got["total_amount"] == "" {
			t.Fatalf("expected total_amount error, got %v", got)
		}
	})
}

func TestValidatePartial(t *testing.T) {
	d := LeadForm()
	if got := ValidatePartial(Record{"status": "contacted"}, d); !got.Empty() {
		t.Fatalf("expected no errors, got %v", got)
	}
	got := ValidatePartial(Record{"name": " ", "email": "nope"}, d)
	if got["name"] == "" || got["email"] == "" {
		t.Fatalf("expected name and email errors, got %v", got)
	}
}
