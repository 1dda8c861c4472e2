package request

import (
	"errors"
	"testing"
	"time"

	"hvac_crm/internal/domain/form"
)

func TestChangeRequest_Apply(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

	t.Run("set without draft starts from defaults", func(t *testing.T) {
		out, err := ChangeRequest{Name: "name", Value: "Jane Doe"}.Apply(form.LeadForm(), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out["name"] != "Jane Doe" {
			t.Fatalf("expected name to be set, got %v", out["name"])
		}
	})

	t.Run("add then remove item", func(t *testing.T) {
		d := form.QuotationForm(nil, nil, nil)
		added, err := ChangeRequest{Action: ActionAddItem}.Apply(d, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n := len(form.KeyItems.Get(added)); n != 2 {
			t.Fatalf("expected 2 items, got %d", n)
		}
		removed, err := ChangeRequest{Action: ActionRemoveItem, Draft: added, Index: 0}.Apply(d, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n := len(form.KeyItems.Get(removed)); n != 1 {
			t.Fatalf("expected 1 item, got %d", n)
		}
	})

	t.Run("item change recomputes total", func(t *testing.T) {
		d := form.QuotationForm(nil, nil, nil)
		draft := form.DefaultsAt(d, now)
		draft, _ = ChangeRequest{Action: ActionItemSet, Draft: draft, Index: 0, Field: "quantity", Value: 2.0}.Apply(d, now)
		draft, _ = ChangeRequest{Action: ActionItemSet, Draft: draft, Index: 0, Field: "unit_price", Value: 150.0}.Apply(d, now)
		items := form.KeyItems.Get(draft)
		if items[0].Total != 300 {
			t.Fatalf("expected total 300, got %v", items[0].Total)
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		_, err := ChangeRequest{Action: "explode"}.Apply(form.LeadForm(), now)
		if !errors.Is(err, ErrUnknownChangeAction) {
			t.Fatalf("expected ErrUnknownChangeAction, got %v", err)
		}
	})

	t.Run("set needs a name", func(t *testing.T) {
		_, err := ChangeRequest{Value: "x"}.Apply(form.LeadForm(), now)
		if !errors.Is(err, ErrUnknownChangeAction) {
			t.Fatalf("expected ErrUnknownChangeAction, got %v", err)
		}
	})
}

func TestLeadListQuery_ToFilter(t *testing.T) {
	f := LeadListQuery{Status: " all ", Search: "  jane ", Page: 2, Limit: 10}.ToFilter()
	if f.Status != "" || f.Search != "jane" || f.Page != 2 || f.Limit != 10 {
		t.Fatalf("unexpected filter: %+v", f)
	}
	if got := (LeadListQuery{Status: "won"}).ToFilter().Status; got != "won" {
		t.Fatalf("expected status won, got %q", got)
	}
}

func TestLoginRequest_NormalizedEmail(t *testing.T) {
	if got := (LoginRequest{Email: "  Admin@CRM.local "}).NormalizedEmail(); got != "admin@crm.local" {
		t.Fatalf("unexpected email: %q", got)
	}
}
