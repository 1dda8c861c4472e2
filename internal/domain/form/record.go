package form

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Record is a draft or submitted form value set, keyed by field name.
// Values arrive from JSON so numbers are usually float64 and line items
// []any until normalized.
type Record map[string]any

// Clone returns a copy that can be changed without touching r.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		if items, ok := v.([]LineItem); ok {
			cp := make([]LineItem, len(items))
			copy(cp, items)
			v = cp
		}
		out[k] = v
	}
	return out
}

// String returns the value as trimmed text. Numbers are formatted without
// trailing zeros.
func (r Record) String(name string) string {
	switch v := r[name].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// Float returns the numeric value and whether one was present.
func (r Record) Float(name string) (float64, bool) {
	return toFloat(r[name])
}

// Items returns the line items, normalized and with totals recomputed.
func (r Record) Items(name string) []LineItem {
	return toLineItems(r[name])
}

// IsEmpty reports whether the field has no meaningful value.
func (r Record) IsEmpty(name string) bool {
	switch v := r[name].(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []LineItem:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}

// Key is a typed accessor for one record field.
type Key[T any] struct {
	name string
}

func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

func (k Key[T]) Name() string { return k.name }

func (k Key[T]) Get(r Record) T {
	var zero T
	switch any(zero).(type) {
	case string:
		return any(r.String(k.name)).(T)
	case float64:
		v, _ := r.Float(k.name)
		return any(v).(T)
	case []LineItem:
		return any(r.Items(k.name)).(T)
	}
	v, _ := r[k.name].(T)
	return v
}

func (k Key[T]) Set(r Record, v T) {
	r[k.name] = v
}

// Keys shared by the quotation, invoice and conversion code paths.
var (
	KeyCustomerType       = NewKey[string]("customer_type")
	KeyCustomerID         = NewKey[string]("customer_id")
	KeyCustomerName       = NewKey[string]("customer_name")
	KeyCustomerEmail      = NewKey[string]("customer_email")
	KeyCustomerPhone      = NewKey[string]("customer_phone")
	KeyCustomerAddress    = NewKey[string]("customer_address")
	KeyLeadID             = NewKey[string]("lead_id")
	KeyProjectID          = NewKey[string]("project_id")
	KeyQuoteNumber        = NewKey[string]("quote_number")
	KeyInvoiceNumber      = NewKey[string]("invoice_number")
	KeyInvoiceType        = NewKey[string]("invoice_type")
	KeyInvoiceDate        = NewKey[string]("invoice_date")
	KeyDueDate            = NewKey[string]("due_date")
	KeyPaymentTerms       = NewKey[string]("payment_terms")
	KeyStatus             = NewKey[string]("status")
	KeyItems              = NewKey[[]LineItem]("items")
	KeySubtotal           = NewKey[float64]("subtotal")
	KeyDiscountPercentage = NewKey[float64]("discount_percentage")
	KeyDiscountAmount     = NewKey[float64]("discount_amount")
	KeyTaxRate            = NewKey[float64]("tax_rate")
	KeyTaxAmount          = NewKey[float64]("tax_amount")
	KeyTotalAmount        = NewKey[float64]("total_amount")
)

// Customer types offered on quotations.
const (
	CustomerExisting     = "existing"
	CustomerNew          = "new"
	CustomerConsultation = "consultation"
)

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
