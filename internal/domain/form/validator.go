package form

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Violations maps a field name to a user-facing message.
type Violations map[string]string

func (v Violations) Add(field, msg string) {
	if _, exists := v[field]; !exists {
		v[field] = msg
	}
}

func (v Violations) Empty() bool { return len(v) == 0 }

var (
	shapes = validator.New()

	// Digits with optional leading +, spaces, dashes, dots and brackets.
	phonePattern = regexp.MustCompile(`^\+?[0-9\s\-().]{7,20}$`)
)

const (
	msgInvalidEmail = "Enter a valid email address"
	msgInvalidPhone = "Enter a valid phone number"
	msgLineItems    = "Add at least one line item with a description, quantity and unit price"
)

// Validate checks r against every visible field of d and then against the
// module's cross-field rules. It returns an empty map when r is valid.
func Validate(r Record, d Descriptor) Violations {
	out := Violations{}
	for _, vf := range d.walk(r) {
		if !vf.Visible {
			continue
		}
		validateField(out, vf.Field, r)
	}
	if rule, ok := crossRules[d.Module]; ok {
		rule(out, r)
	}
	return out
}

// ValidatePartial checks only the fields present in r. Required fields may
// be absent but not blanked. Cross-field rules are skipped.
func ValidatePartial(r Record, d Descriptor) Violations {
	out := Violations{}
	for _, vf := range d.walk(r) {
		if _, present := r[vf.Name]; !present {
			continue
		}
		validateField(out, vf.Field, r)
	}
	return out
}

func validateField(out Violations, f Field, r Record) {
	if f.Type == TypeDisplay {
		return
	}
	if r.IsEmpty(f.Name) {
		if f.Required {
			out.Add(f.Name, fmt.Sprintf("%s is required", f.Label))
		}
		return
	}

	switch f.Type {
	case TypeEmail:
		if shapes.Var(r.String(f.Name), "required,email") != nil {
			out.Add(f.Name, msgInvalidEmail)
		}
	case TypeTel:
		if !phonePattern.MatchString(r.String(f.Name)) {
			out.Add(f.Name, msgInvalidPhone)
		}
	case TypeNumber, TypeCurrency:
		n, ok := r.Float(f.Name)
		switch {
		case !ok:
			out.Add(f.Name, fmt.Sprintf("%s must be a number", f.Label))
		case f.Min != nil && n < *f.Min:
			out.Add(f.Name, fmt.Sprintf("%s must be at least %g", f.Label, *f.Min))
		case f.Max != nil && n > *f.Max:
			out.Add(f.Name, fmt.Sprintf("%s must be at most %g", f.Label, *f.Max))
		}
	case TypeLineItems:
		if f.Required && len(ValidItems(r.Items(f.Name))) == 0 {
			out.Add(f.Name, msgLineItems)
		}
	}

	if f.Validate != nil {
		if msg := f.Validate(r[f.Name], r); msg != "" {
			out.Add(f.Name, msg)
		}
	}
}

var crossRules = map[Module]func(Violations, Record){
	ModuleQuotations: quotationRules,
	ModuleInvoices:   invoiceRules,
}

func quotationRules(out Violations, r Record) {
	switch KeyCustomerType.Get(r) {
	case CustomerExisting:
		if KeyCustomerID.Get(r) == "" {
			out.Add(KeyCustomerID.Name(), "Select an existing customer")
		}
	case CustomerNew, CustomerConsultation:
		requireAll(out, r, map[string]string{
			KeyCustomerName.Name():    "Customer name is required",
			KeyCustomerEmail.Name():   "Customer email is required",
			KeyCustomerPhone.Name():   "Customer phone is required",
			KeyCustomerAddress.Name(): "Customer address is required",
		})
	default:
		out.Add(KeyCustomerType.Name(), "Choose how the customer is identified")
	}

	if len(ValidItems(KeyItems.Get(r))) == 0 {
		out.Add(KeyItems.Name(), msgLineItems)
	}
	if KeyProjectID.Get(r) == "" {
		out.Add(KeyProjectID.Name(), "A project is required for every quotation")
	}
}

func invoiceRules(out Violations, r Record) {
	requireAll(out, r, map[string]string{
		KeyProjectID.Name():    "Project is required",
		KeyCustomerID.Name():   "Customer is required",
		KeyInvoiceType.Name():  "Invoice type is required",
		KeyPaymentTerms.Name(): "Payment terms are required",
		KeyDueDate.Name():      "Due date is required",
	})

	due, issued := KeyDueDate.Get(r), KeyInvoiceDate.Get(r)
	if due != "" && issued != "" && due < issued {
		out.Add(KeyDueDate.Name(), "Due date cannot be before the invoice date")
	}

	items := ValidItems(KeyItems.Get(r))
	if len(items) == 0 {
		out.Add(KeyItems.Name(), msgLineItems)
		return
	}
	discount, _ := r.Float(KeyDiscountPercentage.Name())
	tax, _ := r.Float(KeyTaxRate.Name())
	if ComputeTotals(items, discount, tax).TotalAmount <= 0 {
		out.Add(KeyTotalAmount.Name(), "Total amount must be greater than zero")
	}
}

func requireAll(out Violations, r Record, fields map[string]string) {
	for name, msg := range fields {
		if strings.TrimSpace(r.String(name)) == "" {
			out.Add(name, msg)
		}
	}
}

// notBefore builds a validator rejecting dates earlier than the named field.
func notBefore(other, label string) FieldValidator {
	return func(value any, r Record) string {
		v, _ := value.(string)
		start := r.String(other)
		if v == "" || start == "" || v >= start {
			return ""
		}
		return fmt.Sprintf("Must not be before the %s", label)
	}
}

func positive(label string) FieldValidator {
	return func(value any, _ Record) string {
		if n, ok := toFloat(value); ok && n <= 0 {
			return fmt.Sprintf("%s must be greater than zero", label)
		}
		return ""
	}
}
