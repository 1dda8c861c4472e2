// Package form describes CRM forms declaratively and implements the
// behavior built on top of those descriptions: validation, default drafts,
// change handling with conditional visibility, and submission payloads.
package form

import (
	"errors"
	"fmt"
)

type FieldType string

const (
	TypeText      FieldType = "text"
	TypeEmail     FieldType = "email"
	TypeTel       FieldType = "tel"
	TypeNumber    FieldType = "number"
	TypePassword  FieldType = "password"
	TypeDate      FieldType = "date"
	TypeDateTime  FieldType = "datetime"
	TypeTime      FieldType = "time"
	TypeTextarea  FieldType = "textarea"
	TypeSelect    FieldType = "select"
	TypeCurrency  FieldType = "currency"
	TypeDisplay   FieldType = "display"
	TypeLineItems FieldType = "line-items"
)

// Module identifies one of the business entities a form manages.
type Module string

const (
	ModuleLeads         Module = "leads"
	ModuleEmployees     Module = "employees"
	ModuleProjects      Module = "projects"
	ModuleQuotations    Module = "quotations"
	ModuleInvoices      Module = "invoices"
	ModulePayments      Module = "payments"
	ModuleSiteVisits    Module = "site_visits"
	ModuleInstallations Module = "installations"
	ModuleAMCContracts  Module = "amc_contracts"
)

func Modules() []Module {
	return []Module{
		ModuleLeads,
		ModuleEmployees,
		ModuleProjects,
		ModuleQuotations,
		ModuleInvoices,
		ModulePayments,
		ModuleSiteVisits,
		ModuleInstallations,
		ModuleAMCContracts,
	}
}

func ParseModule(s string) (Module, bool) {
	for _, m := range Modules() {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// HiddenPolicy declares what happens to a field's value while the field
// (or its section) is hidden.
//
//   - HiddenKeep: the stale value stays in the draft and is submitted.
//   - HiddenOmit: the value stays in the draft but is not submitted.
//   - HiddenClear: the value is reset as soon as the field becomes hidden.
//
// Hidden fields are never validated, whatever the policy.
type HiddenPolicy string

const (
	HiddenKeep  HiddenPolicy = "keep"
	HiddenOmit  HiddenPolicy = "omit"
	HiddenClear HiddenPolicy = "clear"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
}

// Predicate decides visibility from the current draft.
type Predicate func(r Record) bool

// FieldValidator returns a message when value is not acceptable, or "".
type FieldValidator func(value any, r Record) string

type Field struct {
	Name        string
	Label       string
	Type        FieldType
	Required    bool
	Placeholder string
	Hint        string
	Options     []Option
	Min         *float64
	Max         *float64
	Step        *float64
	Rows        int
	Currency    string
	ShowWhen    Predicate
	Validate    FieldValidator
	WhenHidden  HiddenPolicy
}

type Section struct {
	Title       string
	Description string
	Fields      []Field
	Columns     int
	ShowWhen    Predicate
}

// Descriptor is the full description of one form. Factories build a new
// Descriptor whenever the reference lists feeding its selects change; a
// Descriptor is never mutated after construction.
type Descriptor struct {
	Title       string
	Subtitle    string
	Sections    []Section
	Module      Module
	MaxWidth    string
	SubmitLabel string
}

var (
	ErrDuplicateField   = errors.New("duplicate field name in section")
	ErrMissingOptions   = errors.New("select field without options")
	ErrInvalidColumns   = errors.New("section columns must be between 1 and 4")
	ErrUnknownFieldType = errors.New("unknown field type")
)

// Check verifies the structural invariants of the descriptor.
func (d Descriptor) Check() error {
	for _, s := range d.Sections {
		if s.Columns < 1 || s.Columns > 4 {
			return fmt.Errorf("%w: section %q has %d", ErrInvalidColumns, s.Title, s.Columns)
		}
		seen := make(map[string]struct{}, len(s.Fields))
		for _, f := range s.Fields {
			if _, ok := seen[f.Name]; ok {
				return fmt.Errorf("%w: %s", ErrDuplicateField, f.Name)
			}
			seen[f.Name] = struct{}{}
			if !knownType(f.Type) {
				return fmt.Errorf("%w: %s (%s)", ErrUnknownFieldType, f.Type, f.Name)
			}
			if f.Type == TypeSelect && f.Options == nil {
				return fmt.Errorf("%w: %s", ErrMissingOptions, f.Name)
			}
		}
	}
	return nil
}

// Field looks a field up by name across all sections.
func (d Descriptor) Field(name string) (Field, bool) {
	for _, s := range d.Sections {
		for _, f := range s.Fields {
			if f.Name == name {
				return f, true
			}
		}
	}
	return Field{}, false
}

// HasLineItems reports whether the form owns line items and aggregates.
func (d Descriptor) HasLineItems() bool {
	for _, s := range d.Sections {
		for _, f := range s.Fields {
			if f.Type == TypeLineItems {
				return true
			}
		}
	}
	return false
}

// visibleField is one field with its visibility evaluated against a draft.
type visibleField struct {
	Field
	Visible bool
}

// walk evaluates every predicate against r. A field inside a hidden
// section is hidden regardless of its own predicate.
func (d Descriptor) walk(r Record) []visibleField {
	var out []visibleField
	for _, s := range d.Sections {
		sectionVisible := s.ShowWhen == nil || s.ShowWhen(r)
		for _, f := range s.Fields {
			visible := sectionVisible && (f.ShowWhen == nil || f.ShowWhen(r))
			out = append(out, visibleField{Field: f, Visible: visible})
		}
	}
	return out
}

func (f Field) hiddenPolicy() HiddenPolicy {
	if f.WhenHidden == "" {
		return HiddenKeep
	}
	return f.WhenHidden
}

func knownType(t FieldType) bool {
	switch t {
	case TypeText, TypeEmail, TypeTel, TypeNumber, TypePassword, TypeDate, TypeDateTime,
		TypeTime, TypeTextarea, TypeSelect, TypeCurrency, TypeDisplay, TypeLineItems:
		return true
	}
	return false
}

func ptr(v float64) *float64 { return &v }
