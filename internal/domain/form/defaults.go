package form

import (
	"strconv"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04"
	DefaultTime    = "10:00"
	DefaultTaxRate = 18.0
)

// Defaults returns the initial draft for d using the current time.
func Defaults(d Descriptor) Record {
	return DefaultsAt(d, time.Now())
}

// DefaultsAt returns the initial draft for d. The result depends only on d
// and now.
func DefaultsAt(d Descriptor, now time.Time) Record {
	r := Record{}
	for _, s := range d.Sections {
		for _, f := range s.Fields {
			if v, ok := defaultFor(d.Module, f, now); ok {
				r[f.Name] = v
			}
		}
	}
	if d.HasLineItems() {
		ApplyTotals(r)
	}
	return r
}

func defaultFor(m Module, f Field, now time.Time) (any, bool) {
	switch f.Type {
	case TypeSelect:
		if m == ModuleQuotations && f.Name == KeyCustomerType.Name() {
			return CustomerConsultation, true
		}
		if len(f.Options) == 0 {
			return "", true
		}
		return f.Options[0].Value, true
	case TypeNumber, TypeCurrency:
		switch f.Name {
		case KeyTaxRate.Name():
			return DefaultTaxRate, true
		case KeyDiscountPercentage.Name():
			return 0.0, true
		}
		if f.Min != nil {
			return *f.Min, true
		}
		return 0.0, true
	case TypeDate:
		return now.Format(DateLayout), true
	case TypeDateTime:
		return now.Format(DateTimeLayout), true
	case TypeTime:
		return DefaultTime, true
	case TypeLineItems:
		return []LineItem{NewLineItem(now)}, true
	case TypeDisplay:
		return nil, false
	default:
		switch f.Name {
		case KeyQuoteNumber.Name():
			return ReferenceNumber("QT", now), true
		case KeyInvoiceNumber.Name():
			return ReferenceNumber("INV", now), true
		}
		return "", true
	}
}

// ReferenceNumber builds a human-readable identifier such as QT-1760601600000.
func ReferenceNumber(prefix string, now time.Time) string {
	return prefix + "-" + strconv.FormatInt(now.UnixMilli(), 10)
}
