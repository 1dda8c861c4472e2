package form

// Ref is one entry of a reference list feeding a select.
type Ref struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ReferenceData holds the lists forms draw their select options from.
type ReferenceData struct {
	Customers  []Ref
	Employees  []Ref
	Projects   []Ref
	Leads      []Ref
	Quotations []Ref
	Invoices   []Ref
}

// For builds the descriptor of module from ref.
func For(m Module, ref ReferenceData) (Descriptor, bool) {
	switch m {
	case ModuleLeads:
		return LeadForm(), true
	case ModuleEmployees:
		return EmployeeForm(), true
	case ModuleProjects:
		return ProjectForm(ref.Customers, ref.Employees), true
	case ModuleQuotations:
		return QuotationForm(ref.Customers, ref.Projects, ref.Leads), true
	case ModuleInvoices:
		return InvoiceForm(ref.Customers, ref.Projects, ref.Quotations), true
	case ModulePayments:
		return PaymentForm(ref.Invoices, ref.Customers), true
	case ModuleSiteVisits:
		return SiteVisitForm(ref.Projects, ref.Customers, ref.Employees), true
	case ModuleInstallations:
		return InstallationForm(ref.Projects, ref.Employees), true
	case ModuleAMCContracts:
		return AMCContractForm(ref.Customers, ref.Projects), true
	}
	return Descriptor{}, false
}

// refOptions never returns nil so that select fields keep a defined,
// possibly empty, option set.
func refOptions(refs []Ref) []Option {
	out := make([]Option, 0, len(refs))
	for _, r := range refs {
		out = append(out, Option{Value: r.ID, Label: r.Label})
	}
	return out
}

func opts(pairs ...string) []Option {
	out := make([]Option, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Option{Value: pairs[i], Label: pairs[i+1]})
	}
	return out
}

func equals(name string, values ...string) Predicate {
	return func(r Record) bool {
		v := r.String(name)
		for _, want := range values {
			if v == want {
				return true
			}
		}
		return false
	}
}

func notEquals(name string, values ...string) Predicate {
	is := equals(name, values...)
	return func(r Record) bool { return !is(r) }
}

// Option sets shared between modules.
var (
	ServiceTypeOptions = opts(
		"ac_installation", "AC Installation",
		"ac_repair", "AC Repair",
		"ac_maintenance", "AC Maintenance",
		"hvac_design", "HVAC Design",
		"duct_cleaning", "Duct Cleaning",
		"amc", "Annual Maintenance Contract",
		"other", "Other",
	)

	leadStatusOptions = []Option{
		{Value: "new", Label: "New", Color: "blue"},
		{Value: "contacted", Label: "Contacted", Color: "yellow"},
		{Value: "qualified", Label: "Qualified", Color: "purple"},
		{Value: "proposal_sent", Label: "Proposal Sent", Color: "orange"},
		{Value: "won", Label: "Won", Color: "green"},
		{Value: "lost", Label: "Lost", Color: "red"},
		{Value: "cancelled", Label: "Cancelled", Color: "gray"},
	}

	urgencyOptions = []Option{
		{Value: "low", Label: "Low", Color: "green"},
		{Value: "medium", Label: "Medium", Color: "yellow"},
		{Value: "high", Label: "High", Color: "red"},
	}

	priorityOptions = []Option{
		{Value: "low", Label: "Low", Color: "green"},
		{Value: "medium", Label: "Medium", Color: "yellow"},
		{Value: "high", Label: "High", Color: "orange"},
		{Value: "urgent", Label: "Urgent", Color: "red"},
	}

	projectTypeOptions = opts(
		"installation", "Installation",
		"repair", "Repair",
		"maintenance", "Maintenance",
		"design", "Design",
		"amc", "AMC",
		"other", "Other",
	)

	discountTaxFields = []Field{
		{Name: "discount_percentage", Label: "Discount (%)", Type: TypeNumber, Min: ptr(0), Max: ptr(100), Step: ptr(0.01)},
		{Name: "tax_rate", Label: "Tax Rate (%)", Type: TypeNumber, Min: ptr(0), Max: ptr(100), Step: ptr(0.01), Hint: "GST"},
		{Name: "subtotal", Label: "Subtotal", Type: TypeDisplay, Currency: "INR"},
		{Name: "discount_amount", Label: "Discount", Type: TypeDisplay, Currency: "INR"},
		{Name: "tax_amount", Label: "Tax", Type: TypeDisplay, Currency: "INR"},
		{Name: "total_amount", Label: "Total", Type: TypeDisplay, Currency: "INR"},
	}
)

// ServiceLabel returns the display label of a service type value.
func ServiceLabel(value string) string {
	for _, o := range ServiceTypeOptions {
		if o.Value == value {
			return o.Label
		}
	}
	if value == "" {
		return "Service"
	}
	return value
}
