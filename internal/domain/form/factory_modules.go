package form

// LeadForm describes a consultation request as staff edit it. The public
// site submits a subset of these fields.
func LeadForm() Descriptor {
	return Descriptor{
		Title:       "Consultation Request",
		Subtitle:    "Capture a customer enquiry",
		Module:      ModuleLeads,
		MaxWidth:    "3xl",
		SubmitLabel: "Save Request",
		Sections: []Section{
			{
				Title:   "Contact Information",
				Columns: 2,
				Fields: []Field{
					{Name: "name", Label: "Full Name", Type: TypeText, Required: true, Placeholder: "John Smith"},
					{Name: "email", Label: "Email", Type: TypeEmail, Required: true, Placeholder: "john@example.com"},
					{Name: "phone", Label: "Phone", Type: TypeTel, Required: true, Placeholder: "+91 98765 43210"},
					{Name: "preferred_contact_method", Label: "Preferred Contact Method", Type: TypeSelect,
						Options: opts("phone", "Phone", "email", "Email", "whatsapp", "WhatsApp")},
					{Name: "preferred_contact_time", Label: "Preferred Contact Time", Type: TypeSelect,
						Options: opts("anytime", "Anytime", "morning", "Morning", "afternoon", "Afternoon", "evening", "Evening")},
				},
			},
			{
				Title:   "Service Details",
				Columns: 2,
				Fields: []Field{
					{Name: "service_type", Label: "Service Type", Type: TypeSelect, Required: true, Options: ServiceTypeOptions},
					{Name: "urgency", Label: "Urgency", Type: TypeSelect, Options: urgencyOptions},
					{Name: "property_type", Label: "Property Type", Type: TypeSelect,
						Options: opts("residential", "Residential", "commercial", "Commercial", "industrial", "Industrial")},
					{Name: "city", Label: "City", Type: TypeText},
					{Name: "address", Label: "Address", Type: TypeText},
					{Name: "message", Label: "Message", Type: TypeTextarea, Rows: 4, Placeholder: "Tell us about your requirement"},
				},
			},
			{
				Title:   "CRM",
				Columns: 2,
				Fields: []Field{
					{Name: "status", Label: "Status", Type: TypeSelect, Options: leadStatusOptions},
					{Name: "source", Label: "Source", Type: TypeSelect,
						Options: opts("website", "Website", "referral", "Referral", "phone", "Phone", "walk_in", "Walk-in", "social_media", "Social Media", "other", "Other")},
					{Name: "notes", Label: "Internal Notes", Type: TypeTextarea, Rows: 3},
				},
			},
		},
	}
}

func EmployeeForm() Descriptor {
	return Descriptor{
		Title:       "Employee",
		Module:      ModuleEmployees,
		MaxWidth:    "3xl",
		SubmitLabel: "Save Employee",
		Sections: []Section{
			{
				Title:   "Personal Details",
				Columns: 2,
				Fields: []Field{
					{Name: "name", Label: "Full Name", Type: TypeText, Required: true},
					{Name: "email", Label: "Email", Type: TypeEmail, Required: true},
					{Name: "phone", Label: "Phone", Type: TypeTel, Required: true},
					{Name: "emergency_contact", Label: "Emergency Contact", Type: TypeTel},
					{Name: "address", Label: "Address", Type: TypeTextarea, Rows: 2},
				},
			},
			{
				Title:   "Employment",
				Columns: 2,
				Fields: []Field{
					{Name: "employee_code", Label: "Employee Code", Type: TypeText, Hint: "Generated when left blank"},
					{Name: "role", Label: "Role", Type: TypeSelect, Required: true,
						Options: opts("technician", "Technician", "senior_technician", "Senior Technician", "supervisor", "Supervisor",
							"project_manager", "Project Manager", "sales", "Sales", "admin", "Admin")},
					{Name: "department", Label: "Department", Type: TypeSelect,
						Options: opts("installation", "Installation", "service", "Service", "sales", "Sales", "operations", "Operations", "accounts", "Accounts")},
					{Name: "hire_date", Label: "Hire Date", Type: TypeDate},
					{Name: "salary", Label: "Monthly Salary", Type: TypeCurrency, Currency: "INR", Min: ptr(0)},
					{Name: "status", Label: "Status", Type: TypeSelect,
						Options: []Option{
							{Value: "active", Label: "Active", Color: "green"},
							{Value: "on_leave", Label: "On Leave", Color: "yellow"},
							{Value: "inactive", Label: "Inactive", Color: "gray"},
						}},
				},
			},
		},
	}
}

func ProjectForm(customers, employees []Ref) Descriptor {
	return Descriptor{
		Title:       "Project",
		Module:      ModuleProjects,
		MaxWidth:    "4xl",
		SubmitLabel: "Save Project",
		Sections: []Section{
			{
				Title:   "Project",
				Columns: 2,
				Fields: []Field{
					{Name: "name", Label: "Project Name", Type: TypeText, Required: true},
					{Name: "project_type", Label: "Project Type", Type: TypeSelect, Required: true, Options: projectTypeOptions},
					{Name: "customer_id", Label: "Customer", Type: TypeSelect, Required: true, Options: refOptions(customers)},
					{Name: "assigned_to", Label: "Project Manager", Type: TypeSelect, Options: refOptions(employees)},
					{Name: "description", Label: "Description", Type: TypeTextarea, Rows: 3},
				},
			},
			{
				Title:   "Schedule & Value",
				Columns: 3,
				Fields: []Field{
					{Name: "status", Label: "Status", Type: TypeSelect,
						Options: []Option{
							{Value: "planning", Label: "Planning", Color: "blue"},
							{Value: "in_progress", Label: "In Progress", Color: "yellow"},
							{Value: "on_hold", Label: "On Hold", Color: "orange"},
							{Value: "completed", Label: "Completed", Color: "green"},
							{Value: "cancelled", Label: "Cancelled", Color: "gray"},
						}},
					{Name: "priority", Label: "Priority", Type: TypeSelect, Options: priorityOptions},
					{Name: "estimated_value", Label: "Estimated Value", Type: TypeCurrency, Currency: "INR", Min: ptr(0)},
					{Name: "start_date", Label: "Start Date", Type: TypeDate},
					{Name: "end_date", Label: "End Date", Type: TypeDate, Validate: notBefore("start_date", "start date")},
				},
			},
			{
				Title:   "Site",
				Columns: 1,
				Fields: []Field{
					{Name: "site_address", Label: "Site Address", Type: TypeTextarea, Rows: 2},
					{Name: "notes", Label: "Notes", Type: TypeTextarea, Rows: 6},
				},
			},
		},
	}
}

// QuotationForm switches its customer block on customer_type: an existing
// customer is picked from the list, a new one is typed in, and a
// consultation-sourced one also links the lead. Switching away from a
// block clears the values typed into it.
func QuotationForm(customers, projects, leads []Ref) Descriptor {
	newCustomer := equals(KeyCustomerType.Name(), CustomerNew, CustomerConsultation)
	return Descriptor{
		Title:       "Quotation",
		Subtitle:    "Prepare a priced proposal",
		Module:      ModuleQuotations,
		MaxWidth:    "5xl",
		SubmitLabel: "Create Quotation",
		Sections: []Section{
			{
				Title:   "Customer",
				Columns: 2,
				Fields: []Field{
					{Name: "customer_type", Label: "Customer Type", Type: TypeSelect, Required: true,
						Options: opts(CustomerExisting, "Existing Customer", CustomerNew, "New Customer", CustomerConsultation, "From Consultation Request")},
					{Name: "customer_id", Label: "Customer", Type: TypeSelect, Options: refOptions(customers),
						ShowWhen: equals(KeyCustomerType.Name(), CustomerExisting), WhenHidden: HiddenClear},
					{Name: "lead_id", Label: "Consultation Request", Type: TypeSelect, Options: refOptions(leads),
						ShowWhen: equals(KeyCustomerType.Name(), CustomerConsultation), WhenHidden: HiddenClear},
				},
			},
			{
				Title:       "New Customer",
				Description: "A customer record is created with the quotation",
				Columns:     2,
				ShowWhen:    newCustomer,
				Fields: []Field{
					{Name: "customer_name", Label: "Customer Name", Type: TypeText, Required: true, WhenHidden: HiddenClear},
					{Name: "customer_email", Label: "Customer Email", Type: TypeEmail, Required: true, WhenHidden: HiddenClear},
					{Name: "customer_phone", Label: "Customer Phone", Type: TypeTel, Required: true, WhenHidden: HiddenClear},
					{Name: "customer_address", Label: "Customer Address", Type: TypeTextarea, Required: true, Rows: 2, WhenHidden: HiddenClear},
				},
			},
			{
				Title:   "Quotation Details",
				Columns: 2,
				Fields: []Field{
					{Name: "quote_number", Label: "Quote Number", Type: TypeText, Hint: "Generated when left blank"},
					{Name: "project_id", Label: "Project", Type: TypeSelect, Required: true, Options: refOptions(projects)},
					{Name: "quote_date", Label: "Quote Date", Type: TypeDate},
					{Name: "valid_until", Label: "Valid Until", Type: TypeDate, Validate: notBefore("quote_date", "quote date")},
					{Name: "status", Label: "Status", Type: TypeSelect,
						Options: []Option{
							{Value: "draft", Label: "Draft", Color: "gray"},
							{Value: "sent", Label: "Sent", Color: "blue"},
							{Value: "accepted", Label: "Accepted", Color: "green"},
							{Value: "rejected", Label: "Rejected", Color: "red"},
							{Value: "expired", Label: "Expired", Color: "orange"},
						}},
				},
			},
			{
				Title:   "Line Items",
				Columns: 1,
				Fields: []Field{
					{Name: "items", Label: "Items", Type: TypeLineItems, Required: true, Currency: "INR"},
				},
			},
			{
				Title:   "Pricing",
				Columns: 2,
				Fields:  append([]Field(nil), discountTaxFields...),
			},
			{
				Title:   "Terms",
				Columns: 1,
				Fields: []Field{
					{Name: "terms", Label: "Terms & Conditions", Type: TypeTextarea, Rows: 4},
					{Name: "notes", Label: "Notes", Type: TypeTextarea, Rows: 3},
				},
			},
		},
	}
}

func InvoiceForm(customers, projects, quotations []Ref) Descriptor {
	return Descriptor{
		Title:       "Invoice",
		Module:      ModuleInvoices,
		MaxWidth:    "5xl",
		SubmitLabel: "Create Invoice",
		Sections: []Section{
			{
				Title:   "Invoice Details",
				Columns: 3,
				Fields: []Field{
					{Name: "invoice_number", Label: "Invoice Number", Type: TypeText, Hint: "Generated when left blank"},
					{Name: "invoice_type", Label: "Invoice Type", Type: TypeSelect, Required: true,
						Options: opts("standard", "Standard", "proforma", "Proforma", "advance", "Advance", "final", "Final")},
					{Name: "status", Label: "Status", Type: TypeSelect,
						Options: []Option{
							{Value: "draft", Label: "Draft", Color: "gray"},
							{Value: "sent", Label: "Sent", Color: "blue"},
							{Value: "paid", Label: "Paid", Color: "green"},
							{Value: "partially_paid", Label: "Partially Paid", Color: "yellow"},
							{Value: "overdue", Label: "Overdue", Color: "red"},
							{Value: "cancelled", Label: "Cancelled", Color: "gray"},
						}},
					{Name: "project_id", Label: "Project", Type: TypeSelect, Required: true, Options: refOptions(projects)},
					{Name: "customer_id", Label: "Customer", Type: TypeSelect, Required: true, Options: refOptions(customers)},
					{Name: "quotation_id", Label: "Quotation", Type: TypeSelect, Options: refOptions(quotations)},
				},
			},
			{
				Title:   "Dates & Terms",
				Columns: 3,
				Fields: []Field{
					{Name: "invoice_date", Label: "Invoice Date", Type: TypeDate, Required: true},
					{Name: "due_date", Label: "Due Date", Type: TypeDate, Required: true},
					{Name: "payment_terms", Label: "Payment Terms", Type: TypeSelect, Required: true,
						Options: opts("immediate", "Due on Receipt", "net_15", "Net 15", "net_30", "Net 30", "net_45", "Net 45", "net_60", "Net 60")},
				},
			},
			{
				Title:   "Line Items",
				Columns: 1,
				Fields: []Field{
					{Name: "items", Label: "Items", Type: TypeLineItems, Required: true, Currency: "INR"},
				},
			},
			{
				Title:   "Pricing",
				Columns: 2,
				Fields:  append([]Field(nil), discountTaxFields...),
			},
			{
				Title:   "Notes",
				Columns: 1,
				Fields: []Field{
					{Name: "terms", Label: "Terms & Conditions", Type: TypeTextarea, Rows: 3},
					{Name: "notes", Label: "Notes", Type: TypeTextarea, Rows: 3},
				},
			},
		},
	}
}

func PaymentForm(invoices, customers []Ref) Descriptor {
	return Descriptor{
		Title:       "Record Payment",
		Module:      ModulePayments,
		MaxWidth:    "2xl",
		SubmitLabel: "Record Payment",
		Sections: []Section{
			{
				Title:   "Payment",
				Columns: 2,
				Fields: []Field{
					{Name: "invoice_id", Label: "Invoice", Type: TypeSelect, Required: true, Options: refOptions(invoices)},
					{Name: "customer_id", Label: "Customer", Type: TypeSelect, Options: refOptions(customers)},
					{Name: "amount", Label: "Amount", Type: TypeCurrency, Required: true, Currency: "INR", Step: ptr(0.01), Validate: positive("Amount")},
					{Name: "payment_date", Label: "Payment Date", Type: TypeDate, Required: true},
					{Name: "payment_method", Label: "Payment Method", Type: TypeSelect, Required: true,
						Options: opts("cash", "Cash", "bank_transfer", "Bank Transfer", "upi", "UPI", "cheque", "Cheque", "card", "Card", "online", "Online (gateway)")},
					{Name: "transaction_id", Label: "Transaction / Cheque No.", Type: TypeText,
						ShowWhen: notEquals("payment_method", "cash", "online"), WhenHidden: HiddenOmit},
					{Name: "payer_email", Label: "Payer Email", Type: TypeEmail,
						ShowWhen: equals("payment_method", "online"), WhenHidden: HiddenOmit},
					{Name: "payment_reference", Label: "Reference", Type: TypeText, Hint: "Generated when left blank"},
					{Name: "status", Label: "Status", Type: TypeSelect,
						Options: []Option{
							{Value: "completed", Label: "Completed", Color: "green"},
							{Value: "pending", Label: "Pending", Color: "yellow"},
							{Value: "failed", Label: "Failed", Color: "red"},
							{Value: "refunded", Label: "Refunded", Color: "gray"},
						}},
					{Name: "notes", Label: "Notes", Type: TypeTextarea, Rows: 2},
				},
			},
		},
	}
}

func SiteVisitForm(projects, customers, employees []Ref) Descriptor {
	return Descriptor{
		Title:       "Site Visit",
		Module:      ModuleSiteVisits,
		MaxWidth:    "3xl",
		SubmitLabel: "Schedule Visit",
		Sections: []Section{
			{
				Title:   "Visit",
				Columns: 2,
				Fields: []Field{
					{Name: "customer_id", Label: "Customer", Type: TypeSelect, Required: true, Options: refOptions(customers)},
					{Name: "project_id", Label: "Project", Type: TypeSelect, Options: refOptions(projects)},
					{Name: "assigned_to", Label: "Technician", Type: TypeSelect, Required: true, Options: refOptions(employees)},
					{Name: "visit_type", Label: "Visit Type", Type: TypeSelect,
						Options: opts("survey", "Site Survey", "inspection", "Inspection", "installation_check", "Installation Check", "maintenance", "Maintenance", "complaint", "Complaint")},
					{Name: "scheduled_date", Label: "Date", Type: TypeDate, Required: true},
					{Name: "scheduled_time", Label: "Time", Type: TypeTime},
					{Name: "status", Label: "Status", Type: TypeSelect,
						Options: opts("scheduled", "Scheduled", "completed", "Completed", "cancelled", "Cancelled", "rescheduled", "Rescheduled")},
				},
			},
			{
				Title:   "Outcome",
				Columns: 1,
				Fields: []Field{
					{Name: "findings", Label: "Findings", Type: TypeTextarea, Rows: 4,
						ShowWhen: equals("status", "completed"), WhenHidden: HiddenOmit},
					{Name: "notes", Label: "Notes", Type: TypeTextarea, Rows: 2},
				},
			},
		},
	}
}

func InstallationForm(projects, employees []Ref) Descriptor {
	return Descriptor{
		Title:       "Installation",
		Module:      ModuleInstallations,
		MaxWidth:    "3xl",
		SubmitLabel: "Save Installation",
		Sections: []Section{
			{
				Title:   "Equipment",
				Columns: 2,
				Fields: []Field{
					{Name: "project_id", Label: "Project", Type: TypeSelect, Required: true, Options: refOptions(projects)},
					{Name: "equipment_type", Label: "Equipment Type", Type: TypeSelect,
						Options: opts("split_ac", "Split AC", "window_ac", "Window AC", "cassette_ac", "Cassette AC", "vrf_system", "VRF System",
							"ductable", "Ductable Unit", "chiller", "Chiller", "other", "Other")},
					{Name: "brand", Label: "Brand", Type: TypeText},
					{Name: "model_number", Label: "Model Number", Type: TypeText},
					{Name: "serial_number", Label: "Serial Number", Type: TypeText},
					{Name: "quantity", Label: "Quantity", Type: TypeNumber, Min: ptr(1), Step: ptr(1)},
				},
			},
			{
				Title:   "Schedule",
				Columns: 2,
				Fields: []Field{
					{Name: "technician_id", Label: "Technician", Type: TypeSelect, Required: true, Options: refOptions(employees)},
					{Name: "installation_date", Label: "Installation Date", Type: TypeDate, Required: true},
					{Name: "installation_time", Label: "Time", Type: TypeTime},
					{Name: "status", Label: "Status", Type: TypeSelect,
						Options: opts("scheduled", "Scheduled", "in_progress", "In Progress", "completed", "Completed", "cancelled", "Cancelled")},
					{Name: "warranty_until", Label: "Warranty Until", Type: TypeDate, Validate: notBefore("installation_date", "installation date")},
					{Name: "notes", Label: "Notes", Type: TypeTextarea, Rows: 2},
				},
			},
		},
	}
}

func AMCContractForm(customers, projects []Ref) Descriptor {
	return Descriptor{
		Title:       "AMC Contract",
		Subtitle:    "Annual maintenance contract",
		Module:      ModuleAMCContracts,
		MaxWidth:    "3xl",
		SubmitLabel: "Save Contract",
		Sections: []Section{
			{
				Title:   "Contract",
				Columns: 2,
				Fields: []Field{
					{Name: "contract_number", Label: "Contract Number", Type: TypeText, Hint: "Generated when left blank"},
					{Name: "customer_id", Label: "Customer", Type: TypeSelect, Required: true, Options: refOptions(customers)},
					{Name: "project_id", Label: "Project", Type: TypeSelect, Options: refOptions(projects)},
					{Name: "coverage", Label: "Coverage", Type: TypeSelect,
						Options: opts("comprehensive", "Comprehensive", "non_comprehensive", "Non-Comprehensive", "labour_only", "Labour Only")},
					{Name: "start_date", Label: "Start Date", Type: TypeDate, Required: true},
					{Name: "end_date", Label: "End Date", Type: TypeDate, Required: true, Validate: notBefore("start_date", "start date")},
				},
			},
			{
				Title:   "Commercials",
				Columns: 3,
				Fields: []Field{
					{Name: "contract_value", Label: "Contract Value", Type: TypeCurrency, Required: true, Currency: "INR", Validate: positive("Contract value")},
					{Name: "visits_per_year", Label: "Visits per Year", Type: TypeNumber, Min: ptr(1), Max: ptr(12), Step: ptr(1)},
					{Name: "payment_frequency", Label: "Payment Frequency", Type: TypeSelect,
						Options: opts("annual", "Annual", "half_yearly", "Half-Yearly", "quarterly", "Quarterly", "monthly", "Monthly")},
					{Name: "status", Label: "Status", Type: TypeSelect,
						Options: opts("active", "Active", "pending_renewal", "Pending Renewal", "expired", "Expired", "cancelled", "Cancelled")},
				},
			},
			{
				Columns: 1,
				Fields: []Field{
					{Name: "terms", Label: "Terms", Type: TypeTextarea, Rows: 3},
					{Name: "notes", Label: "Notes", Type: TypeTextarea, Rows: 2},
				},
			},
		},
	}
}
