package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"hvac_crm/internal/domain/entities"
	"hvac_crm/internal/domain/form"
	"hvac_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUnknownModule             = errors.New("unknown form module")
	ErrInvalidRecordID           = errors.New("invalid record id")
	ErrRecordNotFound            = errors.New("record not found")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway not configured")
	ErrPaymentDeclined           = errors.New("payment declined by gateway")
	ErrPaymentGatewayFailed      = errors.New("payment gateway request failed")
)

// ValidationError carries the field messages of a record that failed
// validation. Nothing was written when it is returned.
type ValidationError struct {
	Module     form.Module
	Violations form.Violations
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d invalid field(s)", e.Module, len(e.Violations))
}

// PartialWriteError reports a multi-step write that failed and could not be
// fully compensated. A pending reconciliation marker was recorded.
type PartialWriteError struct {
	ReconciliationID string
	Cause            error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("partial write pending reconciliation %s: %v", e.ReconciliationID, e.Cause)
}

func (e *PartialWriteError) Unwrap() error { return e.Cause }

// Result is the outcome of a successful mutation.
type Result struct {
	ID       string      `json:"id"`
	Module   form.Module `json:"module"`
	Entity   any         `json:"data"`
	Warnings []string    `json:"warnings,omitempty"`
}

// IFormManager maps validated form records onto storage writes.
type IFormManager interface {
	Descriptor(ctx context.Context, m form.Module) (form.Descriptor, error)
	Validate(m form.Module, record form.Record) (form.Violations, error)
	Create(ctx context.Context, m form.Module, record form.Record) (Result, error)
	Update(ctx context.Context, m form.Module, id string, record form.Record) (Result, error)
	Delete(ctx context.Context, m form.Module, id string) error
}

type FormManager struct {
	repo            interfaces.IEntityRepository
	refs            interfaces.IReferenceRepository
	reconciliations interfaces.IReconciliationRepository
	gateway         interfaces.IPaymentGateway
	notifier        interfaces.INotifier
	now             func() time.Time
}

var _ IFormManager = (*FormManager)(nil)

func NewFormManager(
	repo interfaces.IEntityRepository,
	refs interfaces.IReferenceRepository,
	reconciliations interfaces.IReconciliationRepository,
	gateway interfaces.IPaymentGateway,
	notifier interfaces.INotifier,
) *FormManager {
	return &FormManager{
		repo:            repo,
		refs:            refs,
		reconciliations: reconciliations,
		gateway:         gateway,
		notifier:        notifier,
		now:             time.Now,
	}
}

var moduleLabels = map[form.Module]string{
	form.ModuleLeads:         "Consultation request",
	form.ModuleEmployees:     "Employee",
	form.ModuleProjects:      "Project",
	form.ModuleQuotations:    "Quotation",
	form.ModuleInvoices:      "Invoice",
	form.ModulePayments:      "Payment",
	form.ModuleSiteVisits:    "Site visit",
	form.ModuleInstallations: "Installation",
	form.ModuleAMCContracts:  "AMC contract",
}

func newModel(m form.Module) any {
	switch m {
	case form.ModuleLeads:
		return &entities.Lead{}
	case form.ModuleEmployees:
		return &entities.Employee{}
	case form.ModuleProjects:
		return &entities.Project{}
	case form.ModuleQuotations:
		return &entities.Quotation{}
	case form.ModuleInvoices:
		return &entities.Invoice{}
	case form.ModulePayments:
		return &entities.Payment{}
	case form.ModuleSiteVisits:
		return &entities.SiteVisit{}
	case form.ModuleInstallations:
		return &entities.Installation{}
	case form.ModuleAMCContracts:
		return &entities.AMCContract{}
	}
	return nil
}

// Descriptor builds the module form with live reference lists.
func (u *FormManager) Descriptor(ctx context.Context, m form.Module) (form.Descriptor, error) {
	if _, ok := form.For(m, form.ReferenceData{}); !ok {
		return form.Descriptor{}, ErrUnknownModule
	}
	ref, err := u.refs.LoadReferenceData(ctx)
	if err != nil {
		log.Printf("[form][usecase] reference data load failed module=%s err=%v", m, err)
		return form.Descriptor{}, err
	}
	d, _ := form.For(m, ref)
	return d, nil
}

func (u *FormManager) Validate(m form.Module, record form.Record) (form.Violations, error) {
	d, ok := form.For(m, form.ReferenceData{})
	if !ok {
		return nil, ErrUnknownModule
	}
	return form.Validate(d.Payload(record), d), nil
}

func (u *FormManager) Create(ctx context.Context, m form.Module, record form.Record) (Result, error) {
	d, ok := form.For(m, form.ReferenceData{})
	if !ok {
		return Result{}, ErrUnknownModule
	}
	log.Printf("[form][usecase] create start module=%s fields=%d", m, len(record))

	payload := d.Payload(record)
	if v := form.Validate(payload, d); !v.Empty() {
		log.Printf("[form][usecase] validation failed module=%s fields=%d", m, len(v))
		return Result{}, &ValidationError{Module: m, Violations: v}
	}
	normalize(d, payload)

	now := u.now()
	applyEntityDefaults(m, payload, now)

	switch m {
	case form.ModuleQuotations:
		return u.createQuotation(ctx, payload)
	case form.ModuleInvoices:
		return u.createInvoice(ctx, payload)
	case form.ModulePayments:
		return u.createPayment(ctx, payload)
	}
	return u.createSingle(ctx, m, payload)
}

// createPayment charges online payments before the row is stored. A charge
// whose row cannot be stored is left as a pending reconciliation marker.
func (u *FormManager) createPayment(ctx context.Context, payload form.Record) (Result, error) {
	if err := u.chargeOnline(ctx, payload); err != nil {
		u.notifier.Error(ctx, "Payment could not be processed", err.Error())
		return Result{}, err
	}
	res, err := u.createSingle(ctx, form.ModulePayments, payload)
	if err == nil {
		return res, nil
	}
	txID := payload.String("transaction_id")
	if payload.String("payment_method") != entities.PaymentMethodOnline || txID == "" {
		return Result{}, err
	}

	log.Printf("[payment][usecase] charge captured but payment not stored transaction_id=%s err=%v", txID, err)
	related := []string{txID}
	if invoiceID := payload.String("invoice_id"); invoiceID != "" {
		related = append(related, "invoice:"+invoiceID)
	}
	marker, recErr := recordReconciliation(ctx, u.reconciliations, entities.ReconciliationPaymentCharge,
		payload.String("id"), related, err.Error(), u.now())
	if recErr != nil {
		log.Printf("[payment][usecase] reconciliation marker failed transaction_id=%s err=%v", txID, recErr)
	}
	u.notifier.Warning(ctx, "Payment was charged but not saved and needs manual reconciliation", txID)
	return Result{}, &PartialWriteError{ReconciliationID: marker.ID, Cause: err}
}

func (u *FormManager) createSingle(ctx context.Context, m form.Module, payload form.Record) (Result, error) {
	id := uuid.NewString()
	payload["id"] = id
	model := newModel(m)
	if err := decodeRecord(payload, model); err != nil {
		return Result{}, fmt.Errorf("decode %s: %w", m, err)
	}
	if err := u.repo.Create(ctx, model); err != nil {
		log.Printf("[form][usecase] insert failed module=%s err=%v", m, err)
		u.notifier.Error(ctx, fmt.Sprintf("Failed to create %s", strings.ToLower(moduleLabels[m])), err.Error())
		return Result{}, fmt.Errorf("insert %s: %w", m, err)
	}
	log.Printf("[form][usecase] created module=%s id=%s", m, id)
	u.notifier.Success(ctx, moduleLabels[m]+" created", id)
	return Result{ID: id, Module: m, Entity: model}, nil
}

// createQuotation inserts an optional customer, the quotation and then one
// row per valid line item. Any failure undoes the earlier inserts.
func (u *FormManager) createQuotation(ctx context.Context, payload form.Record) (Result, error) {
	tx := newSaga("quotation")

	switch form.KeyCustomerType.Get(payload) {
	case form.CustomerNew, form.CustomerConsultation:
		customer := &entities.Customer{
			ID:           uuid.NewString(),
			Name:         form.KeyCustomerName.Get(payload),
			Email:        form.KeyCustomerEmail.Get(payload),
			Phone:        form.KeyCustomerPhone.Get(payload),
			Address:      form.KeyCustomerAddress.Get(payload),
			CustomerType: "residential",
			Source:       form.KeyCustomerType.Get(payload),
		}
		if leadID := form.KeyLeadID.Get(payload); leadID != "" {
			customer.LeadID = &leadID
		}
		if err := u.repo.Create(ctx, customer); err != nil {
			log.Printf("[form][usecase] customer insert failed module=quotations err=%v", err)
			u.notifier.Error(ctx, "Failed to create customer for quotation", err.Error())
			return Result{}, fmt.Errorf("insert customer: %w", err)
		}
		tx.done("customer:"+customer.ID, u.deleter(&entities.Customer{}, customer.ID))
		form.KeyCustomerID.Set(payload, customer.ID)
		log.Printf("[form][usecase] customer created for quotation customer_id=%s", customer.ID)
	}

	items := form.ValidItems(form.KeyItems.Get(payload))
	delete(payload, form.KeyItems.Name())
	payload["id"] = uuid.NewString()

	q := &entities.Quotation{}
	if err := decodeRecord(payload, q); err != nil {
		return Result{}, u.abort(ctx, tx, entities.ReconciliationQuotationItems, "", fmt.Errorf("decode quotation: %w", err))
	}
	if err := u.repo.Create(ctx, q); err != nil {
		return Result{}, u.abort(ctx, tx, entities.ReconciliationQuotationItems, "", fmt.Errorf("insert quotation: %w", err))
	}
	tx.done("quotation:"+q.ID, u.deleter(&entities.Quotation{}, q.ID))

	for _, it := range items {
		row := entities.QuotationItem{
			ID:          uuid.NewString(),
			QuotationID: q.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		}
		if err := u.repo.Create(ctx, &row); err != nil {
			return Result{}, u.abort(ctx, tx, entities.ReconciliationQuotationItems, q.ID, fmt.Errorf("insert quotation item: %w", err))
		}
		q.Items = append(q.Items, row)
	}

	log.Printf("[form][usecase] created module=quotations id=%s items=%d total=%.2f", q.ID, len(q.Items), q.TotalAmount)
	u.notifier.Success(ctx, "Quotation created", q.QuoteNumber)
	return Result{ID: q.ID, Module: form.ModuleQuotations, Entity: q}, nil
}

func (u *FormManager) createInvoice(ctx context.Context, payload form.Record) (Result, error) {
	tx := newSaga("invoice")

	items := form.ValidItems(form.KeyItems.Get(payload))
	delete(payload, form.KeyItems.Name())
	payload["id"] = uuid.NewString()

	inv := &entities.Invoice{}
	if err := decodeRecord(payload, inv); err != nil {
		return Result{}, fmt.Errorf("decode invoice: %w", err)
	}
	if err := u.repo.Create(ctx, inv); err != nil {
		log.Printf("[form][usecase] insert failed module=invoices err=%v", err)
		u.notifier.Error(ctx, "Failed to create invoice", err.Error())
		return Result{}, fmt.Errorf("insert invoice: %w", err)
	}
	tx.done("invoice:"+inv.ID, u.deleter(&entities.Invoice{}, inv.ID))

	for _, it := range items {
		row := entities.InvoiceItem{
			ID:          uuid.NewString(),
			InvoiceID:   inv.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		}
		if err := u.repo.Create(ctx, &row); err != nil {
			return Result{}, u.abort(ctx, tx, entities.ReconciliationInvoiceItems, inv.ID, fmt.Errorf("insert invoice item: %w", err))
		}
		inv.Items = append(inv.Items, row)
	}

	log.Printf("[form][usecase] created module=invoices id=%s items=%d total=%.2f", inv.ID, len(inv.Items), inv.TotalAmount)
	u.notifier.Success(ctx, "Invoice created", inv.InvoiceNumber)
	return Result{ID: inv.ID, Module: form.ModuleInvoices, Entity: inv}, nil
}

// abort compensates the completed steps of tx. When a compensation fails a
// pending reconciliation marker is stored and a PartialWriteError returned.
func (u *FormManager) abort(ctx context.Context, tx *saga, kind entities.ReconciliationKind, entityID string, cause error) error {
	log.Printf("[form][usecase] multi-step write failed saga=%s err=%v", tx.name, cause)
	failed := tx.rollback(ctx)
	if len(failed) == 0 {
		u.notifier.Error(ctx, "Save failed, no changes were kept", cause.Error())
		return cause
	}

	marker, err := recordReconciliation(ctx, u.reconciliations, kind, entityID, failed, cause.Error(), u.now())
	if err != nil {
		log.Printf("[form][usecase] reconciliation marker failed saga=%s err=%v", tx.name, err)
	}
	u.notifier.Warning(ctx, "Save partially failed and needs manual reconciliation", strings.Join(failed, ", "))
	return &PartialWriteError{ReconciliationID: marker.ID, Cause: cause}
}

func (u *FormManager) deleter(model any, id string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		_, err := u.repo.Delete(ctx, model, id)
		return err
	}
}

// chargeOnline sends online payments through the gateway and stamps the
// provider outcome on the payload.
func (u *FormManager) chargeOnline(ctx context.Context, payload form.Record) error {
	if payload.String("payment_method") != entities.PaymentMethodOnline {
		return nil
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured")
		return ErrPaymentGatewayUnavailable
	}

	amount, _ := payload.Float("amount")
	invoiceID := payload.String("invoice_id")
	req := map[string]any{
		"transaction_amount": amount,
		"description":        fmt.Sprintf("Invoice %s", invoiceID),
		"external_reference": invoiceID,
		"installments":       1,
	}
	if email := payload.String("payer_email"); email != "" {
		req["payer"] = map[string]any{"email": email}
	}
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	log.Printf("[payment][usecase] charging online payment invoice_id=%s amount=%.2f", invoiceID, amount)
	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed invoice_id=%s err=%v", invoiceID, err)
		if isGatewayRejection(err) {
			return fmt.Errorf("%w: %v", ErrPaymentDeclined, err)
		}
		return fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
	}
	payload["transaction_id"] = providerID
	payload["provider_status"] = providerStatus

	switch providerStatus {
	case "approved", "authorized":
		payload["status"] = entities.PaymentStatusCompleted
	case "pending", "in_process", "in_mediation":
		payload["status"] = entities.PaymentStatusPending
	default:
		log.Printf("[payment][usecase] payment declined invoice_id=%s provider_status=%s", invoiceID, providerStatus)
		return ErrPaymentDeclined
	}
	return nil
}

// isGatewayRejection reports provider answers that refuse the charge
// itself (bad request, unauthorized payer, unknown customer) as opposed to
// transport or provider outages.
func isGatewayRejection(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		`"error":"bad_request"`, `"status":400`,
		"invalid users involved", `"code":2034`,
		"customer not found", `"code":2002`,
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// Update changes the columns present in record on one row. Quotation and
// invoice items are not touched.
func (u *FormManager) Update(ctx context.Context, m form.Module, id string, record form.Record) (Result, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Result{}, ErrInvalidRecordID
	}
	d, ok := form.For(m, form.ReferenceData{})
	if !ok {
		return Result{}, ErrUnknownModule
	}

	changes := record.Clone()
	for _, k := range []string{"id", "created_at", "updated_at", form.KeyItems.Name()} {
		delete(changes, k)
	}
	if v := form.ValidatePartial(changes, d); !v.Empty() {
		log.Printf("[form][usecase] validation failed module=%s id=%s fields=%d", m, id, len(v))
		return Result{}, &ValidationError{Module: m, Violations: v}
	}
	normalize(d, changes)
	nullEmptyRefs(changes)

	rows, err := u.repo.Update(ctx, newModel(m), id, changes)
	if err != nil {
		log.Printf("[form][usecase] update failed module=%s id=%s err=%v", m, id, err)
		u.notifier.Error(ctx, fmt.Sprintf("Failed to update %s", strings.ToLower(moduleLabels[m])), err.Error())
		return Result{}, fmt.Errorf("update %s: %w", m, err)
	}
	if rows == 0 {
		return Result{}, ErrRecordNotFound
	}

	model := newModel(m)
	found, err := u.repo.Get(ctx, model, id)
	if err != nil {
		return Result{}, err
	}
	if !found {
		return Result{}, ErrRecordNotFound
	}
	log.Printf("[form][usecase] updated module=%s id=%s", m, id)
	u.notifier.Success(ctx, moduleLabels[m]+" updated", id)
	return Result{ID: id, Module: m, Entity: model}, nil
}

func (u *FormManager) Delete(ctx context.Context, m form.Module, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRecordID
	}
	model := newModel(m)
	if model == nil {
		return ErrUnknownModule
	}

	rows, err := u.repo.Delete(ctx, model, id)
	if err != nil {
		log.Printf("[form][usecase] delete failed module=%s id=%s err=%v", m, id, err)
		u.notifier.Error(ctx, fmt.Sprintf("Failed to delete %s", strings.ToLower(moduleLabels[m])), err.Error())
		return fmt.Errorf("delete %s: %w", m, err)
	}
	if rows == 0 {
		return ErrRecordNotFound
	}
	log.Printf("[form][usecase] deleted module=%s id=%s", m, id)
	u.notifier.Success(ctx, moduleLabels[m]+" deleted", id)
	return nil
}

// applyEntityDefaults fills what the form may leave blank.
func applyEntityDefaults(m form.Module, r form.Record, now time.Time) {
	today := now.Format(form.DateLayout)
	set := func(name string, v any) {
		if r.IsEmpty(name) {
			r[name] = v
		}
	}

	switch m {
	case form.ModuleLeads:
		set("status", string(entities.LeadStatusNew))
		set("source", "website")
	case form.ModuleEmployees:
		set("status", entities.EmployeeStatusActive)
		set("employee_code", form.ReferenceNumber("EMP", now))
	case form.ModuleProjects:
		set("status", entities.ProjectStatusPlanning)
		set("priority", entities.PriorityMedium)
	case form.ModulePayments:
		set("status", entities.PaymentStatusCompleted)
		set("payment_reference", form.ReferenceNumber("PAY", now))
		set("payment_date", today)
	case form.ModuleSiteVisits, form.ModuleInstallations:
		set("status", entities.VisitStatusScheduled)
	case form.ModuleAMCContracts:
		set("status", entities.AMCStatusActive)
		set("contract_number", form.ReferenceNumber("AMC", now))
	case form.ModuleQuotations:
		set("status", entities.QuotationStatusDraft)
		set(form.KeyQuoteNumber.Name(), form.ReferenceNumber("QT", now))
		set("quote_date", today)
	case form.ModuleInvoices:
		set("status", entities.InvoiceStatusDraft)
		set(form.KeyInvoiceNumber.Name(), form.ReferenceNumber("INV", now))
		set(form.KeyInvoiceDate.Name(), today)
		set(form.KeyPaymentTerms.Name(), entities.DefaultPaymentTerms)
		if r.IsEmpty(form.KeyDueDate.Name()) {
			issued, err := time.Parse(form.DateLayout, form.KeyInvoiceDate.Get(r))
			if err != nil {
				issued = now
			}
			form.KeyDueDate.Set(r, issued.AddDate(0, 0, 30).Format(form.DateLayout))
		}
	}
}

// normalize coerces numeric fields to float64 and scalar values in string
// fields to text so the record decodes into the typed entity.
func normalize(d form.Descriptor, r form.Record) {
	for _, s := range d.Sections {
		for _, f := range s.Fields {
			if _, present := r[f.Name]; !present {
				continue
			}
			switch f.Type {
			case form.TypeText, form.TypeEmail, form.TypeTel, form.TypeTextarea, form.TypePassword,
				form.TypeDate, form.TypeDateTime, form.TypeTime, form.TypeSelect:
				if v := r[f.Name]; v != nil {
					if _, isString := v.(string); !isString {
						r[f.Name] = r.String(f.Name)
					}
				}
			case form.TypeNumber, form.TypeCurrency:
				if n, ok := r.Float(f.Name); ok {
					r[f.Name] = n
				} else {
					r[f.Name] = nil
				}
			case form.TypeLineItems:
				r[f.Name] = r.Items(f.Name)
			}
		}
	}
}

// nullEmptyRefs turns blank reference columns into NULL.
func nullEmptyRefs(r form.Record) {
	for k, v := range r {
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" && (strings.HasSuffix(k, "_id") || k == "assigned_to") {
			r[k] = nil
		}
	}
}

// decodeRecord maps a record onto a typed entity through its JSON tags.
// Blank values are skipped so optional references stay nil.
func decodeRecord(r form.Record, dest any) error {
	compact := make(map[string]any, len(r))
	for k, v := range r {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		compact[k] = v
	}
	b, err := json.Marshal(compact)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dest)
}
