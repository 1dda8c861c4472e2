package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"hvac_crm/internal/domain/entities"
	"hvac_crm/internal/domain/form"
	"hvac_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var (
	ErrConversionInProgress = errors.New("conversion already in progress for this lead")
	ErrLeadAlreadyConverted = errors.New("lead already converted")
)

type ConversionResult struct {
	Lead             entities.Lead     `json:"lead"`
	Project          entities.Project  `json:"project"`
	Customer         entities.Customer `json:"customer"`
	CustomerCreated  bool              `json:"customer_created"`
	Warnings         []string          `json:"warnings,omitempty"`
	ReconciliationID string            `json:"reconciliation_id,omitempty"`
}

type IConversionUseCase interface {
	Convert(ctx context.Context, leadID string, by entities.VerifiedUser) (ConversionResult, error)
}

type ConversionUseCase struct {
	leads           interfaces.ILeadRepository
	customers       interfaces.ICustomerRepository
	repo            interfaces.IEntityRepository
	forms           IFormManager
	reconciliations interfaces.IReconciliationRepository
	progression     interfaces.IStatusProgression
	dashboard       IDashboardUseCase
	notifier        interfaces.INotifier
	locks           *leadLocks
	now             func() time.Time
}

var _ IConversionUseCase = (*ConversionUseCase)(nil)

func NewConversionUseCase(
	leads interfaces.ILeadRepository,
	customers interfaces.ICustomerRepository,
	repo interfaces.IEntityRepository,
	forms IFormManager,
	reconciliations interfaces.IReconciliationRepository,
	progression interfaces.IStatusProgression,
	dashboard IDashboardUseCase,
	notifier interfaces.INotifier,
) *ConversionUseCase {
	return &ConversionUseCase{
		leads:           leads,
		customers:       customers,
		repo:            repo,
		forms:           forms,
		reconciliations: reconciliations,
		progression:     progression,
		dashboard:       dashboard,
		notifier:        notifier,
		locks:           newLeadLocks(),
		now:             time.Now,
	}
}

// Convert turns a lead into a customer (reused when email or phone match)
// and a planning project, then marks the lead won.
//
// A failure to mark the lead after the project exists is tolerated: the
// result carries a warning and the id of the pending reconciliation.
func (u *ConversionUseCase) Convert(ctx context.Context, leadID string, by entities.VerifiedUser) (ConversionResult, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return ConversionResult{}, ErrInvalidLeadID
	}

	release, ok := u.locks.acquire(leadID)
	if !ok {
		log.Printf("[conversion][usecase] rejected, already in flight lead_id=%s", leadID)
		u.notifier.Warning(ctx, "Conversion already in progress", "Wait for the current conversion to finish")
		return ConversionResult{}, ErrConversionInProgress
	}
	defer release()

	log.Printf("[conversion][usecase] start lead_id=%s by=%s", leadID, by.Email)
	u.notifier.Loading(ctx, "Converting lead to project", leadID)

	lead, err := u.leads.GetByID(ctx, leadID)
	if err != nil {
		u.notifier.Error(ctx, "Failed to load lead", err.Error())
		return ConversionResult{}, err
	}
	if lead.ID == "" {
		return ConversionResult{}, ErrLeadNotFound
	}
	if lead.Converted() {
		return ConversionResult{}, ErrLeadAlreadyConverted
	}

	tx := newSaga("conversion")
	customer, created, err := u.resolveCustomer(ctx, lead)
	if err != nil {
		log.Printf("[conversion][usecase] customer resolution failed lead_id=%s err=%v", leadID, err)
		u.notifier.Error(ctx, "Failed to resolve customer", err.Error())
		return ConversionResult{}, fmt.Errorf("resolve customer: %w", err)
	}
	if created {
		tx.done("customer:"+customer.ID, func(ctx context.Context) error {
			_, err := u.repo.Delete(ctx, &entities.Customer{}, customer.ID)
			return err
		})
	}

	now := u.now()
	res, err := u.forms.Create(ctx, form.ModuleProjects, projectRecord(lead, customer.ID, now))
	if err != nil {
		log.Printf("[conversion][usecase] project creation failed lead_id=%s err=%v", leadID, err)
		if failed := tx.rollback(ctx); len(failed) > 0 {
			marker, mErr := recordReconciliation(ctx, u.reconciliations, entities.ReconciliationLeadConversion, lead.ID, failed, err.Error(), now)
			if mErr != nil {
				log.Printf("[conversion][usecase] reconciliation marker failed lead_id=%s err=%v", leadID, mErr)
			}
			return ConversionResult{}, &PartialWriteError{ReconciliationID: marker.ID, Cause: err}
		}
		return ConversionResult{}, fmt.Errorf("create project: %w", err)
	}
	project, _ := res.Entity.(*entities.Project)
	if project == nil {
		project = &entities.Project{ID: res.ID}
	}

	out := ConversionResult{Project: *project, Customer: customer, CustomerCreated: created, Lead: lead}

	if err := u.leads.MarkConverted(ctx, lead.ID, project.ID, now); err != nil {
		log.Printf("[conversion][usecase] lead status update failed lead_id=%s project_id=%s err=%v", leadID, project.ID, err)
		marker, mErr := recordReconciliation(ctx, u.reconciliations, entities.ReconciliationLeadConversion, lead.ID, []string{"project:" + project.ID}, err.Error(), now)
		if mErr != nil {
			log.Printf("[conversion][usecase] reconciliation marker failed lead_id=%s err=%v", leadID, mErr)
		}
		out.ReconciliationID = marker.ID
		out.Warnings = append(out.Warnings, "Project created but the lead could not be marked as converted. Reconcile manually.")
		u.notifier.Warning(ctx, "Project created, lead not marked as converted", project.ID)
		return out, nil
	}

	pid := project.ID
	out.Lead.Status = entities.LeadStatusWon
	out.Lead.ConvertedToProjectID = &pid
	out.Lead.ConvertedAt = &now

	u.downstream(ctx, out, by, now)

	log.Printf("[conversion][usecase] converted lead_id=%s project_id=%s customer_id=%s customer_created=%t",
		leadID, project.ID, customer.ID, created)
	u.notifier.Success(ctx, "Lead converted to project", project.Name)
	return out, nil
}

func (u *ConversionUseCase) resolveCustomer(ctx context.Context, lead entities.Lead) (entities.Customer, bool, error) {
	existing, err := u.customers.FindByEmailOrPhone(ctx, strings.TrimSpace(lead.Email), strings.TrimSpace(lead.Phone))
	if err != nil {
		return entities.Customer{}, false, err
	}
	if existing.ID != "" {
		log.Printf("[conversion][usecase] reusing customer customer_id=%s lead_id=%s", existing.ID, lead.ID)
		return existing, false, nil
	}

	leadID := lead.ID
	c := entities.Customer{
		ID:           uuid.NewString(),
		Name:         lead.Name,
		Email:        lead.Email,
		Phone:        lead.Phone,
		Address:      lead.Address,
		City:         lead.City,
		CustomerType: customerTypeFor(lead.PropertyType),
		Source:       "consultation",
		LeadID:       &leadID,
	}
	if err := u.repo.Create(ctx, &c); err != nil {
		return entities.Customer{}, false, err
	}
	return c, true, nil
}

// downstream side effects never fail the conversion.
func (u *ConversionUseCase) downstream(ctx context.Context, out ConversionResult, by entities.VerifiedUser, now time.Time) {
	activity := &entities.ProjectActivity{
		ID:           uuid.NewString(),
		ProjectID:    out.Project.ID,
		ActivityType: entities.ActivityLeadConverted,
		Description:  fmt.Sprintf("Project created from consultation request of %s", out.Lead.Name),
		PerformedBy:  by.Email,
		Metadata: datatypes.JSONMap{
			"lead_id":          out.Lead.ID,
			"customer_id":      out.Customer.ID,
			"customer_created": out.CustomerCreated,
			"converted_at":     now.UTC().Format(time.RFC3339),
		},
	}
	if err := u.repo.Create(ctx, activity); err != nil {
		log.Printf("[conversion][usecase] activity insert failed project_id=%s err=%v", out.Project.ID, err)
	}

	if u.progression != nil {
		if err := u.progression.LeadConverted(ctx, out.Lead, out.Project, out.Customer); err != nil {
			log.Printf("[conversion][usecase] status progression failed lead_id=%s err=%v", out.Lead.ID, err)
		}
	}

	if u.dashboard != nil {
		if _, err := u.dashboard.Refresh(ctx); err != nil {
			log.Printf("[conversion][usecase] dashboard refresh failed err=%v", err)
		}
	}
}

// projectRecord assembles the project form record for a lead.
func projectRecord(lead entities.Lead, customerID string, now time.Time) form.Record {
	return form.Record{
		"name":         fmt.Sprintf("%s - %s", form.ServiceLabel(lead.ServiceType), lead.Name),
		"project_type": projectTypeFor(lead.ServiceType),
		"customer_id":  customerID,
		"lead_id":      lead.ID,
		"description":  lead.Message,
		"status":       entities.ProjectStatusPlanning,
		"priority":     priorityFor(lead.Urgency),
		"start_date":   now.Format(form.DateLayout),
		"site_address": joinNonEmpty(", ", lead.Address, lead.City),
		"notes":        auditNotes(lead, now),
	}
}

func priorityFor(urgency string) string {
	switch strings.ToLower(strings.TrimSpace(urgency)) {
	case entities.UrgencyHigh:
		return entities.PriorityHigh
	case entities.UrgencyMedium:
		return entities.PriorityMedium
	default:
		return entities.PriorityLow
	}
}

func projectTypeFor(serviceType string) string {
	switch serviceType {
	case "ac_installation":
		return "installation"
	case "ac_repair":
		return "repair"
	case "ac_maintenance", "duct_cleaning":
		return "maintenance"
	case "hvac_design":
		return "design"
	case "amc":
		return "amc"
	default:
		return "other"
	}
}

func customerTypeFor(propertyType string) string {
	switch propertyType {
	case "commercial", "industrial":
		return propertyType
	default:
		return "residential"
	}
}

// auditNotes keeps every lead attribute on the project in plain text.
func auditNotes(lead entities.Lead, at time.Time) string {
	orNA := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "N/A"
		}
		return s
	}
	var b strings.Builder
	b.WriteString("Converted from consultation request\n")
	b.WriteString("-----------------------------------\n")
	fmt.Fprintf(&b, "Lead ID: %s\n", lead.ID)
	fmt.Fprintf(&b, "Name: %s\n", orNA(lead.Name))
	fmt.Fprintf(&b, "Email: %s\n", orNA(lead.Email))
	fmt.Fprintf(&b, "Phone: %s\n", orNA(lead.Phone))
	fmt.Fprintf(&b, "Address: %s\n", orNA(joinNonEmpty(", ", lead.Address, lead.City)))
	fmt.Fprintf(&b, "Service: %s\n", form.ServiceLabel(lead.ServiceType))
	fmt.Fprintf(&b, "Urgency: %s\n", orNA(lead.Urgency))
	fmt.Fprintf(&b, "Property type: %s\n", orNA(lead.PropertyType))
	fmt.Fprintf(&b, "Preferred contact: %s (%s)\n", orNA(lead.PreferredContactMethod), orNA(lead.PreferredContactTime))
	fmt.Fprintf(&b, "Source: %s\n", orNA(lead.Source))
	fmt.Fprintf(&b, "Message: %s\n", orNA(lead.Message))
	fmt.Fprintf(&b, "Staff notes: %s\n", orNA(lead.Notes))
	fmt.Fprintf(&b, "Submitted at: %s\n", lead.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "Converted at: %s", at.UTC().Format(time.RFC3339))
	return b.String()
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
