package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"hvac_crm/internal/domain/entities"
	"hvac_crm/internal/domain/form"
	"hvac_crm/internal/usecase/interfaces"
)

var (
	ErrInvalidLeadID     = errors.New("invalid lead id")
	ErrLeadNotFound      = errors.New("lead not found")
	ErrInvalidLeadStatus = errors.New("invalid lead status")
)

const (
	defaultLeadPageSize = 20
	maxLeadPageSize     = 100
)

type LeadPage struct {
	Items []entities.Lead `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

type ILeadUseCase interface {
	Submit(ctx context.Context, record form.Record) (Result, error)
	List(ctx context.Context, filter interfaces.LeadFilter) (LeadPage, error)
	Get(ctx context.Context, id string) (entities.Lead, error)
	Patch(ctx context.Context, id string, changes form.Record) (Result, error)
	Delete(ctx context.Context, id string) error
}

type LeadUseCase struct {
	leads interfaces.ILeadRepository
	forms IFormManager
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(leads interfaces.ILeadRepository, forms IFormManager) *LeadUseCase {
	return &LeadUseCase{leads: leads, forms: forms}
}

// Submit stores a consultation request from the public site. The status is
// always new regardless of what the caller sent.
func (u *LeadUseCase) Submit(ctx context.Context, record form.Record) (Result, error) {
	r := record.Clone()
	stripConversion(r)
	r["status"] = string(entities.LeadStatusNew)
	return u.forms.Create(ctx, form.ModuleLeads, r)
}

func (u *LeadUseCase) List(ctx context.Context, filter interfaces.LeadFilter) (LeadPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLeadPageSize
	}
	if filter.Limit > maxLeadPageSize {
		filter.Limit = maxLeadPageSize
	}
	filter.Status = strings.TrimSpace(filter.Status)
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Status != "" && !entities.LeadStatus(filter.Status).Valid() {
		return LeadPage{}, ErrInvalidLeadStatus
	}

	items, total, err := u.leads.List(ctx, filter)
	if err != nil {
		log.Printf("[lead][usecase] list failed status=%s err=%v", filter.Status, err)
		return LeadPage{}, err
	}
	if items == nil {
		items = []entities.Lead{}
	}
	return LeadPage{Items: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (u *LeadUseCase) Get(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	lead, err := u.leads.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if lead.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return lead, nil
}

// Patch applies staff edits. The conversion stamp is owned by the conversion
// workflow and silently dropped here.
func (u *LeadUseCase) Patch(ctx context.Context, id string, changes form.Record) (Result, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Result{}, ErrInvalidLeadID
	}
	r := changes.Clone()
	stripConversion(r)
	if raw, ok := r["status"]; ok {
		s, _ := raw.(string)
		if !entities.LeadStatus(s).Valid() {
			return Result{}, ErrInvalidLeadStatus
		}
	}

	out, err := u.forms.Update(ctx, form.ModuleLeads, id, r)
	if errors.Is(err, ErrRecordNotFound) {
		return Result{}, ErrLeadNotFound
	}
	return out, err
}

func (u *LeadUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidLeadID
	}
	err := u.forms.Delete(ctx, form.ModuleLeads, id)
	if errors.Is(err, ErrRecordNotFound) {
		return ErrLeadNotFound
	}
	return err
}

func stripConversion(r form.Record) {
	delete(r, "converted_to_project_id")
	delete(r, "converted_at")
}
