package response

import (
	"hvac_crm/internal/domain/entities"
	"hvac_crm/internal/usecase"
)

type LeadPageResponse struct {
	Items []entities.Lead `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
	Pages int64           `json:"pages"`
}

func FromLeadPage(p usecase.LeadPage) LeadPageResponse {
	items := p.Items
	if items == nil {
		items = []entities.Lead{}
	}
	var pages int64
	if p.Limit > 0 {
		pages = (p.Total + int64(p.Limit) - 1) / int64(p.Limit)
	}
	return LeadPageResponse{Items: items, Total: p.Total, Page: p.Page, Limit: p.Limit, Pages: pages}
}

type ConversionResponse struct {
	LeadID           string            `json:"lead_id"`
	Project          entities.Project  `json:"project"`
	Customer         entities.Customer `json:"customer"`
	CustomerCreated  bool              `json:"customer_created"`
	ReconciliationID string            `json:"reconciliation_id,omitempty"`
}

func FromConversion(r usecase.ConversionResult) Envelope {
	return OK(ConversionResponse{
		LeadID:           r.Lead.ID,
		Project:          r.Project,
		Customer:         r.Customer,
		CustomerCreated:  r.CustomerCreated,
		ReconciliationID: r.ReconciliationID,
	}, r.Warnings...)
}
