package request

import (
	"strings"

	"hvac_crm/internal/usecase/interfaces"
)

// LeadListQuery is bound from the query string of the lead listing.
type LeadListQuery struct {
	Status string `form:"status"`
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

func (q LeadListQuery) ToFilter() interfaces.LeadFilter {
	status := strings.TrimSpace(q.Status)
	if strings.EqualFold(status, "all") {
		status = ""
	}
	return interfaces.LeadFilter{
		Status: status,
		Search: strings.TrimSpace(q.Search),
		Page:   q.Page,
		Limit:  q.Limit,
	}
}
