package entities

import "time"

// DashboardStats are the aggregates shown on the CRM landing page.
type DashboardStats struct {
	LeadsByStatus      map[string]int64 `json:"leads_by_status"`
	ProjectsByStatus   map[string]int64 `json:"projects_by_status"`
	TotalLeads         int64            `json:"total_leads"`
	ConvertedLeads     int64            `json:"converted_leads"`
	ActiveProjects     int64            `json:"active_projects"`
	QuotationsValue    float64          `json:"quotations_value"`
	InvoicedValue      float64          `json:"invoiced_value"`
	CollectedValue     float64          `json:"collected_value"`
	OutstandingValue   float64          `json:"outstanding_value"`
	ActiveAMCContracts int64            `json:"active_amc_contracts"`
	RefreshedAt        time.Time        `json:"refreshed_at"`
}
