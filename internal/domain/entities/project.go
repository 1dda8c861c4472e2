package entities

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ProjectStatusPlanning   = "planning"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusOnHold     = "on_hold"
	ProjectStatusCompleted  = "completed"
	ProjectStatusCancelled  = "cancelled"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Project is the unit of work delivered to a customer. Notes may carry the
// audit block of the lead it was converted from.
type Project struct {
	ID             string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name           string    `json:"name" gorm:"size:200;not null"`
	ProjectType    string    `json:"project_type" gorm:"size:30"`
	CustomerID     string    `json:"customer_id" gorm:"type:varchar(36);index"`
	LeadID         *string   `json:"lead_id,omitempty" gorm:"type:varchar(36);index"`
	QuotationID    *string   `json:"quotation_id,omitempty" gorm:"type:varchar(36)"`
	Description    string    `json:"description" gorm:"type:text"`
	Status         string    `json:"status" gorm:"size:20;index;not null"`
	Priority       string    `json:"priority" gorm:"size:20"`
	StartDate      string    `json:"start_date" gorm:"size:10"`
	EndDate        string    `json:"end_date" gorm:"size:10"`
	EstimatedValue float64   `json:"estimated_value"`
	AssignedTo     *string   `json:"assigned_to,omitempty" gorm:"type:varchar(36)"`
	SiteAddress    string    `json:"site_address" gorm:"type:text"`
	Notes          string    `json:"notes" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

const ActivityLeadConverted = "lead_converted"

// ProjectActivity is an append-only timeline entry of a project.
type ProjectActivity struct {
	ID           string            `json:"id" gorm:"type:varchar(36);primaryKey"`
	ProjectID    string            `json:"project_id" gorm:"type:varchar(36);index;not null"`
	ActivityType string            `json:"activity_type" gorm:"size:50"`
	Description  string            `json:"description" gorm:"type:text"`
	PerformedBy  string            `json:"performed_by" gorm:"size:150"`
	Metadata     datatypes.JSONMap `json:"metadata"`
	CreatedAt    time.Time         `json:"created_at"`
}
