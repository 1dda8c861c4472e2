package entities

import "time"

// LeadStatus is the lifecycle of a consultation request.
//
// The set is ordered-ish but not linear: staff may move a lead between any
// of these values, and only the conversion workflow sets LeadStatusWon
// together with the conversion stamp.
type LeadStatus string

const (
	LeadStatusNew          LeadStatus = "new"
	LeadStatusContacted    LeadStatus = "contacted"
	LeadStatusQualified    LeadStatus = "qualified"
	LeadStatusProposalSent LeadStatus = "proposal_sent"
	LeadStatusWon          LeadStatus = "won"
	LeadStatusLost         LeadStatus = "lost"
	LeadStatusCancelled    LeadStatus = "cancelled"
)

func LeadStatuses() []LeadStatus {
	return []LeadStatus{
		LeadStatusNew,
		LeadStatusContacted,
		LeadStatusQualified,
		LeadStatusProposalSent,
		LeadStatusWon,
		LeadStatusLost,
		LeadStatusCancelled,
	}
}

func (s LeadStatus) Valid() bool {
	for _, v := range LeadStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// Lead is a consultation request captured by the marketing site.
type Lead struct {
	ID                     string     `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name                   string     `json:"name" gorm:"size:150;not null"`
	Email                  string     `json:"email" gorm:"size:150;index"`
	Phone                  string     `json:"phone" gorm:"size:30;index"`
	Address                string     `json:"address" gorm:"size:255"`
	City                   string     `json:"city" gorm:"size:100"`
	ServiceType            string     `json:"service_type" gorm:"size:50"`
	Urgency                string     `json:"urgency" gorm:"size:20"`
	PropertyType           string     `json:"property_type" gorm:"size:30"`
	PreferredContactMethod string     `json:"preferred_contact_method" gorm:"size:30"`
	PreferredContactTime   string     `json:"preferred_contact_time" gorm:"size:30"`
	Source                 string     `json:"source" gorm:"size:30"`
	Message                string     `json:"message" gorm:"type:text"`
	Notes                  string     `json:"notes" gorm:"type:text"`
	Status                 LeadStatus `json:"status" gorm:"size:20;index;not null"`
	ConvertedToProjectID   *string    `json:"converted_to_project_id,omitempty" gorm:"type:varchar(36)"`
	ConvertedAt            *time.Time `json:"converted_at,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

func (Lead) TableName() string { return "consultation_requests" }

// Converted reports whether the conversion workflow already stamped this lead.
func (l Lead) Converted() bool {
	return l.ConvertedToProjectID != nil && *l.ConvertedToProjectID != ""
}
