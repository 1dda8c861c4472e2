package entities

import "time"

const (
	VisitStatusScheduled   = "scheduled"
	VisitStatusCompleted   = "completed"
	VisitStatusCancelled   = "cancelled"
	VisitStatusRescheduled = "rescheduled"
)

type SiteVisit struct {
	ID            string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	ProjectID     *string   `json:"project_id,omitempty" gorm:"type:varchar(36);index"`
	CustomerID    string    `json:"customer_id" gorm:"type:varchar(36);index"`
	AssignedTo    string    `json:"assigned_to" gorm:"type:varchar(36)"`
	VisitType     string    `json:"visit_type" gorm:"size:30"`
	ScheduledDate string    `json:"scheduled_date" gorm:"size:10"`
	ScheduledTime string    `json:"scheduled_time" gorm:"size:5"`
	Status        string    `json:"status" gorm:"size:20"`
	Findings      string    `json:"findings" gorm:"type:text"`
	Notes         string    `json:"notes" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Installation struct {
	ID               string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	ProjectID        string    `json:"project_id" gorm:"type:varchar(36);index"`
	EquipmentType    string    `json:"equipment_type" gorm:"size:30"`
	Brand            string    `json:"brand" gorm:"size:80"`
	ModelNumber      string    `json:"model_number" gorm:"size:80"`
	SerialNumber     string    `json:"serial_number" gorm:"size:80"`
	Quantity         float64   `json:"quantity"`
	InstallationDate string    `json:"installation_date" gorm:"size:10"`
	InstallationTime string    `json:"installation_time" gorm:"size:5"`
	TechnicianID     string    `json:"technician_id" gorm:"type:varchar(36)"`
	Status           string    `json:"status" gorm:"size:20"`
	WarrantyUntil    string    `json:"warranty_until" gorm:"size:10"`
	Notes            string    `json:"notes" gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

const AMCStatusActive = "active"

// AMCContract is an annual maintenance contract.
type AMCContract struct {
	ID               string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	ContractNumber   string    `json:"contract_number" gorm:"size:40;uniqueIndex"`
	CustomerID       string    `json:"customer_id" gorm:"type:varchar(36);index"`
	ProjectID        *string   `json:"project_id,omitempty" gorm:"type:varchar(36)"`
	StartDate        string    `json:"start_date" gorm:"size:10"`
	EndDate          string    `json:"end_date" gorm:"size:10"`
	ContractValue    float64   `json:"contract_value"`
	VisitsPerYear    float64   `json:"visits_per_year"`
	Coverage         string    `json:"coverage" gorm:"size:30"`
	PaymentFrequency string    `json:"payment_frequency" gorm:"size:20"`
	Status           string    `json:"status" gorm:"size:20"`
	Terms            string    `json:"terms" gorm:"type:text"`
	Notes            string    `json:"notes" gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (AMCContract) TableName() string { return "amc_contracts" }
