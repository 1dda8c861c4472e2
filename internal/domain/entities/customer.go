package entities

import "time"

// Customer is created by staff or implicitly while creating quotations,
// invoices or converting a lead.
type Customer struct {
	ID           string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name         string    `json:"name" gorm:"size:150;not null"`
	Email        string    `json:"email" gorm:"size:150;index"`
	Phone        string    `json:"phone" gorm:"size:30;index"`
	Address      string    `json:"address" gorm:"type:text"`
	City         string    `json:"city" gorm:"size:100"`
	CustomerType string    `json:"customer_type" gorm:"size:30"`
	Source       string    `json:"source" gorm:"size:30"`
	LeadID       *string   `json:"lead_id,omitempty" gorm:"type:varchar(36)"`
	Notes        string    `json:"notes" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
