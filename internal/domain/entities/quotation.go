package entities

import "time"

const (
	QuotationStatusDraft    = "draft"
	QuotationStatusSent     = "sent"
	QuotationStatusAccepted = "accepted"
	QuotationStatusRejected = "rejected"
	QuotationStatusExpired  = "expired"
)

type Quotation struct {
	ID                 string          `json:"id" gorm:"type:varchar(36);primaryKey"`
	QuoteNumber        string          `json:"quote_number" gorm:"size:40;uniqueIndex"`
	CustomerID         string          `json:"customer_id" gorm:"type:varchar(36);index"`
	ProjectID          string          `json:"project_id" gorm:"type:varchar(36);index;not null"`
	LeadID             *string         `json:"lead_id,omitempty" gorm:"type:varchar(36)"`
	QuoteDate          string          `json:"quote_date" gorm:"size:10"`
	ValidUntil         string          `json:"valid_until" gorm:"size:10"`
	Status             string          `json:"status" gorm:"size:20;index"`
	Subtotal           float64         `json:"subtotal"`
	DiscountPercentage float64         `json:"discount_percentage"`
	DiscountAmount     float64         `json:"discount_amount"`
	TaxRate            float64         `json:"tax_rate"`
	TaxAmount          float64         `json:"tax_amount"`
	TotalAmount        float64         `json:"total_amount"`
	Terms              string          `json:"terms" gorm:"type:text"`
	Notes              string          `json:"notes" gorm:"type:text"`
	Items              []QuotationItem `json:"items,omitempty" gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type QuotationItem struct {
	ID          string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	QuotationID string    `json:"quotation_id" gorm:"type:varchar(36);index;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Total       float64   `json:"total"`
	CreatedAt   time.Time `json:"created_at"`
}
