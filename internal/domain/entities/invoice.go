package entities

import "time"

const (
	InvoiceStatusDraft         = "draft"
	InvoiceStatusSent          = "sent"
	InvoiceStatusPaid          = "paid"
	InvoiceStatusPartiallyPaid = "partially_paid"
	InvoiceStatusOverdue       = "overdue"
	InvoiceStatusCancelled     = "cancelled"
)

const DefaultPaymentTerms = "net_30"

type Invoice struct {
	ID                 string        `json:"id" gorm:"type:varchar(36);primaryKey"`
	InvoiceNumber      string        `json:"invoice_number" gorm:"size:40;uniqueIndex"`
	InvoiceType        string        `json:"invoice_type" gorm:"size:20"`
	ProjectID          string        `json:"project_id" gorm:"type:varchar(36);index;not null"`
	CustomerID         string        `json:"customer_id" gorm:"type:varchar(36);index;not null"`
	QuotationID        *string       `json:"quotation_id,omitempty" gorm:"type:varchar(36)"`
	InvoiceDate        string        `json:"invoice_date" gorm:"size:10"`
	DueDate            string        `json:"due_date" gorm:"size:10"`
	PaymentTerms       string        `json:"payment_terms" gorm:"size:20"`
	Status             string        `json:"status" gorm:"size:20;index"`
	Subtotal           float64       `json:"subtotal"`
	DiscountPercentage float64       `json:"discount_percentage"`
	DiscountAmount     float64       `json:"discount_amount"`
	TaxRate            float64       `json:"tax_rate"`
	TaxAmount          float64       `json:"tax_amount"`
	TotalAmount        float64       `json:"total_amount"`
	PaidAmount         float64       `json:"paid_amount"`
	Terms              string        `json:"terms" gorm:"type:text"`
	Notes              string        `json:"notes" gorm:"type:text"`
	Items              []InvoiceItem `json:"items,omitempty" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

type InvoiceItem struct {
	ID          string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	InvoiceID   string    `json:"invoice_id" gorm:"type:varchar(36);index;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Total       float64   `json:"total"`
	CreatedAt   time.Time `json:"created_at"`
}
