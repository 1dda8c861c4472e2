package entities

import "time"

const (
	PaymentStatusCompleted = "completed"
	PaymentStatusPending   = "pending"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// PaymentMethodOnline payments are charged through the payment gateway
// before the row is stored.
const PaymentMethodOnline = "online"

type Payment struct {
	ID               string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	PaymentReference string    `json:"payment_reference" gorm:"size:40;index"`
	InvoiceID        string    `json:"invoice_id" gorm:"type:varchar(36);index"`
	CustomerID       *string   `json:"customer_id,omitempty" gorm:"type:varchar(36)"`
	Amount           float64   `json:"amount"`
	PaymentDate      string    `json:"payment_date" gorm:"size:10"`
	PaymentMethod    string    `json:"payment_method" gorm:"size:20"`
	TransactionID    string    `json:"transaction_id" gorm:"size:100"`
	ProviderStatus   string    `json:"provider_status" gorm:"size:30"`
	Status           string    `json:"status" gorm:"size:20"`
	Notes            string    `json:"notes" gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
