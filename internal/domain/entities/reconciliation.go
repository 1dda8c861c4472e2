package entities

import "time"

type ReconciliationKind string

const (
	ReconciliationLeadConversion ReconciliationKind = "lead_conversion"
	ReconciliationQuotationItems ReconciliationKind = "quotation_items"
	ReconciliationInvoiceItems   ReconciliationKind = "invoice_items"
	ReconciliationPaymentCharge  ReconciliationKind = "payment_charge"
)

type ReconciliationStatus string

const (
	ReconciliationPending  ReconciliationStatus = "pending"
	ReconciliationResolved ReconciliationStatus = "resolved"
)

// PendingReconciliation records a multi-step write that stopped half way and
// could not be compensated. Staff resolve it by hand.
//
// Storage model (DynamoDB):
//   - PK: id
type PendingReconciliation struct {
	ID         string               `json:"id"`
	Kind       ReconciliationKind   `json:"kind"`
	EntityID   string               `json:"entity_id"`
	RelatedIDs []string             `json:"related_ids,omitempty"`
	Reason     string               `json:"reason"`
	Status     ReconciliationStatus `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
	ResolvedAt *time.Time           `json:"resolved_at,omitempty"`
}
