package interfaces

import (
	"context"

	"hvac_crm/internal/domain/entities"
)

// IReconciliationRepository abstracts DynamoDB persistence for pending
// reconciliation markers. Resolve returns an empty marker when the id does
// not exist.
type IReconciliationRepository interface {
	Create(ctx context.Context, r entities.PendingReconciliation) (entities.PendingReconciliation, error)
	ListPending(ctx context.Context) ([]entities.PendingReconciliation, error)
	Resolve(ctx context.Context, id string) (entities.PendingReconciliation, error)
}
