package interfaces

import (
	"context"
	"time"

	"hvac_crm/internal/domain/entities"
)

type LeadFilter struct {
	Status string
	Search string
	Page   int
	Limit  int
}

// ILeadRepository reads consultation requests and applies the conversion stamp.
// GetByID returns an empty Lead (no error) when the id does not exist.
type ILeadRepository interface {
	List(ctx context.Context, filter LeadFilter) ([]entities.Lead, int64, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	MarkConverted(ctx context.Context, id, projectID string, at time.Time) error
}
