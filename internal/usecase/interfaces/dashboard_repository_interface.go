package interfaces

import (
	"context"

	"hvac_crm/internal/domain/entities"
)

type IDashboardRepository interface {
	Aggregate(ctx context.Context) (entities.DashboardStats, error)
}
