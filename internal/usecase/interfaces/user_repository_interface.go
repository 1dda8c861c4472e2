package interfaces

import (
	"context"

	"hvac_crm/internal/domain/entities"
)

// IUserRepository returns an empty User (no error) when nothing matches.
type IUserRepository interface {
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
}
