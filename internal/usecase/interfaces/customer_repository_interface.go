package interfaces

import (
	"context"

	"hvac_crm/internal/domain/entities"
)

// ICustomerRepository finds customers for de-duplication. An empty
// Customer (no error) means no match.
type ICustomerRepository interface {
	FindByEmailOrPhone(ctx context.Context, email, phone string) (entities.Customer, error)
}
