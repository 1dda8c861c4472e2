package interfaces

import (
	"context"

	"hvac_crm/internal/domain/entities"
)

type IEmployeeRepository interface {
	List(ctx context.Context, status string) ([]entities.Employee, error)
}
