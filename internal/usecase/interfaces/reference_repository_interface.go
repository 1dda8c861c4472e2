package interfaces

import (
	"context"

	"hvac_crm/internal/domain/form"
)

// IReferenceRepository loads the lists that feed form selects.
type IReferenceRepository interface {
	LoadReferenceData(ctx context.Context) (form.ReferenceData, error)
}
