package interfaces

import (
	"context"
	"time"

	"hvac_crm/internal/domain/entities"
)

// INotifier surfaces user-facing outcomes. Calls are fire and forget.
type INotifier interface {
	Success(ctx context.Context, message, detail string)
	Error(ctx context.Context, message, detail string)
	Warning(ctx context.Context, message, detail string)
	Loading(ctx context.Context, message, detail string)
}

// IStatusProgression is told when a lead moved forward in the pipeline.
type IStatusProgression interface {
	LeadConverted(ctx context.Context, lead entities.Lead, project entities.Project, customer entities.Customer) error
}

// ITokenService issues and verifies session tokens.
type ITokenService interface {
	Issue(user entities.User) (token string, expiresAt time.Time, err error)
	Parse(token string) (entities.VerifiedUser, error)
}
