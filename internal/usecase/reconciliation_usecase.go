package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"hvac_crm/internal/domain/entities"
	"hvac_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidReconciliationID = errors.New("invalid reconciliation id")
	ErrReconciliationNotFound  = errors.New("reconciliation not found")
)

type IReconciliationUseCase interface {
	ListPending(ctx context.Context) ([]entities.PendingReconciliation, error)
	Resolve(ctx context.Context, id string) (entities.PendingReconciliation, error)
}

type ReconciliationUseCase struct {
	repo interfaces.IReconciliationRepository
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(repo interfaces.IReconciliationRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{repo: repo}
}

func (u *ReconciliationUseCase) ListPending(ctx context.Context) ([]entities.PendingReconciliation, error) {
	return u.repo.ListPending(ctx)
}

func (u *ReconciliationUseCase) Resolve(ctx context.Context, id string) (entities.PendingReconciliation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PendingReconciliation{}, ErrInvalidReconciliationID
	}
	out, err := u.repo.Resolve(ctx, id)
	if err != nil {
		log.Printf("[reconciliation][usecase] resolve failed id=%s err=%v", id, err)
		return entities.PendingReconciliation{}, err
	}
	if out.ID == "" {
		return entities.PendingReconciliation{}, ErrReconciliationNotFound
	}
	log.Printf("[reconciliation][usecase] resolved id=%s kind=%s", out.ID, out.Kind)
	return out, nil
}

// recordReconciliation stores a pending marker. A nil repository yields a
// marker that only lives in the log line.
func recordReconciliation(
	ctx context.Context,
	repo interfaces.IReconciliationRepository,
	kind entities.ReconciliationKind,
	entityID string,
	related []string,
	reason string,
	now time.Time,
) (entities.PendingReconciliation, error) {
	marker := entities.PendingReconciliation{
		ID:         uuid.NewString(),
		Kind:       kind,
		EntityID:   entityID,
		RelatedIDs: related,
		Reason:     reason,
		Status:     entities.ReconciliationPending,
		CreatedAt:  now.UTC(),
	}
	log.Printf("[reconciliation][usecase] pending marker id=%s kind=%s entity_id=%s related=%v reason=%s",
		marker.ID, kind, entityID, related, reason)
	if repo == nil {
		return marker, nil
	}
	saved, err := repo.Create(ctx, marker)
	if err != nil {
		return marker, err
	}
	return saved, nil
}
