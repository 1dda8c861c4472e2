package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"hvac_crm/internal/domain/entities"
	"hvac_crm/internal/usecase/interfaces"
)

type IDashboardUseCase interface {
	Get(ctx context.Context) (entities.DashboardStats, error)
	Refresh(ctx context.Context) (entities.DashboardStats, error)
}

// DashboardUseCase caches the last aggregate. Get computes it on first use.
type DashboardUseCase struct {
	repo interfaces.IDashboardRepository
	now  func() time.Time

	mu     sync.RWMutex
	cached *entities.DashboardStats
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(repo interfaces.IDashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, now: time.Now}
}

func (u *DashboardUseCase) Get(ctx context.Context) (entities.DashboardStats, error) {
	u.mu.RLock()
	cached := u.cached
	u.mu.RUnlock()
	if cached != nil {
		return *cached, nil
	}
	return u.Refresh(ctx)
}

func (u *DashboardUseCase) Refresh(ctx context.Context) (entities.DashboardStats, error) {
	stats, err := u.repo.Aggregate(ctx)
	if err != nil {
		log.Printf("[dashboard][usecase] aggregate failed err=%v", err)
		return entities.DashboardStats{}, err
	}
	stats.RefreshedAt = u.now().UTC()

	u.mu.Lock()
	u.cached = &stats
	u.mu.Unlock()
	return stats, nil
}
