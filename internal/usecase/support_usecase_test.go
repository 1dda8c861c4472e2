package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hvac_crm/internal/domain/entities"
	"hvac_crm/internal/domain/form"
	mock_interfaces "hvac_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase(t *testing.T) {
	t.Run("get computes once then serves the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIDashboardRepository(ctrl)
		uc := NewDashboardUseCase(repo)
		uc.now = func() time.Time { return testNow }
		repo.EXPECT().Aggregate(gomock.Any()).Return(entities.DashboardStats{TotalLeads: 4}, nil).Times(1)

		for i := 0; i < 2; i++ {
			s, err := uc.Get(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.TotalLeads != 4 || !s.RefreshedAt.Equal(testNow) {
				t.Fatalf("unexpected stats: %+v", s)
			}
		}
	})

	t.Run("refresh error keeps nothing cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIDashboardRepository(ctrl)
		uc := NewDashboardUseCase(repo)
		repo.EXPECT().Aggregate(gomock.Any()).Return(entities.DashboardStats{}, errors.New("db"))
		repo.EXPECT().Aggregate(gomock.Any()).Return(entities.DashboardStats{TotalLeads: 1}, nil)

		if _, err := uc.Get(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
		if s, err := uc.Get(context.Background()); err != nil || s.TotalLeads != 1 {
			t.Fatalf("unexpected %+v %v", s, err)
		}
	})
}

func TestReconciliationUseCase(t *testing.T) {
	t.Run("resolve invalid id", func(t *testing.T) {
		uc := NewReconciliationUseCase(nil)
		if _, err := uc.Resolve(context.Background(), " "); !errors.Is(err, ErrInvalidReconciliationID) {
			t.Fatalf("expected ErrInvalidReconciliationID, got %v", err)
		}
	})

	t.Run("resolve not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIReconciliationRepository(ctrl)
		uc := NewReconciliationUseCase(repo)
		repo.EXPECT().Resolve(gomock.Any(), "r-1").Return(entities.PendingReconciliation{}, nil)

		if _, err := uc.Resolve(context.Background(), "r-1"); !errors.Is(err, ErrReconciliationNotFound) {
			t.Fatalf("expected ErrReconciliationNotFound, got %v", err)
		}
	})

	t.Run("resolve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIReconciliationRepository(ctrl)
		uc := NewReconciliationUseCase(repo)
		repo.EXPECT().Resolve(gomock.Any(), "r-1").Return(entities.PendingReconciliation{ID: "r-1", Status: entities.ReconciliationResolved}, nil)

		r, err := uc.Resolve(context.Background(), "r-1")
		if err != nil || r.Status != entities.ReconciliationResolved {
			t.Fatalf("unexpected %+v %v", r, err)
		}
	})

	t.Run("marker without repository", func(t *testing.T) {
		m, err := recordReconciliation(context.Background(), nil, entities.ReconciliationQuotationItems, "q-1", []string{"quotation:q-1"}, "db", testNow)
		if err != nil || m.ID == "" || m.Status != entities.ReconciliationPending {
			t.Fatalf("unexpected %+v %v", m, err)
		}
	})
}

func TestEmployeeUseCase(t *testing.T) {
	t.Run("invalid status filter", func(t *testing.T) {
		uc := NewEmployeeUseCase(nil, nil)
		if _, err := uc.List(context.Background(), "retired"); !errors.Is(err, ErrInvalidEmployeeStatus) {
			t.Fatalf("expected ErrInvalidEmployeeStatus, got %v", err)
		}
	})

	t.Run("list never returns nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewEmployeeUseCase(repo, nil)
		repo.EXPECT().List(gomock.Any(), "active").Return(nil, nil)

		out, err := uc.List(context.Background(), "active")
		if err != nil || out == nil {
			t.Fatalf("unexpected %v %v", out, err)
		}
	})

	t.Run("update missing employee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIEntityRepository(ctrl)
		uc := NewEmployeeUseCase(nil, NewFormManager(repo, nil, nil, nil, mock_interfaces.NewMockINotifier(ctrl)))
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(&entities.Employee{}), "e-1", gomock.Any()).Return(int64(0), nil)

		if _, err := uc.Update(context.Background(), "e-1", form.Record{"status": "on_leave"}); !errors.Is(err, ErrEmployeeNotFound) {
			t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
		}
	})
}

func TestProjectUseCase_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIEntityRepository(ctrl)
		uc := NewProjectUseCase(nil, repo)
		repo.EXPECT().Get(gomock.Any(), gomock.Any(), "p-1").Return(false, nil)

		if _, err := uc.Get(context.Background(), "p-1"); !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIEntityRepository(ctrl)
		uc := NewProjectUseCase(nil, repo)
		repo.EXPECT().Get(gomock.Any(), gomock.AssignableToTypeOf(&entities.Project{}), "p-1").DoAndReturn(
			func(_ context.Context, dest any, _ string) (bool, error) {
				dest.(*entities.Project).ID = "p-1"
				return true, nil
			})

		p, err := uc.Get(context.Background(), "p-1")
		if err != nil || p.ID != "p-1" {
			t.Fatalf("unexpected %+v %v", p, err)
		}
	})
}

func TestSagaRollback(t *testing.T) {
	var order []string
	s := newSaga("test")
	s.done("a", func(context.Context) error { order = append(order, "a"); return nil })
	s.done("b", func(context.Context) error { order = append(order, "b"); return errors.New("x") })

	failed := s.rollback(context.Background())
	if len(order) != 2 || order[0] != "b" || order[1] != "a" {
		t.Fatalf("expected reverse order, got %v", order)
	}
	if len(failed) != 1 || failed[0] != "b" {
		t.Fatalf("unexpected failed refs: %v", failed)
	}
}
