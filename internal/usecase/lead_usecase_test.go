package usecase

import (
	"context"
	"errors"
	"testing"

	"hvac_crm/internal/domain/entities"
	"hvac_crm/internal/domain/form"
	"hvac_crm/internal/usecase/interfaces"
	mock_interfaces "hvac_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTestLeadUseCase(ctrl *gomock.Controller) (*LeadUseCase, *mock_interfaces.MockILeadRepository, *mock_interfaces.MockIEntityRepository, *mock_interfaces.MockINotifier) {
	leads := mock_interfaces.NewMockILeadRepository(ctrl)
	repo := mock_interfaces.NewMockIEntityRepository(ctrl)
	notifier := mock_interfaces.NewMockINotifier(ctrl)
	forms := NewFormManager(repo, nil, nil, nil, notifier)
	return NewLeadUseCase(leads, forms), leads, repo, notifier
}

func TestLeadUseCase_Submit(t *testing.T) {
	t.Run("status is forced to new", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _, repo, notifier := newTestLeadUseCase(ctrl)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(&entities.Lead{})).DoAndReturn(
			func(_ context.Context, e any) error {
				l := e.(*entities.Lead)
				if l.Status != entities.LeadStatusNew || l.Source != "website" || l.ConvertedToProjectID != nil {
					t.Fatalf("unexpected lead: %+v", l)
				}
				return nil
			})
		notifier.EXPECT().Success(gomock.Any(), "Consultation request created", gomock.Any())

		_, err := uc.Submit(context.Background(), form.Record{
			"name": "Jane Doe", "email": "jane@x.com", "phone": "9999999999", "service_type": "ac_repair",
			"status": "won", "converted_to_project_id": "p-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _, _, _ := newTestLeadUseCase(ctrl)

		_, err := uc.Submit(context.Background(), form.Record{
			"name": "Jane Doe", "email": "not-an-email", "phone": "9999999999", "service_type": "ac_repair",
		})
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Violations["email"] == "" {
			t.Fatalf("expected email violation, got %v", err)
		}
	})
}

func TestLeadUseCase_List(t *testing.T) {
	t.Run("paging is clamped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, leads, _, _ := newTestLeadUseCase(ctrl)

		leads.EXPECT().List(gomock.Any(), interfaces.LeadFilter{Status: "new", Page: 1, Limit: 100}).Return(nil, int64(0), nil)

		page, err := uc.List(context.Background(), interfaces.LeadFilter{Status: " new ", Page: -2, Limit: 500})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Items == nil || page.Page != 1 || page.Limit != 100 {
			t.Fatalf("unexpected page: %+v", page)
		}
	})

	t.Run("default limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, leads, _, _ := newTestLeadUseCase(ctrl)
		leads.EXPECT().List(gomock.Any(), interfaces.LeadFilter{Page: 2, Limit: 20}).Return([]entities.Lead{{ID: "l-1"}}, int64(21), nil)

		page, err := uc.List(context.Background(), interfaces.LeadFilter{Page: 2})
		if err != nil || page.Total != 21 || len(page.Items) != 1 {
			t.Fatalf("unexpected page %+v err %v", page, err)
		}
	})

	t.Run("invalid status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _, _, _ := newTestLeadUseCase(ctrl)
		if _, err := uc.List(context.Background(), interfaces.LeadFilter{Status: "archived"}); !errors.Is(err, ErrInvalidLeadStatus) {
			t.Fatalf("expected ErrInvalidLeadStatus, got %v", err)
		}
	})
}

func TestLeadUseCase_GetPatchDelete(t *testing.T) {
	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, leads, _, _ := newTestLeadUseCase(ctrl)
		leads.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Lead{}, nil)

		if _, err := uc.Get(context.Background(), " l-1 "); !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})

	t.Run("patch rejects unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _, _, _ := newTestLeadUseCase(ctrl)
		if _, err := uc.Patch(context.Background(), "l-1", form.Record{"status": "archived"}); !errors.Is(err, ErrInvalidLeadStatus) {
			t.Fatalf("expected ErrInvalidLeadStatus, got %v", err)
		}
	})

	t.Run("patch drops conversion stamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _, repo, notifier := newTestLeadUseCase(ctrl)

		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(&entities.Lead{}), "l-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, _ string, changes map[string]any) (int64, error) {
				if _, ok := changes["converted_to_project_id"]; ok {
					t.Fatalf("conversion stamp must be stripped")
				}
				if changes["status"] != "contacted" {
					t.Fatalf("unexpected changes: %v", changes)
				}
				return 1, nil
			})
		repo.EXPECT().Get(gomock.Any(), gomock.Any(), "l-1").Return(true, nil)
		notifier.EXPECT().Success(gomock.Any(), gomock.Any(), gomock.Any())

		_, err := uc.Patch(context.Background(), "l-1", form.Record{"status": "contacted", "converted_to_project_id": "p-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("patch missing lead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _, repo, _ := newTestLeadUseCase(ctrl)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), "l-1", gomock.Any()).Return(int64(0), nil)

		if _, err := uc.Patch(context.Background(), "l-1", form.Record{"notes": "called"}); !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})

	t.Run("delete missing lead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _, repo, _ := newTestLeadUseCase(ctrl)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any(), "l-1").Return(int64(0), nil)

		if err := uc.Delete(context.Background(), "l-1"); !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})

	t.Run("delete invalid id", func(t *testing.T) {
		uc := NewLeadUseCase(nil, nil)
		if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidLeadID) {
			t.Fatalf("expected ErrInvalidLeadID, got %v", err)
		}
	})
}
