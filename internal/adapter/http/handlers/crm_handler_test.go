package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"hvac_crm/internal/adapter/http/handlers/mocks"
	"hvac_crm/internal/domain/entities"
	"hvac_crm/internal/domain/form"
	"hvac_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProjectHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockIProjectUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)
		r := gin.New()
		r.POST("/api/projects", h.Create)
		r.GET("/api/projects/:id", h.Get)
		return r, uc
	}

	t.Run("create validation error", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(usecase.Result{}, &usecase.ValidationError{Module: form.ModuleProjects, Violations: form.Violations{"name": "Project Name is required"}})
		expectStatus(t, perform(r, http.MethodPost, "/api/projects", `{}`), http.StatusUnprocessableEntity)
	})

	t.Run("create ok", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(usecase.Result{ID: "p-1", Entity: &entities.Project{ID: "p-1", Status: "planning"}}, nil)
		expectStatus(t, perform(r, http.MethodPost, "/api/projects", `{"name":"Duct cleaning"}`), http.StatusCreated)
	})

	t.Run("get not found", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Get(gomock.Any(), "p-9").Return(entities.Project{}, usecase.ErrProjectNotFound)
		expectStatus(t, perform(r, http.MethodGet, "/api/projects/p-9", ""), http.StatusNotFound)
	})

	t.Run("get ok", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Get(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Name: "AC Repair - Jane Doe"}, nil)
		w := perform(r, http.MethodGet, "/api/projects/p-1", "")
		expectStatus(t, w, http.StatusOK)
		var p entities.Project
		if err := json.Unmarshal(decode(t, w).Data, &p); err != nil || p.Name != "AC Repair - Jane Doe" {
			t.Fatalf("unexpected project: %+v err=%v", p, err)
		}
	})
}

func TestEmployeeHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockIEmployeeUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEmployeeUseCase(ctrl)
		h := NewEmployeeHandler(uc)
		r := gin.New()
		r.GET("/api/employees", h.List)
		r.POST("/api/employees", h.Create)
		r.PUT("/api/employees/:id", h.Update)
		return r, uc
	}

	t.Run("list by status", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().List(gomock.Any(), "active").Return([]entities.Employee{{ID: "e-1"}}, nil)
		expectStatus(t, perform(r, http.MethodGet, "/api/employees?status=active", ""), http.StatusOK)
	})

	t.Run("list invalid status", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().List(gomock.Any(), "retired").Return(nil, usecase.ErrInvalidEmployeeStatus)
		expectStatus(t, perform(r, http.MethodGet, "/api/employees?status=retired", ""), http.StatusBadRequest)
	})

	t.Run("create ok", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(usecase.Result{ID: "e-1", Entity: &entities.Employee{ID: "e-1"}}, nil)
		expectStatus(t, perform(r, http.MethodPost, "/api/employees", `{"name":"Ravi"}`), http.StatusCreated)
	})

	t.Run("update not found", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Update(gomock.Any(), "e-9", gomock.Any()).Return(usecase.Result{}, usecase.ErrEmployeeNotFound)
		expectStatus(t, perform(r, http.MethodPut, "/api/employees/e-9", `{"name":"Ravi"}`), http.StatusNotFound)
	})
}

func TestBackOfficeHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockIDashboardUseCase, *mocks.MockIReconciliationUseCase) {
		ctrl := gomock.NewController(t)
		dash := mocks.NewMockIDashboardUseCase(ctrl)
		recs := mocks.NewMockIReconciliationUseCase(ctrl)
		h := NewBackOfficeHandler(dash, recs)
		r := gin.New()
		r.GET("/api/dashboard", h.Dashboard)
		r.GET("/api/reconciliations", h.ListReconciliations)
		r.POST("/api/reconciliations/:id/resolve", h.ResolveReconciliation)
		return r, dash, recs
	}

	t.Run("dashboard cached", func(t *testing.T) {
		r, dash, _ := newRouter(t)
		dash.EXPECT().Get(gomock.Any()).Return(entities.DashboardStats{TotalLeads: 3}, nil)
		w := perform(r, http.MethodGet, "/api/dashboard", "")
		expectStatus(t, w, http.StatusOK)
		var stats entities.DashboardStats
		if err := json.Unmarshal(decode(t, w).Data, &stats); err != nil || stats.TotalLeads != 3 {
			t.Fatalf("unexpected stats: %+v err=%v", stats, err)
		}
	})

	t.Run("dashboard refresh", func(t *testing.T) {
		r, dash, _ := newRouter(t)
		dash.EXPECT().Refresh(gomock.Any()).Return(entities.DashboardStats{}, errors.New("db down"))
		expectStatus(t, perform(r, http.MethodGet, "/api/dashboard?refresh=1", ""), http.StatusInternalServerError)
	})

	t.Run("list reconciliations", func(t *testing.T) {
		r, _, recs := newRouter(t)
		recs.EXPECT().ListPending(gomock.Any()).Return([]entities.PendingReconciliation{{ID: "rec-1", Status: entities.ReconciliationPending}}, nil)
		expectStatus(t, perform(r, http.MethodGet, "/api/reconciliations", ""), http.StatusOK)
	})

	t.Run("resolve not found", func(t *testing.T) {
		r, _, recs := newRouter(t)
		recs.EXPECT().Resolve(gomock.Any(), "rec-9").Return(entities.PendingReconciliation{}, usecase.ErrReconciliationNotFound)
		expectStatus(t, perform(r, http.MethodPost, "/api/reconciliations/rec-9/resolve", ""), http.StatusNotFound)
	})

	t.Run("resolve ok", func(t *testing.T) {
		r, _, recs := newRouter(t)
		recs.EXPECT().Resolve(gomock.Any(), "rec-1").Return(entities.PendingReconciliation{ID: "rec-1", Status: entities.ReconciliationResolved}, nil)
		expectStatus(t, perform(r, http.MethodPost, "/api/reconciliations/rec-1/resolve", ""), http.StatusOK)
	})
}
