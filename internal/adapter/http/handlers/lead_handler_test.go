package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"hvac_crm/internal/adapter/http/handlers/mocks"
	"hvac_crm/internal/adapter/http/middleware"
	"hvac_crm/internal/domain/entities"
	"hvac_crm/internal/domain/form"
	"hvac_crm/internal/usecase"
	"hvac_crm/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var staffUser = entities.VerifiedUser{ID: "u-1", Email: "admin@crm.local", Name: "Admin", Role: "admin"}

type leadFixture struct {
	router      *gin.Engine
	leads       *mocks.MockILeadUseCase
	conversions *mocks.MockIConversionUseCase
}

func newLeadRouter(t *testing.T) leadFixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	f := leadFixture{
		leads:       mocks.NewMockILeadUseCase(ctrl),
		conversions: mocks.NewMockIConversionUseCase(ctrl),
	}
	auth := mocks.NewMockIAuthUseCase(ctrl)
	auth.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(staffUser, nil).AnyTimes()

	h := NewLeadHandler(f.leads, f.conversions)
	r := gin.New()
	r.POST("/api/consultation-requests", h.Submit)
	private := r.Group("/api/consultation-requests", middleware.RequireAuth(auth, "auth_token"))
	private.GET("", h.List)
	private.GET("/:id", h.Get)
	private.PATCH("/:id", h.Patch)
	private.DELETE("/:id", h.Delete)
	private.POST("/:id/convert", h.Convert)
	f.router = r
	return f
}

func TestLeadHandler_Submit(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		f := newLeadRouter(t)
		expectStatus(t, perform(f.router, http.MethodPost, "/api/consultation-requests", "{"), http.StatusBadRequest)
	})

	t.Run("validation error", func(t *testing.T) {
		f := newLeadRouter(t)
		f.leads.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(usecase.Result{}, &usecase.ValidationError{Module: form.ModuleLeads, Violations: form.Violations{"email": "Enter a valid email address"}})

		w := perform(f.router, http.MethodPost, "/api/consultation-requests", `{"name":"Jane","email":"nope"}`)
		expectStatus(t, w, http.StatusUnprocessableEntity)
		if decode(t, w).Details["email"] == "" {
			t.Fatalf("expected email detail, got %s", w.Body.String())
		}
	})

	t.Run("created", func(t *testing.T) {
		f := newLeadRouter(t)
		f.leads.EXPECT().Submit(gomock.Any(), form.Record{"name": "Jane Doe", "email": "jane@x.com"}).
			Return(usecase.Result{ID: "l-1", Module: form.ModuleLeads, Entity: &entities.Lead{ID: "l-1", Status: entities.LeadStatusNew}}, nil)

		w := perform(f.router, http.MethodPost, "/api/consultation-requests", `{"name":"Jane Doe","email":"jane@x.com"}`)
		expectStatus(t, w, http.StatusCreated)
		var lead entities.Lead
		if err := json.Unmarshal(decode(t, w).Data, &lead); err != nil || lead.Status != entities.LeadStatusNew {
			t.Fatalf("unexpected lead: %+v err=%v", lead, err)
		}
	})
}

func TestLeadHandler_List(t *testing.T) {
	t.Run("passes filter", func(t *testing.T) {
		f := newLeadRouter(t)
		f.leads.EXPECT().List(gomock.Any(), interfaces.LeadFilter{Status: "new", Search: "jane", Page: 2, Limit: 10}).
			Return(usecase.LeadPage{Items: []entities.Lead{{ID: "l-1"}}, Total: 11, Page: 2, Limit: 10}, nil)

		w := perform(f.router, http.MethodGet, "/api/consultation-requests?status=new&search=jane&page=2&limit=10", "")
		expectStatus(t, w, http.StatusOK)
		var page struct {
			Total int64 `json:"total"`
			Pages int64 `json:"pages"`
		}
		if err := json.Unmarshal(decode(t, w).Data, &page); err != nil || page.Total != 11 || page.Pages != 2 {
			t.Fatalf("unexpected page: %+v err=%v", page, err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		f := newLeadRouter(t)
		f.leads.EXPECT().List(gomock.Any(), gomock.Any()).Return(usecase.LeadPage{}, usecase.ErrInvalidLeadStatus)
		expectStatus(t, perform(f.router, http.MethodGet, "/api/consultation-requests?status=bogus", ""), http.StatusBadRequest)
	})

	t.Run("non numeric page", func(t *testing.T) {
		f := newLeadRouter(t)
		expectStatus(t, perform(f.router, http.MethodGet, "/api/consultation-requests?page=abc", ""), http.StatusBadRequest)
	})
}

func TestLeadHandler_GetPatchDelete(t *testing.T) {
	t.Run("get not found", func(t *testing.T) {
		f := newLeadRouter(t)
		f.leads.EXPECT().Get(gomock.Any(), "l-9").Return(entities.Lead{}, usecase.ErrLeadNotFound)
		expectStatus(t, perform(f.router, http.MethodGet, "/api/consultation-requests/l-9", ""), http.StatusNotFound)
	})

	t.Run("patch ok", func(t *testing.T) {
		f := newLeadRouter(t)
		f.leads.EXPECT().Patch(gomock.Any(), "l-1", form.Record{"status": "contacted"}).
			Return(usecase.Result{ID: "l-1", Entity: &entities.Lead{ID: "l-1", Status: entities.LeadStatusContacted}}, nil)
		expectStatus(t, perform(f.router, http.MethodPatch, "/api/consultation-requests/l-1", `{"status":"contacted"}`), http.StatusOK)
	})

	t.Run("patch invalid status", func(t *testing.T) {
		f := newLeadRouter(t)
		f.leads.EXPECT().Patch(gomock.Any(), "l-1", gomock.Any()).Return(usecase.Result{}, usecase.ErrInvalidLeadStatus)
		expectStatus(t, perform(f.router, http.MethodPatch, "/api/consultation-requests/l-1", `{"status":"maybe"}`), http.StatusBadRequest)
	})

	t.Run("delete storage failure", func(t *testing.T) {
		f := newLeadRouter(t)
		f.leads.EXPECT().Delete(gomock.Any(), "l-1").Return(errors.New("db down"))
		expectStatus(t, perform(f.router, http.MethodDelete, "/api/consultation-requests/l-1", ""), http.StatusInternalServerError)
	})

	t.Run("delete ok", func(t *testing.T) {
		f := newLeadRouter(t)
		f.leads.EXPECT().Delete(gomock.Any(), "l-1").Return(nil)
		expectStatus(t, perform(f.router, http.MethodDelete, "/api/consultation-requests/l-1", ""), http.StatusOK)
	})
}

func TestLeadHandler_Convert(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "not found", err: usecase.ErrLeadNotFound, status: http.StatusNotFound, code: "LEAD_NOT_FOUND"},
		{name: "already converted", err: usecase.ErrLeadAlreadyConverted, status: http.StatusConflict, code: "LEAD_ALREADY_CONVERTED"},
		{name: "in progress", err: usecase.ErrConversionInProgress, status: http.StatusConflict, code: "CONVERSION_IN_PROGRESS"},
		{name: "storage failure", err: errors.New("create project: boom"), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLeadRouter(t)
			f.conversions.EXPECT().Convert(gomock.Any(), "l-1", staffUser).Return(usecase.ConversionResult{}, tt.err)

			w := perform(f.router, http.MethodPost, "/api/consultation-requests/l-1/convert", "")
			expectStatus(t, w, tt.status)
			if decode(t, w).Code != tt.code {
				t.Fatalf("expected code %s, got %s", tt.code, w.Body.String())
			}
		})
	}

	t.Run("converted with warning", func(t *testing.T) {
		f := newLeadRouter(t)
		f.conversions.EXPECT().Convert(gomock.Any(), "l-1", staffUser).Return(usecase.ConversionResult{
			Lead:             entities.Lead{ID: "l-1"},
			Project:          entities.Project{ID: "p-1", Name: "AC Repair - Jane Doe"},
			Customer:         entities.Customer{ID: "c-1"},
			CustomerCreated:  true,
			Warnings:         []string{"Project created but the lead status could not be updated"},
			ReconciliationID: "rec-1",
		}, nil)

		w := perform(f.router, http.MethodPost, "/api/consultation-requests/l-1/convert", "")
		expectStatus(t, w, http.StatusCreated)
		body := decode(t, w)
		if len(body.Warnings) != 1 {
			t.Fatalf("expected warning, got %s", w.Body.String())
		}
		var data struct {
			LeadID           string `json:"lead_id"`
			ReconciliationID string `json:"reconciliation_id"`
		}
		if err := json.Unmarshal(body.Data, &data); err != nil || data.LeadID != "l-1" || data.ReconciliationID != "rec-1" {
			t.Fatalf("unexpected data: %+v err=%v", data, err)
		}
	})
}
