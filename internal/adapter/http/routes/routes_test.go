package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hvac_crm/internal/adapter/http/handlers"
	"hvac_crm/internal/adapter/http/handlers/mocks"
	"hvac_crm/internal/adapter/http/middleware"
	"hvac_crm/internal/domain/entities"
	"hvac_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	addPingRoutes(r.Group("/api"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestPrivateRoutesRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	authUC := mocks.NewMockIAuthUseCase(ctrl)
	authUC.EXPECT().Verify(gomock.Any(), "").Return(entities.VerifiedUser{}, usecase.ErrMissingToken).AnyTimes()

	h := handlerSet{
		leads:      handlers.NewLeadHandler(mocks.NewMockILeadUseCase(ctrl), mocks.NewMockIConversionUseCase(ctrl)),
		projects:   handlers.NewProjectHandler(mocks.NewMockIProjectUseCase(ctrl)),
		employees:  handlers.NewEmployeeHandler(mocks.NewMockIEmployeeUseCase(ctrl)),
		forms:      handlers.NewFormHandler(mocks.NewMockIFormManager(ctrl)),
		backOffice: handlers.NewBackOfficeHandler(mocks.NewMockIDashboardUseCase(ctrl), mocks.NewMockIReconciliationUseCase(ctrl)),
	}
	r := gin.New()
	private := r.Group("/api", middleware.RequireAuth(authUC, "auth_token"))
	addCRMRoutes(private, h)
	addFormRoutes(private, h.forms)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/consultation-requests"},
		{http.MethodPost, "/api/consultation-requests/l-1/convert"},
		{http.MethodGet, "/api/projects/p-1"},
		{http.MethodGet, "/api/employees"},
		{http.MethodGet, "/api/forms/quotations"},
		{http.MethodDelete, "/api/forms/invoices/i-1"},
		{http.MethodGet, "/api/dashboard"},
		{http.MethodPost, "/api/reconciliations/rec-1/resolve"},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", tc.method, tc.path, w.Code)
		}
	}
}
