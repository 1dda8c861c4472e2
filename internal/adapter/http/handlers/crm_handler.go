package handlers

import (
	"errors"
	"net/http"
	"strings"

	response "hvac_crm/internal/adapter/http/dto/response"
	"hvac_crm/internal/domain/form"
	"hvac_crm/internal/usecase"
	"hvac_crm/pkg"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projects usecase.IProjectUseCase
}

func NewProjectHandler(projects usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var record form.Record
	if err := c.ShouldBindJSON(&record); err != nil {
		renderError(c, errInvalidPayload)
		return
	}
	result, err := h.projects.Create(c.Request.Context(), record)
	if err != nil {
		renderError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromResult(result))
}

func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projects.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		renderError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(project))
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return mapFormError(err)
	}
}

type EmployeeHandler struct {
	employees usecase.IEmployeeUseCase
}

func NewEmployeeHandler(employees usecase.IEmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employees.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		renderError(c, mapEmployeeError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(employees))
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var record form.Record
	if err := c.ShouldBindJSON(&record); err != nil {
		renderError(c, errInvalidPayload)
		return
	}
	result, err := h.employees.Create(c.Request.Context(), record)
	if err != nil {
		renderError(c, mapEmployeeError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromResult(result))
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	var record form.Record
	if err := c.ShouldBindJSON(&record); err != nil {
		renderError(c, errInvalidPayload)
		return
	}
	result, err := h.employees.Update(c.Request.Context(), strings.TrimSpace(c.Param("id")), record)
	if err != nil {
		renderError(c, mapEmployeeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromResult(result))
}

func mapEmployeeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmployeeID), errors.Is(err, usecase.ErrInvalidEmployeeStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return pkg.NewDomainErrorSimple("EMPLOYEE_NOT_FOUND", "Employee not found", http.StatusNotFound)
	default:
		return mapFormError(err)
	}
}

// BackOfficeHandler serves the dashboard aggregates and the
// reconciliation ledger.
type BackOfficeHandler struct {
	dashboard       usecase.IDashboardUseCase
	reconciliations usecase.IReconciliationUseCase
}

func NewBackOfficeHandler(dashboard usecase.IDashboardUseCase, reconciliations usecase.IReconciliationUseCase) *BackOfficeHandler {
	return &BackOfficeHandler{dashboard: dashboard, reconciliations: reconciliations}
}

// Dashboard returns cached aggregates; ?refresh=1 recomputes them.
func (h *BackOfficeHandler) Dashboard(c *gin.Context) {
	get := h.dashboard.Get
	if c.Query("refresh") == "1" {
		get = h.dashboard.Refresh
	}
	stats, err := get(c.Request.Context())
	if err != nil {
		renderError(c, mapFormError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(stats))
}

func (h *BackOfficeHandler) ListReconciliations(c *gin.Context) {
	items, err := h.reconciliations.ListPending(c.Request.Context())
	if err != nil {
		renderError(c, mapReconciliationError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(items))
}

func (h *BackOfficeHandler) ResolveReconciliation(c *gin.Context) {
	item, err := h.reconciliations.Resolve(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		renderError(c, mapReconciliationError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(item))
}

func mapReconciliationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReconciliationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReconciliationNotFound):
		return pkg.NewDomainErrorSimple("RECONCILIATION_NOT_FOUND", "Reconciliation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
