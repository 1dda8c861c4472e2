package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "hvac_crm/internal/adapter/http/dto/request"
	response "hvac_crm/internal/adapter/http/dto/response"
	"hvac_crm/internal/adapter/http/middleware"
	"hvac_crm/internal/domain/form"
	"hvac_crm/internal/usecase"
	"hvac_crm/pkg"

	"github.com/gin-gonic/gin"
)

// LeadHandler serves consultation requests: the public capture endpoint and
// the staff pipeline, including conversion into a project.
type LeadHandler struct {
	leads       usecase.ILeadUseCase
	conversions usecase.IConversionUseCase
}

func NewLeadHandler(leads usecase.ILeadUseCase, conversions usecase.IConversionUseCase) *LeadHandler {
	return &LeadHandler{leads: leads, conversions: conversions}
}

// Submit godoc
// @Summary      Capture a consultation request from the marketing site
// @Tags         consultation-requests
// @Accept       json
// @Produce      json
// @Success      201  {object}  response.Envelope
// @Failure      422  {object}  pkg.HTTPError
// @Router       /consultation-requests [post]
func (h *LeadHandler) Submit(c *gin.Context) {
	var record form.Record
	if err := c.ShouldBindJSON(&record); err != nil {
		renderError(c, errInvalidPayload)
		return
	}
	result, err := h.leads.Submit(c.Request.Context(), record)
	if err != nil {
		renderError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromResult(result))
}

func (h *LeadHandler) List(c *gin.Context) {
	var query request.LeadListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		renderError(c, errInvalidPayload)
		return
	}
	page, err := h.leads.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		renderError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromLeadPage(page)))
}

func (h *LeadHandler) Get(c *gin.Context) {
	lead, err := h.leads.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		renderError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(lead))
}

func (h *LeadHandler) Patch(c *gin.Context) {
	var changes form.Record
	if err := c.ShouldBindJSON(&changes); err != nil {
		renderError(c, errInvalidPayload)
		return
	}
	result, err := h.leads.Patch(c.Request.Context(), strings.TrimSpace(c.Param("id")), changes)
	if err != nil {
		renderError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromResult(result))
}

func (h *LeadHandler) Delete(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := h.leads.Delete(c.Request.Context(), id); err != nil {
		renderError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(gin.H{"id": id}))
}

// Convert godoc
// @Summary      Convert a consultation request into a project
// @Tags         consultation-requests
// @Produce      json
// @Param        id  path  string  true  "Lead ID"
// @Success      201  {object}  response.Envelope
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /consultation-requests/{id}/convert [post]
func (h *LeadHandler) Convert(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		renderError(c, errUnauthorized)
		return
	}
	result, err := h.conversions.Convert(c.Request.Context(), strings.TrimSpace(c.Param("id")), user)
	if err != nil {
		renderError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromConversion(result))
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID), errors.Is(err, usecase.ErrInvalidLeadStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Consultation request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLeadAlreadyConverted):
		return pkg.NewDomainErrorSimple("LEAD_ALREADY_CONVERTED", "Consultation request already converted", http.StatusConflict)
	case errors.Is(err, usecase.ErrConversionInProgress):
		return pkg.NewDomainErrorSimple("CONVERSION_IN_PROGRESS", "Conversion already in progress", http.StatusConflict)
	default:
		return mapFormError(err)
	}
}
