package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	request "hvac_crm/internal/adapter/http/dto/request"
	response "hvac_crm/internal/adapter/http/dto/response"
	"hvac_crm/internal/domain/form"
	"hvac_crm/internal/usecase"
	"hvac_crm/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidChange = pkg.NewDomainErrorSimple("INVALID_CHANGE", "Unknown change action", http.StatusBadRequest)

// FormHandler exposes the form engine for every managed module.
type FormHandler struct {
	forms usecase.IFormManager
	now   func() time.Time
}

func NewFormHandler(forms usecase.IFormManager) *FormHandler {
	return &FormHandler{forms: forms, now: time.Now}
}

func (h *FormHandler) module(c *gin.Context) (form.Module, bool) {
	m, ok := form.ParseModule(c.Param("module"))
	if !ok {
		renderError(c, mapFormError(usecase.ErrUnknownModule))
	}
	return m, ok
}

// GetForm godoc
// @Summary      Form descriptor with default values
// @Tags         forms
// @Produce      json
// @Param        module  path  string  true  "Module"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /forms/{module} [get]
func (h *FormHandler) GetForm(c *gin.Context) {
	m, ok := h.module(c)
	if !ok {
		return
	}
	d, err := h.forms.Descriptor(c.Request.Context(), m)
	if err != nil {
		renderError(c, mapFormError(err))
		return
	}
	defaults := form.DefaultsAt(d, h.now())
	c.JSON(http.StatusOK, response.OK(response.FormResponse{View: d.Render(defaults), Defaults: defaults}))
}

// ApplyChange godoc
// @Summary      Apply one edit to a draft
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        module  path  string                  true  "Module"
// @Param        body    body  request.ChangeRequest   true  "Change"
// @Success      200  {object}  response.Envelope
// @Security     Bearer
// @Router       /forms/{module}/change [post]
func (h *FormHandler) ApplyChange(c *gin.Context) {
	m, ok := h.module(c)
	if !ok {
		return
	}
	var payload request.ChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, errInvalidPayload)
		return
	}
	d, err := h.forms.Descriptor(c.Request.Context(), m)
	if err != nil {
		renderError(c, mapFormError(err))
		return
	}
	draft, err := payload.Apply(d, h.now())
	if err != nil {
		if errors.Is(err, request.ErrUnknownChangeAction) {
			renderError(c, errInvalidChange)
			return
		}
		renderError(c, mapFormError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromDraft(d, draft)))
}

// ValidateForm godoc
// @Summary      Validate a record without saving it
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        module  path  string  true  "Module"
// @Success      200  {object}  response.Envelope
// @Security     Bearer
// @Router       /forms/{module}/validate [post]
func (h *FormHandler) ValidateForm(c *gin.Context) {
	m, ok := h.module(c)
	if !ok {
		return
	}
	var record form.Record
	if err := c.ShouldBindJSON(&record); err != nil {
		renderError(c, errInvalidPayload)
		return
	}
	violations, err := h.forms.Validate(m, record)
	if err != nil {
		renderError(c, mapFormError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromViolations(violations)))
}

// CreateRecord godoc
// @Summary      Create a record of a module
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        module  path  string  true  "Module"
// @Success      201  {object}  response.Envelope
// @Failure      422  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /forms/{module} [post]
func (h *FormHandler) CreateRecord(c *gin.Context) {
	m, ok := h.module(c)
	if !ok {
		return
	}
	var record form.Record
	if err := c.ShouldBindJSON(&record); err != nil {
		renderError(c, errInvalidPayload)
		return
	}
	result, err := h.forms.Create(c.Request.Context(), m, record)
	if err != nil {
		renderError(c, mapFormError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromResult(result))
}

// UpdateRecord godoc
// @Summary      Update a record of a module
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        module  path  string  true  "Module"
// @Param        id      path  string  true  "Record ID"
// @Success      200  {object}  response.Envelope
// @Security     Bearer
// @Router       /forms/{module}/{id} [put]
func (h *FormHandler) UpdateRecord(c *gin.Context) {
	m, ok := h.module(c)
	if !ok {
		return
	}
	var record form.Record
	if err := c.ShouldBindJSON(&record); err != nil {
		renderError(c, errInvalidPayload)
		return
	}
	result, err := h.forms.Update(c.Request.Context(), m, strings.TrimSpace(c.Param("id")), record)
	if err != nil {
		renderError(c, mapFormError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromResult(result))
}

// DeleteRecord godoc
// @Summary      Delete a record of a module
// @Tags         forms
// @Param        module  path  string  true  "Module"
// @Param        id      path  string  true  "Record ID"
// @Success      200  {object}  response.Envelope
// @Security     Bearer
// @Router       /forms/{module}/{id} [delete]
func (h *FormHandler) DeleteRecord(c *gin.Context) {
	m, ok := h.module(c)
	if !ok {
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	if err := h.forms.Delete(c.Request.Context(), m, id); err != nil {
		renderError(c, mapFormError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(gin.H{"id": id}))
}
