package handlers

import (
	"errors"
	"net/http"

	"hvac_crm/internal/usecase"
	"hvac_crm/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

func renderError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapFormError covers the errors every FormManager-backed mutation can
// return. Handlers check their own sentinels first.
func mapFormError(err error) *pkg.AppError {
	var validation *usecase.ValidationError
	var partial *usecase.PartialWriteError
	switch {
	case errors.As(err, &validation):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Please fix the highlighted fields", http.StatusUnprocessableEntity).
			WithDetails(map[string]string(validation.Violations))
	case errors.As(err, &partial):
		return pkg.NewDomainError("PARTIAL_WRITE", "Saved partially, pending reconciliation", err, http.StatusInternalServerError).
			WithDetails(map[string]string{"reconciliation_id": partial.ReconciliationID})
	case errors.Is(err, usecase.ErrUnknownModule):
		return pkg.NewDomainErrorSimple("UNKNOWN_MODULE", "Unknown form module", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidRecordID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRecordNotFound):
		return pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Online payments are not available", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainError("PAYMENT_DECLINED", "Payment was declined", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayFailed):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment provider is unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
