package middleware

import (
	"errors"
	"net/http"
	"strings"

	"hvac_crm/internal/domain/entities"
	"hvac_crm/internal/usecase"
	"hvac_crm/pkg"

	"github.com/gin-gonic/gin"
)

const userContextKey = "auth_user"

// TokenFromRequest reads the session token from the Authorization header,
// falling back to the auth cookie.
func TokenFromRequest(c *gin.Context, cookieName string) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookieName == "" {
		return ""
	}
	token, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(token)
}

// RequireAuth rejects requests without a valid session and stores the
// verified user for the handlers.
func RequireAuth(auth usecase.IAuthUseCase, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := auth.Verify(c.Request.Context(), TokenFromRequest(c, cookieName))
		if err != nil {
			appErr := MapAuthError(err)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by RequireAuth.
func CurrentUser(c *gin.Context) (entities.VerifiedUser, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return entities.VerifiedUser{}, false
	}
	user, ok := v.(entities.VerifiedUser)
	return user, ok
}

func MapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingToken):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired session", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
