package handlers

import (
	"net/http"
	"time"

	request "hvac_crm/internal/adapter/http/dto/request"
	response "hvac_crm/internal/adapter/http/dto/response"
	"hvac_crm/internal/adapter/http/middleware"
	"hvac_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth       usecase.IAuthUseCase
	cookieName string
	secure     bool
}

func NewAuthHandler(auth usecase.IAuthUseCase, cookieName string, secure bool) *AuthHandler {
	return &AuthHandler{auth: auth, cookieName: cookieName, secure: secure}
}

// Login checks staff credentials, sets the session cookie and returns the
// token for bearer clients.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, errInvalidPayload)
		return
	}
	session, err := h.auth.Login(c.Request.Context(), payload.NormalizedEmail(), payload.Password)
	if err != nil {
		renderError(c, middleware.MapAuthError(err))
		return
	}
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, session.Token, maxAge, "/", "", h.secure, true)
	c.JSON(http.StatusOK, response.OK(session))
}

func (h *AuthHandler) Verify(c *gin.Context) {
	user, err := h.auth.Verify(c.Request.Context(), middleware.TokenFromRequest(c, h.cookieName))
	if err != nil {
		renderError(c, middleware.MapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(gin.H{"user": user}))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secure, true)
	c.JSON(http.StatusOK, response.OK(nil))
}
