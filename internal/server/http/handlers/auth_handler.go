package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/zoopark/internal/domain/errors"
	"github.com/polkiloo/zoopark/internal/server/http/dto"
	"github.com/polkiloo/zoopark/internal/server/http/middleware"
)

// AuthHandler processes registration, login, and logout pages.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// ShowRegister handles GET /register.
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", nil)
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	var form dto.CredentialsForm
	if err := c.ShouldBind(&form); err != nil {
		middleware.Flash(c, "All fields are required.")
		render(c, http.StatusOK, "register.html", nil)
		return
	}

	err := h.facade.Register(c.Request.Context(), form.Username, form.Password)
	switch {
	case err == nil:
		middleware.Flash(c, "Registration successful. Please log in.")
		c.Redirect(http.StatusSeeOther, "/login")
	case errors.Is(err, domainErrors.ErrMissingFields):
		middleware.Flash(c, "All fields are required.")
		render(c, http.StatusOK, "register.html", nil)
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		middleware.Flash(c, "Username is already taken.")
		render(c, http.StatusOK, "register.html", nil)
	default:
		internalError(c)
	}
}

// ShowLogin handles GET /login.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", nil)
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.CredentialsForm
	if err := c.ShouldBind(&form); err != nil {
		middleware.Flash(c, "Invalid username or password.")
		render(c, http.StatusOK, "login.html", nil)
		return
	}

	token, err := h.facade.Authenticate(c.Request.Context(), form.Username, form.Password)
	switch {
	case err == nil:
		middleware.SetSessionCookie(c, token)
		middleware.Flash(c, "Login successful.")
		c.Redirect(http.StatusSeeOther, "/")
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		// One message for unknown user and wrong password alike.
		middleware.Flash(c, "Invalid username or password.")
		render(c, http.StatusOK, "login.html", nil)
	default:
		internalError(c)
	}
}

// Logout handles GET /logout. Idempotent regardless of session state.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	middleware.Flash(c, "You have been logged out.")
	c.Redirect(http.StatusSeeOther, "/")
}
