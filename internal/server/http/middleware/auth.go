package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/zoopark/internal/domain/model"
)

const (
	// UserContextKey is a gin context key for the authenticated user.
	UserContextKey    = "currentUser"
	sessionCookieName = "zoopark_session"
	loginPath         = "/login"
)

// SessionResolver turns a session cookie into an authenticated user.
type SessionResolver interface {
	ParseSession(token string) (int64, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
}

// Identify resolves the session cookie into a per-request user object.
// Requests without a valid session pass through anonymously.
func Identify(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		userID, err := resolver.ParseSession(token)
		if err != nil {
			c.Next()
			return
		}

		user, err := resolver.GetUser(c.Request.Context(), userID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

// AuthRequired redirects anonymous visitors to the login page before any
// form data is touched.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.Redirect(http.StatusSeeOther, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user or nil.
func CurrentUser(c *gin.Context) *model.User {
	val, ok := c.Get(UserContextKey)
	if !ok {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}

// SetSessionCookie writes the session token cookie to the response.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
}

// ClearSessionCookie drops the session cookie. Safe to call when no
// session exists.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}
