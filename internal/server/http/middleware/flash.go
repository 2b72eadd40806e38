package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const flashCookieName = "zoopark_flash"

// FlashStore installs the cookie-backed session used for one-shot flash
// messages.
func FlashStore(secret string) gin.HandlerFunc {
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, MaxAge: 0})
	return sessions.Sessions(flashCookieName, store)
}

// Flash queues a message to be shown on the next rendered page.
func Flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	_ = session.Save()
}

// TakeFlashes returns queued messages and clears them.
func TakeFlashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = session.Save()

	messages := make([]string, 0, len(raw))
	for _, item := range raw {
		if msg, ok := item.(string); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}
