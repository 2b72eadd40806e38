package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/zoopark/internal/server/http/middleware"
)

// render writes an HTML page, attaching pending flash messages and the
// authenticated user so every template can show them.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = middleware.TakeFlashes(c)
	data["User"] = middleware.CurrentUser(c)
	c.HTML(status, name, data)
}

// idParam parses the :id path segment. A malformed id is handled like an
// unknown record: flash and back to the listing.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		middleware.Flash(c, "Animal not found.")
		c.Redirect(http.StatusSeeOther, "/")
		return 0, false
	}
	return id, true
}

func internalError(c *gin.Context) {
	c.String(http.StatusInternalServerError, "internal server error")
	c.Abort()
}
