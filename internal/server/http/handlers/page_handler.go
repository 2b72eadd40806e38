package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the listing and the static informational pages.
type PageHandler struct {
	facade AnimalFacade
}

// NewPageHandler creates PageHandler instance.
func NewPageHandler(facade AnimalFacade) *PageHandler {
	return &PageHandler{facade: facade}
}

// Index handles GET /. The listing is open to anonymous visitors.
func (h *PageHandler) Index(c *gin.Context) {
	animals, err := h.facade.Animals(c.Request.Context())
	if err != nil {
		internalError(c)
		return
	}
	render(c, http.StatusOK, "index.html", gin.H{"Animals": animals})
}

// About handles GET /about.
func (h *PageHandler) About(c *gin.Context) {
	render(c, http.StatusOK, "about.html", nil)
}

// Contact handles GET /contact.
func (h *PageHandler) Contact(c *gin.Context) {
	render(c, http.StatusOK, "contact.html", nil)
}
