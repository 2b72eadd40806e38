package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/zoopark/internal/domain/errors"
	"github.com/polkiloo/zoopark/internal/server/http/dto"
	"github.com/polkiloo/zoopark/internal/server/http/middleware"
)

// AnimalHandler processes the add, update, and delete pages.
type AnimalHandler struct {
	facade AnimalFacade
}

// NewAnimalHandler creates AnimalHandler instance.
func NewAnimalHandler(facade AnimalFacade) *AnimalHandler {
	return &AnimalHandler{facade: facade}
}

// ShowAdd handles GET /add.
func (h *AnimalHandler) ShowAdd(c *gin.Context) {
	render(c, http.StatusOK, "add.html", nil)
}

// Add handles POST /add with a multipart photo upload.
func (h *AnimalHandler) Add(c *gin.Context) {
	var form dto.AddAnimalForm
	if err := c.ShouldBind(&form); err != nil {
		middleware.Flash(c, "All fields are required.")
		render(c, http.StatusOK, "add.html", nil)
		return
	}

	var (
		fileName string
		photo    io.Reader
	)
	if header, err := c.FormFile("photo"); err == nil {
		file, err := header.Open()
		if err != nil {
			internalError(c)
			return
		}
		defer file.Close()
		fileName = header.Filename
		photo = file
	}

	_, err := h.facade.AddAnimal(c.Request.Context(), form.Name, form.Age, form.Species, fileName, photo)
	switch {
	case err == nil:
		middleware.Flash(c, "Animal added successfully.")
		c.Redirect(http.StatusSeeOther, "/")
	case errors.Is(err, domainErrors.ErrMissingFields):
		middleware.Flash(c, "All fields are required.")
		render(c, http.StatusOK, "add.html", nil)
	default:
		internalError(c)
	}
}

// ShowUpdate handles GET /update/:id with a pre-filled form.
func (h *AnimalHandler) ShowUpdate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	animal, err := h.facade.Animal(c.Request.Context(), id)
	switch {
	case err == nil:
		render(c, http.StatusOK, "update.html", gin.H{"Animal": animal})
	case errors.Is(err, domainErrors.ErrNotFound):
		middleware.Flash(c, "Animal not found.")
		c.Redirect(http.StatusSeeOther, "/")
	default:
		internalError(c)
	}
}

// Update handles POST /update/:id.
func (h *AnimalHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var form dto.UpdateAnimalForm
	if err := c.ShouldBind(&form); err != nil {
		h.rerenderUpdate(c, id)
		return
	}

	_, err := h.facade.UpdateAnimal(c.Request.Context(), id, form.Name, form.Age, form.Species, form.PhotoURL)
	switch {
	case err == nil:
		middleware.Flash(c, "Animal updated successfully.")
		c.Redirect(http.StatusSeeOther, "/")
	case errors.Is(err, domainErrors.ErrNotFound):
		middleware.Flash(c, "Animal not found.")
		c.Redirect(http.StatusSeeOther, "/")
	case errors.Is(err, domainErrors.ErrMissingFields):
		h.rerenderUpdate(c, id)
	default:
		internalError(c)
	}
}

func (h *AnimalHandler) rerenderUpdate(c *gin.Context, id int64) {
	middleware.Flash(c, "All fields are required.")
	animal, err := h.facade.Animal(c.Request.Context(), id)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	render(c, http.StatusOK, "update.html", gin.H{"Animal": animal})
}

// Delete handles GET /delete/:id. Deleting an unknown id is reported as
// success, matching the listing-page contract.
func (h *AnimalHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteAnimal(c.Request.Context(), id); err != nil {
		internalError(c)
		return
	}

	middleware.Flash(c, "Animal deleted successfully.")
	c.Redirect(http.StatusSeeOther, "/")
}
