package class

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	repo Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{repo: NewRepository(db)}
}

// List godoc
// @Summary      List scheduled classes
// @Tags         classes
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  Class
// @Router       /admin/classes [get]
func (h *Handler) List(c *gin.Context) {
	classes, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load classes"})
		return
	}

	c.JSON(http.StatusOK, classes)
}

// Create godoc
// @Summary      Add a class to the schedule
// @Tags         classes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  CreateClassRequest  true  "Class details"
// @Success      201  {object}  Class
// @Failure      400  {object}  api.ErrorResponse
// @Router       /admin/classes [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cls, err := h.repo.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create class"})
		return
	}

	c.JSON(http.StatusCreated, cls)
}

// Delete godoc
// @Summary      Remove a class from the schedule
// @Tags         classes
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Class ID"
// @Success      200  {object}  api.MessageResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /admin/classes/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid class id"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrClassNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "class not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete class"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "class deleted"})
}
