package billing

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{service: NewService(db)}
}

// InvoiceResponse wraps the computed invoice in a printable envelope. The
// number and issue time are generated per request; the invoice body itself
// is deterministic.
type InvoiceResponse struct {
	Number   string    `json:"number"`
	IssuedAt time.Time `json:"issued_at"`
	Invoice
}

// Invoice godoc
// @Summary      Compute a member's invoice for the current month
// @Tags         billing
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Member ID"
// @Success      200  {object}  InvoiceResponse
// @Failure      400  {object}  api.ErrorResponse
// @Router       /admin/members/{id}/invoice [get]
func (h *Handler) Invoice(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	invoice, err := h.service.InvoiceFor(c.Request.Context(), memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute invoice"})
		return
	}

	c.JSON(http.StatusOK, InvoiceResponse{
		Number:   "INV-" + uuid.NewString()[:8],
		IssuedAt: time.Now(),
		Invoice:  invoice,
	})
}
