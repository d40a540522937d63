package report

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{service: NewService(db)}
}

// Monthly godoc
// @Summary      Gym-wide rollup for one month
// @Description  Attendance counts and fee totals per member and overall. Defaults to the current month.
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Param        month  query  string  false  "Period (YYYY-MM)"
// @Success      200  {object}  Report
// @Failure      400  {object}  api.ErrorResponse
// @Router       /admin/reports [get]
func (h *Handler) Monthly(c *gin.Context) {
	period := c.Query("month")
	if period == "" {
		period = time.Now().Format("2006-01")
	} else if _, err := time.Parse("2006-01", period); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month, expected YYYY-MM"})
		return
	}

	rep, err := h.service.ForPeriod(c.Request.Context(), period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}

	c.JSON(http.StatusOK, rep)
}
