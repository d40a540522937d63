package attendance

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{service: NewService(NewRepository(db))}
}

// Mark godoc
// @Summary      Mark attendance for a date
// @Description  Records a visit. Marking the same day twice returns success=false with a message instead of an error.
// @Tags         attendance
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int          true  "Member ID"
// @Param        body  body  MarkRequest  true  "Visit date"
// @Success      200  {object}  api.ActionResult
// @Failure      400  {object}  api.ErrorResponse
// @Router       /admin/members/{id}/attendance [post]
func (h *Handler) Mark(c *gin.Context) {
	memberID, date, ok := bindDay(c)
	if !ok {
		return
	}

	result, err := h.service.Mark(c.Request.Context(), memberID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark attendance"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Unmark godoc
// @Summary      Remove attendance for a date
// @Tags         attendance
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int          true  "Member ID"
// @Param        body  body  MarkRequest  true  "Visit date"
// @Success      200  {object}  api.ActionResult
// @Failure      400  {object}  api.ErrorResponse
// @Router       /admin/members/{id}/attendance [delete]
func (h *Handler) Unmark(c *gin.Context) {
	memberID, date, ok := bindDay(c)
	if !ok {
		return
	}

	result, err := h.service.Unmark(c.Request.Context(), memberID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to unmark attendance"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Dates godoc
// @Summary      List a member's attendance dates
// @Tags         attendance
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Member ID"
// @Success      200  {array}  string
// @Router       /admin/members/{id}/attendance [get]
func (h *Handler) Dates(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	dates, err := h.service.DatesFor(c.Request.Context(), memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load attendance"})
		return
	}

	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format("2006-01-02"))
	}

	c.JSON(http.StatusOK, out)
}

// Stats godoc
// @Summary      Daily visit totals between two dates
// @Tags         attendance
// @Security     BearerAuth
// @Produce      json
// @Param        from  query  string  true  "Start date (YYYY-MM-DD)"
// @Param        to    query  string  true  "End date (YYYY-MM-DD)"
// @Success      200  {array}  DayStat
// @Router       /admin/attendance/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
		return
	}

	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
		return
	}

	stats, err := h.service.StatsByDay(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func bindDay(c *gin.Context) (int, time.Time, bool) {
	memberID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return 0, time.Time{}, false
	}

	var req MarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, time.Time{}, false
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	return memberID, date, true
}
