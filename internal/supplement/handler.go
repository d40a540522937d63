package supplement

import (
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

type SetCostRequest struct {
	Amount float64 `json:"amount"`
}

func parseTarget(c *gin.Context) (int, Type, bool) {
	memberID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return 0, "", false
	}

	t := Type(c.Param("type"))
	if !t.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown supplement type"})
		return 0, "", false
	}

	return memberID, t, true
}

// IncrementScoops godoc
// @Summary      Add one scoop to a member's supplement usage
// @Tags         supplements
// @Security     BearerAuth
// @Produce      json
// @Param        id    path  int     true  "Member ID"
// @Param        type  path  string  true  "Supplement type"  Enums(creatine, whey, preworkout)
// @Success      200   {object}  Usage
// @Failure      400   {object}  api.ErrorResponse
// @Router       /admin/members/{id}/supplements/{type}/scoops/increment [put]
func (h *Handler) IncrementScoops(c *gin.Context) {
	memberID, t, ok := parseTarget(c)
	if !ok {
		return
	}

	usage, err := h.repo.IncrementScoops(c.Request.Context(), memberID, t)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update scoops"})
		return
	}

	c.JSON(http.StatusOK, usage)
}

// DecrementScoops godoc
// @Summary      Remove one scoop from a member's supplement usage
// @Description  Scoop counts never go below zero.
// @Tags         supplements
// @Security     BearerAuth
// @Produce      json
// @Param        id    path  int     true  "Member ID"
// @Param        type  path  string  true  "Supplement type"  Enums(creatine, whey, preworkout)
// @Success      200   {object}  Usage
// @Failure      400   {object}  api.ErrorResponse
// @Router       /admin/members/{id}/supplements/{type}/scoops/decrement [put]
func (h *Handler) DecrementScoops(c *gin.Context) {
	memberID, t, ok := parseTarget(c)
	if !ok {
		return
	}

	usage, err := h.repo.DecrementScoops(c.Request.Context(), memberID, t)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update scoops"})
		return
	}

	c.JSON(http.StatusOK, usage)
}

// SetManualCost godoc
// @Summary      Set the manual charge for a member's supplement
// @Description  Used when the supplement type is in manual pricing mode.
// @Tags         supplements
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path  int             true  "Member ID"
// @Param        type    path  string          true  "Supplement type"  Enums(creatine, whey, preworkout)
// @Param        request body  SetCostRequest  true  "Manual cost"
// @Success      200     {object}  Usage
// @Failure      400     {object}  api.ErrorResponse
// @Router       /admin/members/{id}/supplements/{type}/cost [put]
func (h *Handler) SetManualCost(c *gin.Context) {
	memberID, t, ok := parseTarget(c)
	if !ok {
		return
	}

	var req SetCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount is required"})
		return
	}

	usage, err := h.repo.SetManualCost(c.Request.Context(), memberID, t, req.Amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to set manual cost"})
		return
	}

	c.JSON(http.StatusOK, usage)
}

// GetUsage godoc
// @Summary      Get a member's supplement usage
// @Tags         supplements
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Member ID"
// @Success      200 {object}  map[string]Usage
// @Failure      400 {object}  api.ErrorResponse
// @Router       /admin/members/{id}/supplements [get]
func (h *Handler) GetUsage(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	usage, err := h.repo.UsageFor(c.Request.Context(), memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load usage"})
		return
	}

	c.JSON(http.StatusOK, usage)
}
