package subscription

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gym-application/internal/member"
	"gym-application/internal/metrics"
	"gym-application/internal/pricing"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	repo        Repository
	pricingRepo pricing.Repository
	memberRepo  member.Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{
		repo:        NewRepository(db),
		pricingRepo: pricing.NewRepository(db),
		memberRepo:  member.NewRepository(db),
	}
}

// Assign godoc
// @Summary      Assign a plan to a member
// @Description  Upserts the member's plan in the category. The price is quoted
// @Description  from current settings and frozen on the subscription row.
// @Tags         subscriptions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id        path  int     true  "Member ID"
// @Param        category  path  string  true  "Plan category"  Enums(cardio, personal_training)
// @Success      200  {object}  Subscription
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /admin/members/{id}/subscriptions/{category} [put]
func (h *Handler) Assign(c *gin.Context) {
	memberID, category, ok := h.parseTarget(c)
	if !ok {
		return
	}

	cfg, err := h.pricingRepo.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}

	now := time.Now()
	sub := Subscription{MemberID: memberID, Category: category, StartDate: now}

	switch category {
	case CategoryCardio:
		var req AssignCardioRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sub.Duration = req.Duration
		sub.PlanType = req.AccessType
		sub.Price = pricing.QuoteCardio(
			pricing.CardioDuration(req.Duration),
			pricing.CardioAccess(req.AccessType),
			cfg.Cardio, req.CustomPrice)
		sub.EndDate = PeriodEnd(now, category, req.Duration)

	case CategoryPT:
		var req AssignPTRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		tier := pricing.Tier(req.Tier)
		sub.Duration = req.Tier
		sub.PlanType = tier.Humanize()
		sub.Trainer = req.Trainer
		sub.Price = pricing.QuotePT(tier, cfg.PT, req.CustomPrice)
		sub.EndDate = PeriodEnd(now, category, req.Tier)
	}

	saved, err := h.repo.Assign(c.Request.Context(), sub)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assign subscription"})
		return
	}

	metrics.RecordSubscription(string(category))
	c.JSON(http.StatusOK, saved)
}

// Remove godoc
// @Summary      Remove a member's plan
// @Tags         subscriptions
// @Security     BearerAuth
// @Produce      json
// @Param        id        path  int     true  "Member ID"
// @Param        category  path  string  true  "Plan category"  Enums(cardio, personal_training)
// @Success      200  {object}  api.MessageResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /admin/members/{id}/subscriptions/{category} [delete]
func (h *Handler) Remove(c *gin.Context) {
	memberID, category, ok := h.parseTarget(c)
	if !ok {
		return
	}

	err := h.repo.Remove(c.Request.Context(), memberID, category)
	if err != nil {
		if errors.Is(err, ErrSubscriptionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "subscription not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "subscription removed"})
}

// ListActive godoc
// @Summary      List active subscriptions in a category
// @Tags         subscriptions
// @Security     BearerAuth
// @Produce      json
// @Param        category  path  string  true  "Plan category"  Enums(cardio, personal_training)
// @Success      200  {array}  ActiveSubscription
// @Router       /admin/subscriptions/{category} [get]
func (h *Handler) ListActive(c *gin.Context) {
	category := Category(c.Param("category"))
	if !category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	subs, err := h.repo.ListActive(c.Request.Context(), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load subscriptions"})
		return
	}

	c.JSON(http.StatusOK, subs)
}

// parseTarget resolves and validates the member/category pair from the path.
// The member must exist before a plan can be attached or detached.
func (h *Handler) parseTarget(c *gin.Context) (int, Category, bool) {
	memberID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return 0, "", false
	}

	category := Category(c.Param("category"))
	if !category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return 0, "", false
	}

	if _, err := h.memberRepo.GetByID(c.Request.Context(), memberID); err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
			return 0, "", false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load member"})
		return 0, "", false
	}

	return memberID, category, true
}
