package email

import (
	"net/http"
	"time"

	"gym-application/internal/member"
	"gym-application/internal/metrics"
	"gym-application/internal/pricing"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	mailer      *Service
	members     member.Repository
	pricingRepo pricing.Repository
}

func NewHandler(db *sqlx.DB, mailer *Service) *Handler {
	return &Handler{
		mailer:      mailer,
		members:     member.NewRepository(db),
		pricingRepo: pricing.NewRepository(db),
	}
}

// RemindUnpaid godoc
// @Summary      Queue payment reminders for all unpaid members
// @Description  One email per active member whose fee is still unpaid this month.
// @Tags         reminders
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /admin/reminders [post]
func (h *Handler) RemindUnpaid(c *gin.Context) {
	ctx := c.Request.Context()

	unpaid, err := h.members.ListUnpaid(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load members"})
		return
	}

	cfg, err := h.pricingRepo.Get(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}

	period := time.Now().Format("January 2006")

	queued := 0
	for _, m := range unpaid {
		if m.Email == "" {
			continue
		}
		due := m.FeeOrDefault(cfg.Base.BaseFee)
		if err := h.mailer.SendPaymentReminder(ctx, m.Email, m.Name, due, period); err != nil {
			continue
		}
		metrics.RecordReminderQueued()
		queued++
	}

	c.JSON(http.StatusOK, gin.H{"queued": queued})
}
