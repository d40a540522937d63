package pricing

import (
	"net/http"
	"strconv"

	"gym-application/internal/supplement"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	repo Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{repo: NewRepository(db)}
}

// GetSettings godoc
// @Summary      Get full pricing configuration
// @Tags         settings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Config
// @Router       /admin/settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
	cfg, err := h.repo.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// SaveSettings godoc
// @Summary      Save pricing configuration for one category
// @Description  Upserts by category. Negative prices and multipliers below 1 are rejected.
// @Tags         settings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        category  path  string  true  "Settings category"  Enums(base, supplement, cardio, pt)
// @Success      200       {object}  api.MessageResponse
// @Failure      400       {object}  api.ErrorResponse
// @Router       /admin/settings/{category} [put]
func (h *Handler) SaveSettings(c *gin.Context) {
	ctx := c.Request.Context()

	var err error
	switch c.Param("category") {
	case CategoryBase:
		var cfg BaseConfig
		if err = c.ShouldBindJSON(&cfg); err == nil {
			if err = cfg.Validate(); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "base fee must be non-negative"})
				return
			}
			err = h.repo.SaveBase(ctx, cfg)
		}
	case CategorySupplement:
		cfgs := map[supplement.Type]SupplementConfig{}
		if err = c.ShouldBindJSON(&cfgs); err == nil {
			for t, sc := range cfgs {
				if !t.Valid() {
					c.JSON(http.StatusBadRequest, gin.H{"error": "unknown supplement type: " + string(t)})
					return
				}
				if sc.Validate() != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "supplement prices must be non-negative"})
					return
				}
			}
			err = h.repo.SaveSupplements(ctx, cfgs)
		}
	case CategoryCardio:
		var cfg CardioConfig
		if err = c.ShouldBindJSON(&cfg); err == nil {
			if err = cfg.Validate(); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "cardio prices must be non-negative and multiplier at least 1"})
				return
			}
			err = h.repo.SaveCardio(ctx, cfg)
		}
	case CategoryPT:
		var cfg PTConfig
		if err = c.ShouldBindJSON(&cfg); err == nil {
			if err = cfg.Validate(); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "personal training rates must be non-negative"})
				return
			}
			err = h.repo.SavePT(ctx, cfg)
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown settings category"})
		return
	}

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "settings saved"})
}

// QuoteCardioPlan godoc
// @Summary      Quote a cardio plan against current pricing
// @Tags         pricing
// @Security     BearerAuth
// @Produce      json
// @Param        duration  query  string  true   "Weekly or Monthly"
// @Param        type      query  string  true   "Standard or Unlimited"
// @Param        custom    query  number  false  "Custom price, honored only with manual override"
// @Success      200  {object}  map[string]float64
// @Failure      400  {object}  api.ErrorResponse
// @Router       /admin/pricing/cardio/quote [get]
func (h *Handler) QuoteCardioPlan(c *gin.Context) {
	duration := CardioDuration(c.Query("duration"))
	if duration != DurationWeekly && duration != DurationMonthly {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be Weekly or Monthly"})
		return
	}

	access := CardioAccess(c.Query("type"))
	if access != AccessStandard && access != AccessUnlimited {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be Standard or Unlimited"})
		return
	}

	custom, ok := parseCustomPrice(c)
	if !ok {
		return
	}

	cfg, err := h.repo.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"price": QuoteCardio(duration, access, cfg.Cardio, custom)})
}

// QuotePTPlan godoc
// @Summary      Quote a personal training plan against current pricing
// @Tags         pricing
// @Security     BearerAuth
// @Produce      json
// @Param        tier    query  string  true   "Duration tier"  Enums(one_month, six_months, one_year)
// @Param        custom  query  number  false  "Custom price"
// @Success      200  {object}  map[string]float64
// @Failure      400  {object}  api.ErrorResponse
// @Router       /admin/pricing/pt/quote [get]
func (h *Handler) QuotePTPlan(c *gin.Context) {
	tier := Tier(c.Query("tier"))
	if !tier.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown duration tier"})
		return
	}

	custom, ok := parseCustomPrice(c)
	if !ok {
		return
	}

	cfg, err := h.repo.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"price": QuotePT(tier, cfg.PT, custom)})
}

func parseCustomPrice(c *gin.Context) (*float64, bool) {
	raw := c.Query("custom")
	if raw == "" {
		return nil, true
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "custom price must be a non-negative number"})
		return nil, false
	}
	return &v, true
}
