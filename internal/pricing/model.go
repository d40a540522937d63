package pricing

import (
	"strings"

	"gym-application/internal/supplement"

	"github.com/go-playground/validator/v10"
)

const (
	CategoryBase       = "base"
	CategorySupplement = "supplement"
	CategoryCardio     = "cardio"
	CategoryPT         = "pt"
)

type CardioDuration string
type CardioAccess string

const (
	DurationWeekly  CardioDuration = "Weekly"
	DurationMonthly CardioDuration = "Monthly"

	AccessStandard  CardioAccess = "Standard"
	AccessUnlimited CardioAccess = "Unlimited"
)

// Tier is a personal-training billing period.
type Tier string

const (
	TierOneMonth  Tier = "one_month"
	TierSixMonths Tier = "six_months"
	TierOneYear   Tier = "one_year"
)

var Tiers = []Tier{TierOneMonth, TierSixMonths, TierOneYear}

func (t Tier) Valid() bool {
	switch t {
	case TierOneMonth, TierSixMonths, TierOneYear:
		return true
	}
	return false
}

// Humanize renders a tier for invoices: "one_month" becomes "One Month".
func (t Tier) Humanize() string {
	words := strings.Split(string(t), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

type BaseConfig struct {
	BaseFee float64 `json:"baseFee" validate:"gte=0"`
}

// SupplementConfig prices one supplement type. IsAuto bills scoops × price;
// manual mode bills the member's stored manual cost instead.
type SupplementConfig struct {
	Price  float64 `json:"price" validate:"gte=0"`
	IsAuto bool    `json:"isAuto"`
}

type CardioConfig struct {
	WeeklyPrice         float64 `json:"weeklyPrice" validate:"gte=0"`
	MonthlyPrice        float64 `json:"monthlyPrice" validate:"gte=0"`
	UnlimitedMultiplier float64 `json:"unlimitedMultiplier" validate:"gte=1"`
	ManualOverride      bool    `json:"manualOverride"`
}

type PTConfig struct {
	Rates map[Tier]float64 `json:"rates" validate:"required,dive,gte=0"`
}

// Config is the gym's full pricing state, assembled from the settings store
// and passed explicitly into billing computations.
type Config struct {
	Base        BaseConfig                           `json:"base"`
	Supplements map[supplement.Type]SupplementConfig `json:"supplements"`
	Cardio      CardioConfig                         `json:"cardio"`
	PT          PTConfig                             `json:"pt"`
}

// DefaultConfig carries the prices the gym opened with; rows missing from the
// settings store fall back to these.
func DefaultConfig() Config {
	return Config{
		Base: BaseConfig{BaseFee: 3000},
		Supplements: map[supplement.Type]SupplementConfig{
			supplement.TypeCreatine:   {Price: 100, IsAuto: true},
			supplement.TypeWhey:       {Price: 300, IsAuto: true},
			supplement.TypePreworkout: {Price: 200, IsAuto: true},
		},
		Cardio: CardioConfig{
			WeeklyPrice:         1000,
			MonthlyPrice:        3000,
			UnlimitedMultiplier: 1.5,
			ManualOverride:      false,
		},
		PT: PTConfig{
			Rates: map[Tier]float64{
				TierOneMonth:  20000,
				TierSixMonths: 100000,
				TierOneYear:   180000,
			},
		},
	}
}

var validate = validator.New()

func (c BaseConfig) Validate() error       { return validate.Struct(c) }
func (c SupplementConfig) Validate() error { return validate.Struct(c) }
func (c CardioConfig) Validate() error     { return validate.Struct(c) }

func (c PTConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	for tier := range c.Rates {
		if !tier.Valid() {
			return &UnknownTierError{Tier: tier}
		}
	}
	return nil
}

type UnknownTierError struct {
	Tier Tier
}

func (e *UnknownTierError) Error() string {
	return "unknown personal training tier: " + string(e.Tier)
}
