package pricing

import "math"

// QuoteCardio prices a cardio plan from current config. A custom price is
// honored only when the config has ManualOverride set; otherwise the formula
// wins. Unlimited access rounds to the nearest whole currency unit, Standard
// passes the configured price through untouched.
func QuoteCardio(duration CardioDuration, access CardioAccess, cfg CardioConfig, customPrice *float64) float64 {
	if customPrice != nil && cfg.ManualOverride {
		return *customPrice
	}

	base := cfg.MonthlyPrice
	if duration == DurationWeekly {
		base = cfg.WeeklyPrice
	}

	if access == AccessUnlimited {
		return math.Round(base * cfg.UnlimitedMultiplier)
	}
	return base
}

// QuotePT prices a personal-training plan. A custom price always wins when
// given; there is no multiplier logic for personal training.
func QuotePT(tier Tier, cfg PTConfig, customPrice *float64) float64 {
	if customPrice != nil {
		return *customPrice
	}
	return cfg.Rates[tier]
}
