package billing

import (
	"fmt"

	"gym-application/internal/member"
	"gym-application/internal/pricing"
	"gym-application/internal/subscription"
	"gym-application/internal/supplement"
)

// LineItem is one row on a member's monthly invoice.
type LineItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Invoice struct {
	MemberID int        `json:"member_id"`
	Items    []LineItem `json:"items"`
	Total    float64    `json:"total"`
}

// Subscriptions carries the member's active plans into the engine. Either
// pointer may be nil.
type Subscriptions struct {
	Cardio *subscription.Subscription
	PT     *subscription.Subscription
}

// ComputeInvoice assembles the member's invoice for the current month. It is
// pure: same inputs, same invoice, no side effects.
//
// Item order is fixed: base fee first (always listed, even at zero), then
// supplements in catalog order, then cardio, then personal training.
// Subscription prices come frozen off the subscription rows; current pricing
// settings only affect the base fee and supplement lines.
func ComputeInvoice(m *member.Member, cfg pricing.Config, subs Subscriptions, usage map[supplement.Type]supplement.Usage) Invoice {
	if m == nil {
		return Invoice{Items: []LineItem{}}
	}

	inv := Invoice{MemberID: m.ID, Items: []LineItem{}}

	inv.Items = append(inv.Items, LineItem{
		Name:  "Gym Membership",
		Price: m.FeeOrDefault(cfg.Base.BaseFee),
	})

	for _, t := range supplement.Types {
		supCfg := cfg.Supplements[t]
		use := usage[t]

		if supCfg.IsAuto {
			price := float64(use.Scoops) * supCfg.Price
			if price > 0 {
				inv.Items = append(inv.Items, LineItem{
					Name:  fmt.Sprintf("%s (%d Scoops)", t.DisplayName(), use.Scoops),
					Price: price,
				})
			}
		} else if use.ManualCost > 0 {
			inv.Items = append(inv.Items, LineItem{
				Name:  fmt.Sprintf("%s (Manual)", t.DisplayName()),
				Price: use.ManualCost,
			})
		}
	}

	if subs.Cardio != nil {
		inv.Items = append(inv.Items, LineItem{
			Name:  fmt.Sprintf("Cardio (%s - %s)", subs.Cardio.Duration, subs.Cardio.PlanType),
			Price: subs.Cardio.Price,
		})
	}

	if subs.PT != nil {
		tier := pricing.Tier(subs.PT.Duration)
		inv.Items = append(inv.Items, LineItem{
			Name:  fmt.Sprintf("Personal Training (%s)", tier.Humanize()),
			Price: subs.PT.Price,
		})
	}

	for _, item := range inv.Items {
		inv.Total += item.Price
	}

	return inv
}
