package subscription

import "time"

// Category separates the two paid plan families a member can hold at the
// same time. A member has at most one active subscription per category.
type Category string

const (
	CategoryCardio Category = "cardio"
	CategoryPT     Category = "personal_training"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryCardio, CategoryPT:
		return true
	}
	return false
}

// Subscription is a member's plan in one category. Price is frozen at assign
// time: later pricing changes never touch rows that already exist.
type Subscription struct {
	ID        int       `db:"id" json:"id"`
	MemberID  int       `db:"member_id" json:"member_id"`
	Category  Category  `db:"category" json:"category"`
	Duration  string    `db:"duration" json:"duration"`
	PlanType  string    `db:"plan_type" json:"plan_type"`
	Trainer   *string   `db:"trainer" json:"trainer,omitempty"`
	Price     float64   `db:"price" json:"price"`
	StartDate time.Time `db:"start_date" json:"start_date"`
	EndDate   time.Time `db:"end_date" json:"end_date"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ActiveSubscription joins a subscription with its member's name for list
// views.
type ActiveSubscription struct {
	Subscription
	MemberName string `db:"member_name" json:"member_name"`
}

// PeriodEnd computes when a plan assigned at start runs out. Cardio plans run
// a week or a calendar month; personal-training tiers run one, six or twelve
// months.
func PeriodEnd(start time.Time, category Category, plan string) time.Time {
	if category == CategoryCardio {
		if plan == "Weekly" {
			return start.AddDate(0, 0, 7)
		}
		return start.AddDate(0, 1, 0)
	}

	switch plan {
	case "six_months":
		return start.AddDate(0, 6, 0)
	case "one_year":
		return start.AddDate(1, 0, 0)
	default:
		return start.AddDate(0, 1, 0)
	}
}

type AssignCardioRequest struct {
	Duration    string   `json:"duration" binding:"required,oneof=Weekly Monthly"`
	AccessType  string   `json:"access_type" binding:"required,oneof=Standard Unlimited"`
	CustomPrice *float64 `json:"custom_price,omitempty" binding:"omitempty,gte=0"`
}

type AssignPTRequest struct {
	Tier        string   `json:"tier" binding:"required,oneof=one_month six_months one_year"`
	Trainer     *string  `json:"trainer,omitempty"`
	CustomPrice *float64 `json:"custom_price,omitempty" binding:"omitempty,gte=0"`
}
