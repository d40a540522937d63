package subscription

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrSubscriptionNotFound = errors.New("subscription not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const subscriptionColumns = `id, member_id, category, duration, plan_type, trainer, price, start_date, end_date, status, created_at`

// Assign replaces whatever plan the member already holds in the category.
// Re-assigning is an update, not an error: the new plan details and the new
// frozen price overwrite the old row.
func (r *repository) Assign(ctx context.Context, sub Subscription) (*Subscription, error) {
	query := `
		INSERT INTO plan_subscriptions (member_id, category, duration, plan_type, trainer, price, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'Active')
		ON CONFLICT (member_id, category) DO UPDATE SET
			duration   = EXCLUDED.duration,
			plan_type  = EXCLUDED.plan_type,
			trainer    = EXCLUDED.trainer,
			price      = EXCLUDED.price,
			start_date = EXCLUDED.start_date,
			end_date   = EXCLUDED.end_date,
			status     = EXCLUDED.status
		RETURNING ` + subscriptionColumns

	var saved Subscription
	err := r.db.GetContext(ctx, &saved, query,
		sub.MemberID, sub.Category, sub.Duration, sub.PlanType, sub.Trainer,
		sub.Price, sub.StartDate, sub.EndDate)
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

func (r *repository) Get(ctx context.Context, memberID int, category Category) (*Subscription, error) {
	query := `
		SELECT ` + subscriptionColumns + `
		FROM plan_subscriptions
		WHERE member_id = $1 AND category = $2
	`

	var sub Subscription
	err := r.db.GetContext(ctx, &sub, query, memberID, category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}

	return &sub, nil
}

func (r *repository) Remove(ctx context.Context, memberID int, category Category) error {
	query := `
		DELETE FROM plan_subscriptions
		WHERE member_id = $1 AND category = $2
	`

	result, err := r.db.ExecContext(ctx, query, memberID, category)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrSubscriptionNotFound
	}

	return nil
}

func (r *repository) ListActive(ctx context.Context, category Category) ([]ActiveSubscription, error) {
	query := `
		SELECT s.id, s.member_id, s.category, s.duration, s.plan_type, s.trainer,
		       s.price, s.start_date, s.end_date, s.status, s.created_at,
		       m.name AS member_name
		FROM plan_subscriptions s
		JOIN members m ON m.id = s.member_id
		WHERE s.category = $1 AND s.status = 'Active'
		ORDER BY s.start_date DESC, s.id DESC
	`

	var subs []ActiveSubscription
	err := r.db.SelectContext(ctx, &subs, query, category)
	if err != nil {
		return nil, err
	}

	return subs, nil
}
