package payment

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	EnsureMonth(ctx context.Context, month string) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// EnsureMonth claims the reset marker for the month and, when the claim
// succeeds, flips every paid member back to unpaid. The marker is a single
// row; the conditional update makes the claim atomic, so concurrent callers
// and restarts reset at most once per month. Returns whether this call did
// the reset.
func (r *repository) EnsureMonth(ctx context.Context, month string) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE payment_resets
		SET last_month = $1
		WHERE last_month IS DISTINCT FROM $1
	`, month)
	if err != nil {
		return false, err
	}

	claimed, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	if claimed == 0 {
		return false, tx.Commit()
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE members
		SET payment = 'Unpaid', updated_at = NOW()
		WHERE payment = 'Paid'
	`)
	if err != nil {
		return false, err
	}

	return true, tx.Commit()
}
