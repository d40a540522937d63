package supplement

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) IncrementScoops(ctx context.Context, memberID int, t Type) (*Usage, error) {
	usage := &Usage{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO member_supplements (member_id, type, scoops, manual_cost)
		VALUES ($1, $2, 1, 0)
		ON CONFLICT (member_id, type)
		DO UPDATE SET scoops = member_supplements.scoops + 1
		RETURNING member_id, type, scoops, manual_cost
	`, memberID, t).StructScan(usage)
	if err != nil {
		return nil, err
	}
	return usage, nil
}

func (r *repository) DecrementScoops(ctx context.Context, memberID int, t Type) (*Usage, error) {
	usage := &Usage{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO member_supplements (member_id, type, scoops, manual_cost)
		VALUES ($1, $2, 0, 0)
		ON CONFLICT (member_id, type)
		DO UPDATE SET scoops = GREATEST(member_supplements.scoops - 1, 0)
		RETURNING member_id, type, scoops, manual_cost
	`, memberID, t).StructScan(usage)
	if err != nil {
		return nil, err
	}
	return usage, nil
}

func (r *repository) SetManualCost(ctx context.Context, memberID int, t Type, amount float64) (*Usage, error) {
	// Negative amounts clamp to zero rather than erroring; the admin UI
	// treats a cleared field as zero.
	if amount < 0 {
		amount = 0
	}

	usage := &Usage{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO member_supplements (member_id, type, scoops, manual_cost)
		VALUES ($1, $2, 0, $3)
		ON CONFLICT (member_id, type)
		DO UPDATE SET manual_cost = EXCLUDED.manual_cost
		RETURNING member_id, type, scoops, manual_cost
	`, memberID, t, amount).StructScan(usage)
	if err != nil {
		return nil, err
	}
	return usage, nil
}

func (r *repository) UsageFor(ctx context.Context, memberID int) (map[Type]Usage, error) {
	var rows []Usage
	err := r.db.SelectContext(ctx, &rows, `
		SELECT member_id, type, scoops, manual_cost
		FROM member_supplements
		WHERE member_id = $1
	`, memberID)
	if err != nil {
		return nil, err
	}

	usage := make(map[Type]Usage, len(rows))
	for _, u := range rows {
		usage[u.Type] = u
	}
	return usage, nil
}
