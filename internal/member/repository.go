package member

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

var ErrMemberNotFound = errors.New("member not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const memberColumns = `id, name, email, phone, fee, payment, status, join_date, profile, created_at, updated_at`

func (r *repository) List(ctx context.Context) ([]Member, error) {
	members := []Member{}
	err := r.db.SelectContext(ctx, &members, `
		SELECT `+memberColumns+`
		FROM members
		ORDER BY id
	`)
	return members, err
}

func (r *repository) GetByID(ctx context.Context, id int) (*Member, error) {
	m := &Member{}
	err := r.db.GetContext(ctx, m, `
		SELECT `+memberColumns+`
		FROM members
		WHERE id = $1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *repository) Create(ctx context.Context, req CreateMemberRequest) (*Member, error) {
	profile := fmt.Sprintf("https://i.pravatar.cc/150?u=%s%d", req.Name, time.Now().UnixNano())

	m := &Member{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO members (name, email, phone, fee, payment, status, join_date, profile)
		VALUES ($1, $2, $3, $4, 'Unpaid', 'Active', NOW(), $5)
		RETURNING `+memberColumns+`
	`, req.Name, req.Email, req.Phone, req.Fee, profile).StructScan(m)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *repository) Update(ctx context.Context, id int, req UpdateMemberRequest) (*Member, error) {
	m := &Member{}
	err := r.db.QueryRowxContext(ctx, `
		UPDATE members
		SET name       = COALESCE($2, name),
		    email      = COALESCE($3, email),
		    phone      = COALESCE($4, phone),
		    fee        = COALESCE($5, fee),
		    payment    = COALESCE($6, payment),
		    status     = COALESCE($7, status),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING `+memberColumns+`
	`, id, req.Name, req.Email, req.Phone, req.Fee, req.Payment, req.Status).StructScan(m)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (r *repository) ListUnpaid(ctx context.Context) ([]Member, error) {
	members := []Member{}
	err := r.db.SelectContext(ctx, &members, `
		SELECT `+memberColumns+`
		FROM members
		WHERE payment = 'Unpaid' AND status = 'Active'
		ORDER BY id
	`)
	return members, err
}
