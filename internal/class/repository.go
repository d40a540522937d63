package class

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrClassNotFound = errors.New("class not found")

type Repository interface {
	List(ctx context.Context) ([]Class, error)
	Create(ctx context.Context, req CreateClassRequest) (*Class, error)
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const classColumns = `id, name, instructor, day, time, duration, color, created_at`

func (r *repository) List(ctx context.Context) ([]Class, error) {
	var classes []Class
	err := r.db.SelectContext(ctx, &classes, `
		SELECT `+classColumns+`
		FROM classes
		ORDER BY day, time
	`)
	if err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *repository) Create(ctx context.Context, req CreateClassRequest) (*Class, error) {
	query := `
		INSERT INTO classes (name, instructor, day, time, duration, color)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + classColumns

	var cls Class
	err := r.db.GetContext(ctx, &cls, query,
		req.Name, req.Instructor, req.Day, req.Time, req.Duration, req.Color)
	if err != nil {
		return nil, err
	}

	return &cls, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrClassNotFound
	}

	return nil
}
