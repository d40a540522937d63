package attendance

import (
	"context"
	"time"

	"gym-application/internal/db"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

// Mark records a visit for the day. Returns false without error when the day
// is already marked, so marking twice is a no-op rather than a failure.
func (r *repository) Mark(ctx context.Context, memberID int, date time.Time) (bool, error) {
	marked, err := db.Exists(ctx, r.db, `
		SELECT EXISTS(SELECT 1 FROM attendance WHERE member_id = $1 AND date = $2)
	`, memberID, date)
	if err != nil {
		return false, err
	}
	if marked {
		return false, nil
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO attendance (member_id, date)
		VALUES ($1, $2)
		ON CONFLICT (member_id, date) DO NOTHING
	`, memberID, date)
	if err != nil {
		return false, err
	}

	return true, nil
}

// Unmark removes the day's record. Returns false when there was nothing to
// remove.
func (r *repository) Unmark(ctx context.Context, memberID int, date time.Time) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM attendance
		WHERE member_id = $1 AND date = $2
	`, memberID, date)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (r *repository) DatesFor(ctx context.Context, memberID int) ([]time.Time, error) {
	var dates []time.Time
	err := r.db.SelectContext(ctx, &dates, `
		SELECT date
		FROM attendance
		WHERE member_id = $1
		ORDER BY date
	`, memberID)
	if err != nil {
		return nil, err
	}

	return dates, nil
}

// CountInPeriod counts a member's visits inside one calendar month given as
// "YYYY-MM".
func (r *repository) CountInPeriod(ctx context.Context, memberID int, yearMonth string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*)
		FROM attendance
		WHERE member_id = $1 AND to_char(date, 'YYYY-MM') = $2
	`, memberID, yearMonth)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) AllByMember(ctx context.Context) (map[int][]time.Time, error) {
	var rows []Day
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, member_id, date
		FROM attendance
		ORDER BY member_id, date
	`)
	if err != nil {
		return nil, err
	}

	byMember := make(map[int][]time.Time, len(rows))
	for _, row := range rows {
		byMember[row.MemberID] = append(byMember[row.MemberID], row.Date)
	}

	return byMember, nil
}

func (r *repository) StatsByDay(ctx context.Context, from, to time.Time) ([]DayStat, error) {
	query := `
SELECT
  date     AS bucket,
  COUNT(*) AS visits
FROM attendance
WHERE date BETWEEN $1 AND $2
GROUP BY date
ORDER BY bucket;
`
	var stats []DayStat
	if err := r.db.SelectContext(ctx, &stats, query, from, to); err != nil {
		return nil, err
	}
	return stats, nil
}
