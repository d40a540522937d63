package attendance

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAttendanceMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func TestMarkInsertsWhenAbsent(t *testing.T) {
	repo, mock, close := setupAttendanceMock(t)
	defer close()

	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(1, date).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO attendance")).
		WithArgs(1, date).
		WillReturnResult(sqlmock.NewResult(1, 1))

	inserted, err := repo.Mark(context.Background(), 1, date)
	require.NoError(t, err)
	assert.True(t, inserted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkSkipsWhenPresent(t *testing.T) {
	repo, mock, close := setupAttendanceMock(t)
	defer close()

	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(1, date).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	inserted, err := repo.Mark(context.Background(), 1, date)
	require.NoError(t, err)
	assert.False(t, inserted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUnmarkMissingDay(t *testing.T) {
	repo, mock, close := setupAttendanceMock(t)
	defer close()

	date := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM attendance")).
		WithArgs(1, date).
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := repo.Unmark(context.Background(), 1, date)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestCountInPeriod(t *testing.T) {
	repo, mock, close := setupAttendanceMock(t)
	defer close()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(3, "2024-05").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.CountInPeriod(context.Background(), 3, "2024-05")
	require.NoError(t, err)
	assert.Equal(t, 12, count)
}

func TestAllByMemberGroups(t *testing.T) {
	repo, mock, close := setupAttendanceMock(t)
	defer close()

	d1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "member_id", "date"}).
		AddRow(1, 1, d1).
		AddRow(2, 1, d2).
		AddRow(3, 2, d1)

	mock.ExpectQuery("SELECT (.+) FROM attendance").
		WillReturnRows(rows)

	byMember, err := repo.AllByMember(context.Background())
	require.NoError(t, err)
	assert.Len(t, byMember[1], 2)
	assert.Len(t, byMember[2], 1)
}
