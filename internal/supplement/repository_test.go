package supplement

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupSupplementMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func usageRows(memberID int, t Type, scoops int, manualCost float64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"member_id", "type", "scoops", "manual_cost"}).
		AddRow(memberID, string(t), scoops, manualCost)
}

func TestIncrementScoops(t *testing.T) {
	repo, mock, close := setupSupplementMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO member_supplements (member_id, type, scoops, manual_cost)
		VALUES ($1, $2, 1, 0)
		ON CONFLICT (member_id, type)
		DO UPDATE SET scoops = member_supplements.scoops + 1
		RETURNING member_id, type, scoops, manual_cost
	`)).
		WithArgs(1, TypeCreatine).
		WillReturnRows(usageRows(1, TypeCreatine, 5, 0))

	usage, err := repo.IncrementScoops(context.Background(), 1, TypeCreatine)
	require.NoError(t, err)
	require.Equal(t, 5, usage.Scoops)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementScoopsFloorsAtZero(t *testing.T) {
	repo, mock, close := setupSupplementMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO member_supplements (member_id, type, scoops, manual_cost)
		VALUES ($1, $2, 0, 0)
		ON CONFLICT (member_id, type)
		DO UPDATE SET scoops = GREATEST(member_supplements.scoops - 1, 0)
		RETURNING member_id, type, scoops, manual_cost
	`)).
		WithArgs(1, TypeWhey).
		WillReturnRows(usageRows(1, TypeWhey, 0, 0))

	usage, err := repo.DecrementScoops(context.Background(), 1, TypeWhey)
	require.NoError(t, err)
	require.Equal(t, 0, usage.Scoops)
}

func TestSetManualCostClampsNegative(t *testing.T) {
	repo, mock, close := setupSupplementMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO member_supplements (member_id, type, scoops, manual_cost)
		VALUES ($1, $2, 0, $3)
		ON CONFLICT (member_id, type)
		DO UPDATE SET manual_cost = EXCLUDED.manual_cost
		RETURNING member_id, type, scoops, manual_cost
	`)).
		WithArgs(1, TypePreworkout, float64(0)).
		WillReturnRows(usageRows(1, TypePreworkout, 0, 0))

	usage, err := repo.SetManualCost(context.Background(), 1, TypePreworkout, -50)
	require.NoError(t, err)
	require.Equal(t, float64(0), usage.ManualCost)
}

func TestUsageFor(t *testing.T) {
	repo, mock, close := setupSupplementMock(t)
	defer close()

	rows := sqlmock.NewRows([]string{"member_id", "type", "scoops", "manual_cost"}).
		AddRow(1, "creatine", 5, 0.0).
		AddRow(1, "whey", 2, 0.0)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT member_id, type, scoops, manual_cost
		FROM member_supplements
		WHERE member_id = $1
	`)).
		WithArgs(1).
		WillReturnRows(rows)

	usage, err := repo.UsageFor(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, usage, 2)
	require.Equal(t, 5, usage[TypeCreatine].Scoops)
	require.Equal(t, 2, usage[TypeWhey].Scoops)
}

func TestTypeDisplayNames(t *testing.T) {
	require.Equal(t, "Creatine", TypeCreatine.DisplayName())
	require.Equal(t, "Whey Protein", TypeWhey.DisplayName())
	require.Equal(t, "Pre-Workout", TypePreworkout.DisplayName())
	require.False(t, Type("caffeine").Valid())
}
