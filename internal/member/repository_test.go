package member

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMemberMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

var memberCols = []string{"id", "name", "email", "phone", "fee", "payment", "status", "join_date", "profile", "created_at", "updated_at"}

func memberRow(id int, name string, fee interface{}, payment, status string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(memberCols).
		AddRow(id, name, name+"@example.com", "+92 300 1234567", fee, payment, status, now, "https://i.pravatar.cc/150?u=x", now, now)
}

func TestGetByID(t *testing.T) {
	repo, mock, close := setupMemberMock(t)
	defer close()

	mock.ExpectQuery("SELECT (.+) FROM members").
		WithArgs(1).
		WillReturnRows(memberRow(1, "Ali", 3000.0, "Paid", "Active"))

	m, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Ali", m.Name)
	require.Equal(t, PaymentPaid, m.Payment)
	require.NotNil(t, m.Fee)
	require.Equal(t, 3000.0, *m.Fee)
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock, close := setupMemberMock(t)
	defer close()

	mock.ExpectQuery("SELECT (.+) FROM members").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows(memberCols))

	_, err := repo.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, ErrMemberNotFound)
}

func TestCreateMember(t *testing.T) {
	repo, mock, close := setupMemberMock(t)
	defer close()

	fee := 2500.0
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO members (name, email, phone, fee, payment, status, join_date, profile)`)).
		WithArgs("Sara", "sara@example.com", "+92 301 7654321", fee, sqlmock.AnyArg()).
		WillReturnRows(memberRow(2, "Sara", fee, "Unpaid", "Active"))

	m, err := repo.Create(context.Background(), CreateMemberRequest{
		Name:  "Sara",
		Email: "sara@example.com",
		Phone: "+92 301 7654321",
		Fee:   &fee,
	})
	require.NoError(t, err)
	require.Equal(t, 2, m.ID)
	require.Equal(t, PaymentUnpaid, m.Payment)
}

func TestUpdateMemberPartial(t *testing.T) {
	repo, mock, close := setupMemberMock(t)
	defer close()

	payment := PaymentPaid
	mock.ExpectQuery("UPDATE members").
		WithArgs(1, nil, nil, nil, nil, "Paid", nil).
		WillReturnRows(memberRow(1, "Ali", 3000.0, "Paid", "Active"))

	m, err := repo.Update(context.Background(), 1, UpdateMemberRequest{Payment: &payment})
	require.NoError(t, err)
	require.Equal(t, PaymentPaid, m.Payment)
}

func TestDeleteMemberNotFound(t *testing.T) {
	repo, mock, close := setupMemberMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM members WHERE id = $1`)).
		WithArgs(44).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 44)
	require.ErrorIs(t, err, ErrMemberNotFound)
}

func TestFeeFallbacks(t *testing.T) {
	fee := 4000.0
	withFee := &Member{Fee: &fee}
	withoutFee := &Member{}

	require.Equal(t, 4000.0, withFee.FeeOrDefault(3000))
	require.Equal(t, 3000.0, withoutFee.FeeOrDefault(3000))
	require.Equal(t, 4000.0, withFee.FeeOrZero())
	require.Equal(t, 0.0, withoutFee.FeeOrZero())
}
