package payment

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

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestListByGymJoinsMemberName(t *testing.T) {
	repo, mock := newMockRepo(t)

	paid := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM payments pay").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "gym_id", "member_id", "amount", "payment_date",
			"payment_mode", "notes", "created_at", "member_name",
		}).AddRow(1, 7, 3, 1500.0, paid, ModeCash, "", paid, "Asha Rao"))

	payments, err := repo.ListByGym(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "Asha Rao", payments[0].MemberName)
	assert.Equal(t, 1500.0, payments[0].Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePaymentRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	paid := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).
		WithArgs(7, 3, 1500.0, paid, ModeUPI, "first month").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "gym_id", "member_id", "amount", "payment_date",
			"payment_mode", "notes", "created_at",
		}).AddRow(10, 7, 3, 1500.0, paid, ModeUPI, "first month", paid))

	created, err := repo.Create(context.Background(), Payment{
		GymID:       7,
		MemberID:    3,
		Amount:      1500,
		PaymentDate: paid,
		PaymentMode: ModeUPI,
		Notes:       "first month",
	})
	require.NoError(t, err)
	assert.Equal(t, 10, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteScopedToGym(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM payments")).
		WithArgs(7, 10).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 7, 10))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM payments")).
		WithArgs(7, 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 7, 99), ErrPaymentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
