package expense

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

func expenseRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "gym_id", "description", "category", "amount",
		"expense_date", "notes", "created_at",
	})
}

func TestListByGym(t *testing.T) {
	repo, mock := newMockRepo(t)

	spent := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM expenses").
		WithArgs(7).
		WillReturnRows(expenseRows().
			AddRow(1, 7, "March rent", CategoryRent, 52000.0, spent, "", spent))

	expenses, err := repo.ListByGym(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "March rent", expenses[0].Description)
	assert.Equal(t, 52000.0, expenses[0].Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateExpenseRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	spent := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO expenses")).
		WithArgs(7, "March rent", CategoryRent, 52000.0, spent, "").
		WillReturnRows(expenseRows().
			AddRow(4, 7, "March rent", CategoryRent, 52000.0, spent, "", spent))

	created, err := repo.Create(context.Background(), Expense{
		GymID:       7,
		Description: "March rent",
		Category:    CategoryRent,
		Amount:      52000,
		ExpenseDate: spent,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteScopedToGym(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM expenses")).
		WithArgs(7, 4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 7, 4))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM expenses")).
		WithArgs(7, 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 7, 99), ErrExpenseNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
