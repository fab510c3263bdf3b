package member

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymdesk/internal/installment"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func detailRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "gym_id", "plan_id", "start_date", "end_date", "status",
		"profile", "installment_plan", "created_at",
		"plan_name", "plan_price", "total_paid",
	})
}

func TestListByGym(t *testing.T) {
	repo, mock := newMockRepo(t)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	planName := "Annual"

	mock.ExpectQuery("FROM members m").
		WithArgs(7).
		WillReturnRows(detailRows().
			AddRow(1, 7, 2, start, end, StatusActive,
				[]byte(`{"full_name":"Asha"}`), []byte(`{"enabled":false}`), start,
				planName, 12000.0, 4000.0))

	members, err := repo.ListByGym(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Asha", members[0].Profile.FullName)
	assert.Equal(t, "Annual", *members[0].PlanName)
	assert.Equal(t, 4000.0, members[0].TotalPaid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDScopedToGym(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("FROM members m").
		WithArgs(7, 99).
		WillReturnRows(detailRows())

	_, err := repo.GetByID(context.Background(), 7, 99)
	assert.ErrorIs(t, err, ErrMemberNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMemberRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	m := Member{
		GymID:     7,
		StartDate: start,
		EndDate:   end,
		Status:    StatusActive,
		Profile:   Profile{FullName: "Asha"},
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO members")).
		WithArgs(7, nil, start, end, StatusActive, m.Profile, m.InstallmentPlan).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "gym_id", "plan_id", "start_date", "end_date", "status",
			"profile", "installment_plan", "created_at",
		}).AddRow(5, 7, nil, start, end, StatusActive,
			[]byte(`{"full_name":"Asha"}`), []byte(`{"enabled":false}`), start))

	created, err := repo.Create(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusRequiresRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE members")).
		WithArgs(7, 1, StatusQuit).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), 7, 1, StatusQuit))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE members")).
		WithArgs(7, 99, StatusQuit).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.UpdateStatus(context.Background(), 7, 99, StatusQuit), ErrMemberNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRenewKeepsPlanWhenNil(t *testing.T) {
	repo, mock := newMockRepo(t)

	end := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("COALESCE($3, plan_id)")).
		WithArgs(7, 1, nil, end).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Renew(context.Background(), 7, 1, nil, end))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateInstallmentPlan(t *testing.T) {
	repo, mock := newMockRepo(t)

	plan := installment.Plan{Enabled: true, TotalAmount: 9000, NumInstallments: 3}
	mock.ExpectExec(regexp.QuoteMeta("SET installment_plan")).
		WithArgs(7, 1, plan).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateInstallmentPlan(context.Background(), 7, 1, plan))
	assert.NoError(t, mock.ExpectationsWereMet())
}
