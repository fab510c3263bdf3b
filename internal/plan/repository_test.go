package plan

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewRepository(sqlxDB), mock, func() { sqlxDB.Close() }
}

func planCols() []string {
	return []string{"id", "gym_id", "name", "price", "duration_value", "duration_type", "features", "status", "is_popular", "created_at"}
}

func TestListPlansByGym(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	rows := sqlmock.NewRows(planCols()).
		AddRow(1, 7, "Monthly", 1500.0, 1, "monthly", "{}", "active", true, time.Now()).
		AddRow(2, 7, "Quarterly", 4000.0, 3, "monthly", `{"Sauna","Trainer"}`, "active", false, time.Now())

	mock.ExpectQuery("FROM membership_plans").WithArgs(7).WillReturnRows(rows)

	plans, err := repo.ListByGym(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	require.Equal(t, "Monthly", plans[0].Name)
	require.Equal(t, []string{"Sauna", "Trainer"}, []string(plans[1].Features))
}

func TestCreatePlan(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO membership_plans")).
		WithArgs(7, "Monthly", 1500.0, 1, "monthly", sqlmock.AnyArg(), false).
		WillReturnRows(sqlmock.NewRows(planCols()).
			AddRow(1, 7, "Monthly", 1500.0, 1, "monthly", "{}", "active", false, time.Now()))

	p, err := repo.Create(context.Background(), 7, CreatePlanRequest{
		Name: "Monthly", Price: 1500, DurationValue: 1, DurationType: "monthly",
	})
	require.NoError(t, err)
	require.Equal(t, 1, p.ID)
	require.Equal(t, "active", p.Status)
}

func TestGetPlanNotFound(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	mock.ExpectQuery("FROM membership_plans").
		WithArgs(7, 99).
		WillReturnRows(sqlmock.NewRows(planCols()))

	_, err := repo.GetByID(context.Background(), 7, 99)
	require.ErrorIs(t, err, ErrPlanNotFound)
}

func TestUpdatePlan(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE membership_plans")).
		WithArgs(7, 1, "Monthly", 1800.0, 1, "monthly", sqlmock.AnyArg(), "retired", false).
		WillReturnRows(sqlmock.NewRows(planCols()).
			AddRow(1, 7, "Monthly", 1800.0, 1, "monthly", "{}", "retired", false, time.Now()))

	p, err := repo.Update(context.Background(), 7, 1, UpdatePlanRequest{
		Name: "Monthly", Price: 1800, DurationValue: 1, DurationType: "monthly", Status: "retired",
	})
	require.NoError(t, err)
	require.Equal(t, "retired", p.Status)
}
