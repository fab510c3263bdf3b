package user

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

func userCols() []string {
	return []string{"id", "gym_id", "name", "email", "password_hash", "role", "created_at"}
}

func TestCreateUser(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(7, "Ravi", "owner@iron.test", "hash", "admin").
		WillReturnRows(sqlmock.NewRows(userCols()).
			AddRow(1, 7, "Ravi", "owner@iron.test", "hash", "admin", time.Now()))

	u, err := repo.Create(context.Background(), 7, "Ravi", "owner@iron.test", "hash", "admin")
	require.NoError(t, err)
	require.Equal(t, 1, u.ID)
	require.Equal(t, 7, u.GymID)
}

func TestFindByEmail(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	mock.ExpectQuery("FROM users").
		WithArgs("owner@iron.test").
		WillReturnRows(sqlmock.NewRows(userCols()).
			AddRow(1, 7, "Ravi", "owner@iron.test", "hash", "admin", time.Now()))

	u, err := repo.FindByEmail(context.Background(), "owner@iron.test")
	require.NoError(t, err)
	require.Equal(t, "Ravi", u.Name)
}

func TestEmailExists(t *testing.T) {
	repo, mock, closer := setupMock(t)
	defer closer()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("owner@iron.test").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.EmailExists(context.Background(), "owner@iron.test")
	require.NoError(t, err)
	require.True(t, exists)
}
