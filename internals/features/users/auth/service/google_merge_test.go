package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mengemudiku_backend/internals/constants"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

var userColumns = []string{"id", "user_name", "email", "password", "google_id", "role", "is_active"}

func TestResolveGoogleUserByGoogleID(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE google_id = `).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(
			"5f3e0bc6-9a1f-4d6a-9a57-0e6b9cbd1111", "Siti", "siti@example.com",
			"x", "google-sub-1", constants.RoleStudent, true))

	user, err := resolveGoogleUser(db, "google-sub-1", "siti@example.com", "Siti")
	require.NoError(t, err)

	assert.Equal(t, "siti@example.com", user.Email)
	require.NotNil(t, user.GoogleID)
	assert.Equal(t, "google-sub-1", *user.GoogleID)
	// only the google_id lookup ran, no second row was created
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A local-password account with the same email is merged into, not
// duplicated: the row keeps its primary key and role, and gains the
// google_id.
func TestResolveGoogleUserMergesIntoEmailMatch(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE google_id = `).
		WillReturnRows(sqlmock.NewRows(userColumns))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE LOWER\(email\) = `).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(
			"0d0d4b52-74a3-4a6e-8f34-1d6cf0b22222", "Pak Agus", "agus@example.com",
			"$2a$10$existinghash", nil, constants.RoleInstructor, true))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET "google_id"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	user, err := resolveGoogleUser(db, "google-sub-2", "agus@example.com", "Agus")
	require.NoError(t, err)

	assert.Equal(t, "0d0d4b52-74a3-4a6e-8f34-1d6cf0b22222", user.ID.String())
	assert.Equal(t, constants.RoleInstructor, user.Role)
	require.NotNil(t, user.GoogleID)
	assert.Equal(t, "google-sub-2", *user.GoogleID)
	// no INSERT: merging must not create a duplicate account
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveGoogleUserCreatesStudent(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE google_id = `).
		WillReturnRows(sqlmock.NewRows(userColumns))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE LOWER\(email\) = `).
		WillReturnRows(sqlmock.NewRows(userColumns))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).
			AddRow("9c1b7f10-20f5-41f7-b6ab-55f3e0c33333"))
	mock.ExpectCommit()

	user, err := resolveGoogleUser(db, "google-sub-3", "Dina@Example.com", "Dina")
	require.NoError(t, err)

	assert.Equal(t, constants.RoleStudent, user.Role)
	assert.Equal(t, "dina@example.com", user.Email)
	require.NotNil(t, user.GoogleID)
	assert.Equal(t, "google-sub-3", *user.GoogleID)
	assert.True(t, user.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}
