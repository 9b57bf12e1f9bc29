package controller

import (
	"bytes"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
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

func appAs(userID uuid.UUID, role, method, path string, h fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		c.Locals("userRole", role)
		return c.Next()
	})
	app.Add(method, path, h)
	return app
}

func expiredAttemptRows(attemptID, studentID uuid.UUID) *sqlmock.Rows {
	expired := time.Now().Add(-time.Minute)
	return sqlmock.NewRows([]string{
		"test_attempt_id", "test_attempt_template_id", "test_attempt_student_id",
		"test_attempt_status", "test_attempt_expires_at",
	}).AddRow(attemptID.String(), uuid.New().String(), studentID.String(),
		"in_progress", expired)
}

func TestSubmitAttemptExpired(t *testing.T) {
	studentID := uuid.New()
	attemptID := uuid.New()
	body := fmt.Sprintf(`{"answers":[{"question_id":%q,"selected_labels":["A"]}]}`, uuid.New())

	t.Run("marks the attempt expired", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(`SELECT \* FROM "test_attempts" WHERE test_attempt_id`).
			WillReturnRows(expiredAttemptRows(attemptID, studentID))
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "test_attempts" SET "test_attempt_status"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		ctrl := NewTestAttemptController(db)
		app := appAs(studentID, "student", fiber.MethodPost,
			"/test-attempts/:id/submit", ctrl.SubmitAttempt)

		req := httptest.NewRequest(fiber.MethodPost,
			"/test-attempts/"+attemptID.String()+"/submit", bytes.NewReader([]byte(body)))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("still rejects when the status update fails", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(`SELECT \* FROM "test_attempts" WHERE test_attempt_id`).
			WillReturnRows(expiredAttemptRows(attemptID, studentID))
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "test_attempts" SET "test_attempt_status"`).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		ctrl := NewTestAttemptController(db)
		app := appAs(studentID, "student", fiber.MethodPost,
			"/test-attempts/:id/submit", ctrl.SubmitAttempt)

		req := httptest.NewRequest(fiber.MethodPost,
			"/test-attempts/"+attemptID.String()+"/submit", bytes.NewReader([]byte(body)))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)

		// expiry verdict stands even if the bookkeeping write is lost
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
