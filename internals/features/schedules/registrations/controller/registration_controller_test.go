package controller

import (
	"bytes"
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

func scheduleRows(scheduleID, courseID uuid.UUID, capacity int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"schedule_id", "schedule_course_id", "schedule_instructor_id",
		"schedule_capacity", "schedule_is_active", "schedule_start_at", "schedule_end_at",
	}).AddRow(scheduleID.String(), courseID.String(), uuid.New().String(),
		capacity, true, time.Now().Add(24*time.Hour), time.Now().Add(26*time.Hour))
}

func TestCreateRegistrationLocksScheduleBeforeInsert(t *testing.T) {
	db, mock := newMockDB(t)
	studentID := uuid.New()
	scheduleID := uuid.New()
	courseID := uuid.New()

	mock.ExpectBegin()
	// the schedule row must be taken with a row lock before any counting
	mock.ExpectQuery(`SELECT \* FROM "schedules" WHERE schedule_id = .* FOR UPDATE`).
		WillReturnRows(scheduleRows(scheduleID, courseID, 2))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "course_enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "schedule_registrations"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "schedule_registrations"`).
		WillReturnRows(sqlmock.NewRows([]string{"registration_id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()
	// audit row after the transaction
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "audit_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"audit_log_id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	ctrl := NewRegistrationController(db)
	app := appAs(studentID, "student", fiber.MethodPost, "/schedule-registrations", ctrl.CreateRegistration)

	body := fmt.Sprintf(`{"registration_schedule_id":%q}`, scheduleID)
	req := httptest.NewRequest(fiber.MethodPost, "/schedule-registrations", bytes.NewReader([]byte(body)))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRegistrationScheduleFull(t *testing.T) {
	db, mock := newMockDB(t)
	studentID := uuid.New()
	scheduleID := uuid.New()
	courseID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "schedules" WHERE schedule_id = .* FOR UPDATE`).
		WillReturnRows(scheduleRows(scheduleID, courseID, 2))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "course_enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "schedule_registrations"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectRollback()

	ctrl := NewRegistrationController(db)
	app := appAs(studentID, "student", fiber.MethodPost, "/schedule-registrations", ctrl.CreateRegistration)

	body := fmt.Sprintf(`{"registration_schedule_id":%q}`, scheduleID)
	req := httptest.NewRequest(fiber.MethodPost, "/schedule-registrations", bytes.NewReader([]byte(body)))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	// rollback, no INSERT
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelRegistrationOtherStudent(t *testing.T) {
	db, mock := newMockDB(t)
	callerID := uuid.New()
	ownerID := uuid.New()
	registrationID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "schedule_registrations" WHERE registration_id`).
		WillReturnRows(sqlmock.NewRows([]string{
			"registration_id", "registration_schedule_id", "registration_student_id", "registration_status",
		}).AddRow(registrationID.String(), uuid.New().String(), ownerID.String(), "registered"))

	ctrl := NewRegistrationController(db)
	// /api/u is any authenticated user; an instructor token must not be able
	// to cancel someone else's seat through it
	app := appAs(callerID, "instructor", fiber.MethodPatch,
		"/schedule-registrations/:id/cancel", ctrl.CancelRegistration)

	req := httptest.NewRequest(fiber.MethodPatch,
		"/schedule-registrations/"+registrationID.String()+"/cancel", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
