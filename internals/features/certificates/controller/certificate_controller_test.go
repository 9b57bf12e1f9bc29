package controller

import (
	"io"
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

func certificateRows(certificateID, studentID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"certificate_id", "certificate_student_id", "certificate_number",
		"certificate_verification_code", "certificate_student_name",
		"certificate_course_title", "certificate_issued_at",
	}).AddRow(certificateID.String(), studentID.String(), "CERT/2026/000042",
		"a1b2c3d4e5f60718293a", "Budi Santoso", "SIM A Regular", time.Now())
}

func TestDownloadCertificatePDFOwner(t *testing.T) {
	db, mock := newMockDB(t)
	studentID := uuid.New()
	certificateID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "certificates" WHERE certificate_id`).
		WillReturnRows(certificateRows(certificateID, studentID))

	ctrl := NewCertificateController(db)
	app := appAs(studentID, "student", fiber.MethodGet,
		"/certificates/:id/pdf", ctrl.DownloadCertificatePDF)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet,
		"/certificates/"+certificateID.String()+"/pdf", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, len(body) > 4 && string(body[:4]) == "%PDF")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// /api/u admits every authenticated role, so ownership alone gates the
// download; an instructor token gets no pass on someone else's certificate.
func TestDownloadCertificatePDFOtherStudent(t *testing.T) {
	db, mock := newMockDB(t)
	callerID := uuid.New()
	ownerID := uuid.New()
	certificateID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "certificates" WHERE certificate_id`).
		WillReturnRows(certificateRows(certificateID, ownerID))

	ctrl := NewCertificateController(db)
	app := appAs(callerID, "instructor", fiber.MethodGet,
		"/certificates/:id/pdf", ctrl.DownloadCertificatePDF)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet,
		"/certificates/"+certificateID.String()+"/pdf", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
