package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mengemudiku_backend/internals/features/finance/payments/model"
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

func stubSnapToken(t *testing.T, fn func(p *model.PaymentModel, name, email string) (string, error)) {
	t.Helper()
	orig := generateSnapToken
	generateSnapToken = fn
	t.Cleanup(func() { generateSnapToken = orig })
}

func expectPendingPaymentLookups(mock sqlmock.Sqlmock, enrollmentID, studentID, paymentID uuid.UUID, snapToken string) {
	mock.ExpectQuery(`SELECT \* FROM "course_enrollments" WHERE enrollment_id`).
		WillReturnRows(sqlmock.NewRows([]string{
			"enrollment_id", "enrollment_student_id", "enrollment_course_id", "enrollment_status",
		}).AddRow(enrollmentID.String(), studentID.String(), uuid.New().String(), "pending_payment"))
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE \(?payment_enrollment_id`).
		WillReturnRows(sqlmock.NewRows([]string{
			"payment_id", "payment_enrollment_id", "payment_student_id",
			"payment_order_id", "payment_amount", "payment_status", "payment_gateway", "payment_snap_token",
		}).AddRow(paymentID.String(), enrollmentID.String(), studentID.String(),
			"COURSE-1", 500000, "pending", "midtrans", snapToken))
}

// A gateway failure on the first call can leave an open pending payment with
// no snap token; asking again must produce a usable token, not return the
// broken row forever.
func TestCreatePaymentBackfillsTokenOnReuse(t *testing.T) {
	db, mock := newMockDB(t)
	studentID := uuid.New()
	enrollmentID := uuid.New()
	paymentID := uuid.New()

	stubSnapToken(t, func(p *model.PaymentModel, name, email string) (string, error) {
		return "snap-retry-1", nil
	})

	expectPendingPaymentLookups(mock, enrollmentID, studentID, paymentID, "")
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name", "email"}).
			AddRow(studentID.String(), "Budi", "budi@example.com"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "payments" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ctrl := NewPaymentController(db)
	app := appAs(studentID, "student", fiber.MethodPost, "/payments", ctrl.CreatePayment)

	body := fmt.Sprintf(`{"payment_enrollment_id":%q}`, enrollmentID)
	req := httptest.NewRequest(fiber.MethodPost, "/payments", bytes.NewReader([]byte(body)))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			PaymentSnapToken string `json:"payment_snap_token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "snap-retry-1", envelope.Data.PaymentSnapToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePaymentReuseGatewayStillDown(t *testing.T) {
	db, mock := newMockDB(t)
	studentID := uuid.New()
	enrollmentID := uuid.New()
	paymentID := uuid.New()

	stubSnapToken(t, func(p *model.PaymentModel, name, email string) (string, error) {
		return "", errors.New("midtrans unreachable")
	})

	expectPendingPaymentLookups(mock, enrollmentID, studentID, paymentID, "")
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name", "email"}).
			AddRow(studentID.String(), "Budi", "budi@example.com"))

	ctrl := NewPaymentController(db)
	app := appAs(studentID, "student", fiber.MethodPost, "/payments", ctrl.CreatePayment)

	body := fmt.Sprintf(`{"payment_enrollment_id":%q}`, enrollmentID)
	req := httptest.NewRequest(fiber.MethodPost, "/payments", bytes.NewReader([]byte(body)))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A reused payment that already carries a token is returned as-is.
func TestCreatePaymentReusesExistingToken(t *testing.T) {
	db, mock := newMockDB(t)
	studentID := uuid.New()
	enrollmentID := uuid.New()
	paymentID := uuid.New()

	stubSnapToken(t, func(p *model.PaymentModel, name, email string) (string, error) {
		t.Error("token must not be regenerated when one exists")
		return "", errors.New("unexpected call")
	})

	expectPendingPaymentLookups(mock, enrollmentID, studentID, paymentID, "snap-original")

	ctrl := NewPaymentController(db)
	app := appAs(studentID, "student", fiber.MethodPost, "/payments", ctrl.CreatePayment)

	body := fmt.Sprintf(`{"payment_enrollment_id":%q}`, enrollmentID)
	req := httptest.NewRequest(fiber.MethodPost, "/payments", bytes.NewReader([]byte(body)))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			PaymentSnapToken string `json:"payment_snap_token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "snap-original", envelope.Data.PaymentSnapToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}
