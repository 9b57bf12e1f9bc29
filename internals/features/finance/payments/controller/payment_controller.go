package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mengemudiku_backend/internals/configs"
	auditService "mengemudiku_backend/internals/features/audit/audit_logs/service"
	courseModel "mengemudiku_backend/internals/features/courses/courses/model"
	enrollmentModel "mengemudiku_backend/internals/features/courses/enrollments/model"
	"mengemudiku_backend/internals/features/finance/payments/dto"
	"mengemudiku_backend/internals/features/finance/payments/model"
	"mengemudiku_backend/internals/features/finance/payments/service"
	userModel "mengemudiku_backend/internals/features/users/user/model"
	helper "mengemudiku_backend/internals/helpers"
)

var validate = validator.New()

// swappable so tests can stub the gateway call
var generateSnapToken = service.GenerateSnapToken

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// 🟢 POST /api/u/payments
// Creates a pending payment for the student's own pending enrollment and
// returns the Midtrans snap token. Asking again for the same enrollment
// reuses the open payment instead of stacking new orders.
func (ctrl *PaymentController) CreatePayment(c *fiber.Ctx) error {
	studentID := helper.GetUserUUID(c)
	if studentID == uuid.Nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var enrollment enrollmentModel.EnrollmentModel
	if err := ctrl.DB.First(&enrollment, "enrollment_id = ?", req.PaymentEnrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Enrollment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch enrollment")
	}
	if enrollment.EnrollmentStudentID != studentID {
		return helper.Error(c, fiber.StatusForbidden, "This enrollment belongs to another student")
	}
	if enrollment.EnrollmentStatus != enrollmentModel.EnrollmentStatusPendingPayment {
		return helper.Error(c, fiber.StatusConflict, "Enrollment is not awaiting payment")
	}

	// reuse an open payment if one exists
	var existing model.PaymentModel
	err := ctrl.DB.Where("payment_enrollment_id = ? AND payment_status = ?",
		enrollment.EnrollmentID, model.PaymentStatusPending).First(&existing).Error
	if err == nil {
		// a gateway failure on the first call leaves an open payment without
		// a token; retry token generation instead of handing back an
		// unpayable order
		if existing.PaymentSnapToken == "" {
			var student userModel.UserModel
			if err := ctrl.DB.First(&student, "id = ?", studentID).Error; err != nil {
				return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
			}
			token, err := generateSnapToken(&existing, student.UserName, student.Email)
			if err != nil {
				log.Println("[ERROR] midtrans snap token:", err)
				return helper.Error(c, fiber.StatusBadGateway, "Failed to create payment token")
			}
			existing.PaymentSnapToken = token
			if err := ctrl.DB.Save(&existing).Error; err != nil {
				return helper.Error(c, fiber.StatusInternalServerError, "Failed to save payment token")
			}
		}
		return helper.Success(c, "Payment already open", dto.ToPaymentResponse(&existing, true))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check payments")
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", enrollment.EnrollmentCourseID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}
	if course.CoursePrice <= 0 {
		return helper.Error(c, fiber.StatusConflict, "Course is free, no payment required")
	}

	var student userModel.UserModel
	if err := ctrl.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	payment := model.PaymentModel{
		PaymentEnrollmentID: enrollment.EnrollmentID,
		PaymentStudentID:    studentID,
		PaymentOrderID:      fmt.Sprintf("COURSE-%d", time.Now().UnixNano()),
		PaymentAmount:       course.CoursePrice,
		PaymentStatus:       model.PaymentStatusPending,
		PaymentGateway:      "midtrans",
	}
	if err := ctrl.DB.Create(&payment).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create payment")
	}

	token, err := generateSnapToken(&payment, student.UserName, student.Email)
	if err != nil {
		log.Println("[ERROR] midtrans snap token:", err)
		return helper.Error(c, fiber.StatusBadGateway, "Failed to create payment token")
	}

	payment.PaymentSnapToken = token
	if err := ctrl.DB.Save(&payment).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save payment token")
	}

	auditService.Record(ctrl.DB, c, "payment.create", "payments", payment.PaymentID.String(), fiber.Map{
		"order_id": payment.PaymentOrderID,
		"amount":   payment.PaymentAmount,
	})

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Payment created", dto.ToPaymentResponse(&payment, true))
}

// 🟢 GET /api/u/payments
func (ctrl *PaymentController) GetMyPayments(c *fiber.Ctx) error {
	studentID := helper.GetUserUUID(c)
	if studentID == uuid.Nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var payments []model.PaymentModel
	if err := ctrl.DB.
		Where("payment_student_id = ?", studentID).
		Order("payment_created_at DESC").
		Find(&payments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	return helper.Success(c, "Payments fetched", dto.ToPaymentResponses(payments, true))
}

// 🟢 GET /api/a/payments?status=&page=&per_page=
func (ctrl *PaymentController) GetAllPayments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.PaymentModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("payment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count payments")
	}

	var payments []model.PaymentModel
	if err := q.Order("payment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&payments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	return helper.SuccessWithPagination(c, "Payments fetched",
		dto.ToPaymentResponses(payments, false), helper.BuildPagination(paging, total, len(payments)))
}

// 🟢 POST /api/payments/notification (no auth; Midtrans calls this)
// The signature check stands in for authentication, so the response
// stays a bare status code the gateway understands.
func (ctrl *PaymentController) HandleMidtransNotification(c *fiber.Ctx) error {
	var n service.Notification
	if err := c.BodyParser(&n); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	raw := make([]byte, len(c.Body()))
	copy(raw, c.Body())

	err := service.ProcessNotification(ctrl.DB, n, raw, configs.MidtransServerKey)
	switch {
	case err == nil:
		return c.SendStatus(fiber.StatusOK)
	case errors.Is(err, service.ErrInvalidSignature):
		log.Println("[WARN] midtrans notification with bad signature, order:", n.OrderID)
		return c.SendStatus(fiber.StatusForbidden)
	case errors.Is(err, service.ErrPaymentNotFound):
		return c.SendStatus(fiber.StatusNotFound)
	default:
		log.Println("[ERROR] midtrans notification:", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
}
