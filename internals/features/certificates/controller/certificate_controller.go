package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mengemudiku_backend/internals/configs"
	auditService "mengemudiku_backend/internals/features/audit/audit_logs/service"
	"mengemudiku_backend/internals/features/certificates/dto"
	"mengemudiku_backend/internals/features/certificates/model"
	"mengemudiku_backend/internals/features/certificates/service"
	helper "mengemudiku_backend/internals/helpers"
)

var validate = validator.New()

type CertificateController struct {
	DB *gorm.DB
}

func NewCertificateController(db *gorm.DB) *CertificateController {
	return &CertificateController{DB: db}
}

// 🟢 POST /api/u/certificates
// A student claims the certificate for their own completed enrollment.
func (ctrl *CertificateController) IssueCertificate(c *fiber.Ctx) error {
	studentID := helper.GetUserUUID(c)
	if studentID == uuid.Nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.IssueCertificateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var owner struct {
		EnrollmentStudentID uuid.UUID
	}
	if err := ctrl.DB.Table("course_enrollments").
		Select("enrollment_student_id").
		Where("enrollment_id = ? AND enrollment_deleted_at IS NULL", req.CertificateEnrollmentID).
		Take(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Enrollment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch enrollment")
	}
	if owner.EnrollmentStudentID != studentID {
		return helper.Error(c, fiber.StatusForbidden, "This enrollment belongs to another student")
	}

	certificate, err := service.IssueCertificate(ctrl.DB, req.CertificateEnrollmentID)
	switch {
	case err == nil:
		// fallthrough to success
	case errors.Is(err, service.ErrEnrollmentNotCompleted):
		return helper.Error(c, fiber.StatusConflict, "Course is not completed yet")
	case errors.Is(err, service.ErrAlreadyIssued):
		return helper.Error(c, fiber.StatusConflict, "Certificate already issued")
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue certificate")
	}

	auditService.Record(ctrl.DB, c, "certificate.issue", "certificates", certificate.CertificateID.String(), fiber.Map{
		"number": certificate.CertificateNumber,
	})

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Certificate issued", dto.ToCertificateResponse(certificate))
}

// 🟢 GET /api/u/certificates
func (ctrl *CertificateController) GetMyCertificates(c *fiber.Ctx) error {
	studentID := helper.GetUserUUID(c)
	if studentID == uuid.Nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var certificates []model.CertificateModel
	if err := ctrl.DB.
		Where("certificate_student_id = ?", studentID).
		Order("certificate_issued_at DESC").
		Find(&certificates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch certificates")
	}

	return helper.Success(c, "Certificates fetched", dto.ToCertificateResponses(certificates))
}

// 🟢 GET /api/u/certificates/:id/pdf
func (ctrl *CertificateController) DownloadCertificatePDF(c *fiber.Ctx) error {
	studentID := helper.GetUserUUID(c)
	if studentID == uuid.Nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid certificate id")
	}

	var certificate model.CertificateModel
	if err := ctrl.DB.First(&certificate, "certificate_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Certificate not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch certificate")
	}
	if certificate.CertificateStudentID != studentID {
		return helper.Error(c, fiber.StatusForbidden, "This certificate belongs to another student")
	}

	pdfBytes, err := service.RenderCertificatePDF(&certificate, configs.AppBaseURL)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to render certificate")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="certificate-%s.pdf"`, certificate.CertificateID))
	return c.Send(pdfBytes)
}

// 🟢 GET /api/public/certificates/verify/:code (no auth; QR target)
func (ctrl *CertificateController) VerifyCertificate(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Verification code is required")
	}

	var certificate model.CertificateModel
	if err := ctrl.DB.First(&certificate, "certificate_verification_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Certificate not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify certificate")
	}

	return helper.Success(c, "Certificate is valid", dto.ToVerificationResponse(&certificate))
}
