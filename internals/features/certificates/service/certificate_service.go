package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "mengemudiku_backend/internals/features/courses/courses/model"
	enrollmentModel "mengemudiku_backend/internals/features/courses/enrollments/model"
	"mengemudiku_backend/internals/features/certificates/model"
	userModel "mengemudiku_backend/internals/features/users/user/model"
)

var (
	ErrEnrollmentNotCompleted = errors.New("enrollment is not completed")
	ErrAlreadyIssued          = errors.New("certificate already issued for this enrollment")
)

// NextCertificateNumber builds the sequential number for the year,
// e.g. CERT/2026/000042. Must run inside the issuing transaction so the
// unique index catches concurrent issuance.
func NextCertificateNumber(tx *gorm.DB, year int) (string, error) {
	var count int64
	if err := tx.Model(&model.CertificateModel{}).
		Where("certificate_number LIKE ?", fmt.Sprintf("CERT/%d/%%", year)).
		Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("CERT/%d/%06d", year, count+1), nil
}

func newVerificationCode() (string, error) {
	buf := make([]byte, 10)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// IssueCertificate creates the certificate for a completed enrollment.
// One certificate per enrollment; a second call returns ErrAlreadyIssued.
func IssueCertificate(db *gorm.DB, enrollmentID uuid.UUID) (*model.CertificateModel, error) {
	var certificate model.CertificateModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var enrollment enrollmentModel.EnrollmentModel
		if err := tx.First(&enrollment, "enrollment_id = ?", enrollmentID).Error; err != nil {
			return err
		}
		if enrollment.EnrollmentStatus != enrollmentModel.EnrollmentStatusCompleted {
			return ErrEnrollmentNotCompleted
		}

		var existing int64
		if err := tx.Model(&model.CertificateModel{}).
			Where("certificate_enrollment_id = ?", enrollmentID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyIssued
		}

		var student userModel.UserModel
		if err := tx.First(&student, "id = ?", enrollment.EnrollmentStudentID).Error; err != nil {
			return err
		}
		var course courseModel.CourseModel
		if err := tx.Unscoped().First(&course, "course_id = ?", enrollment.EnrollmentCourseID).Error; err != nil {
			return err
		}

		number, err := NextCertificateNumber(tx, time.Now().Year())
		if err != nil {
			return err
		}
		code, err := newVerificationCode()
		if err != nil {
			return err
		}

		certificate = model.CertificateModel{
			CertificateEnrollmentID:     enrollment.EnrollmentID,
			CertificateStudentID:        enrollment.EnrollmentStudentID,
			CertificateCourseID:         enrollment.EnrollmentCourseID,
			CertificateNumber:           number,
			CertificateVerificationCode: code,
			CertificateStudentName:      student.UserName,
			CertificateCourseTitle:      course.CourseTitle,
		}
		if err := tx.Create(&certificate).Error; err != nil {
			if strings.Contains(err.Error(), "duplicate key") {
				return ErrAlreadyIssued
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &certificate, nil
}
