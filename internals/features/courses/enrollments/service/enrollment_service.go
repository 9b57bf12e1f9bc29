package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mengemudiku_backend/internals/features/courses/enrollments/model"
)

var ErrEnrollmentNotPending = errors.New("enrollment is not pending payment")

// Activate flips a pending enrollment to active. Called from the payment
// webhook after settlement; activating an already-active enrollment is a no-op.
func Activate(db *gorm.DB, enrollmentID uuid.UUID) error {
	var enrollment model.EnrollmentModel
	if err := db.First(&enrollment, "enrollment_id = ?", enrollmentID).Error; err != nil {
		return err
	}
	if enrollment.EnrollmentStatus == model.EnrollmentStatusActive ||
		enrollment.EnrollmentStatus == model.EnrollmentStatusCompleted {
		return nil
	}
	if enrollment.EnrollmentStatus != model.EnrollmentStatusPendingPayment {
		return ErrEnrollmentNotPending
	}

	now := time.Now()
	return db.Model(&enrollment).Updates(map[string]interface{}{
		"enrollment_status":       model.EnrollmentStatusActive,
		"enrollment_activated_at": &now,
	}).Error
}

// Complete marks an active enrollment completed. Called after a passing
// attempt on the course's final test.
func Complete(db *gorm.DB, studentID, courseID uuid.UUID) error {
	var enrollment model.EnrollmentModel
	if err := db.Where(
		"enrollment_student_id = ? AND enrollment_course_id = ? AND enrollment_status = ?",
		studentID, courseID, model.EnrollmentStatusActive,
	).First(&enrollment).Error; err != nil {
		return err
	}

	now := time.Now()
	return db.Model(&enrollment).Updates(map[string]interface{}{
		"enrollment_status":       model.EnrollmentStatusCompleted,
		"enrollment_completed_at": &now,
	}).Error
}

// HasActiveEnrollment reports whether the student holds an active (or
// completed) enrollment on the course.
func HasActiveEnrollment(db *gorm.DB, studentID, courseID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&model.EnrollmentModel{}).
		Where("enrollment_student_id = ? AND enrollment_course_id = ? AND enrollment_status IN ?",
			studentID, courseID,
			[]string{model.EnrollmentStatusActive, model.EnrollmentStatusCompleted}).
		Count(&count).Error
	return count > 0, err
}
