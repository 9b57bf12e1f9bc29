package database

import (
	"log"

	"gorm.io/gorm"

	auditModel "mengemudiku_backend/internals/features/audit/audit_logs/model"
	certificateModel "mengemudiku_backend/internals/features/certificates/model"
	courseModel "mengemudiku_backend/internals/features/courses/courses/model"
	enrollmentModel "mengemudiku_backend/internals/features/courses/enrollments/model"
	postModel "mengemudiku_backend/internals/features/courses/posts/model"
	topicModel "mengemudiku_backend/internals/features/courses/topics/model"
	questionModel "mengemudiku_backend/internals/features/exams/questions/model"
	attemptModel "mengemudiku_backend/internals/features/exams/test_attempts/model"
	templateModel "mengemudiku_backend/internals/features/exams/test_templates/model"
	paymentModel "mengemudiku_backend/internals/features/finance/payments/model"
	attendanceModel "mengemudiku_backend/internals/features/schedules/attendance/model"
	registrationModel "mengemudiku_backend/internals/features/schedules/registrations/model"
	scheduleModel "mengemudiku_backend/internals/features/schedules/schedules/model"
	authModel "mengemudiku_backend/internals/features/users/auth/model"
	userModel "mengemudiku_backend/internals/features/users/user/model"
)

// MigrateModels runs AutoMigrate for every table, in dependency order.
func MigrateModels(db *gorm.DB) error {
	log.Println("🔌 Running migrations...")

	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&authModel.RefreshToken{},

		&courseModel.CourseModel{},
		&topicModel.TopicModel{},
		&postModel.PostModel{},
		&enrollmentModel.EnrollmentModel{},

		&questionModel.QuestionModel{},
		&templateModel.TestTemplateModel{},
		&attemptModel.TestAttemptModel{},

		&scheduleModel.ScheduleModel{},
		&registrationModel.RegistrationModel{},
		&attendanceModel.AttendanceModel{},

		&paymentModel.PaymentModel{},
		&certificateModel.CertificateModel{},

		&auditModel.AuditLogModel{},
	); err != nil {
		return err
	}

	log.Println("✅ Migrations complete")
	return nil
}
