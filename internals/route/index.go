package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mengemudiku_backend/internals/constants"
	auditRoute "mengemudiku_backend/internals/features/audit/audit_logs/route"
	certificateRoute "mengemudiku_backend/internals/features/certificates/route"
	courseRoute "mengemudiku_backend/internals/features/courses/route"
	examRoute "mengemudiku_backend/internals/features/exams/route"
	paymentRoute "mengemudiku_backend/internals/features/finance/payments/route"
	scheduleRoute "mengemudiku_backend/internals/features/schedules/route"
	authRoute "mengemudiku_backend/internals/features/users/auth/route"
	userRoute "mengemudiku_backend/internals/features/users/user/route"
	authMiddleware "mengemudiku_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every feature under the four API groups:
//
//	/api/auth    login, register, tokens
//	/api/public  no login required
//	/api/u       any authenticated user
//	/api/i       instructor + admin
//	/api/a       admin only
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== BASE =====================
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// gateway webhook authenticates itself via signature
	log.Println("[INFO] Setting up payment webhook...")
	paymentRoute.PaymentWebhookRoutes(app, db)

	// ===================== GROUPS =====================
	public := app.Group("/api/public")

	user := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
	)

	instructor := app.Group("/api/i",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Instructor area", constants.StaffRoles...),
	)

	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Admin area", constants.RoleAdmin),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Course routes...")
	courseRoute.CoursePublicRoutes(public, db)
	courseRoute.CourseUserRoutes(user, db)
	courseRoute.CourseAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Exam routes...")
	examRoute.ExamUserRoutes(user, db)
	examRoute.ExamInstructorRoutes(instructor, db)
	examRoute.ExamAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Schedule routes...")
	scheduleRoute.ScheduleUserRoutes(user, db)
	scheduleRoute.ScheduleInstructorRoutes(instructor, db)

	log.Println("[INFO] Mounting Payment routes...")
	paymentRoute.PaymentUserRoutes(user, db)
	paymentRoute.PaymentAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Certificate routes...")
	certificateRoute.CertificatePublicRoutes(public, db)
	certificateRoute.CertificateUserRoutes(user, db)

	log.Println("[INFO] Mounting User + Audit routes...")
	userRoute.UserAdminRoutes(admin, db)
	auditRoute.AuditLogAdminRoutes(admin, db)
}
