package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mengemudiku_backend/internals/features/audit/audit_logs/controller"
)

func AuditLogAdminRoutes(api fiber.Router, db *gorm.DB) {
	auditCtrl := controller.NewAuditLogController(db)
	api.Get("/audit-logs", auditCtrl.GetAuditLogs)
}
