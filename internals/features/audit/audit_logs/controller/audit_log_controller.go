package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mengemudiku_backend/internals/features/audit/audit_logs/model"
	helper "mengemudiku_backend/internals/helpers"
)

type AuditLogController struct {
	DB *gorm.DB
}

func NewAuditLogController(db *gorm.DB) *AuditLogController {
	return &AuditLogController{DB: db}
}

// 🟢 GET /api/a/audit-logs?entity=&actor_id=&action=&page=&per_page=
func (ctrl *AuditLogController) GetAuditLogs(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 500)

	q := ctrl.DB.Model(&model.AuditLogModel{})
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("audit_log_entity = ?", entity)
	}
	if actorID := c.Query("actor_id"); actorID != "" {
		q = q.Where("audit_log_actor_id = ?", actorID)
	}
	if action := c.Query("action"); action != "" {
		q = q.Where("audit_log_action = ?", action)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count audit logs")
	}

	var logs []model.AuditLogModel
	if err := q.Order("audit_log_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&logs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch audit logs")
	}

	return helper.SuccessWithPagination(c, "Audit logs fetched", logs,
		helper.BuildPagination(paging, total, len(logs)))
}
