package service

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"mengemudiku_backend/internals/features/audit/audit_logs/model"
)

// Record writes an audit row for a mutation. Best-effort: audit failure must
// never fail the request that triggered it.
func Record(db *gorm.DB, c *fiber.Ctx, action, entity, entityID string, changes interface{}) {
	var actorID *uuid.UUID
	if idStr, ok := c.Locals("user_id").(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			actorID = &id
		}
	}

	var payload []byte
	if changes != nil {
		b, err := json.Marshal(changes)
		if err != nil {
			log.Printf("[WARN] audit: failed to marshal changes for %s: %v", action, err)
		} else {
			payload = b
		}
	}

	row := model.AuditLogModel{
		AuditLogActorID:  actorID,
		AuditLogAction:   action,
		AuditLogEntity:   entity,
		AuditLogEntityID: entityID,
		AuditLogChanges:  datatypes.JSON(payload),
		AuditLogIP:       c.IP(),
	}

	if err := db.Create(&row).Error; err != nil {
		log.Printf("[WARN] audit: failed to record %s on %s/%s: %v", action, entity, entityID, err)
	}
}
