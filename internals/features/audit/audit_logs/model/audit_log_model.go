package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditLogModel struct {
	AuditLogID       uuid.UUID      `gorm:"column:audit_log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"audit_log_id"`
	AuditLogActorID  *uuid.UUID     `gorm:"column:audit_log_actor_id;type:uuid;index" json:"audit_log_actor_id,omitempty"`
	AuditLogAction   string         `gorm:"column:audit_log_action;type:varchar(100);not null;index" json:"audit_log_action"`
	AuditLogEntity   string         `gorm:"column:audit_log_entity;type:varchar(100);not null;index" json:"audit_log_entity"`
	AuditLogEntityID string         `gorm:"column:audit_log_entity_id;type:varchar(100)" json:"audit_log_entity_id"`
	AuditLogChanges  datatypes.JSON `gorm:"column:audit_log_changes;type:jsonb" json:"audit_log_changes,omitempty"`
	AuditLogIP       string         `gorm:"column:audit_log_ip;type:varchar(64)" json:"audit_log_ip"`

	AuditLogCreatedAt time.Time `gorm:"column:audit_log_created_at;type:timestamptz;autoCreateTime;index" json:"audit_log_created_at"`
}

func (AuditLogModel) TableName() string {
	return "audit_logs"
}
