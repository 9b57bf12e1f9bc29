package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusPaid      = "paid"
	PaymentStatusExpired   = "expired"
	PaymentStatusCancelled = "cancelled"
	PaymentStatusFailed    = "failed"
)

type PaymentModel struct {
	PaymentID           uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentEnrollmentID uuid.UUID `gorm:"column:payment_enrollment_id;type:uuid;not null;index:idx_payments_enrollment_id" json:"payment_enrollment_id"`
	PaymentStudentID    uuid.UUID `gorm:"column:payment_student_id;type:uuid;not null;index:idx_payments_student_id" json:"payment_student_id"`

	PaymentOrderID string `gorm:"column:payment_order_id;type:varchar(100);not null;uniqueIndex:ux_payments_order_id" json:"payment_order_id"`
	PaymentAmount  int64  `gorm:"column:payment_amount;not null" json:"payment_amount"` // IDR
	PaymentStatus  string `gorm:"column:payment_status;type:varchar(20);not null;default:'pending'" json:"payment_status"`

	PaymentGateway   string `gorm:"column:payment_gateway;type:varchar(30);not null;default:'midtrans'" json:"payment_gateway"`
	PaymentSnapToken string `gorm:"column:payment_snap_token;type:text" json:"-"`

	// last raw notification payload, kept for dispute handling
	PaymentRawNotification datatypes.JSON `gorm:"column:payment_raw_notification;type:jsonb" json:"-"`

	PaymentPaidAt *time.Time `gorm:"column:payment_paid_at;type:timestamptz" json:"payment_paid_at,omitempty"`

	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;type:timestamptz;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"column:payment_updated_at;type:timestamptz;autoUpdateTime" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;type:timestamptz;index" json:"payment_deleted_at,omitempty"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
