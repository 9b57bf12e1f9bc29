package service

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	enrollmentService "mengemudiku_backend/internals/features/courses/enrollments/service"
	"mengemudiku_backend/internals/features/finance/payments/model"
)

var (
	ErrInvalidSignature = errors.New("invalid midtrans signature")
	ErrPaymentNotFound  = errors.New("payment not found")
)

// Notification is the subset of the Midtrans notification payload we act on.
type Notification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

// VerifySignature checks the Midtrans signature_key:
// sha512(order_id + status_code + gross_amount + server_key).
func VerifySignature(n Notification, serverKey string) bool {
	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + serverKey))
	expected := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(expected), []byte(n.SignatureKey)) == 1
}

// MapTransactionStatus maps a Midtrans transaction_status (plus fraud_status)
// to our payment status. Unknown statuses keep the payment pending.
func MapTransactionStatus(transactionStatus, fraudStatus string) string {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" {
			return model.PaymentStatusPaid
		}
		return model.PaymentStatusPending
	case "settlement":
		return model.PaymentStatusPaid
	case "expire":
		return model.PaymentStatusExpired
	case "cancel":
		return model.PaymentStatusCancelled
	case "deny", "failure":
		return model.PaymentStatusFailed
	default:
		return model.PaymentStatusPending
	}
}

// ProcessNotification applies a verified notification to the payment and,
// on settlement, activates the enrollment. Replayed notifications for an
// already-paid payment are no-ops.
func ProcessNotification(db *gorm.DB, n Notification, rawPayload []byte, serverKey string) error {
	if !VerifySignature(n, serverKey) {
		return ErrInvalidSignature
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var payment model.PaymentModel
		if err := tx.Where("payment_order_id = ?", n.OrderID).First(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}

		newStatus := MapTransactionStatus(n.TransactionStatus, n.FraudStatus)

		// paid is terminal
		if payment.PaymentStatus == model.PaymentStatusPaid {
			return nil
		}

		payment.PaymentStatus = newStatus
		payment.PaymentRawNotification = datatypes.JSON(rawPayload)
		if newStatus == model.PaymentStatusPaid {
			now := time.Now()
			payment.PaymentPaidAt = &now
		}
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}

		if newStatus == model.PaymentStatusPaid {
			return enrollmentService.Activate(tx, payment.PaymentEnrollmentID)
		}
		return nil
	})
}
