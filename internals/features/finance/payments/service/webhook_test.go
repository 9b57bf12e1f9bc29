package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"mengemudiku_backend/internals/features/finance/payments/model"
)

func signNotification(n Notification, serverKey string) string {
	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

func TestVerifySignature(t *testing.T) {
	const serverKey = "SB-Mid-server-testkey"

	n := Notification{
		OrderID:     "COURSE-1724380000000000000",
		StatusCode:  "200",
		GrossAmount: "750000.00",
	}
	n.SignatureKey = signNotification(n, serverKey)

	assert.True(t, VerifySignature(n, serverKey))

	tampered := n
	tampered.GrossAmount = "1.00"
	assert.False(t, VerifySignature(tampered, serverKey), "amount change must break the signature")

	wrongKey := n
	assert.False(t, VerifySignature(wrongKey, "other-key"))

	empty := Notification{OrderID: "X", StatusCode: "200", GrossAmount: "1.00"}
	assert.False(t, VerifySignature(empty, serverKey), "missing signature_key never verifies")
}

func TestMapTransactionStatus(t *testing.T) {
	tests := []struct {
		transactionStatus string
		fraudStatus       string
		want              string
	}{
		{"settlement", "", model.PaymentStatusPaid},
		{"capture", "accept", model.PaymentStatusPaid},
		{"capture", "challenge", model.PaymentStatusPending},
		{"expire", "", model.PaymentStatusExpired},
		{"cancel", "", model.PaymentStatusCancelled},
		{"deny", "", model.PaymentStatusFailed},
		{"failure", "", model.PaymentStatusFailed},
		{"pending", "", model.PaymentStatusPending},
		{"some_new_status", "", model.PaymentStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.transactionStatus+"/"+tt.fraudStatus, func(t *testing.T) {
			assert.Equal(t, tt.want, MapTransactionStatus(tt.transactionStatus, tt.fraudStatus))
		})
	}
}
