package dto

import (
	"time"

	"github.com/google/uuid"

	"mengemudiku_backend/internals/features/finance/payments/model"
)

type CreatePaymentRequest struct {
	PaymentEnrollmentID uuid.UUID `json:"payment_enrollment_id" validate:"required"`
}

type PaymentResponse struct {
	PaymentID           uuid.UUID  `json:"payment_id"`
	PaymentEnrollmentID uuid.UUID  `json:"payment_enrollment_id"`
	PaymentOrderID      string     `json:"payment_order_id"`
	PaymentAmount       int64      `json:"payment_amount"`
	PaymentStatus       string     `json:"payment_status"`
	PaymentGateway      string     `json:"payment_gateway"`
	PaymentSnapToken    string     `json:"payment_snap_token,omitempty"`
	PaymentPaidAt       *time.Time `json:"payment_paid_at,omitempty"`
	PaymentCreatedAt    time.Time  `json:"payment_created_at"`
}

// ToPaymentResponse renders a payment; the snap token is only included
// for the owning student (withToken).
func ToPaymentResponse(m *model.PaymentModel, withToken bool) PaymentResponse {
	resp := PaymentResponse{
		PaymentID:           m.PaymentID,
		PaymentEnrollmentID: m.PaymentEnrollmentID,
		PaymentOrderID:      m.PaymentOrderID,
		PaymentAmount:       m.PaymentAmount,
		PaymentStatus:       m.PaymentStatus,
		PaymentGateway:      m.PaymentGateway,
		PaymentPaidAt:       m.PaymentPaidAt,
		PaymentCreatedAt:    m.PaymentCreatedAt,
	}
	if withToken {
		resp.PaymentSnapToken = m.PaymentSnapToken
	}
	return resp
}

func ToPaymentResponses(ms []model.PaymentModel, withToken bool) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToPaymentResponse(&ms[i], withToken))
	}
	return out
}
