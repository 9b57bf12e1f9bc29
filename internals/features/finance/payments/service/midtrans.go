package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"mengemudiku_backend/internals/features/finance/payments/model"
)

var SnapClient snap.Client

// InitMidtrans initializes the Midtrans Snap client with the server key.
func InitMidtrans(serverKey string, production bool) {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
}

// GenerateSnapToken creates a Midtrans Snap token for a pending payment.
func GenerateSnapToken(p *model.PaymentModel, name string, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.PaymentOrderID,
			GrossAmt: p.PaymentAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}

	return resp.Token, nil
}
