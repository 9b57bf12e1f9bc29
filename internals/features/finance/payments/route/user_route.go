package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "mengemudiku_backend/internals/features/finance/payments/controller"
)

// PaymentUserRoutes: paying for an enrollment (student group)
func PaymentUserRoutes(api fiber.Router, db *gorm.DB) {
	paymentCtrl := paymentController.NewPaymentController(db)
	payment := api.Group("/payments")
	payment.Post("/", paymentCtrl.CreatePayment)
	payment.Get("/", paymentCtrl.GetMyPayments)
}
