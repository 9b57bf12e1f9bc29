package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "mengemudiku_backend/internals/features/finance/payments/controller"
)

// PaymentAdminRoutes: payment oversight (admin group)
func PaymentAdminRoutes(api fiber.Router, db *gorm.DB) {
	paymentCtrl := paymentController.NewPaymentController(db)
	api.Get("/payments", paymentCtrl.GetAllPayments)
}
