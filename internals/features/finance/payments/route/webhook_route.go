package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "mengemudiku_backend/internals/features/finance/payments/controller"
)

// PaymentWebhookRoutes: gateway callback, mounted outside the auth groups
func PaymentWebhookRoutes(app fiber.Router, db *gorm.DB) {
	paymentCtrl := paymentController.NewPaymentController(db)
	app.Post("/api/payments/notification", paymentCtrl.HandleMidtransNotification)
}
