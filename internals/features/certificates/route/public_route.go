package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certificateController "mengemudiku_backend/internals/features/certificates/controller"
)

// CertificatePublicRoutes: QR verification without login
func CertificatePublicRoutes(api fiber.Router, db *gorm.DB) {
	certCtrl := certificateController.NewCertificateController(db)
	api.Get("/certificates/verify/:code", certCtrl.VerifyCertificate)
}
