package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certificateController "mengemudiku_backend/internals/features/certificates/controller"
)

// CertificateUserRoutes: claiming + downloading certificates (student group)
func CertificateUserRoutes(api fiber.Router, db *gorm.DB) {
	certCtrl := certificateController.NewCertificateController(db)
	certificate := api.Group("/certificates")
	certificate.Post("/", certCtrl.IssueCertificate)
	certificate.Get("/", certCtrl.GetMyCertificates)
	certificate.Get("/:id/pdf", certCtrl.DownloadCertificatePDF)
}
