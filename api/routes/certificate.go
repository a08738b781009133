package routes

import (
	"github.com/gofiber/fiber/v2"
	certificate_controller "github.com/sunthewhat/cert-overlay-api/api/controllers/certificate"
)

func SetupCertificateRoutes(router fiber.Router, ctrl *certificate_controller.CertificateController) {
	router.Post("generateSample", ctrl.GenerateSample)
	router.Post("generateCertificates", ctrl.GenerateCertificates)
}
