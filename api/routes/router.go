package routes

import (
	"github.com/gofiber/fiber/v2"
	certificate_controller "github.com/sunthewhat/cert-overlay-api/api/controllers/certificate"
	"github.com/sunthewhat/cert-overlay-api/api/controllers/file"
	mail_controller "github.com/sunthewhat/cert-overlay-api/api/controllers/mail"
	participant_controller "github.com/sunthewhat/cert-overlay-api/api/controllers/participant"
)

// Controllers bundles every controller the router mounts.
type Controllers struct {
	Certificate *certificate_controller.CertificateController
	File        *file.FileController
	Participant *participant_controller.ParticipantController
	Mail        *mail_controller.MailController
}

func Init(router fiber.Router, controllers Controllers) {
	api := router.Group("api")

	SetupCertificateRoutes(api, controllers.Certificate)
	SetupFileRoutes(api, controllers.File)
	SetupParticipantRoutes(api, controllers.Participant)
	SetupMailRoutes(api, controllers.Mail)
}
