package routes

import (
	"github.com/gofiber/fiber/v2"
	mail_controller "github.com/sunthewhat/cert-overlay-api/api/controllers/mail"
)

func SetupMailRoutes(router fiber.Router, ctrl *mail_controller.MailController) {
	router.Post("sendSelectedEmail", ctrl.SendSelectedEmail)
	router.Post("sendNotSelectedEmail", ctrl.SendNotSelectedEmail)
}
