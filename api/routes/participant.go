package routes

import (
	"github.com/gofiber/fiber/v2"
	participant_controller "github.com/sunthewhat/cert-overlay-api/api/controllers/participant"
)

func SetupParticipantRoutes(router fiber.Router, ctrl *participant_controller.ParticipantController) {
	router.Get("markAttendance", ctrl.GetAttendance)
	router.Post("markAttendance", ctrl.MarkAttendance)
	router.Post("generateExcel", ctrl.GenerateExcel)
	router.Post("uploadToCloudinary", ctrl.UploadImage)

	participantGroup := router.Group("participant")
	participantGroup.Get(":id/qr", ctrl.GetQRCode)
	participantGroup.Post(":id/qr/upload", ctrl.UploadQRCode)
}
