package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/cert-overlay-api/api/controllers/file"
)

func SetupFileRoutes(router fiber.Router, ctrl *file.FileController) {
	router.Post("uploadTemplate", ctrl.UploadTemplate)
	router.Post("uploadFont", ctrl.UploadFont)
}
