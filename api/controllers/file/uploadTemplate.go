package file

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/cert-overlay-api/internal/compositor"
	"github.com/sunthewhat/cert-overlay-api/type/response"
)

func (ctrl *FileController) UploadTemplate(c *fiber.Ctx) error {
	header, data, failure := readUpload(c)
	if failure != "" {
		return response.SendFailed(c, failure)
	}

	if http.DetectContentType(data) != "image/png" {
		slog.Warn("File UploadTemplate rejected non-png", "filename", header.Filename)
		return response.SendFailed(c, "Only PNG files are allowed")
	}

	if _, err := compositor.DecodeTemplate(data); err != nil {
		return response.SendFailed(c, "Template is not a valid PNG image")
	}

	location, err := ctrl.assets.Save(c.UserContext(), ctrl.names.Template, data, "image/png")
	if err != nil {
		slog.Error("File UploadTemplate save failed", "error", err)
		return response.SendInternalError(c, err)
	}

	slog.Info("Template uploaded", "filename", header.Filename, "location", location)
	return response.SendSuccess(c, "Template uploaded successfully", fiber.Map{
		"filename": header.Filename,
		"path":     location,
		"size":     header.Size,
	})
}
