package file

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/cert-overlay-api/internal/compositor"
	"github.com/sunthewhat/cert-overlay-api/type/response"
)

var fontContentTypes = map[string]string{
	".ttf": "font/ttf",
	".otf": "font/otf",
}

func (ctrl *FileController) UploadFont(c *fiber.Ctx) error {
	header, data, failure := readUpload(c)
	if failure != "" {
		return response.SendFailed(c, failure)
	}

	contentType, ok := fontContentTypes[strings.ToLower(filepath.Ext(header.Filename))]
	if !ok {
		slog.Warn("File UploadFont rejected extension", "filename", header.Filename)
		return response.SendFailed(c, "Only .ttf and .otf files are allowed")
	}

	face, err := compositor.LoadFont(data, 12)
	if err != nil {
		return response.SendFailed(c, "Font file could not be parsed")
	}
	face.Close()

	location, err := ctrl.assets.Save(c.UserContext(), ctrl.names.Font, data, contentType)
	if err != nil {
		slog.Error("File UploadFont save failed", "error", err)
		return response.SendInternalError(c, err)
	}

	slog.Info("Font uploaded", "filename", header.Filename, "location", location)
	return response.SendSuccess(c, "Font uploaded successfully", fiber.Map{
		"filename": header.Filename,
		"path":     location,
		"size":     header.Size,
	})
}
