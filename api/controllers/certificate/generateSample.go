package certificate_controller

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/cert-overlay-api/common/util"
	"github.com/sunthewhat/cert-overlay-api/type/payload"
	"github.com/sunthewhat/cert-overlay-api/type/response"
)

func (ctrl *CertificateController) GenerateSample(c *fiber.Ctx) error {
	body := new(payload.CertificateTextPayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Invalid data")
	}
	body.ApplyDefaults()

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	settings, err := textSettings(body)
	if err != nil {
		slog.Warn("Certificate GenerateSample invalid color", "error", err)
		return response.SendFailed(c, "Invalid color format: "+err.Error())
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), ctrl.timeout)
	defer cancel()

	location, err := ctrl.renderer.RenderSample(ctx, body.Name, settings)
	if err != nil {
		slog.Error("Certificate GenerateSample failed", "error", err, "asset_error", isAssetError(err))
		return response.SendError(c, "Error generating certificate: "+err.Error())
	}

	slog.Info("Certificate GenerateSample successful", "name", body.Name, "file", location)
	return response.SendSuccess(c, "Certificate generated successfully", fiber.Map{
		"file": location,
	})
}
