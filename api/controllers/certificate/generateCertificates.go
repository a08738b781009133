package certificate_controller

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	participantmodel "github.com/sunthewhat/cert-overlay-api/api/model/participantModel"
	"github.com/sunthewhat/cert-overlay-api/common/util"
	"github.com/sunthewhat/cert-overlay-api/internal/renderer"
	"github.com/sunthewhat/cert-overlay-api/type/payload"
	"github.com/sunthewhat/cert-overlay-api/type/response"
)

func (ctrl *CertificateController) GenerateCertificates(c *fiber.Ctx) error {
	body := new(payload.GenerateCertificatesPayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Invalid data")
	}
	body.ApplyDefaults()

	if err := util.ValidateStruct(body); err != nil {
		errs := util.GetValidationErrors(err)
		return response.SendFailed(c, errs[0])
	}

	settings, err := textSettings(&body.CertificateTextPayload)
	if err != nil {
		slog.Warn("Certificate GenerateAll invalid color", "error", err)
		return response.SendFailed(c, "Invalid color format: "+err.Error())
	}

	options := renderer.GenerateOptions{
		Filter: participantmodel.ParticipantFilter{
			Attend:   body.Attend,
			Selected: body.Selected,
		},
		Renew: c.QueryBool("renew", false),
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), ctrl.timeout)
	defer cancel()

	results, err := ctrl.renderer.ProcessCertificates(ctx, settings, options)
	if errors.Is(err, renderer.ErrNoParticipants) {
		return response.SendFailed(c, "No participants found")
	}
	if err != nil && len(results) == 0 {
		slog.Error("Certificate GenerateAll failed", "error", err, "asset_error", isAssetError(err))
		return response.SendError(c, "Error generating certificates: "+err.Error())
	}

	summary := payload.GenerateCertificatesResult{Results: results}
	for _, result := range results {
		switch result.Status {
		case renderer.StatusSuccess:
			summary.Generated++
		case renderer.StatusSkipped:
			summary.Skipped++
		default:
			summary.Failed++
		}
	}

	if c.QueryBool("notify", false) {
		summary.Notified = ctrl.notify(results)
	}

	if err != nil {
		slog.Warn("Certificate GenerateAll interrupted", "error", err, "processed", len(results))
		return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{
			"success": false,
			"message": "Certificate generation interrupted: " + err.Error(),
			"data":    summary,
		})
	}

	slog.Info("Certificate GenerateAll completed",
		"generated", summary.Generated,
		"skipped", summary.Skipped,
		"failed", summary.Failed)
	return response.SendSuccess(c, "Certificates generated, uploaded, and links updated successfully", summary)
}

// notify mails the certificate link to every participant generated in this run.
func (ctrl *CertificateController) notify(results []renderer.CertificateResult) int {
	sent := 0
	for _, result := range results {
		if result.Status != renderer.StatusSuccess {
			continue
		}
		if err := ctrl.mailer.Send(result.Email, util.CertificateSubject, util.CertificateMail(result.Name, result.Link)); err != nil {
			slog.Error("Certificate notify mail failed", "error", err, "participant_id", result.ParticipantID)
			continue
		}
		sent++
	}
	return sent
}
