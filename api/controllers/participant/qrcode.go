package participant_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/cert-overlay-api/common/util"
	"github.com/sunthewhat/cert-overlay-api/type/response"
)

func (ctrl *ParticipantController) GetQRCode(c *fiber.Ctx) error {
	participantId := c.Params("id")

	png, err := util.GenerateParticipantQR(participantId)
	if err != nil {
		slog.Error("Participant GetQRCode failed", "error", err, "participant_id", participantId)
		return response.SendInternalError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// UploadQRCode publishes the participant's QR code as qr_<id>, replacing
// any earlier upload.
func (ctrl *ParticipantController) UploadQRCode(c *fiber.Ctx) error {
	participantId := c.Params("id")

	if ctrl.imageHost == nil {
		return response.SendUnavailable(c, "Image hosting is not configured")
	}

	png, err := util.GenerateParticipantQR(participantId)
	if err != nil {
		slog.Error("Participant UploadQRCode generate failed", "error", err, "participant_id", participantId)
		return response.SendInternalError(c, err)
	}

	url, err := ctrl.imageHost.UploadImage(c.UserContext(), ctrl.qrFolder, "qr_"+participantId, png)
	if err != nil {
		slog.Error("Participant UploadQRCode upload failed", "error", err, "participant_id", participantId)
		return response.SendInternalError(c, err)
	}

	return response.SendSuccess(c, "QR code uploaded", fiber.Map{
		"url": url,
	})
}
