package participant_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/cert-overlay-api/common/util"
	"github.com/sunthewhat/cert-overlay-api/type/payload"
	"github.com/sunthewhat/cert-overlay-api/type/response"
)

// UploadImage re-hosts the image at imageUrl in the configured image folder.
func (ctrl *ParticipantController) UploadImage(c *fiber.Ctx) error {
	if ctrl.imageHost == nil {
		return response.SendUnavailable(c, "Image hosting is not configured")
	}

	body := new(payload.UploadImagePayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Invalid data")
	}
	if err := util.ValidateStruct(body); err != nil {
		return response.SendFailed(c, "imageUrl must be a URL or data URI")
	}

	url, err := ctrl.imageHost.UploadImageURL(c.UserContext(), ctrl.imageFolder, body.ImageUrl)
	if err != nil {
		slog.Error("Participant UploadImage failed", "error", err)
		return response.SendError(c, "Failed to upload image")
	}

	return response.SendSuccess(c, "Image uploaded", fiber.Map{
		"url": url,
	})
}
