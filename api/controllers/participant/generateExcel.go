package participant_controller

import (
	"encoding/json"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/cert-overlay-api/common/util"
	"github.com/sunthewhat/cert-overlay-api/type/response"
)

// GenerateExcel turns a JSON array of row objects into an xlsx download.
func (ctrl *ParticipantController) GenerateExcel(c *fiber.Ctx) error {
	var rows []json.RawMessage
	if err := json.Unmarshal(c.Body(), &rows); err != nil {
		return response.SendFailed(c, "Body must be a JSON array of objects")
	}
	if len(rows) == 0 {
		return response.SendFailed(c, "No rows provided")
	}

	data, err := util.GenerateExcel(rows)
	if err != nil {
		slog.Warn("Participant GenerateExcel failed", "error", err)
		return response.SendFailed(c, err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="participants.xlsx"`)
	return c.Send(data)
}
