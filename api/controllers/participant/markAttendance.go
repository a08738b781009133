package participant_controller

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	participantmodel "github.com/sunthewhat/cert-overlay-api/api/model/participantModel"
	"github.com/sunthewhat/cert-overlay-api/common/util"
	"github.com/sunthewhat/cert-overlay-api/type/payload"
	"github.com/sunthewhat/cert-overlay-api/type/response"
)

// GetAttendance looks up the participant behind a scanned QR code.
func (ctrl *ParticipantController) GetAttendance(c *fiber.Ctx) error {
	qrResult := c.Query("qrResult")
	if qrResult == "" {
		return response.SendFailed(c, "qrResult is required")
	}

	participant, err := ctrl.participantRepo.GetByQR(c.UserContext(), qrResult)
	if errors.Is(err, participantmodel.ErrParticipantNotFound) {
		slog.Warn("Participant GetAttendance unknown QR", "qr", qrResult)
		return response.SendNotFound(c, "Participant not found")
	}
	if err != nil {
		slog.Error("Participant GetAttendance failed", "error", err, "qr", qrResult)
		return response.SendInternalError(c, err)
	}

	return response.SendSuccess(c, "Participant found", participant)
}

func (ctrl *ParticipantController) MarkAttendance(c *fiber.Ctx) error {
	body := new(payload.MarkAttendancePayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Invalid data")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	participant, err := ctrl.participantRepo.MarkAttendance(c.UserContext(), body.QrResult, body.QrResultTimestamp, body.UserName)
	if errors.Is(err, participantmodel.ErrParticipantNotFound) {
		slog.Warn("Participant MarkAttendance unknown QR", "qr", body.QrResult)
		return response.SendNotFound(c, "Participant not found")
	}
	if err != nil {
		slog.Error("Participant MarkAttendance failed", "error", err, "qr", body.QrResult)
		return response.SendInternalError(c, err)
	}

	slog.Info("Attendance marked", "participant_id", participant.ID, "marked_by", body.UserName)
	return response.SendSuccess(c, "Attendance marked successfully", participant)
}
