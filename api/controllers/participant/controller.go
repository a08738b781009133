package participant_controller

import (
	participantmodel "github.com/sunthewhat/cert-overlay-api/api/model/participantModel"
	"github.com/sunthewhat/cert-overlay-api/internal/uploader"
)

// ParticipantController handles participant-related HTTP requests
type ParticipantController struct {
	participantRepo participantmodel.IParticipantRepository
	imageHost       uploader.ImageHost
	qrFolder        string
	imageFolder     string
}

// NewParticipantController creates a new participant controller with injected dependencies.
// imageHost may be nil when no image host is configured.
func NewParticipantController(
	participantRepo participantmodel.IParticipantRepository,
	imageHost uploader.ImageHost,
	qrFolder string,
	imageFolder string,
) *ParticipantController {
	return &ParticipantController{
		participantRepo: participantRepo,
		imageHost:       imageHost,
		qrFolder:        qrFolder,
		imageFolder:     imageFolder,
	}
}
