package util

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

const ParticipantQRSize = 520

// GenerateParticipantQR encodes a participant id as a PNG QR code used as
// the entry ticket scanned at the venue.
func GenerateParticipantQR(participantId string) ([]byte, error) {
	if participantId == "" {
		return nil, fmt.Errorf("participant id is empty")
	}

	qrBytes, err := qrcode.Encode(participantId, qrcode.Medium, ParticipantQRSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return qrBytes, nil
}
