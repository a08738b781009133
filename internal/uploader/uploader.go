// Package uploader publishes generated certificates to cloud storage and
// returns a shareable link for each one.
package uploader

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// File is a single rendered certificate ready for upload.
type File struct {
	Name           string
	Data           []byte
	ContentType    string
	RecipientEmail string
}

// Uploader stores a file and returns a link the recipient can open.
type Uploader interface {
	Upload(ctx context.Context, file File) (string, error)
}

// ImageHost publishes images under a stable public id, or re-hosts an image
// given by a remote URL or data URI.
type ImageHost interface {
	UploadImage(ctx context.Context, folder string, publicID string, data []byte) (string, error)
	UploadImageURL(ctx context.Context, folder string, imageURL string) (string, error)
}

// CertificateFileName names the uploaded certificate after the participant.
func CertificateFileName(participantName string, ext string) string {
	name := strings.TrimSpace(participantName)
	if name == "" {
		name = "participant"
	}
	name = strings.NewReplacer("/", "_", "\\", "_").Replace(name)
	return fmt.Sprintf("%s_certificate.%s", name, strings.TrimPrefix(ext, "."))
}

// uniqueObjectName prefixes name with a uuid so repeated runs never collide.
func uniqueObjectName(folder string, name string) string {
	return path.Join(folder, fmt.Sprintf("%s_%s", uuid.New().String(), name))
}
