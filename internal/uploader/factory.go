package uploader

import (
	"context"
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/sunthewhat/cert-overlay-api/type/shared"
)

// New builds the uploader selected by config.UploadProvider. minioClient is
// only consulted for the minio provider.
func New(ctx context.Context, config *shared.Config, minioClient *minio.Client) (Uploader, error) {
	switch config.UploadProvider {
	case "drive":
		return NewDriveUploader(ctx, config.DriveCredentialsFile, config.DriveFolder)
	case "cloudinary":
		return NewCloudinaryUploader(config.CloudinaryURL, config.CloudinaryFolder)
	case "minio":
		if minioClient == nil {
			return nil, errors.New("minio upload provider requires a MinIO client")
		}
		return NewMinIOUploader(minioClient, config.BucketCertificate, config.MinIoEndpoint, config.MinIoSecure), nil
	default:
		return nil, fmt.Errorf("unknown upload provider %q", config.UploadProvider)
	}
}

// NewImageHost returns the Cloudinary image host when it is configured.
func NewImageHost(config *shared.Config) (ImageHost, error) {
	if config.CloudinaryURL == "" {
		return nil, nil
	}
	return NewCloudinaryUploader(config.CloudinaryURL, config.CloudinaryFolder)
}
