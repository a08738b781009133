package uploader

import (
	"context"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/sunthewhat/cert-overlay-api/common/util"
)

// MinIOUploader stores certificates in a public bucket.
type MinIOUploader struct {
	client   *minio.Client
	bucket   string
	endpoint string
	secure   bool
	folder   string
}

var _ Uploader = (*MinIOUploader)(nil)

func NewMinIOUploader(client *minio.Client, bucket string, endpoint string, secure bool) *MinIOUploader {
	return &MinIOUploader{
		client:   client,
		bucket:   bucket,
		endpoint: endpoint,
		secure:   secure,
		folder:   "certificates",
	}
}

func (m *MinIOUploader) Upload(ctx context.Context, file File) (string, error) {
	if err := util.EnsureBucketPublic(ctx, m.client, m.bucket); err != nil {
		return "", err
	}

	objectName := uniqueObjectName(m.folder, file.Name)
	if err := util.PutBytes(ctx, m.client, m.bucket, objectName, file.Data, file.ContentType); err != nil {
		return "", err
	}

	url := util.ObjectURL(m.endpoint, m.secure, m.bucket, objectName)
	slog.Info("Certificate uploaded to MinIO", "object", objectName, "url", url)
	return url, nil
}
