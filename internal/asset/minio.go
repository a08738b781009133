package asset

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/sunthewhat/cert-overlay-api/common/util"
)

// MinIOStore keeps assets in a bucket and stages them into the run
// workspace on fetch.
type MinIOStore struct {
	client   *minio.Client
	bucket   string
	endpoint string
	secure   bool
}

var _ Store = (*MinIOStore)(nil)

func NewMinIOStore(client *minio.Client, bucket string, endpoint string, secure bool) *MinIOStore {
	return &MinIOStore{
		client:   client,
		bucket:   bucket,
		endpoint: endpoint,
		secure:   secure,
	}
}

func (s *MinIOStore) Fetch(ctx context.Context, ws *Workspace, name string) (string, error) {
	if ws == nil {
		return "", fmt.Errorf("workspace is required to fetch %s", name)
	}

	name, err := s.objectName(name)
	if err != nil {
		return "", err
	}

	path := ws.Path(name)
	if err := s.client.FGetObject(ctx, s.bucket, name, path, minio.GetObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return "", fmt.Errorf("%w: %s", ErrAssetNotFound, name)
		}
		return "", fmt.Errorf("failed to download asset %s: %w", name, err)
	}

	slog.Info("Asset staged from MinIO", "bucket", s.bucket, "object", name, "path", path)
	return path, nil
}

func (s *MinIOStore) Save(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	name, err := s.objectName(name)
	if err != nil {
		return "", err
	}
	if err := util.EnsureBucket(ctx, s.client, s.bucket); err != nil {
		return "", err
	}
	if err := util.PutBytes(ctx, s.client, s.bucket, name, data, contentType); err != nil {
		return "", err
	}

	url := util.ObjectURL(s.endpoint, s.secure, s.bucket, name)
	slog.Info("Asset uploaded to MinIO", "object", name, "url", url)
	return url, nil
}

// objectName accepts either a bare object name or a public URL of an object
// in the store's bucket.
func (s *MinIOStore) objectName(name string) (string, error) {
	if !strings.HasPrefix(name, "http://") && !strings.HasPrefix(name, "https://") {
		return name, nil
	}
	return util.ExtractObjectNameFromURL(name, s.bucket)
}
