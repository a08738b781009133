package util

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// NewMinIO builds a MinIO client for endpoint.
func NewMinIO(endpoint string, accessKey string, secretKey string, secure bool) (*minio.Client, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("MinIO configuration is incomplete")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	return client, nil
}

// EnsureBucket creates bucketName when it does not exist yet.
func EnsureBucket(ctx context.Context, client *minio.Client, bucketName string) error {
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// EnsureBucketPublic creates bucketName if needed and grants anonymous read.
func EnsureBucketPublic(ctx context.Context, client *minio.Client, bucketName string) error {
	if err := EnsureBucket(ctx, client, bucketName); err != nil {
		return err
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": "*",
				"Action": "s3:GetObject",
				"Resource": "arn:aws:s3:::%s/*"
			}
		]
	}`, bucketName)

	if err := client.SetBucketPolicy(ctx, bucketName, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}
	return nil
}

// PutBytes uploads data as objectName.
func PutBytes(ctx context.Context, client *minio.Client, bucketName string, objectName string, data []byte, contentType string) error {
	_, err := client.PutObject(ctx, bucketName, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}
	return nil
}

// ObjectURL returns the public URL of an object.
func ObjectURL(endpoint string, secure bool, bucketName string, objectName string) string {
	scheme := "http"
	if secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, endpoint, bucketName, objectName)
}

// ExtractObjectNameFromURL extracts the object name from a MinIO URL
// Example: https://endpoint/bucket/path/to/file.png -> path/to/file.png
func ExtractObjectNameFromURL(url string, bucketName string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("URL is empty")
	}

	bucketPrefix := fmt.Sprintf("/%s/", bucketName)
	idx := strings.Index(url, bucketPrefix)
	if idx == -1 {
		return "", fmt.Errorf("bucket name not found in URL")
	}

	objectName := url[idx+len(bucketPrefix):]
	if objectName == "" {
		return "", fmt.Errorf("object name is empty")
	}

	return objectName, nil
}
