package uploader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	cldUploader "github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryUploader stores certificates and QR codes in Cloudinary.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

var (
	_ Uploader  = (*CloudinaryUploader)(nil)
	_ ImageHost = (*CloudinaryUploader)(nil)
)

func NewCloudinaryUploader(cloudinaryURL string, folder string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld, folder: folder}, nil
}

func (c *CloudinaryUploader) Upload(ctx context.Context, file File) (string, error) {
	publicID := strings.TrimSuffix(file.Name, "."+extension(file.Name))
	return c.upload(ctx, c.folder, publicID, file.Data, resourceType(file.ContentType))
}

// UploadImage uploads data under folder/publicID, replacing any previous
// version.
func (c *CloudinaryUploader) UploadImage(ctx context.Context, folder string, publicID string, data []byte) (string, error) {
	return c.upload(ctx, folder, publicID, data, "image")
}

// UploadImageURL lets cloudinary fetch imageURL itself. Data URIs are
// accepted as well.
func (c *CloudinaryUploader) UploadImageURL(ctx context.Context, folder string, imageURL string) (string, error) {
	result, err := c.cld.Upload.Upload(ctx, imageURL, cldUploader.UploadParams{
		Folder:       folder,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image url to cloudinary: %w", err)
	}
	if result.Error.Message != "" {
		return "", errors.New("cloudinary rejected upload: " + result.Error.Message)
	}

	slog.Info("Image url uploaded to cloudinary", "public_id", result.PublicID, "url", result.SecureURL)
	return result.SecureURL, nil
}

func (c *CloudinaryUploader) upload(ctx context.Context, folder string, publicID string, data []byte, kind string) (string, error) {
	result, err := c.cld.Upload.Upload(ctx, bytes.NewReader(data), cldUploader.UploadParams{
		Folder:       folder,
		PublicID:     publicID,
		Overwrite:    api.Bool(true),
		ResourceType: kind,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to cloudinary: %w", publicID, err)
	}
	if result.Error.Message != "" {
		return "", errors.New("cloudinary rejected upload: " + result.Error.Message)
	}

	slog.Info("Uploaded to cloudinary", "public_id", result.PublicID, "url", result.SecureURL)
	return result.SecureURL, nil
}

func extension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx == -1 {
		return ""
	}
	return name[idx+1:]
}

// resourceType maps a content type onto a cloudinary resource type. PDFs
// are delivered as raw files so the signature survives untouched.
func resourceType(contentType string) string {
	if strings.HasPrefix(contentType, "image/") {
		return "image"
	}
	return "raw"
}
