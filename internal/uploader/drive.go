package uploader

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const driveFolderMimeType = "application/vnd.google-apps.folder"

// DriveUploader uploads certificates into a single Drive folder and shares
// each file with its recipient as a reader.
type DriveUploader struct {
	service    *drive.Service
	folderName string

	mu       sync.Mutex
	folderID string
}

var _ Uploader = (*DriveUploader)(nil)

func NewDriveUploader(ctx context.Context, credentialsFile string, folderName string) (*DriveUploader, error) {
	service, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(drive.DriveScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveUploader{service: service, folderName: folderName}, nil
}

func (d *DriveUploader) Upload(ctx context.Context, file File) (string, error) {
	folderID, err := d.folder(ctx)
	if err != nil {
		return "", err
	}

	uploaded, err := d.service.Files.Create(&drive.File{
		Name:    file.Name,
		Parents: []string{folderID},
	}).
		Media(bytes.NewReader(file.Data), googleapi.ContentType(file.ContentType)).
		Fields("id", "webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to drive: %w", file.Name, err)
	}

	if file.RecipientEmail != "" {
		_, err = d.service.Permissions.Create(uploaded.Id, &drive.Permission{
			Type:         "user",
			Role:         "reader",
			EmailAddress: file.RecipientEmail,
		}).Fields("id").SendNotificationEmail(false).Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("failed to share %s with %s: %w", file.Name, file.RecipientEmail, err)
		}
	}

	slog.Info("Certificate uploaded to drive", "file", file.Name, "file_id", uploaded.Id)
	return uploaded.WebViewLink, nil
}

// folder returns the id of the target folder, creating it on first use.
func (d *DriveUploader) folder(ctx context.Context) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.folderID != "" {
		return d.folderID, nil
	}

	query := fmt.Sprintf("mimeType='%s' and name='%s' and trashed=false",
		driveFolderMimeType, strings.ReplaceAll(d.folderName, "'", "\\'"))
	list, err := d.service.Files.List().Q(query).Fields("files(id)").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to look up drive folder: %w", err)
	}

	if len(list.Files) > 0 {
		d.folderID = list.Files[0].Id
		return d.folderID, nil
	}

	created, err := d.service.Files.Create(&drive.File{
		Name:     d.folderName,
		MimeType: driveFolderMimeType,
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create drive folder: %w", err)
	}

	slog.Info("Drive folder created", "folder", d.folderName, "folder_id", created.Id)
	d.folderID = created.Id
	return d.folderID, nil
}
