package uploader

import (
	"context"
	"sync"
)

// MockUploader records uploads and returns a deterministic link.
type MockUploader struct {
	UploadFunc      func(ctx context.Context, file File) (string, error)
	UploadImageFunc func(ctx context.Context, folder string, publicID string, data []byte) (string, error)
	UploadURLFunc   func(ctx context.Context, folder string, imageURL string) (string, error)

	mu       sync.Mutex
	Uploaded []File
}

var (
	_ Uploader  = (*MockUploader)(nil)
	_ ImageHost = (*MockUploader)(nil)
)

func NewMockUploader() *MockUploader {
	return &MockUploader{}
}

func (m *MockUploader) Upload(ctx context.Context, file File) (string, error) {
	m.mu.Lock()
	m.Uploaded = append(m.Uploaded, file)
	m.mu.Unlock()

	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, file)
	}
	return "https://files.example.com/" + file.Name, nil
}

func (m *MockUploader) UploadImage(ctx context.Context, folder string, publicID string, data []byte) (string, error) {
	if m.UploadImageFunc != nil {
		return m.UploadImageFunc(ctx, folder, publicID, data)
	}
	return "https://images.example.com/" + folder + "/" + publicID, nil
}

func (m *MockUploader) UploadImageURL(ctx context.Context, folder string, imageURL string) (string, error) {
	if m.UploadURLFunc != nil {
		return m.UploadURLFunc(ctx, folder, imageURL)
	}
	return "https://images.example.com/" + folder + "/uploaded", nil
}
