package file

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
)

// readUpload reads the multipart "file" field. A non-empty failure is the
// message to return to the client.
func readUpload(c *fiber.Ctx) (header *multipart.FileHeader, data []byte, failure string) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, nil, "No file uploaded"
	}

	if header.Size > maxUploadSize {
		return nil, nil, fmt.Sprintf("File size too large (%dMB out off 15MB)", header.Size/(1024*1024))
	}

	f, err := header.Open()
	if err != nil {
		return nil, nil, "Failed to open uploaded file"
	}
	defer f.Close()

	data, err = io.ReadAll(f)
	if err != nil {
		return nil, nil, "Failed to read uploaded file"
	}
	return header, data, ""
}
