package renderer

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"

	"github.com/jung-kurt/gofpdf"
)

// ConvertToPDF places a rendered PNG on a single PDF page sized to the
// image's aspect ratio, landscape or portrait to match.
func ConvertToPDF(pngBytes []byte) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate image: %w", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, fmt.Errorf("certificate image has no pixels")
	}

	orientation := "L"
	if cfg.Height > cfg.Width {
		orientation = "P"
	}

	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.AddPage()

	pageWidth, pageHeight := pdf.GetPageSize()
	width, height := fit(float64(cfg.Width), float64(cfg.Height), pageWidth, pageHeight)

	options := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader("certificate", options, bytes.NewReader(pngBytes))
	pdf.ImageOptions("certificate", (pageWidth-width)/2, (pageHeight-height)/2, width, height, false, options, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// fit scales w x h to the largest size that fits inside maxW x maxH.
func fit(w, h, maxW, maxH float64) (float64, float64) {
	scale := maxW / w
	if h*scale > maxH {
		scale = maxH / h
	}
	return w * scale, h * scale
}
