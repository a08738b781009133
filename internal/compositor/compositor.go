// Package compositor resolves text colors and draws a single line of text
// onto a certificate template.
package compositor

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// DecodeTemplate decodes PNG or JPEG template bytes.
func DecodeTemplate(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty template", ErrTemplateLoad)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateLoad, err)
	}
	return img, nil
}

// LoadFont parses TrueType font bytes and returns a face of the given
// pixel size. CFF-flavoured OpenType fonts, which freetype cannot read, go
// through x/image/font/opentype instead.
func LoadFont(data []byte, size float64) (font.Face, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty font", ErrFontLoad)
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: font size must be positive, got %v", ErrFontLoad, size)
	}

	if parsed, err := truetype.Parse(data); err == nil {
		return truetype.NewFace(parsed, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		}), nil
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontLoad, err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontLoad, err)
	}
	return face, nil
}

// Render returns a copy of template with text drawn so that the top-left
// corner of its line box sits at the given point. Text is neither wrapped
// nor clipped to the template bounds.
func Render(template image.Image, face font.Face, text string, at image.Point, c RGBColor) *image.RGBA {
	dc := gg.NewContextForImage(template)
	dc.SetFontFace(face)
	dc.SetRGB255(int(c.R), int(c.G), int(c.B))

	ascent := face.Metrics().Ascent.Ceil()
	dc.DrawString(text, float64(at.X), float64(at.Y+ascent))

	return dc.Image().(*image.RGBA)
}

// EncodePNG encodes img with default compression.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPNG decodes the template and font, draws the text and returns the
// encoded PNG.
func RenderPNG(templateData, fontData []byte, req RenderRequest) ([]byte, error) {
	template, err := DecodeTemplate(templateData)
	if err != nil {
		return nil, err
	}

	face, err := LoadFont(fontData, req.FontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	return EncodePNG(Render(template, face, req.Text, req.Position, req.Color))
}

// RenderRequest carries the per-certificate drawing parameters.
type RenderRequest struct {
	Text     string
	FontSize float64
	Position image.Point
	Color    RGBColor
}
