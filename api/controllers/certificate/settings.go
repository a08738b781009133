package certificate_controller

import (
	"errors"
	"image"

	"github.com/sunthewhat/cert-overlay-api/internal/compositor"
	"github.com/sunthewhat/cert-overlay-api/internal/renderer"
	"github.com/sunthewhat/cert-overlay-api/type/payload"
)

// textSettings resolves a defaulted payload into render settings.
func textSettings(body *payload.CertificateTextPayload) (renderer.TextSettings, error) {
	spec, err := compositor.ParseColorSpec(body.Color)
	if err != nil {
		return renderer.TextSettings{}, err
	}
	color, err := compositor.Resolve(spec)
	if err != nil {
		return renderer.TextSettings{}, err
	}

	return renderer.TextSettings{
		FontSize: float64(*body.FontSize),
		Position: image.Point{X: int(*body.TextX), Y: int(*body.TextY)},
		Color:    color,
	}, nil
}

func isAssetError(err error) bool {
	return errors.Is(err, compositor.ErrTemplateLoad) || errors.Is(err, compositor.ErrFontLoad)
}
