package compositor

import "errors"

var (
	ErrInvalidColorFormat = errors.New("invalid color format")
	ErrFontLoad           = errors.New("failed to load font")
	ErrTemplateLoad       = errors.New("failed to load template")
)
