package file

import (
	"github.com/sunthewhat/cert-overlay-api/internal/asset"
	"github.com/sunthewhat/cert-overlay-api/internal/renderer"
)

const maxUploadSize = 15 * 1024 * 1024

// FileController replaces the certificate template and font
type FileController struct {
	assets asset.Store
	names  renderer.Assets
}

func NewFileController(assets asset.Store, names renderer.Assets) *FileController {
	return &FileController{
		assets: assets,
		names:  names,
	}
}
