package certificate_controller

import (
	"time"

	"github.com/sunthewhat/cert-overlay-api/common/util"
	"github.com/sunthewhat/cert-overlay-api/internal/renderer"
)

// CertificateController handles certificate generation requests
type CertificateController struct {
	renderer *renderer.CertificateRenderer
	mailer   util.Mailer
	timeout  time.Duration
}

// NewCertificateController creates a new certificate controller with injected dependencies
func NewCertificateController(renderer *renderer.CertificateRenderer, mailer util.Mailer, timeout time.Duration) *CertificateController {
	return &CertificateController{
		renderer: renderer,
		mailer:   mailer,
		timeout:  timeout,
	}
}
