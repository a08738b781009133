package renderer

import (
	"bytes"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	digitorus_pdf "github.com/digitorus/pdf"
	"github.com/digitorus/pdfsign/sign"
)

type CertificateSigner struct {
	certificate *x509.Certificate
	privateKey  *rsa.PrivateKey
	enabled     bool
}

// NewCertificateSigner loads the PEM certificate and RSA key used to sign
// PDF certificates. A disabled signer passes PDFs through unchanged.
func NewCertificateSigner(enabled bool, certPath string, keyPath string) (*CertificateSigner, error) {
	if !enabled {
		slog.Info("PDF signing disabled in configuration")
		return &CertificateSigner{enabled: false}, nil
	}

	if certPath == "" || keyPath == "" {
		return nil, fmt.Errorf("signing enabled but certificate or key path not configured")
	}

	certPEM, err := os.ReadFile(certPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate file %s: %w", certPath, err)
	}

	keyPEM, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file %s: %w", keyPath, err)
	}

	return ParseCertificateSigner(certPEM, keyPEM)
}

// ParseCertificateSigner builds an enabled signer from PEM bytes.
func ParseCertificateSigner(certPEM []byte, keyPEM []byte) (*CertificateSigner, error) {
	certBlock, _ := pem.Decode(certPEM)
	if certBlock == nil {
		return nil, fmt.Errorf("failed to decode certificate PEM")
	}

	certificate, err := x509.ParseCertificate(certBlock.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate: %w", err)
	}

	keyBlock, _ := pem.Decode(keyPEM)
	if keyBlock == nil {
		return nil, fmt.Errorf("failed to decode private key PEM")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(keyBlock.Bytes)
	if err != nil {
		// PKCS8 fallback
		key, err := x509.ParsePKCS8PrivateKey(keyBlock.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}
		var ok bool
		privateKey, ok = key.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("private key is not RSA format")
		}
	}

	slog.Info("Certificate signer initialized",
		"cert_subject", certificate.Subject.String(),
		"cert_expiry", certificate.NotAfter)

	return &CertificateSigner{
		certificate: certificate,
		privateKey:  privateKey,
		enabled:     true,
	}, nil
}

// SignPDF signs pdfBytes on behalf of the named participant. Signing
// failures fall back to the unsigned document.
func (s *CertificateSigner) SignPDF(pdfBytes []byte, participantID string, participantName string) ([]byte, error) {
	if s == nil || !s.enabled {
		return pdfBytes, nil
	}
	if len(pdfBytes) == 0 {
		return pdfBytes, fmt.Errorf("empty PDF bytes")
	}

	signData := sign.SignData{
		Signature: sign.SignDataSignature{
			Info: sign.SignDataSignatureInfo{
				Name:     "Certificate Overlay Service",
				Location: "Certificate Distribution",
				Reason:   fmt.Sprintf("Certificate issued to %s", participantName),
				Date:     time.Now(),
			},
			CertType:   sign.CertificationSignature,
			DocMDPPerm: sign.AllowFillingExistingFormFieldsAndSignaturesPerms,
		},
		Signer:      s.privateKey,
		Certificate: s.certificate,
	}

	inputReader := bytes.NewReader(pdfBytes)
	var outputBuffer bytes.Buffer

	var signingError error
	func() {
		defer func() {
			if r := recover(); r != nil {
				signingError = fmt.Errorf("panic during signing: %v", r)
			}
		}()

		pdfReader, err := digitorus_pdf.NewReader(inputReader, int64(len(pdfBytes)))
		if err != nil {
			signingError = err
			return
		}

		if _, err := inputReader.Seek(0, io.SeekStart); err != nil {
			signingError = err
			return
		}

		signingError = sign.Sign(inputReader, &outputBuffer, pdfReader, int64(len(pdfBytes)), signData)
	}()

	if signingError != nil || outputBuffer.Len() == 0 {
		slog.Warn("PDF signing failed, returning unsigned PDF",
			"participant_id", participantID,
			"error", signingError)
		return pdfBytes, nil
	}

	slog.Info("PDF signed",
		"participant_id", participantID,
		"original_size", len(pdfBytes),
		"signed_size", outputBuffer.Len())

	return outputBuffer.Bytes(), nil
}

func (s *CertificateSigner) IsEnabled() bool {
	return s != nil && s.enabled
}
