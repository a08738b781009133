package renderer

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selfSignedPEM(t *testing.T) ([]byte, []byte) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "cert-overlay-test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	return certPEM, keyPEM
}

func TestNewCertificateSigner_Disabled(t *testing.T) {
	signer, err := NewCertificateSigner(false, "", "")
	require.NoError(t, err)
	assert.False(t, signer.IsEnabled())

	out, err := signer.SignPDF([]byte("%PDF-1.3"), "p1", "Alice")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), out)
}

func TestNewCertificateSigner_Errors(t *testing.T) {
	_, err := NewCertificateSigner(true, "", "")
	assert.Error(t, err)

	_, err = NewCertificateSigner(true, filepath.Join(t.TempDir(), "missing.pem"), "key.pem")
	assert.ErrorContains(t, err, "failed to read certificate file")

	_, err = ParseCertificateSigner([]byte("garbage"), []byte("garbage"))
	assert.Error(t, err)
}

func TestNewCertificateSigner_LoadsKeyPair(t *testing.T) {
	certPEM, keyPEM := selfSignedPEM(t)
	dir := t.TempDir()
	certPath := filepath.Join(dir, "cert.pem")
	keyPath := filepath.Join(dir, "key.pem")
	require.NoError(t, os.WriteFile(certPath, certPEM, 0o600))
	require.NoError(t, os.WriteFile(keyPath, keyPEM, 0o600))

	signer, err := NewCertificateSigner(true, certPath, keyPath)
	require.NoError(t, err)
	assert.True(t, signer.IsEnabled())

	_, err = signer.SignPDF(nil, "p1", "Alice")
	assert.Error(t, err)

	pdfBytes, err := ConvertToPDF(templatePNG(t))
	require.NoError(t, err)
	signed, err := signer.SignPDF(pdfBytes, "p1", "Alice")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(signed), len(pdfBytes))
}

func TestConvertToPDF(t *testing.T) {
	_, err := ConvertToPDF([]byte("not a png"))
	assert.Error(t, err)

	w, h := fit(2000, 1000, 297, 210)
	assert.InDelta(t, 297, w, 0.001)
	assert.InDelta(t, 148.5, h, 0.001)

	w, h = fit(1000, 1000, 297, 210)
	assert.InDelta(t, 210, w, 0.001)
	assert.InDelta(t, 210, h, 0.001)
}

func TestSignerNilSafe(t *testing.T) {
	var signer *CertificateSigner
	assert.False(t, signer.IsEnabled())
	out, err := signer.SignPDF([]byte("x"), "p", "n")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), out)
}
