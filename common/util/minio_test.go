package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractObjectNameFromURL(t *testing.T) {
	name, err := ExtractObjectNameFromURL("https://s3.local/certs/2024/ada.png", "certs")
	require.NoError(t, err)
	assert.Equal(t, "2024/ada.png", name)

	_, err = ExtractObjectNameFromURL("", "certs")
	assert.Error(t, err)

	_, err = ExtractObjectNameFromURL("https://s3.local/other/ada.png", "certs")
	assert.Error(t, err)

	_, err = ExtractObjectNameFromURL("https://s3.local/certs/", "certs")
	assert.Error(t, err)
}

func TestObjectURL(t *testing.T) {
	assert.Equal(t, "https://s3.local/certs/a.png", ObjectURL("s3.local", true, "certs", "a.png"))
	assert.Equal(t, "http://localhost:9000/certs/a.png", ObjectURL("localhost:9000", false, "certs", "a.png"))
}

func TestNewMinIO_RequiresCredentials(t *testing.T) {
	_, err := NewMinIO("", "a", "b", true)
	assert.Error(t, err)

	client, err := NewMinIO("localhost:9000", "access", "secret", false)
	require.NoError(t, err)
	assert.NotNil(t, client)
}
