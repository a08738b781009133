package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sunthewhat/cert-overlay-api/common/util"
	"github.com/sunthewhat/cert-overlay-api/type/shared"
	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "config.yml"

// LoadConfig reads, defaults and validates the yaml config at path.
func LoadConfig(path string) (*shared.Config, error) {
	yml, readErr := os.ReadFile(path)
	if readErr != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, readErr)
	}

	return ParseConfig(yml)
}

// ParseConfig decodes yaml bytes into a validated Config.
func ParseConfig(yml []byte) (*shared.Config, error) {
	config := new(shared.Config)

	if unmarshalErr := yaml.Unmarshal(yml, config); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	applyDefaults(config)

	if validateErr := util.ValidateStruct(config); validateErr != nil {
		return nil, fmt.Errorf("invalid config: %v", util.GetValidationErrors(validateErr))
	}

	if config.UsesMinIO() && (config.MinIoEndpoint == "" || config.MinIoAccessKey == "" || config.MinIoSecretKey == "") {
		return nil, errors.New("invalid config: MinIO configuration is incomplete")
	}

	if config.AssetSource == "minio" && config.BucketResource == "" {
		return nil, errors.New("invalid config: bucket_resource is required for the minio asset source")
	}

	return config, nil
}

func applyDefaults(config *shared.Config) {
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = 5 * time.Minute
	}
	if config.TemplateObject == "" {
		config.TemplateObject = "template.png"
	}
	if config.FontObject == "" {
		config.FontObject = "font.ttf"
	}
	if config.SampleObject == "" {
		config.SampleObject = "sample.png"
	}
	if config.ParticipantCollection == "" {
		config.ParticipantCollection = "participants"
	}
	if config.CertificateFormat == "" {
		config.CertificateFormat = "png"
	}
	if config.CloudinaryFolder == "" {
		config.CloudinaryFolder = "certificates"
	}
	if config.CloudinaryQRFolder == "" {
		config.CloudinaryQRFolder = "qr_codes"
	}
	if config.MailFrom == "" {
		config.MailFrom = config.MailUser
	}
}
