package shared

import "time"

type Config struct {
	Environment    bool          `yaml:"environment"`
	Port           string        `yaml:"port" validate:"required"`
	Cors           []string      `yaml:"cors" validate:"required,min=1"`
	RequestTimeout time.Duration `yaml:"request_timeout"`

	AssetSource    string `yaml:"asset_source" validate:"required,oneof=local minio"`
	AssetDir       string `yaml:"asset_dir" validate:"required_if=AssetSource local"`
	TemplateObject string `yaml:"template_object" validate:"required"`
	FontObject     string `yaml:"font_object" validate:"required"`
	SampleObject   string `yaml:"sample_object" validate:"required"`

	UploadProvider       string `yaml:"upload_provider" validate:"required,oneof=drive cloudinary minio"`
	DriveCredentialsFile string `yaml:"drive_credentials_file" validate:"required_if=UploadProvider drive"`
	DriveFolder          string `yaml:"drive_folder" validate:"required_if=UploadProvider drive"`
	CloudinaryURL        string `yaml:"cloudinary_url" validate:"required_if=UploadProvider cloudinary"`
	CloudinaryFolder     string `yaml:"cloudinary_folder"`
	CloudinaryQRFolder   string `yaml:"cloudinary_qr_folder"`

	MinIoEndpoint     string `yaml:"minio_endpoint"`
	MinIoAccessKey    string `yaml:"minio_access_key"`
	MinIoSecretKey    string `yaml:"minio_secret_key"`
	MinIoSecure       bool   `yaml:"minio_secure"`
	BucketResource    string `yaml:"bucket_resource"`
	BucketCertificate string `yaml:"bucket_certificate" validate:"required_if=UploadProvider minio"`

	ParticipantStore         string `yaml:"participant_store" validate:"required,oneof=firestore mongo postgres"`
	ParticipantCollection    string `yaml:"participant_collection" validate:"required"`
	FirestoreProject         string `yaml:"firestore_project" validate:"required_if=ParticipantStore firestore"`
	FirestoreCredentialsFile string `yaml:"firestore_credentials_file"`
	Mongo                    string `yaml:"mongo" validate:"required_if=ParticipantStore mongo"`
	MongoDatabase            string `yaml:"mongo_database" validate:"required_if=ParticipantStore mongo"`
	Postgres                 string `yaml:"postgres" validate:"required_if=ParticipantStore postgres"`

	MailHost string `yaml:"mail_host" validate:"required"`
	MailPort int    `yaml:"mail_port" validate:"required"`
	MailUser string `yaml:"mail_user" validate:"required"`
	MailPass string `yaml:"mail_pass" validate:"required"`
	MailFrom string `yaml:"mail_from"`

	CertificateFormat string `yaml:"certificate_format" validate:"omitempty,oneof=png pdf"`
	SigningEnabled    bool   `yaml:"signing_enabled"`
	SigningCertPath   string `yaml:"signing_cert_path" validate:"required_if=SigningEnabled true"`
	SigningKeyPath    string `yaml:"signing_key_path" validate:"required_if=SigningEnabled true"`
}

// UsesMinIO reports whether any component needs a MinIO client.
func (c *Config) UsesMinIO() bool {
	return c.AssetSource == "minio" || c.UploadProvider == "minio"
}
