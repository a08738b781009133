package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/sunthewhat/cert-overlay-api/api"
	certificate_controller "github.com/sunthewhat/cert-overlay-api/api/controllers/certificate"
	"github.com/sunthewhat/cert-overlay-api/api/controllers/file"
	mail_controller "github.com/sunthewhat/cert-overlay-api/api/controllers/mail"
	participant_controller "github.com/sunthewhat/cert-overlay-api/api/controllers/participant"
	participantmodel "github.com/sunthewhat/cert-overlay-api/api/model/participantModel"
	"github.com/sunthewhat/cert-overlay-api/api/routes"
	"github.com/sunthewhat/cert-overlay-api/common/firestore"
	"github.com/sunthewhat/cert-overlay-api/common/gorm"
	"github.com/sunthewhat/cert-overlay-api/common/mongo"
	"github.com/sunthewhat/cert-overlay-api/common/util"
	"github.com/sunthewhat/cert-overlay-api/internal/asset"
	"github.com/sunthewhat/cert-overlay-api/internal/renderer"
	"github.com/sunthewhat/cert-overlay-api/internal/uploader"
	"github.com/sunthewhat/cert-overlay-api/type/shared"
)

// run wires every collaborator from cfg and serves until ctx is done.
func run(ctx context.Context, cfg *shared.Config) error {
	participants, closeStore, err := openParticipantStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	var minioClient *minio.Client
	if cfg.UsesMinIO() {
		minioClient, err = util.NewMinIO(cfg.MinIoEndpoint, cfg.MinIoAccessKey, cfg.MinIoSecretKey, cfg.MinIoSecure)
		if err != nil {
			return err
		}
	}

	assets := openAssetStore(cfg, minioClient)
	asset.StartWorkspaceSweeper(ctx, time.Hour, 24*time.Hour)

	up, err := uploader.New(ctx, cfg, minioClient)
	if err != nil {
		return err
	}

	imageHost, err := uploader.NewImageHost(cfg)
	if err != nil {
		return err
	}

	signer, err := renderer.NewCertificateSigner(cfg.SigningEnabled, cfg.SigningCertPath, cfg.SigningKeyPath)
	if err != nil {
		return err
	}

	mailer := util.NewSMTPMailer(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)

	names := renderer.Assets{
		Template: cfg.TemplateObject,
		Font:     cfg.FontObject,
		Sample:   cfg.SampleObject,
	}
	certificates := renderer.NewCertificateRenderer(assets, names, cfg.CertificateFormat, participants, up, signer)

	app := api.NewFiber(cfg, routes.Controllers{
		Certificate: certificate_controller.NewCertificateController(certificates, mailer, cfg.RequestTimeout),
		File:        file.NewFileController(assets, names),
		Participant: participant_controller.NewParticipantController(participants, imageHost, cfg.CloudinaryQRFolder, cfg.CloudinaryFolder),
		Mail:        mail_controller.NewMailController(mailer),
	})

	slog.Info("Service configured",
		"participant_store", cfg.ParticipantStore,
		"asset_source", cfg.AssetSource,
		"upload_provider", cfg.UploadProvider,
		"certificate_format", cfg.CertificateFormat,
		"signing", signer.IsEnabled())

	return api.Serve(ctx, app, cfg.Port)
}

func openParticipantStore(ctx context.Context, cfg *shared.Config) (participantmodel.IParticipantRepository, func(), error) {
	switch cfg.ParticipantStore {
	case "firestore":
		client, err := firestore.InitFirestore(ctx, cfg.FirestoreProject, cfg.FirestoreCredentialsFile)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				slog.Warn("Failed to close Firestore client", "error", err)
			}
		}
		return participantmodel.NewFirestoreRepository(client, cfg.ParticipantCollection), closeFn, nil

	case "mongo":
		db, err := mongo.InitMongo(ctx, cfg.Mongo, cfg.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := db.Client().Disconnect(context.Background()); err != nil {
				slog.Warn("Failed to disconnect MongoDB", "error", err)
			}
		}
		return participantmodel.NewMongoRepository(db, cfg.ParticipantCollection), closeFn, nil

	case "postgres":
		db, err := gorm.InitGorm(cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		return participantmodel.NewSQLRepository(db, cfg.ParticipantCollection), func() { gorm.Close(db) }, nil

	default:
		return nil, nil, fmt.Errorf("unknown participant store %q", cfg.ParticipantStore)
	}
}

func openAssetStore(cfg *shared.Config, minioClient *minio.Client) asset.Store {
	if cfg.AssetSource == "minio" {
		return asset.NewMinIOStore(minioClient, cfg.BucketResource, cfg.MinIoEndpoint, cfg.MinIoSecure)
	}
	return asset.NewLocalStore(cfg.AssetDir)
}
