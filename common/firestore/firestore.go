package firestore

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// InitFirestore opens a Firestore client for project. Without a
// credentials file the client falls back to application default
// credentials.
func InitFirestore(ctx context.Context, project string, credentialsFile string) (*firestore.Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := firestore.NewClient(ctx, project, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Firestore: %w", err)
	}

	slog.Info("Firestore Connected!", "project", project)
	return client, nil
}
