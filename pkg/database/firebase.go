package database

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

type FirebaseConfig struct {
	CredentialsPath string
	DatabaseURL     string
	StorageBucket   string
}

// NewFirebaseApp builds the process-wide Firebase handle. Call it once at
// startup and pass the result to the store adapters.
func NewFirebaseApp(ctx context.Context, cfg FirebaseConfig) (*firebase.App, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("firebase database url is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		DatabaseURL:   cfg.DatabaseURL,
		StorageBucket: cfg.StorageBucket,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	return app, nil
}
