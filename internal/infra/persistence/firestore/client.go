// Package firestore contains the Cloud Firestore implementation of the persistence layer.
package firestore

import (
	"context"
	"log/slog"

	"bloodbank/config"
	"bloodbank/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection names
const (
	donorsCollection   = "donors"
	patientsCollection = "patients"
	matchesCollection  = "matches"
)

// Params defines the required parameters for the Firestore record store
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New creates a Firestore client through the Firebase Admin SDK.
func New(params Params) (*firestore.Client, error) {
	cfg := params.Config.Firestore
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("firestore project ID is required for the firestore store driver")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Logger.Info("Firestore client initialized", slog.String("project_id", cfg.ProjectID))

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
