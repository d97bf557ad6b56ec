package storage

import (
	"context"
	"log/slog"

	"pabw/config"
	"pabw/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FlagStoreParams holds dependencies for LoginFlagStore, injected by Fx
type FlagStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewLoginFlagStore creates a LoginFlagStore based on configuration
func NewLoginFlagStore(params FlagStoreParams) (service.LoginFlagStore, error) {
	store, err := openFlagStore(context.Background(), params.Config.Storage, params.Logger)
	if err != nil {
		return nil, err
	}

	// Register lifecycle hook to close the store on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing login flag store")

			return store.Close()
		},
	})

	return store, nil
}

func openFlagStore(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (service.LoginFlagStore, error) {
	switch cfg.Provider {
	case config.StorageProviderBlob, "":
		if cfg.BucketURL == "" {
			return nil, errors.New("bucket url is required for blob provider")
		}
		logger.Info("Using blob bucket for login flag", slog.String("bucket", cfg.BucketURL))

		return NewBlobFlagStore(ctx, cfg.BucketURL, cfg.Key, logger)

	case config.StorageProviderRedis:
		client, err := NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		logger.Info("Using redis for login flag", slog.String("addr", client.Options().Addr))

		return NewRedisFlagStore(client, cfg.Key, logger), nil

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewLoginFlagStore),
)
