package presence

import (
	"context"
	"log/slog"

	"wrench/config"
	"wrench/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the PresenceStore, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPresenceStore creates a PresenceStore based on configuration. Without a
// Redis section the in-process store is used.
func NewPresenceStore(params Params) (service.PresenceStore, error) {
	cfg := params.Config.Redis
	logger := params.Logger

	if cfg == nil || cfg.Addr == "" {
		logger.Info("Redis not configured, using in-process presence store")

		return NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(params.Ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to connect to redis")
	}

	logger.Info("Using Redis presence store", slog.String("addr", cfg.Addr))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Redis presence client")

			return client.Close()
		},
	})

	return NewRedisStore(client), nil
}

// Module provides the presence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPresenceStore),
)
