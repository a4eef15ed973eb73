package notification

import (
	"context"
	"log/slog"

	"wrench/config"
	"wrench/internal/domain/service"

	"go.uber.org/fx"
)

// noopPushService logs instead of pushing when no credentials are configured.
type noopPushService struct {
	logger *slog.Logger
}

func (s *noopPushService) SendToToken(_ context.Context, token, title, _ string, _ map[string]string) error {
	s.logger.Debug("[NoopPush] Push delivery disabled, skipping",
		slog.String("title", title),
	)

	return nil
}

// Params holds dependencies for the PushService, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushService creates a PushService based on configuration. Without
// Firebase credentials the no-op service is used.
func NewPushService(params Params) (service.PushService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, using no-op push service")

		return &noopPushService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, cfg.CredentialsPath)
}

// Module provides the push notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPushService),
)
