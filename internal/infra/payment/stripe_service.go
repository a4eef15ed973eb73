// Package payment provides the Stripe-backed payment gateway adapter.
package payment

import (
	"context"
	"encoding/json"
	"log/slog"

	"wrench/config"
	"wrench/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/stripe/stripe-go/v81/webhook"
	"go.uber.org/fx"
)

type stripeService struct {
	api           *client.API
	webhookSecret string
	logger        *slog.Logger
}

// noopPaymentService is used when Stripe is not configured; intent creation
// fails fast and webhooks are ignored.
type noopPaymentService struct{}

func (s *noopPaymentService) CreatePaymentIntent(context.Context, int64, string, map[string]string) (string, string, error) {
	return "", "", errors.New("payment gateway is not configured")
}

func (s *noopPaymentService) ParsePaymentConfirmed([]byte, string) (string, error) {
	return "", errors.New("payment gateway is not configured")
}

// Params holds dependencies for the PaymentService, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewStripeService creates the Stripe payment adapter, or a failing stub when
// no API key is configured.
func NewStripeService(params Params) service.PaymentService {
	cfg := params.Config.Stripe
	if cfg == nil || cfg.SecretKey == "" {
		params.Logger.Info("Stripe not configured, payments disabled")

		return &noopPaymentService{}
	}

	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	return &stripeService{
		api:           api,
		webhookSecret: cfg.WebhookSecret,
		logger:        params.Logger,
	}
}

// CreatePaymentIntent registers a pending charge with Stripe.
func (s *stripeService) CreatePaymentIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (string, string, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context:  ctx,
			Metadata: metadata,
		},
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to create payment intent")
	}

	return intent.ClientSecret, intent.ID, nil
}

// ParsePaymentConfirmed verifies the webhook signature and extracts the job ID
// from a payment_intent.succeeded event.
func (s *stripeService) ParsePaymentConfirmed(payload []byte, signatureHeader string) (string, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, s.webhookSecret)
	if err != nil {
		return "", errors.Wrap(err, "webhook signature verification failed")
	}

	if event.Type != "payment_intent.succeeded" {
		return "", nil
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return "", errors.Wrap(err, "failed to decode payment intent")
	}

	jobID := intent.Metadata["job_id"]
	if jobID == "" {
		return "", errors.New("payment intent has no job_id metadata")
	}

	return jobID, nil
}

// Module provides the payment FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStripeService),
)
