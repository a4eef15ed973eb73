package handler

import (
	"io"
	"log/slog"
	"net/http"

	"wrench/internal/delivery/http/response"
	"wrench/internal/domain/service"
	"wrench/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment-related handlers.
type PaymentHandler struct {
	jobUC      usecase.JobUsecase
	paymentSvc service.PaymentService
	logger     *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(jobUC usecase.JobUsecase, paymentSvc service.PaymentService, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		jobUC:      jobUC,
		paymentSvc: paymentSvc,
		logger:     logger,
	}
}

// CreateDepositIntent registers the up-front deposit charge for an accepted job.
func (h *PaymentHandler) CreateDepositIntent(c echo.Context) error {
	userID, _, err := identity(c)
	if err != nil {
		return err
	}
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	clientSecret, err := h.jobUC.CreateDepositIntent(c.Request().Context(), jobID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"client_secret": clientSecret}, "Deposit intent created")
}

// Webhook receives the payment gateway's signed event callbacks. The gateway
// retries on non-2xx, so unverifiable payloads must be rejected and everything
// else acknowledged.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_PAYLOAD", "Failed to read webhook payload")
	}

	jobIDStr, err := h.paymentSvc.ParsePaymentConfirmed(payload, c.Request().Header.Get("Stripe-Signature"))
	if err != nil {
		h.logger.Warn("Rejected payment webhook", slog.Any("error", err))

		return response.BadRequest(c, "INVALID_SIGNATURE", "Webhook verification failed")
	}
	if jobIDStr == "" {
		// Event type we do not care about; acknowledge it.
		return c.NoContent(http.StatusOK)
	}

	jobID, err := uuid.Parse(jobIDStr)
	if err != nil {
		h.logger.Warn("Payment webhook carried a malformed job ID", slog.String("jobID", jobIDStr))

		return response.BadRequest(c, "INVALID_ID", "Malformed job reference")
	}

	if _, err := h.jobUC.ConfirmPayment(c.Request().Context(), jobID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusOK)
}
