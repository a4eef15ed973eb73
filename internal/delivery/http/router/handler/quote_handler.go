package handler

import (
	"net/http"
	"time"

	"wrench/internal/delivery/http/response"
	"wrench/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// QuoteHandler holds dependencies for quote-related handlers.
type QuoteHandler struct {
	uc usecase.QuoteUsecase
}

// NewQuoteHandler is the constructor for QuoteHandler, injected by Fx.
func NewQuoteHandler(uc usecase.QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

type createQuoteRequest struct {
	JobID       string     `json:"job_id" validate:"required,uuid"`
	LaborCost   float64    `json:"labor_cost" validate:"gte=0"`
	PartsCost   float64    `json:"parts_cost" validate:"gte=0"`
	TravelCost  float64    `json:"travel_cost" validate:"gte=0"`
	Total       *float64   `json:"total"`
	Currency    string     `json:"currency"`
	Description string     `json:"description"`
	ValidUntil  *time.Time `json:"valid_until"`
}

// CreateQuote handles a mechanic's priced proposal for a job.
func (h *QuoteHandler) CreateQuote(c echo.Context) error {
	userID, _, err := identity(c)
	if err != nil {
		return err
	}

	var req createQuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quote input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid job_id")
	}

	quote, err := h.uc.CreateQuote(c.Request().Context(), userID, &usecase.CreateQuoteInput{
		JobID:       jobID,
		LaborCost:   req.LaborCost,
		PartsCost:   req.PartsCost,
		TravelCost:  req.TravelCost,
		Total:       req.Total,
		Currency:    req.Currency,
		Description: req.Description,
		ValidUntil:  req.ValidUntil,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, quote, "Quote created")
}

// GetQuote returns one quote.
func (h *QuoteHandler) GetQuote(c echo.Context) error {
	userID, role, err := identity(c)
	if err != nil {
		return err
	}
	quoteID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	quote, err := h.uc.GetQuote(c.Request().Context(), quoteID, userID, role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, quote, "")
}

// AcceptQuote accepts a quote on behalf of the job's customer.
func (h *QuoteHandler) AcceptQuote(c echo.Context) error {
	userID, _, err := identity(c)
	if err != nil {
		return err
	}
	quoteID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	result, err := h.uc.AcceptQuote(c.Request().Context(), quoteID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Quote accepted")
}

// RejectQuote rejects a quote on behalf of the job's customer.
func (h *QuoteHandler) RejectQuote(c echo.Context) error {
	userID, _, err := identity(c)
	if err != nil {
		return err
	}
	quoteID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	quote, err := h.uc.RejectQuote(c.Request().Context(), quoteID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, quote, "Quote rejected")
}

// ApproveQuote marks a quote as admin-approved.
func (h *QuoteHandler) ApproveQuote(c echo.Context) error {
	quoteID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	quote, err := h.uc.ApproveQuote(c.Request().Context(), quoteID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, quote, "Quote approved")
}
