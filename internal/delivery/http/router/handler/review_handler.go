package handler

import (
	"net/http"

	"wrench/internal/delivery/http/response"
	"wrench/internal/domain/entity"
	"wrench/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for review-related handlers.
type ReviewHandler struct {
	uc usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

type submitReviewRequest struct {
	Rating        int      `json:"rating" validate:"required,min=1,max=5"`
	Punctuality   int      `json:"punctuality" validate:"gte=0,lte=5"`
	Quality       int      `json:"quality" validate:"gte=0,lte=5"`
	Communication int      `json:"communication" validate:"gte=0,lte=5"`
	Value         int      `json:"value" validate:"gte=0,lte=5"`
	Comment       string   `json:"comment"`
	Photos        []string `json:"photos" validate:"max=10,dive,url"`
}

// SubmitReview creates the caller's review for a completed job.
func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	userID, _, err := identity(c)
	if err != nil {
		return err
	}
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req submitReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.uc.SubmitReview(c.Request().Context(), jobID, userID, &usecase.SubmitReviewInput{
		Rating: req.Rating,
		Categories: entity.CategoryRatings{
			Punctuality:   req.Punctuality,
			Quality:       req.Quality,
			Communication: req.Communication,
			Value:         req.Value,
		},
		Comment: req.Comment,
		Photos:  req.Photos,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review submitted")
}

// ListMechanicReviews lists a mechanic's visible reviews.
func (h *ReviewHandler) ListMechanicReviews(c echo.Context) error {
	mechanicID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	limit, offset := parsePage(c)

	reviews, err := h.uc.ListMechanicReviews(c.Request().Context(), mechanicID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}

// ReportReview increments a review's abuse-report counter.
func (h *ReviewHandler) ReportReview(c echo.Context) error {
	if _, _, err := identity(c); err != nil {
		return err
	}
	reviewID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.ReportReview(c.Request().Context(), reviewID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review reported")
}

type moderateReviewRequest struct {
	Hidden bool `json:"hidden"`
}

// ModerateReview hides or unhides a review. Admin only.
func (h *ReviewHandler) ModerateReview(c echo.Context) error {
	reviewID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req moderateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid moderation input")
	}

	review, err := h.uc.ModerateReview(c.Request().Context(), reviewID, req.Hidden)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review moderated")
}
