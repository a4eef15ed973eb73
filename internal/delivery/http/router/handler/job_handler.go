package handler

import (
	"net/http"
	"strconv"
	"time"

	"wrench/internal/delivery/http/middleware"
	"wrench/internal/delivery/http/response"
	"wrench/internal/domain/entity"
	"wrench/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// parsePage extracts limit/offset query parameters with sane bounds.
func parsePage(c echo.Context) (limit, offset int) {
	limit = defaultPageSize
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil && v > 0 {
		offset = v
	}

	return limit, offset
}

// identity extracts the authenticated caller from the request context.
func identity(c echo.Context) (uuid.UUID, entity.Role, error) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, "", response.Unauthorized(c, "UNAUTHENTICATED", "Login required")
	}
	role, ok := middleware.UserRole(c)
	if !ok {
		return uuid.Nil, "", response.Unauthorized(c, "UNAUTHENTICATED", "Login required")
	}

	return userID, role, nil
}

// pathUUID parses a path parameter as a UUID.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, response.BadRequest(c, "INVALID_ID", "Invalid "+name)
	}

	return id, nil
}

// JobHandler holds dependencies for job-related handlers.
type JobHandler struct {
	uc        usecase.JobUsecase
	messageUC usecase.MessageUsecase
}

// NewJobHandler is the constructor for JobHandler, injected by Fx.
func NewJobHandler(uc usecase.JobUsecase, messageUC usecase.MessageUsecase) *JobHandler {
	return &JobHandler{uc: uc, messageUC: messageUC}
}

type createJobRequest struct {
	Title        string     `json:"title" validate:"required"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	Urgency      string     `json:"urgency"`
	VehicleInfo  string     `json:"vehicle_info"`
	Address      string     `json:"address" validate:"required"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	ScheduledFor *time.Time `json:"scheduled_for"`
}

// CreateJob handles a customer's new service request.
func (h *JobHandler) CreateJob(c echo.Context) error {
	userID, _, err := identity(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid job input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job, err := h.uc.CreateServiceRequest(c.Request().Context(), userID, &usecase.CreateJobInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Urgency:      entity.JobUrgency(req.Urgency),
		VehicleInfo:  req.VehicleInfo,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		ScheduledFor: req.ScheduledFor,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, job, "Job created")
}

// GetJob returns one job.
func (h *JobHandler) GetJob(c echo.Context) error {
	userID, role, err := identity(c)
	if err != nil {
		return err
	}
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	job, err := h.uc.GetJob(c.Request().Context(), jobID, userID, role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, job, "")
}

// ListJobs returns the caller's jobs.
func (h *JobHandler) ListJobs(c echo.Context) error {
	userID, role, err := identity(c)
	if err != nil {
		return err
	}
	limit, offset := parsePage(c)

	jobs, err := h.uc.ListJobs(c.Request().Context(), userID, role, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, jobs, "")
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes"`
}

// UpdateStatus drives one job state transition.
func (h *JobHandler) UpdateStatus(c echo.Context) error {
	userID, role, err := identity(c)
	if err != nil {
		return err
	}
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job, err := h.uc.UpdateJobStatus(c.Request().Context(), jobID, userID, role, entity.JobStatus(req.Status), req.Notes)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, job, "Job status updated")
}

type updateLocationRequest struct {
	Latitude   float64 `json:"latitude" validate:"required"`
	Longitude  float64 `json:"longitude" validate:"required"`
	ETAMinutes *int    `json:"eta_minutes"`
}

// UpdateLocation stores the assigned mechanic's live position.
func (h *JobHandler) UpdateLocation(c echo.Context) error {
	userID, _, err := identity(c)
	if err != nil {
		return err
	}
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job, err := h.uc.UpdateMechanicLocation(c.Request().Context(), jobID, userID, req.Latitude, req.Longitude, req.ETAMinutes)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, job, "Location updated")
}

type addPartRequest struct {
	Name      string  `json:"name" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

// AddPart appends one parts-used line to the job.
func (h *JobHandler) AddPart(c echo.Context) error {
	userID, _, err := identity(c)
	if err != nil {
		return err
	}
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req addPartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid part input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job, err := h.uc.AddJobPart(c.Request().Context(), jobID, userID, &usecase.JobPartInput{
		Name:      req.Name,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, job, "Part added")
}

type updateTotalsRequest struct {
	Labor     float64 `json:"labor" validate:"gte=0"`
	Parts     float64 `json:"parts" validate:"gte=0"`
	Fees      float64 `json:"fees" validate:"gte=0"`
	Discounts float64 `json:"discounts" validate:"gte=0"`
}

// UpdateTotals replaces the job's cost subtotals.
func (h *JobHandler) UpdateTotals(c echo.Context) error {
	userID, _, err := identity(c)
	if err != nil {
		return err
	}
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateTotalsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid totals input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job, err := h.uc.UpdateJobTotals(c.Request().Context(), jobID, userID, &usecase.JobTotalsInput{
		Labor:     req.Labor,
		Parts:     req.Parts,
		Fees:      req.Fees,
		Discounts: req.Discounts,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, job, "Totals updated")
}

// ListParts returns the job's parts-used list.
func (h *JobHandler) ListParts(c echo.Context) error {
	userID, role, err := identity(c)
	if err != nil {
		return err
	}
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	parts, err := h.uc.ListJobParts(c.Request().Context(), jobID, userID, role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, parts, "")
}

type addTimerEntryRequest struct {
	Action string `json:"action" validate:"required,oneof=START PAUSE RESUME END"`
}

// AddTimerEntry records one work-timer action for the assigned mechanic.
func (h *JobHandler) AddTimerEntry(c echo.Context) error {
	userID, _, err := identity(c)
	if err != nil {
		return err
	}
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req addTimerEntryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid timer input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	entry, err := h.uc.AddTimerEntry(c.Request().Context(), jobID, userID, entity.TimerAction(req.Action))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, entry, "Timer entry recorded")
}

// GetTimerEntries returns the job's work-timer history.
func (h *JobHandler) GetTimerEntries(c echo.Context) error {
	userID, role, err := identity(c)
	if err != nil {
		return err
	}
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	entries, err := h.uc.GetTimerEntries(c.Request().Context(), jobID, userID, role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}

type addPhotoRequest struct {
	URL     string `json:"url" validate:"required,url"`
	Caption string `json:"caption"`
}

// AddPhoto attaches an uploaded photo URL to the job.
func (h *JobHandler) AddPhoto(c echo.Context) error {
	userID, role, err := identity(c)
	if err != nil {
		return err
	}
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req addPhotoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid photo input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	photo, err := h.uc.AddJobPhoto(c.Request().Context(), jobID, userID, role, req.URL, req.Caption)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, photo, "Photo added")
}

// ListPhotos returns the job's photos.
func (h *JobHandler) ListPhotos(c echo.Context) error {
	userID, role, err := identity(c)
	if err != nil {
		return err
	}
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	photos, err := h.uc.ListJobPhotos(c.Request().Context(), jobID, userID, role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, photos, "")
}

// GetTimeline returns the job's lifecycle history.
func (h *JobHandler) GetTimeline(c echo.Context) error {
	userID, role, err := identity(c)
	if err != nil {
		return err
	}
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	entries, err := h.uc.GetTimeline(c.Request().Context(), jobID, userID, role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}

// CheckInQR streams the job's check-in QR code as a PNG.
func (h *JobHandler) CheckInQR(c echo.Context) error {
	userID, role, err := identity(c)
	if err != nil {
		return err
	}
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.uc.CheckInQR(c.Request().Context(), jobID, userID, role)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

type sendMessageRequest struct {
	Type    string `json:"type"`
	Content string `json:"content" validate:"required"`
}

// SendMessage posts a chat message to the job conversation.
func (h *JobHandler) SendMessage(c echo.Context) error {
	userID, role, err := identity(c)
	if err != nil {
		return err
	}
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message, err := h.messageUC.SendMessage(c.Request().Context(), jobID, userID, role, entity.MessageType(req.Type), req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent")
}

// ListMessages returns the job's chat history.
func (h *JobHandler) ListMessages(c echo.Context) error {
	userID, role, err := identity(c)
	if err != nil {
		return err
	}
	jobID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	limit, offset := parsePage(c)

	messages, err := h.messageUC.ListJobMessages(c.Request().Context(), jobID, userID, role, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "")
}
