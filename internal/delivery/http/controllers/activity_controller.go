package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"mergington/internal/delivery/http/helpers"
	"mergington/internal/domain"
)

type ActivityController struct {
	Logger     *slog.Logger
	Activities domain.ActivityService
	Signups    domain.SignupService
}

func NewActivityController(logger *slog.Logger, activities domain.ActivityService, signups domain.SignupService) *ActivityController {
	return &ActivityController{
		Logger:     logger,
		Activities: activities,
		Signups:    signups,
	}
}

// ListActivitiesSuccessResponse is the success response envelope for GET /activities (200).
type ListActivitiesSuccessResponse struct {
	Data  map[string]*domain.Activity `json:"data"`
	Error *helpers.APIError           `json:"error"`
}

// ListActivities godoc
// @Summary List activities
// @Description Returns every activity keyed by name with its description, schedule, capacity and participants.
// @Tags activities
// @Produce json
// @Success 200 {object} controllers.ListActivitiesSuccessResponse "data maps activity name to activity"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /activities [get]
func (c *ActivityController) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := c.Activities.ListActivities(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if activities == nil {
		activities = map[string]*domain.Activity{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, activities)
}

// CreateActivityRequest is the request body for POST /activities.
type CreateActivityRequest struct {
	ActivityName    string                 `json:"activity_name"`
	ActivityDetails domain.ActivityDetails `json:"activity_details"`
}

// Validate implements helpers.Validator.
func (r *CreateActivityRequest) Validate() []string {
	var errs []string
	r.ActivityName = strings.TrimSpace(r.ActivityName)
	if r.ActivityName == "" {
		errs = append(errs, "activity_name is required")
	}
	return append(errs, r.ActivityDetails.Validate()...)
}

// MessageSuccessResponse is the success envelope for endpoints that return a message.
type MessageSuccessResponse struct {
	Data  *helpers.MessageResponse `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// CreateActivity godoc
// @Summary Create an activity
// @Description Adds a new activity to the catalog. Names are unique.
// @Tags activities
// @Accept json
// @Produce json
// @Param body body controllers.CreateActivityRequest true "Activity name and details"
// @Success 201 {object} controllers.MessageSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or already_exists"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /activities [post]
func (c *ActivityController) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req CreateActivityRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	_, err := c.Activities.CreateActivity(r.Context(), req.ActivityName, req.ActivityDetails)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeAlreadyExists, "Activity already exists")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, helpers.MessageResponse{
		Message: fmt.Sprintf("Activity '%s' added successfully", req.ActivityName),
	})
}

// SignupSuccessResponse is the success response envelope for POST /activities/{activity_name}/signup (200).
type SignupSuccessResponse struct {
	Data  *domain.SignupConfirmation `json:"data"`
	Error *helpers.APIError          `json:"error"`
}

// Signup godoc
// @Summary Sign up for an activity
// @Description Registers the email as a participant of the activity. Each email may sign up once per activity and only while seats remain.
// @Tags activities
// @Produce json
// @Param activity_name path string true "Activity name"
// @Param email query string true "Participant email"
// @Success 200 {object} controllers.SignupSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, already_registered or capacity_exceeded"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /activities/{activity_name}/signup [post]
func (c *ActivityController) Signup(w http.ResponseWriter, r *http.Request) {
	activityName := r.PathValue("activity_name")
	if activityName == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing activity_name")
		return
	}
	email := r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing email")
		return
	}

	confirmation, err := c.Signups.Signup(r.Context(), activityName, email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "Activity not found")
		case errors.Is(err, domain.ErrAlreadyRegistered):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeAlreadyRegistered, "Student is already signed up")
		case errors.Is(err, domain.ErrCapacityExceeded):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeCapacityExceeded, "Activity is full")
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, confirmation)
}
