package controller

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"talentsched/core/controller"
	"talentsched/core/errors"
	"talentsched/core/params"
	"talentsched/modules/scheduler/dto"
	"talentsched/modules/scheduler/entity"
	"talentsched/modules/scheduler/repository"
	"talentsched/modules/scheduler/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultMaxSlots = 10
	maxSlotsCap     = 20
)

// SchedulerController handles scheduling HTTP requests
type SchedulerController struct {
	controller.BaseController
	SchedulerService service.SchedulerServiceInterface
}

// NewSchedulerController creates a new controller
func NewSchedulerController(svc service.SchedulerServiceInterface) *SchedulerController {
	return &SchedulerController{
		BaseController:   controller.NewBaseController(),
		SchedulerService: svc,
	}
}

// ScheduleInterview handles POST /scheduler/schedule
// @Summary Schedule an interview
// @Description Finds the optimal time slot for an interview and books it
// @Tags Scheduler
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ScheduleInterviewRequest true "Scheduling request"
// @Success 201 {object} dto.ScheduleResult
// @Failure 400 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /private/scheduler/schedule [post]
func (c *SchedulerController) ScheduleInterview(ctx echo.Context) error {
	var req dto.ScheduleInterviewRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.SchedulerService.ScheduleInterview(ctx.Request().Context(), req.ToEntity())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return ctx.JSON(http.StatusCreated,
		controller.NewSuccessResponse(http.StatusCreated, result, "Interview scheduled successfully"))
}

// RescheduleInterview handles PUT /scheduler/interviews/:id/reschedule
// @Summary Reschedule an interview
// @Description Books a replacement slot for an existing interview and closes the original
// @Tags Scheduler
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Interview ID"
// @Param request body dto.RescheduleInterviewRequest true "Reschedule request"
// @Success 200 {object} dto.RescheduleResult
// @Failure 404 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /private/scheduler/interviews/{id}/reschedule [put]
func (c *SchedulerController) RescheduleInterview(ctx echo.Context) error {
	interviewID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid interview ID")
	}

	var req dto.RescheduleInterviewRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.SchedulerService.RescheduleInterview(ctx.Request().Context(), interviewID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Interview rescheduled successfully")
}

// ListInterviews handles GET /scheduler/interviews
// @Summary List interviews
// @Description Returns interviews filtered by status, interviewer, candidate or date range
// @Tags Scheduler
// @Security BearerAuth
// @Produce json
// @Param status query string false "Interview status"
// @Param interviewer_email query string false "Interviewer email"
// @Param candidate_id query string false "Candidate ID"
// @Param start_date query string false "Scheduled from (RFC3339)"
// @Param end_date query string false "Scheduled until (RFC3339)"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} entity.PaginatedInterviews
// @Router /private/scheduler/interviews [get]
func (c *SchedulerController) ListInterviews(ctx echo.Context) error {
	filter := repository.InterviewFilter{
		Status:           entity.InterviewStatus(ctx.QueryParam("status")),
		InterviewerEmail: ctx.QueryParam("interviewer_email"),
	}

	if raw := ctx.QueryParam("candidate_id"); raw != "" {
		candidateID, err := uuid.Parse(raw)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "Invalid candidate ID")
		}
		filter.CandidateID = &candidateID
	}

	startDate, err := parseTimeParam(ctx, "start_date")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid start_date, expected RFC3339")
	}
	endDate, err := parseTimeParam(ctx, "end_date")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid end_date, expected RFC3339")
	}
	filter.StartDate = startDate
	filter.EndDate = endDate

	result, appErr := c.SchedulerService.ListInterviews(ctx.Request().Context(), filter, params.NewQueryParams(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Interviews retrieved successfully")
}

// GetInterview handles GET /scheduler/interviews/:id
// @Summary Get interview details
// @Description Returns one interview with its candidate, job and recent scheduling logs
// @Tags Scheduler
// @Security BearerAuth
// @Produce json
// @Param id path string true "Interview ID"
// @Success 200 {object} dto.InterviewDetails
// @Failure 404 {object} errors.AppError
// @Router /private/scheduler/interviews/{id} [get]
func (c *SchedulerController) GetInterview(ctx echo.Context) error {
	interviewID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid interview ID")
	}

	result, appErr := c.SchedulerService.GetInterview(ctx.Request().Context(), interviewID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Interview retrieved successfully")
}

// UpdateInterviewStatus handles PATCH /scheduler/interviews/:id/status
// @Summary Update interview status
// @Description Applies a lifecycle transition such as confirm, complete or cancel
// @Tags Scheduler
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Interview ID"
// @Param request body dto.UpdateInterviewStatusRequest true "New status"
// @Success 200 {object} entity.Interview
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/scheduler/interviews/{id}/status [patch]
func (c *SchedulerController) UpdateInterviewStatus(ctx echo.Context) error {
	interviewID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid interview ID")
	}

	var req dto.UpdateInterviewStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.SchedulerService.UpdateInterviewStatus(ctx.Request().Context(), interviewID, entity.InterviewStatus(req.Status))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Interview status updated successfully")
}

// FindOptimalSlots handles GET /scheduler/optimal-slots
// @Summary Find optimal slots
// @Description Returns ranked candidate time slots without booking anything
// @Tags Scheduler
// @Security BearerAuth
// @Produce json
// @Param candidate_id query string true "Candidate ID"
// @Param job_position_id query string true "Job position ID"
// @Param interview_type query string true "Interview type"
// @Param interviewer_emails query []string true "Interviewer emails"
// @Param duration_minutes query int false "Duration in minutes"
// @Param max_slots query int false "Maximum slots to return"
// @Param earliest_start query string false "Earliest start (RFC3339)"
// @Param latest_end query string false "Latest end (RFC3339)"
// @Success 200 {object} dto.OptimalSlotsResult
// @Failure 400 {object} errors.AppError
// @Router /private/scheduler/optimal-slots [get]
func (c *SchedulerController) FindOptimalSlots(ctx echo.Context) error {
	candidateID, err := uuid.Parse(ctx.QueryParam("candidate_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid candidate ID")
	}
	jobPositionID, err := uuid.Parse(ctx.QueryParam("job_position_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid job position ID")
	}

	emails := collectEmails(ctx.QueryParams()["interviewer_emails"])
	request := entity.NewSchedulingRequest(
		candidateID,
		jobPositionID,
		entity.InterviewType(ctx.QueryParam("interview_type")),
		emails,
	)

	if raw := ctx.QueryParam("duration_minutes"); raw != "" {
		duration, err := strconv.Atoi(raw)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "Invalid duration_minutes")
		}
		request.DurationMinutes = duration
	}
	earliestStart, err := parseTimeParam(ctx, "earliest_start")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid earliest_start, expected RFC3339")
	}
	if earliestStart != nil {
		request.EarliestStart = earliestStart.UTC()
	}
	latestEnd, err := parseTimeParam(ctx, "latest_end")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid latest_end, expected RFC3339")
	}
	if latestEnd != nil {
		request.LatestEnd = latestEnd.UTC()
	}

	maxSlots := defaultMaxSlots
	if raw := ctx.QueryParam("max_slots"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.BadRequest(errors.ErrInvalidInput, "Invalid max_slots")
		}
		maxSlots = parsed
	}
	if maxSlots > maxSlotsCap {
		maxSlots = maxSlotsCap
	}

	result, appErr := c.SchedulerService.FindOptimalSlots(ctx.Request().Context(), request, maxSlots)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Optimal slots retrieved successfully")
}

// CheckConflicts handles POST /scheduler/conflicts/check
// @Summary Check scheduling conflicts
// @Description Reports conflicts for a specific window and participant set
// @Tags Scheduler
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ConflictCheckRequest true "Window and participants"
// @Success 200 {object} dto.ConflictCheckResult
// @Failure 400 {object} errors.AppError
// @Router /private/scheduler/conflicts/check [post]
func (c *SchedulerController) CheckConflicts(ctx echo.Context) error {
	var req dto.ConflictCheckRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.SchedulerService.DetectConflicts(ctx.Request().Context(), req.StartTime, req.EndTime, req.ParticipantEmails)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Conflict check completed")
}

// CreateAvailabilitySlot handles POST /scheduler/availability
// @Summary Create availability slot
// @Description Registers an available or busy window for a participant
// @Tags Scheduler
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AvailabilitySlotRequest true "Availability slot"
// @Success 201 {object} entity.AvailabilitySlot
// @Failure 400 {object} errors.AppError
// @Router /private/scheduler/availability [post]
func (c *SchedulerController) CreateAvailabilitySlot(ctx echo.Context) error {
	var req dto.AvailabilitySlotRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.SchedulerService.CreateAvailabilitySlot(ctx.Request().Context(), req.ToEntity())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return ctx.JSON(http.StatusCreated,
		controller.NewSuccessResponse(http.StatusCreated, result, "Availability slot created successfully"))
}

// GetAvailability handles GET /scheduler/availability/:email
// @Summary Get participant availability
// @Description Returns availability slots, calendar integration and summary for a participant
// @Tags Scheduler
// @Security BearerAuth
// @Produce json
// @Param email path string true "Participant email"
// @Param start_date query string false "Window start (RFC3339)"
// @Param end_date query string false "Window end (RFC3339)"
// @Success 200 {object} dto.AvailabilityView
// @Router /private/scheduler/availability/{email} [get]
func (c *SchedulerController) GetAvailability(ctx echo.Context) error {
	email := ctx.Param("email")
	if email == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Email is required")
	}

	startDate, err := parseTimeParam(ctx, "start_date")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid start_date, expected RFC3339")
	}
	endDate, err := parseTimeParam(ctx, "end_date")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid end_date, expected RFC3339")
	}

	result, appErr := c.SchedulerService.GetAvailability(ctx.Request().Context(), email, startDate, endDate)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Availability retrieved successfully")
}

// GetAvailabilitySummary handles GET /scheduler/availability/:email/summary
// @Summary Get availability summary
// @Description Returns the condensed schedule summary for a participant
// @Tags Scheduler
// @Security BearerAuth
// @Produce json
// @Param email path string true "Participant email"
// @Param start_date query string false "Window start (RFC3339)"
// @Param end_date query string false "Window end (RFC3339)"
// @Success 200 {object} dto.AvailabilitySummary
// @Router /private/scheduler/availability/{email}/summary [get]
func (c *SchedulerController) GetAvailabilitySummary(ctx echo.Context) error {
	email := ctx.Param("email")
	if email == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Email is required")
	}

	startDate, err := parseTimeParam(ctx, "start_date")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid start_date, expected RFC3339")
	}
	endDate, err := parseTimeParam(ctx, "end_date")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid end_date, expected RFC3339")
	}

	start := time.Now()
	if startDate != nil {
		start = *startDate
	}
	end := start.Add(30 * 24 * time.Hour)
	if endDate != nil {
		end = *endDate
	}

	summaries, appErr := c.SchedulerService.GetAvailabilitySummary(ctx.Request().Context(), []string{email}, start, end)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, summaries[email], "Availability summary retrieved successfully")
}

// GetAnalytics handles GET /scheduler/analytics/scheduling
// @Summary Get scheduling analytics
// @Description Aggregates scheduling outcomes and performance over a window
// @Tags Scheduler
// @Security BearerAuth
// @Produce json
// @Param start_date query string false "Window start (RFC3339)"
// @Param end_date query string false "Window end (RFC3339)"
// @Success 200 {object} dto.SchedulingAnalytics
// @Router /private/scheduler/analytics/scheduling [get]
func (c *SchedulerController) GetAnalytics(ctx echo.Context) error {
	startDate, err := parseTimeParam(ctx, "start_date")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid start_date, expected RFC3339")
	}
	endDate, err := parseTimeParam(ctx, "end_date")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid end_date, expected RFC3339")
	}

	result, appErr := c.SchedulerService.Analytics(ctx.Request().Context(), startDate, endDate)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Scheduling analytics retrieved successfully")
}

// parseTimeParam reads an optional RFC3339 query parameter.
func parseTimeParam(ctx echo.Context, name string) (*time.Time, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// collectEmails flattens repeated interviewer_emails parameters, also
// accepting comma-separated values.
func collectEmails(values []string) []string {
	var emails []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				emails = append(emails, trimmed)
			}
		}
	}
	return emails
}
