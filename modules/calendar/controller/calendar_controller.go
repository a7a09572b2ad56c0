package controller

import (
	"net/http"

	"talentsched/core/controller"
	"talentsched/core/errors"
	"talentsched/modules/calendar/dto"
	"talentsched/modules/calendar/service"

	"github.com/labstack/echo/v4"
)

// CalendarController handles calendar integration HTTP requests
type CalendarController struct {
	controller.BaseController
	CalendarService service.CalendarServiceInterface
}

// NewCalendarController creates a new controller
func NewCalendarController(svc service.CalendarServiceInterface) *CalendarController {
	return &CalendarController{
		BaseController:  controller.NewBaseController(),
		CalendarService: svc,
	}
}

// SetupIntegration handles POST /calendar/integrations
// @Summary Set up a calendar integration
// @Description Creates the integration for an email, or updates it when one already exists
// @Tags Calendar
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CalendarIntegrationRequest true "Integration settings"
// @Success 200 {object} dto.CalendarIntegrationResult
// @Success 201 {object} dto.CalendarIntegrationResult
// @Failure 400 {object} errors.AppError
// @Router /private/calendar/integrations [post]
func (c *CalendarController) SetupIntegration(ctx echo.Context) error {
	var req dto.CalendarIntegrationRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.CalendarService.SetupIntegration(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	status := http.StatusOK
	message := "Calendar integration updated successfully"
	if result.Created {
		status = http.StatusCreated
		message = "Calendar integration created successfully"
	}
	return ctx.JSON(status, controller.NewSuccessResponse(status, result, message))
}

// GetIntegration handles GET /calendar/integrations/:email
// @Summary Get a calendar integration
// @Description Returns the stored integration settings for an email
// @Tags Calendar
// @Security BearerAuth
// @Produce json
// @Param email path string true "Participant email"
// @Success 200 {object} entity.CalendarIntegration
// @Failure 404 {object} errors.AppError
// @Router /private/calendar/integrations/{email} [get]
func (c *CalendarController) GetIntegration(ctx echo.Context) error {
	email := ctx.Param("email")
	if email == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Email is required")
	}

	integration, appErr := c.CalendarService.GetIntegration(ctx.Request().Context(), email)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return ctx.JSON(http.StatusOK,
		controller.NewSuccessResponse(http.StatusOK, integration, "Calendar integration retrieved successfully"))
}
