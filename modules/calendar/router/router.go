package router

import (
	"talentsched/core/middleware"
	"talentsched/modules/calendar/controller"

	"github.com/labstack/echo/v4"
)

type CalendarRouter struct {
	controller *controller.CalendarController
}

func NewCalendarRouter(controller *controller.CalendarController) *CalendarRouter {
	return &CalendarRouter{controller: controller}
}

func (r *CalendarRouter) Register(e *echo.Group, mw *middleware.Middleware) {
	group := e.Group("/calendar", mw.AuthMiddleware())
	group.POST("/integrations", r.controller.SetupIntegration)
	group.GET("/integrations/:email", r.controller.GetIntegration)
}
