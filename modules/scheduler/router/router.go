package router

import (
	"talentsched/core/middleware"
	"talentsched/modules/scheduler/controller"

	"github.com/labstack/echo/v4"
)

type SchedulerRouter struct {
	controller *controller.SchedulerController
}

func NewSchedulerRouter(controller *controller.SchedulerController) *SchedulerRouter {
	return &SchedulerRouter{controller: controller}
}

func (r *SchedulerRouter) Register(e *echo.Group, mw *middleware.Middleware) {
	group := e.Group("/scheduler", mw.AuthMiddleware())
	group.POST("/schedule", r.controller.ScheduleInterview)
	group.GET("/interviews", r.controller.ListInterviews)
	group.GET("/interviews/:id", r.controller.GetInterview)
	group.PUT("/interviews/:id/reschedule", r.controller.RescheduleInterview)
	group.PATCH("/interviews/:id/status", r.controller.UpdateInterviewStatus)
	group.GET("/optimal-slots", r.controller.FindOptimalSlots)
	group.POST("/conflicts/check", r.controller.CheckConflicts)
	group.POST("/availability", r.controller.CreateAvailabilitySlot)
	group.GET("/availability/:email", r.controller.GetAvailability)
	group.GET("/availability/:email/summary", r.controller.GetAvailabilitySummary)
	group.GET("/analytics/scheduling", r.controller.GetAnalytics)
}
