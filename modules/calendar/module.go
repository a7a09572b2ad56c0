package calendar

import (
	"talentsched/core/database"
	"talentsched/core/middleware"
	"talentsched/modules/calendar/controller"
	"talentsched/modules/calendar/repository"
	"talentsched/modules/calendar/router"
	"talentsched/modules/calendar/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Group, db database.Database, mw *middleware.Middleware) *service.CalendarService {
	repo := repository.NewCalendarRepository(db)
	svc := service.NewCalendarService(repo)
	ctrl := controller.NewCalendarController(svc)

	router.NewCalendarRouter(ctrl).Register(e, mw)

	return svc
}
