package scheduler

import (
	"talentsched/core/broker"
	"talentsched/core/config"
	"talentsched/core/database"
	"talentsched/core/metrics"
	"talentsched/core/middleware"
	"talentsched/core/queue"
	"talentsched/core/storage"
	candidaterepo "talentsched/modules/candidate/repository"
	jobrepo "talentsched/modules/job/repository"
	"talentsched/modules/scheduler/controller"
	"talentsched/modules/scheduler/repository"
	"talentsched/modules/scheduler/router"
	"talentsched/modules/scheduler/service"

	"github.com/labstack/echo/v4"
)

// Deps bundles the shared infrastructure the scheduler module builds on.
type Deps struct {
	DB        database.Database
	Broker    broker.IBroker
	Queue     queue.IQueue
	Storage   storage.IStorage
	Collector *metrics.Collector
	Config    config.SchedulerConfig

	// Directory resolves calendar integrations; WrapGateway lets the
	// calendar module layer live calendar lookups over the store gateway.
	Directory   service.CalendarDirectory
	WrapGateway func(service.AvailabilityGateway) service.AvailabilityGateway
}

func Init(e *echo.Group, mw *middleware.Middleware, deps Deps) *service.SchedulerService {
	interviews := repository.NewInterviewRepository(deps.DB)
	availability := repository.NewAvailabilityRepository(deps.DB)
	logs := repository.NewSchedulingLogRepository(deps.DB)
	candidates := candidaterepo.NewCandidateRepository(deps.DB)
	jobs := jobrepo.NewJobRepository(deps.DB)

	gateway := service.NewStoreGateway(interviews, availability)
	if deps.WrapGateway != nil {
		gateway = deps.WrapGateway(gateway)
	}
	notifier := service.NewNotifier(deps.Broker, deps.Queue, deps.Storage, deps.Config)

	svc := service.NewSchedulerService(service.ServiceDeps{
		Interviews:   interviews,
		Availability: availability,
		Logs:         logs,
		Candidates:   candidates,
		Jobs:         jobs,
		Gateway:      gateway,
		Directory:    deps.Directory,
		Notifier:     notifier,
		Collector:    deps.Collector,
		Config:       deps.Config,
	})
	ctrl := controller.NewSchedulerController(svc)

	router.NewSchedulerRouter(ctrl).Register(e, mw)

	return svc
}
