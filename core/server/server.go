package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talentsched/core/broker"
	"talentsched/core/config"
	"talentsched/core/database"
	"talentsched/core/logger"
	"talentsched/core/metrics"
	"talentsched/core/middleware"
	"talentsched/core/queue"
	"talentsched/core/storage"
	"talentsched/modules/calendar"
	"talentsched/modules/scheduler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

const shutdownTimeout = 10 * time.Second

// Run wires the full service together and blocks until SIGINT/SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Server.LogLevel)

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	b, err := broker.NewBroker(broker.BrokerConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("connect broker: %w", err)
	}
	defer b.Close()

	queueCfg := queue.QueueConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	q := queue.NewQueue(queueCfg)
	defer q.Close()

	worker := queue.NewWorker(queueCfg, b)
	if err := worker.Start(); err != nil {
		return fmt.Errorf("start queue worker: %w", err)
	}
	defer worker.Shutdown()

	store := storage.NewStorage(storage.StorageConfig{
		Region:    cfg.Storage.Region,
		Bucket:    cfg.Storage.Bucket,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})

	collector := metrics.NewCollector(prometheus.DefaultRegisterer)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":    "healthy",
			"service":   "talentsched",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	mw := middleware.NewMiddleware()
	api := e.Group("/api/v1")
	private := api.Group("/private")

	calendarService := calendar.Init(private, *db, mw)
	scheduler.Init(private, mw, scheduler.Deps{
		DB:          *db,
		Broker:      b,
		Queue:       q,
		Storage:     store,
		Collector:   collector,
		Config:      cfg.Scheduler,
		Directory:   calendarService,
		WrapGateway: calendarService.WrapGateway,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start:Error:", err)
		}
	}()
	logger.Info("Server:Started", "addr", addr, "env", cfg.Server.Env)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server:Shutdown:Begin")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	logger.Info("Server:Shutdown:Done")
	return nil
}
