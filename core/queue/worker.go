package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"talentsched/core/broker"
	"talentsched/core/constants"
	"talentsched/core/logger"

	"github.com/hibiken/asynq"
)

// Worker consumes queued reminder tasks and republishes them as
// interview_reminder events for the communication layer.
type Worker struct {
	server *asynq.Server
	broker broker.IBroker
}

func NewWorker(cfg QueueConfig, b broker.IBroker) *Worker {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		},
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				constants.QueueReminders: 2,
				constants.QueueDefault:   1,
			},
		},
	)
	return &Worker{server: srv, broker: b}
}

func (w *Worker) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(constants.TaskInterviewReminder, w.handleReminder)
	return w.server.Start(mux)
}

func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

func (w *Worker) handleReminder(ctx context.Context, task *asynq.Task) error {
	var payload ReminderPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal reminder payload: %w", err)
	}

	logger.Info("Queue:HandleReminder",
		"interview_id", payload.InterviewID,
		"scheduled_time", payload.ScheduledTime,
	)
	return w.broker.Publish(ctx, constants.ChannelInterviewReminder, payload)
}
