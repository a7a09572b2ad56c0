package queue

import (
	"context"
	"encoding/json"
	"time"

	"talentsched/core/constants"
	"talentsched/core/logger"

	"github.com/hibiken/asynq"
)

// ReminderPayload is the task body for interview reminder jobs.
type ReminderPayload struct {
	InterviewID       string    `json:"interview_id"`
	Title             string    `json:"title"`
	CandidateEmail    string    `json:"candidate_email"`
	InterviewerEmails []string  `json:"interviewer_emails"`
	ScheduledTime     time.Time `json:"scheduled_time"`
}

type IQueue interface {
	EnqueueReminder(ctx context.Context, payload ReminderPayload, processAt time.Time) error
	Close() error
}

type QueueConfig struct {
	Addr     string
	Password string
	DB       int
}

type Queue struct {
	client *asynq.Client
}

func NewQueue(cfg QueueConfig) *Queue {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Queue{client: client}
}

func (q *Queue) EnqueueReminder(ctx context.Context, payload ReminderPayload, processAt time.Time) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(constants.TaskInterviewReminder, data)
	info, err := q.client.EnqueueContext(ctx, task,
		asynq.ProcessAt(processAt),
		asynq.Queue(constants.QueueReminders),
		asynq.MaxRetry(3),
	)
	if err != nil {
		logger.Error("Queue:EnqueueReminder:Error:", err)
		return err
	}

	logger.Info("Queue:EnqueueReminder",
		"task_id", info.ID,
		"interview_id", payload.InterviewID,
		"process_at", processAt,
	)
	return nil
}

func (q *Queue) Close() error {
	return q.client.Close()
}
