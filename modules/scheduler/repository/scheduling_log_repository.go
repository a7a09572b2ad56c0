package repository

import (
	"context"
	"time"

	"talentsched/core/database"
	"talentsched/core/logger"
	"talentsched/modules/scheduler/entity"

	"github.com/google/uuid"
)

type SchedulingLogRepositoryInterface interface {
	Append(ctx context.Context, log *entity.SchedulingLog) error
	ListByInterview(ctx context.Context, interviewID uuid.UUID, limit int) ([]entity.SchedulingLog, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]entity.SchedulingLog, error)
}

type SchedulingLogRepository struct {
	db database.Database
}

func NewSchedulingLogRepository(db database.Database) *SchedulingLogRepository {
	return &SchedulingLogRepository{db: db}
}

func (r *SchedulingLogRepository) Append(ctx context.Context, log *entity.SchedulingLog) error {
	query := `
		INSERT INTO scheduling_logs (
			interview_id, request_id, action_type, action_status, algorithm_used,
			conflicts_found, alternatives_considered, decision_factors,
			processing_time_ms, slots_evaluated, success_score, error_message,
			created_at, updated_at
		) VALUES (
			:interview_id, :request_id, :action_type, :action_status, :algorithm_used,
			:conflicts_found, :alternatives_considered, :decision_factors,
			:processing_time_ms, :slots_evaluated, :success_score, :error_message,
			:created_at, :updated_at
		)
		RETURNING id
	`
	rows, err := r.db.NamedQueryContext(ctx, query, log)
	if err != nil {
		logger.Error("SchedulingLogRepository:Append:Error:", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&log.ID)
	}
	return nil
}

func (r *SchedulingLogRepository) ListByInterview(ctx context.Context, interviewID uuid.UUID, limit int) ([]entity.SchedulingLog, error) {
	query := `
		SELECT * FROM scheduling_logs
		WHERE interview_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	var logs []entity.SchedulingLog
	err := r.db.SelectContext(ctx, &logs, query, interviewID, limit)
	if err != nil {
		logger.Error("SchedulingLogRepository:ListByInterview:Error:", err)
		return nil, err
	}
	return logs, nil
}

func (r *SchedulingLogRepository) ListBetween(ctx context.Context, from, to time.Time) ([]entity.SchedulingLog, error) {
	query := `
		SELECT * FROM scheduling_logs
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY created_at ASC
	`
	var logs []entity.SchedulingLog
	err := r.db.SelectContext(ctx, &logs, query, from, to)
	if err != nil {
		logger.Error("SchedulingLogRepository:ListBetween:Error:", err)
		return nil, err
	}
	return logs, nil
}
