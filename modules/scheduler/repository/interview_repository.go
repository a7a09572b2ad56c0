package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"talentsched/core/database"
	coreentity "talentsched/core/entity"
	"talentsched/core/logger"
	"talentsched/core/params"
	"talentsched/modules/scheduler/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// InterviewRepositoryInterface defines the interview persistence contract.
type InterviewRepositoryInterface interface {
	Create(ctx context.Context, interview *entity.Interview) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Interview, error)
	List(ctx context.Context, filter InterviewFilter, queryParams params.QueryParams) (*entity.PaginatedInterviews, error)
	ListActiveInWindow(ctx context.Context, windowStart, windowEnd time.Time) ([]entity.Interview, error)
	ListActiveForEmail(ctx context.Context, email string, windowStart, windowEnd time.Time) ([]entity.Interview, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InterviewStatus) error
	MarkRescheduled(ctx context.Context, id uuid.UUID, version int, reason string) (bool, error)
}

// InterviewFilter narrows List results; zero values mean "no filter".
type InterviewFilter struct {
	Status           entity.InterviewStatus
	InterviewerEmail string
	CandidateID      *uuid.UUID
	StartDate        *time.Time
	EndDate          *time.Time
}

// Statuses that occupy calendar time and count as booked.
var activeStatuses = []string{
	string(entity.StatusScheduled),
	string(entity.StatusConfirmed),
}

type InterviewRepository struct {
	db database.Database
}

func NewInterviewRepository(db database.Database) *InterviewRepository {
	return &InterviewRepository{db: db}
}

func (r *InterviewRepository) Create(ctx context.Context, interview *entity.Interview) error {
	query := `
		INSERT INTO interviews (
			candidate_id, job_position_id, title, description, interview_type,
			status, scheduled_start, scheduled_end, duration_minutes, timezone,
			interviewer_emails, interviewer_names, primary_interviewer,
			auto_scheduled, scheduling_preferences, conflicts_detected,
			selection_score, reschedule_count, reschedule_reason,
			original_interview_id, version, created_at, updated_at
		) VALUES (
			:candidate_id, :job_position_id, :title, :description, :interview_type,
			:status, :scheduled_start, :scheduled_end, :duration_minutes, :timezone,
			:interviewer_emails, :interviewer_names, :primary_interviewer,
			:auto_scheduled, :scheduling_preferences, :conflicts_detected,
			:selection_score, :reschedule_count, :reschedule_reason,
			:original_interview_id, :version, :created_at, :updated_at
		)
		RETURNING id
	`
	rows, err := r.db.NamedQueryContext(ctx, query, interview)
	if err != nil {
		logger.Error("InterviewRepository:Create:Error:", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&interview.ID)
	}
	return nil
}

func (r *InterviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Interview, error) {
	var interview entity.Interview
	query := `SELECT * FROM interviews WHERE id = $1`
	err := r.db.GetContext(ctx, &interview, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("InterviewRepository:GetByID:Error:", err)
		return nil, err
	}
	return &interview, nil
}

func (r *InterviewRepository) List(ctx context.Context, filter InterviewFilter, queryParams params.QueryParams) (*entity.PaginatedInterviews, error) {
	where := "WHERE 1=1"
	args := []any{}
	idx := 1

	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, filter.Status)
		idx++
	}
	if filter.InterviewerEmail != "" {
		where += fmt.Sprintf(" AND $%d = ANY(interviewer_emails)", idx)
		args = append(args, filter.InterviewerEmail)
		idx++
	}
	if filter.CandidateID != nil {
		where += fmt.Sprintf(" AND candidate_id = $%d", idx)
		args = append(args, *filter.CandidateID)
		idx++
	}
	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND scheduled_start >= $%d", idx)
		args = append(args, *filter.StartDate)
		idx++
	}
	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND scheduled_start <= $%d", idx)
		args = append(args, *filter.EndDate)
		idx++
	}

	var totalItems int
	err := r.db.GetContext(ctx, &totalItems, "SELECT COUNT(*) FROM interviews "+where, args...)
	if err != nil {
		logger.Error("InterviewRepository:List:Count:Error:", err)
		return nil, err
	}

	offset := (queryParams.PageNumber - 1) * queryParams.PageSize
	query := fmt.Sprintf(
		"SELECT * FROM interviews %s ORDER BY scheduled_start DESC LIMIT $%d OFFSET $%d",
		where, idx, idx+1)
	args = append(args, queryParams.PageSize, offset)

	var interviews []entity.Interview
	err = r.db.SelectContext(ctx, &interviews, query, args...)
	if err != nil {
		logger.Error("InterviewRepository:List:Select:Error:", err)
		return nil, err
	}

	return coreentity.NewPagination(interviews, totalItems, queryParams.PageNumber, queryParams.PageSize), nil
}

// ListActiveInWindow returns scheduled/confirmed interviews overlapping
// [windowStart, windowEnd).
func (r *InterviewRepository) ListActiveInWindow(ctx context.Context, windowStart, windowEnd time.Time) ([]entity.Interview, error) {
	query := `
		SELECT * FROM interviews
		WHERE status = ANY($1)
		  AND scheduled_start < $2
		  AND scheduled_end > $3
		ORDER BY scheduled_start ASC
	`
	var interviews []entity.Interview
	err := r.db.SelectContext(ctx, &interviews, query,
		pq.Array(activeStatuses), windowEnd, windowStart)
	if err != nil {
		logger.Error("InterviewRepository:ListActiveInWindow:Error:", err)
		return nil, err
	}
	return interviews, nil
}

// ListActiveForEmail narrows ListActiveInWindow to one participant.
func (r *InterviewRepository) ListActiveForEmail(ctx context.Context, email string, windowStart, windowEnd time.Time) ([]entity.Interview, error) {
	query := `
		SELECT * FROM interviews
		WHERE status = ANY($1)
		  AND $2 = ANY(interviewer_emails)
		  AND scheduled_start < $3
		  AND scheduled_end > $4
		ORDER BY scheduled_start ASC
	`
	var interviews []entity.Interview
	err := r.db.SelectContext(ctx, &interviews, query,
		pq.Array(activeStatuses), email, windowEnd, windowStart)
	if err != nil {
		logger.Error("InterviewRepository:ListActiveForEmail:Error:", err)
		return nil, err
	}
	return interviews, nil
}

func (r *InterviewRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InterviewStatus) error {
	query := `
		UPDATE interviews
		SET status = $2, version = version + 1, updated_at = NOW()
		WHERE id = $1
	`
	err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		logger.Error("InterviewRepository:UpdateStatus:Error:", err)
		return err
	}
	return nil
}

// MarkRescheduled flips an active interview to rescheduled and bumps the
// reschedule count, guarded by an optimistic version check. Returns false
// when no row matched, meaning the record changed underneath the caller.
func (r *InterviewRepository) MarkRescheduled(ctx context.Context, id uuid.UUID, version int, reason string) (bool, error) {
	query := `
		UPDATE interviews
		SET status = $2,
		    reschedule_count = reschedule_count + 1,
		    reschedule_reason = $3,
		    version = version + 1,
		    updated_at = NOW()
		WHERE id = $1
		  AND version = $4
		  AND status = ANY($5)
	`
	result, err := r.db.SQLx().ExecContext(ctx, query,
		id, entity.StatusRescheduled, reason, version, pq.Array(activeStatuses))
	if err != nil {
		logger.Error("InterviewRepository:MarkRescheduled:Error:", err)
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.Error("InterviewRepository:MarkRescheduled:RowsAffected:Error:", err)
		return false, err
	}
	return affected > 0, nil
}
