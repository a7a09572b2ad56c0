package repository

import (
	"context"
	"time"

	"talentsched/core/database"
	"talentsched/core/logger"
	"talentsched/modules/scheduler/entity"

	"github.com/jmoiron/sqlx"
)

type AvailabilityRepositoryInterface interface {
	Create(ctx context.Context, slot *entity.AvailabilitySlot) error
	ListByEmail(ctx context.Context, email string, from, to time.Time) ([]entity.AvailabilitySlot, error)
	ListOverlappingForEmails(ctx context.Context, emails []string, windowStart, windowEnd time.Time) ([]entity.AvailabilitySlot, error)
}

type AvailabilityRepository struct {
	db database.Database
}

func NewAvailabilityRepository(db database.Database) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) Create(ctx context.Context, slot *entity.AvailabilitySlot) error {
	query := `
		INSERT INTO availability_slots (
			email, user_type, start_time, end_time, timezone, availability_type,
			recurring, recurrence_pattern, notes, priority, source,
			created_at, updated_at
		) VALUES (
			:email, :user_type, :start_time, :end_time, :timezone, :availability_type,
			:recurring, :recurrence_pattern, :notes, :priority, :source,
			:created_at, :updated_at
		)
		RETURNING id
	`
	rows, err := r.db.NamedQueryContext(ctx, query, slot)
	if err != nil {
		logger.Error("AvailabilityRepository:Create:Error:", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&slot.ID)
	}
	return nil
}

func (r *AvailabilityRepository) ListByEmail(ctx context.Context, email string, from, to time.Time) ([]entity.AvailabilitySlot, error) {
	query := `
		SELECT * FROM availability_slots
		WHERE email = $1 AND start_time >= $2 AND start_time <= $3
		ORDER BY start_time ASC
	`
	var slots []entity.AvailabilitySlot
	err := r.db.SelectContext(ctx, &slots, query, email, from, to)
	if err != nil {
		logger.Error("AvailabilityRepository:ListByEmail:Error:", err)
		return nil, err
	}
	return slots, nil
}

// ListOverlappingForEmails returns every slot that intersects the window,
// including slots that started before it.
func (r *AvailabilityRepository) ListOverlappingForEmails(ctx context.Context, emails []string, windowStart, windowEnd time.Time) ([]entity.AvailabilitySlot, error) {
	if len(emails) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT * FROM availability_slots
		WHERE email IN (?) AND start_time < ? AND end_time > ?
		ORDER BY start_time ASC
	`, emails, windowEnd, windowStart)
	if err != nil {
		return nil, err
	}

	query = r.db.SQLx().Rebind(query)
	var slots []entity.AvailabilitySlot
	err = r.db.SelectContext(ctx, &slots, query, args...)
	if err != nil {
		logger.Error("AvailabilityRepository:ListOverlappingForEmails:Error:", err)
		return nil, err
	}
	return slots, nil
}
