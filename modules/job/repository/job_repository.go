package repository

import (
	"context"
	"database/sql"

	"talentsched/core/database"
	"talentsched/core/logger"
	"talentsched/modules/job/entity"

	"github.com/google/uuid"
)

type JobRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.JobPosition, error)
}

type JobRepository struct {
	db database.Database
}

func NewJobRepository(db database.Database) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.JobPosition, error) {
	var job entity.JobPosition
	query := `SELECT * FROM job_positions WHERE id = $1`
	err := r.db.GetContext(ctx, &job, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("JobRepository:GetByID:Error:", err)
		return nil, err
	}
	return &job, nil
}
