package repository

import (
	"context"
	"database/sql"

	"talentsched/core/database"
	"talentsched/core/logger"
	"talentsched/modules/candidate/entity"

	"github.com/google/uuid"
)

type CandidateRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Candidate, error)
}

type CandidateRepository struct {
	db database.Database
}

func NewCandidateRepository(db database.Database) *CandidateRepository {
	return &CandidateRepository{db: db}
}

func (r *CandidateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Candidate, error) {
	var candidate entity.Candidate
	query := `SELECT * FROM candidates WHERE id = $1`
	err := r.db.GetContext(ctx, &candidate, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("CandidateRepository:GetByID:Error:", err)
		return nil, err
	}
	return &candidate, nil
}
