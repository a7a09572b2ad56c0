package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"talentsched/core/database"
	"talentsched/modules/calendar/entity"
)

type CalendarRepositoryInterface interface {
	GetByEmail(ctx context.Context, email string) (*entity.CalendarIntegration, error)
	Create(ctx context.Context, integration *entity.CalendarIntegration) (*entity.CalendarIntegration, error)
	Update(ctx context.Context, integration *entity.CalendarIntegration) error
	SaveTokens(ctx context.Context, email string, accessToken, refreshToken *string, expiresAt *time.Time) error
	TouchSync(ctx context.Context, email string, syncedAt time.Time) error
}

type CalendarRepository struct {
	db database.Database
}

func NewCalendarRepository(db database.Database) *CalendarRepository {
	return &CalendarRepository{db: db}
}

// GetByEmail returns the integration for an email, or nil when none exists.
func (r *CalendarRepository) GetByEmail(ctx context.Context, email string) (*entity.CalendarIntegration, error) {
	var integration entity.CalendarIntegration
	query := `SELECT * FROM calendar_integrations WHERE email = $1`
	err := r.db.GetContext(ctx, &integration, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &integration, nil
}

func (r *CalendarRepository) Create(ctx context.Context, integration *entity.CalendarIntegration) (*entity.CalendarIntegration, error) {
	query := `
		INSERT INTO calendar_integrations (
			email, name, user_type, provider, calendar_id,
			access_token, refresh_token, token_expires_at, integration_status,
			working_hours_start, working_hours_end, working_days, timezone,
			sync_enabled, last_sync_at, connected_at, created_at, updated_at
		) VALUES (
			:email, :name, :user_type, :provider, :calendar_id,
			:access_token, :refresh_token, :token_expires_at, :integration_status,
			:working_hours_start, :working_hours_end, :working_days, :timezone,
			:sync_enabled, :last_sync_at, :connected_at, :created_at, :updated_at
		) RETURNING id`

	rows, err := r.db.NamedQueryContext(ctx, query, integration)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&integration.ID); err != nil {
			return nil, err
		}
	}
	return integration, nil
}

func (r *CalendarRepository) Update(ctx context.Context, integration *entity.CalendarIntegration) error {
	query := `
		UPDATE calendar_integrations
		SET name = :name,
			user_type = :user_type,
			provider = :provider,
			calendar_id = :calendar_id,
			working_hours_start = :working_hours_start,
			working_hours_end = :working_hours_end,
			working_days = :working_days,
			timezone = :timezone,
			sync_enabled = :sync_enabled,
			updated_at = :updated_at
		WHERE email = :email`

	_, err := r.db.NamedExecContext(ctx, query, integration)
	return err
}

// SaveTokens persists refreshed OAuth credentials without touching integration settings.
func (r *CalendarRepository) SaveTokens(ctx context.Context, email string, accessToken, refreshToken *string, expiresAt *time.Time) error {
	query := `
		UPDATE calendar_integrations
		SET access_token = $2, refresh_token = $3, token_expires_at = $4, updated_at = NOW()
		WHERE email = $1`
	return r.db.ExecContext(ctx, query, email, accessToken, refreshToken, expiresAt)
}

func (r *CalendarRepository) TouchSync(ctx context.Context, email string, syncedAt time.Time) error {
	query := `
		UPDATE calendar_integrations
		SET last_sync_at = $2, integration_status = $3, updated_at = NOW()
		WHERE email = $1`
	return r.db.ExecContext(ctx, query, email, syncedAt, entity.IntegrationActive)
}
