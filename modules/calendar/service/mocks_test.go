package service

import (
	"context"
	"time"

	"talentsched/modules/calendar/entity"
	schedulerservice "talentsched/modules/scheduler/service"
)

type MockCalendarRepository struct {
	GetByEmailFunc func(ctx context.Context, email string) (*entity.CalendarIntegration, error)
	CreateFunc     func(ctx context.Context, integration *entity.CalendarIntegration) (*entity.CalendarIntegration, error)
	UpdateFunc     func(ctx context.Context, integration *entity.CalendarIntegration) error
	SaveTokensFunc func(ctx context.Context, email string, accessToken, refreshToken *string, expiresAt *time.Time) error
	TouchSyncFunc  func(ctx context.Context, email string, syncedAt time.Time) error
}

func (m *MockCalendarRepository) GetByEmail(ctx context.Context, email string) (*entity.CalendarIntegration, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockCalendarRepository) Create(ctx context.Context, integration *entity.CalendarIntegration) (*entity.CalendarIntegration, error) {
	return m.CreateFunc(ctx, integration)
}

func (m *MockCalendarRepository) Update(ctx context.Context, integration *entity.CalendarIntegration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, integration)
	}
	return nil
}

func (m *MockCalendarRepository) SaveTokens(ctx context.Context, email string, accessToken, refreshToken *string, expiresAt *time.Time) error {
	if m.SaveTokensFunc != nil {
		return m.SaveTokensFunc(ctx, email, accessToken, refreshToken, expiresAt)
	}
	return nil
}

func (m *MockCalendarRepository) TouchSync(ctx context.Context, email string, syncedAt time.Time) error {
	if m.TouchSyncFunc != nil {
		return m.TouchSyncFunc(ctx, email, syncedAt)
	}
	return nil
}

type MockAvailabilityGateway struct {
	GatherFunc func(ctx context.Context, emails []string, windowStart, windowEnd time.Time) (*schedulerservice.AvailabilityData, error)
}

func (m *MockAvailabilityGateway) Gather(ctx context.Context, emails []string, windowStart, windowEnd time.Time) (*schedulerservice.AvailabilityData, error) {
	if m.GatherFunc != nil {
		return m.GatherFunc(ctx, emails, windowStart, windowEnd)
	}
	return &schedulerservice.AvailabilityData{}, nil
}
