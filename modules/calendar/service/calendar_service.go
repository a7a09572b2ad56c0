package service

import (
	"context"
	"time"

	"talentsched/core/config"
	"talentsched/core/errors"
	"talentsched/core/logger"
	"talentsched/modules/calendar/dto"
	"talentsched/modules/calendar/entity"
	"talentsched/modules/calendar/repository"
	schedulerservice "talentsched/modules/scheduler/service"
)

type CalendarServiceInterface interface {
	SetupIntegration(ctx context.Context, request *dto.CalendarIntegrationRequest) (*dto.CalendarIntegrationResult, *errors.AppError)
	GetIntegration(ctx context.Context, email string) (*entity.CalendarIntegration, *errors.AppError)
}

// CalendarService manages per-participant calendar integrations. It also
// implements the scheduler's CalendarDirectory, and can decorate the
// availability gateway with Google freebusy data.
type CalendarService struct {
	repo repository.CalendarRepositoryInterface
	now  func() time.Time
}

func NewCalendarService(repo repository.CalendarRepositoryInterface) *CalendarService {
	return &CalendarService{repo: repo, now: time.Now}
}

// SetupIntegration creates or updates the integration for request.Email.
// Omitted settings fall back to their defaults on update as well, so a
// sparse payload resets working hours rather than leaving them as-is.
func (s *CalendarService) SetupIntegration(ctx context.Context, request *dto.CalendarIntegrationRequest) (*dto.CalendarIntegrationResult, *errors.AppError) {
	var violations []string
	if request.Email == "" {
		violations = append(violations, "Email is required")
	}
	if request.Name == "" {
		violations = append(violations, "Name is required")
	}
	if request.UserType == "" {
		violations = append(violations, "User type is required")
	}
	if request.Provider == "" {
		violations = append(violations, "Provider is required")
	}
	if len(violations) > 0 {
		return nil, errors.NewAppError(errors.ErrValidationFailed, "Calendar integration validation failed", nil).
			WithDetails(violations)
	}

	existing, err := s.repo.GetByEmail(ctx, request.Email)
	if err != nil {
		logger.Error("CalendarService:SetupIntegration:GetByEmail:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load calendar integration", err)
	}

	if existing != nil {
		defaults := request.ToEntity()
		existing.Name = defaults.Name
		existing.UserType = defaults.UserType
		existing.Provider = defaults.Provider
		existing.WorkingHoursStart = defaults.WorkingHoursStart
		existing.WorkingHoursEnd = defaults.WorkingHoursEnd
		existing.WorkingDays = defaults.WorkingDays
		existing.Timezone = defaults.Timezone
		existing.SyncEnabled = defaults.SyncEnabled
		if request.CalendarID != nil {
			existing.CalendarID = request.CalendarID
		}
		existing.UpdatedAt = s.now().UTC()

		if err := s.repo.Update(ctx, existing); err != nil {
			logger.Error("CalendarService:SetupIntegration:Update:Error:", err)
			return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to update calendar integration", err)
		}
		return &dto.CalendarIntegrationResult{CalendarIntegration: existing}, nil
	}

	integration := request.ToEntity()
	connectedAt := s.now().UTC()
	integration.ConnectedAt = &connectedAt
	integration.IntegrationStatus = entity.IntegrationActive

	created, err := s.repo.Create(ctx, integration)
	if err != nil {
		logger.Error("CalendarService:SetupIntegration:Create:Error:", err)
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create calendar integration", err)
	}
	return &dto.CalendarIntegrationResult{CalendarIntegration: created, Created: true}, nil
}

func (s *CalendarService) GetIntegration(ctx context.Context, email string) (*entity.CalendarIntegration, *errors.AppError) {
	integration, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		logger.Error("CalendarService:GetIntegration:GetByEmail:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load calendar integration", err)
	}
	if integration == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Calendar integration not found", nil)
	}
	return integration, nil
}

// Profile implements the scheduler's CalendarDirectory. Returns (nil, nil)
// when the email has no integration.
func (s *CalendarService) Profile(ctx context.Context, email string) (*schedulerservice.CalendarProfile, error) {
	integration, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if integration == nil {
		return nil, nil
	}
	return &schedulerservice.CalendarProfile{
		Email:             integration.Email,
		Name:              integration.Name,
		Provider:          integration.Provider,
		IntegrationStatus: integration.IntegrationStatus,
		WorkingHoursStart: integration.WorkingHoursStart,
		WorkingHoursEnd:   integration.WorkingHoursEnd,
		WorkingDays:       []string(integration.WorkingDays),
		Timezone:          integration.Timezone,
		SyncEnabled:       integration.SyncEnabled,
		LastSyncAt:        integration.LastSyncAt,
	}, nil
}

// WrapGateway layers Google freebusy data over the store gateway when the
// deployment is configured for it. With the "store" gateway the inner
// gateway is returned untouched.
func (s *CalendarService) WrapGateway(inner schedulerservice.AvailabilityGateway) schedulerservice.AvailabilityGateway {
	cfg, ok := config.GetSafe()
	if !ok || cfg.Scheduler.CalendarGateway != "google" {
		return inner
	}
	return newGoogleGateway(inner, s.repo)
}
