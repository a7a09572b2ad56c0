package dto

import (
	"time"

	"github.com/lib/pq"

	"talentsched/modules/calendar/entity"
)

// CalendarIntegrationRequest configures calendar sync settings for a participant.
type CalendarIntegrationRequest struct {
	Email             string   `json:"email"`
	Name              string   `json:"name"`
	UserType          string   `json:"user_type"`
	Provider          string   `json:"provider"`
	CalendarID        *string  `json:"calendar_id,omitempty"`
	WorkingHoursStart string   `json:"working_hours_start"`
	WorkingHoursEnd   string   `json:"working_hours_end"`
	WorkingDays       []string `json:"working_days"`
	Timezone          string   `json:"timezone"`
	SyncEnabled       *bool    `json:"sync_enabled"`
}

// ToEntity applies defaults for omitted settings.
func (r *CalendarIntegrationRequest) ToEntity() *entity.CalendarIntegration {
	now := time.Now().UTC()
	integration := &entity.CalendarIntegration{
		Email:             r.Email,
		Name:              r.Name,
		UserType:          r.UserType,
		Provider:          r.Provider,
		CalendarID:        r.CalendarID,
		WorkingHoursStart: "09:00",
		WorkingHoursEnd:   "17:00",
		WorkingDays:       pq.StringArray{"monday", "tuesday", "wednesday", "thursday", "friday"},
		Timezone:          "UTC",
		SyncEnabled:       true,
		IntegrationStatus: entity.IntegrationPending,
	}
	integration.CreatedAt = now
	integration.UpdatedAt = now

	if r.WorkingHoursStart != "" {
		integration.WorkingHoursStart = r.WorkingHoursStart
	}
	if r.WorkingHoursEnd != "" {
		integration.WorkingHoursEnd = r.WorkingHoursEnd
	}
	if len(r.WorkingDays) > 0 {
		integration.WorkingDays = pq.StringArray(r.WorkingDays)
	}
	if r.Timezone != "" {
		integration.Timezone = r.Timezone
	}
	if r.SyncEnabled != nil {
		integration.SyncEnabled = *r.SyncEnabled
	}
	return integration
}

// CalendarIntegrationResult wraps the stored integration for API responses.
type CalendarIntegrationResult struct {
	CalendarIntegration *entity.CalendarIntegration `json:"calendar_integration"`
	Created             bool                        `json:"-"`
}
