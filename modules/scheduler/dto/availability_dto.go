package dto

import (
	"time"

	"talentsched/modules/scheduler/entity"
)

// AvailabilitySlotRequest is the payload for registering an availability
// or busy marker.
type AvailabilitySlotRequest struct {
	Email             string                 `json:"email"`
	UserType          string                 `json:"user_type"`
	StartTime         time.Time              `json:"start_time"`
	EndTime           time.Time              `json:"end_time"`
	AvailabilityType  string                 `json:"availability_type"`
	Timezone          string                 `json:"timezone"`
	Recurring         bool                   `json:"recurring"`
	RecurrencePattern map[string]interface{} `json:"recurrence_pattern"`
	Notes             *string                `json:"notes"`
	Priority          int                    `json:"priority"`
}

// ToEntity converts the payload into a slot entity. Slots created through
// the API are always tagged as manual.
func (r *AvailabilitySlotRequest) ToEntity() *entity.AvailabilitySlot {
	timezone := r.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	return &entity.AvailabilitySlot{
		Email:             r.Email,
		UserType:          r.UserType,
		StartTime:         r.StartTime.UTC(),
		EndTime:           r.EndTime.UTC(),
		Timezone:          timezone,
		AvailabilityType:  entity.AvailabilityType(r.AvailabilityType),
		Recurring:         r.Recurring,
		RecurrencePattern: entity.JSONB(r.RecurrencePattern),
		Notes:             r.Notes,
		Priority:          r.Priority,
		Source:            "manual",
	}
}

// WorkingHours describes a participant's working window.
type WorkingHours struct {
	Start string   `json:"start"`
	End   string   `json:"end"`
	Days  []string `json:"days"`
}

// AvailabilitySummary condenses a participant's schedule over a window.
type AvailabilitySummary struct {
	HasCalendarIntegration bool         `json:"has_calendar_integration"`
	IntegrationStatus      string       `json:"integration_status"`
	TotalInterviews        int          `json:"total_interviews"`
	BusySlots              int          `json:"busy_slots"`
	AvailableSlots         int          `json:"available_slots"`
	WorkingHours           WorkingHours `json:"working_hours"`
	LastSync               *time.Time   `json:"last_sync"`
}

// CalendarIntegrationView is the participant-facing view of a calendar
// integration record.
type CalendarIntegrationView struct {
	Email             string       `json:"email"`
	Name              string       `json:"name"`
	Provider          string       `json:"provider"`
	IntegrationStatus string       `json:"integration_status"`
	WorkingHours      WorkingHours `json:"working_hours"`
	Timezone          string       `json:"timezone"`
	SyncEnabled       bool         `json:"sync_enabled"`
	LastSyncAt        *time.Time   `json:"last_sync_at"`
}

// AvailabilityView is the response for a participant availability lookup.
type AvailabilityView struct {
	Email               string                    `json:"email"`
	AvailabilitySlots   []entity.AvailabilitySlot `json:"availability_slots"`
	CalendarIntegration *CalendarIntegrationView  `json:"calendar_integration"`
	Summary             AvailabilitySummary       `json:"summary"`
	DateRange           DateRange                 `json:"date_range"`
}
