package entity

import (
	"time"

	"talentsched/core/entity"
)

type AvailabilityType string

const (
	AvailabilityBusy      AvailabilityType = "busy"
	AvailabilityAvailable AvailabilityType = "available"
)

func (t AvailabilityType) Valid() bool {
	return t == AvailabilityBusy || t == AvailabilityAvailable
}

// AvailabilitySlot is an explicit busy/available marker for a participant.
// Busy slots feed conflict detection; the recurrence flag is stored and
// echoed but not expanded here (expansion belongs to the sync layer).
type AvailabilitySlot struct {
	Email             string           `db:"email" json:"email"`
	UserType          string           `db:"user_type" json:"user_type"`
	StartTime         time.Time        `db:"start_time" json:"start_time"`
	EndTime           time.Time        `db:"end_time" json:"end_time"`
	Timezone          string           `db:"timezone" json:"timezone"`
	AvailabilityType  AvailabilityType `db:"availability_type" json:"availability_type"`
	Recurring         bool             `db:"recurring" json:"recurring"`
	RecurrencePattern JSONB            `db:"recurrence_pattern" json:"recurrence_pattern,omitempty"`
	Notes             *string          `db:"notes" json:"notes,omitempty"`
	Priority          int              `db:"priority" json:"priority"`
	Source            string           `db:"source" json:"source"`
	entity.BaseEntity
}
