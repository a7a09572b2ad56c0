package entity

import (
	"time"

	"talentsched/core/entity"

	"github.com/lib/pq"
)

// Integration statuses
const (
	IntegrationActive  = "active"
	IntegrationPending = "pending"
	IntegrationError   = "error"
)

// CalendarIntegration stores a participant's calendar link and working
// preferences. Tokens never leave the server.
type CalendarIntegration struct {
	Email             string         `db:"email" json:"email"`
	Name              string         `db:"name" json:"name"`
	UserType          string         `db:"user_type" json:"user_type"`
	Provider          string         `db:"provider" json:"provider"`
	CalendarID        *string        `db:"calendar_id" json:"calendar_id,omitempty"`
	AccessToken       *string        `db:"access_token" json:"-"`
	RefreshToken      *string        `db:"refresh_token" json:"-"`
	TokenExpiresAt    *time.Time     `db:"token_expires_at" json:"-"`
	IntegrationStatus string         `db:"integration_status" json:"integration_status"`
	WorkingHoursStart string         `db:"working_hours_start" json:"working_hours_start"`
	WorkingHoursEnd   string         `db:"working_hours_end" json:"working_hours_end"`
	WorkingDays       pq.StringArray `db:"working_days" json:"working_days"`
	Timezone          string         `db:"timezone" json:"timezone"`
	SyncEnabled       bool           `db:"sync_enabled" json:"sync_enabled"`
	LastSyncAt        *time.Time     `db:"last_sync_at" json:"last_sync_at,omitempty"`
	ConnectedAt       *time.Time     `db:"connected_at" json:"connected_at,omitempty"`
	entity.BaseEntity
}
