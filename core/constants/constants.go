package constants

import "time"

// Context keys
const (
	ContextTokenData = "token_data"
)

// Token scopes
const (
	ScopeTokenAccess  = "access"
	ScopeTokenRefresh = "refresh"
)

// Timeouts
const (
	DefaultTimeout        = 30 * time.Second
	DefaultRequestTimeout = 10 * time.Second
)

// Database connection pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Redis pub/sub channels for scheduling events
const (
	ChannelInterviewScheduled   = "interview.scheduled"
	ChannelInterviewRescheduled = "interview.rescheduled"
	ChannelInterviewCancelled   = "interview.cancelled"
	ChannelInterviewReminder    = "interview.reminder"
)

// Background task types
const (
	TaskInterviewReminder = "interview:reminder"
)

// Queue names
const (
	QueueDefault   = "default"
	QueueReminders = "reminders"
)
