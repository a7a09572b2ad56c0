package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)

	assert.Equal(t, 9, cfg.Scheduler.WorkDayStartHour)
	assert.Equal(t, 17, cfg.Scheduler.WorkDayEndHour)
	assert.Equal(t, 30, cfg.Scheduler.SlotStepMinutes)
	assert.Equal(t, 60, cfg.Scheduler.DefaultDurationMinutes)
	assert.Equal(t, "store", cfg.Scheduler.CalendarGateway)
	assert.Equal(t, 3, cfg.Scheduler.MaxReschedules)
	assert.Equal(t, 10*time.Second, cfg.Scheduler.GatherTimeout())
	assert.Equal(t, 24*time.Hour, cfg.Scheduler.ReminderLead())

	weights := cfg.Scheduler.TimeWeight +
		cfg.Scheduler.AvailabilityWeight +
		cfg.Scheduler.WorkloadWeight +
		cfg.Scheduler.CandidateWeight +
		cfg.Scheduler.UrgencyWeight
	assert.InDelta(t, 1.0, weights, 1e-9)
}

func TestLoadHonorsEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9091")
	t.Setenv("SCHEDULER_WORK_DAY_START_HOUR", "8")
	t.Setenv("SCHEDULER_CALENDAR_GATEWAY", "google")
	t.Setenv("SCHEDULER_MAX_RESCHEDULES", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9091, cfg.Server.Port)
	assert.Equal(t, 8, cfg.Scheduler.WorkDayStartHour)
	assert.Equal(t, "google", cfg.Scheduler.CalendarGateway)
	assert.Equal(t, 5, cfg.Scheduler.MaxReschedules)

	got, ok := GetSafe()
	require.True(t, ok)
	assert.Same(t, cfg, got)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad server port", key: "SERVER_PORT", value: "-1"},
		{name: "inverted work day", key: "SCHEDULER_WORK_DAY_START_HOUR", value: "18"},
		{name: "zero slot step", key: "SCHEDULER_SLOT_STEP_MINUTES", value: "0"},
		{name: "unknown calendar gateway", key: "SCHEDULER_CALENDAR_GATEWAY", value: "exchange"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
		})
	}
}
