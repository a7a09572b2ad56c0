package service

import (
	"time"

	"talentsched/core/config"
	"talentsched/modules/scheduler/entity"
)

// SlotGenerator enumerates candidate interview windows across a search
// range at a fixed step, constrained to working hours on weekdays.
type SlotGenerator struct {
	workDayStart int
	workDayEnd   int
	stepMinutes  int
}

func NewSlotGenerator(cfg config.SchedulerConfig) *SlotGenerator {
	return &SlotGenerator{
		workDayStart: cfg.WorkDayStartHour,
		workDayEnd:   cfg.WorkDayEndHour,
		stepMinutes:  cfg.SlotStepMinutes,
	}
}

// Generate walks from earliestStart to latestEnd in fixed steps and
// returns a slot for every working-hours start whose end still fits the
// range. The walk stops at the first slot that would run past latestEnd.
func (g *SlotGenerator) Generate(earliestStart, latestEnd time.Time, durationMinutes int) []*entity.TimeSlot {
	step := time.Duration(g.stepMinutes) * time.Minute
	duration := time.Duration(durationMinutes) * time.Minute

	var slots []*entity.TimeSlot
	for current := earliestStart; current.Before(latestEnd); current = current.Add(step) {
		if !g.isWorkingTime(current) {
			continue
		}
		end := current.Add(duration)
		if end.After(latestEnd) {
			break
		}
		slots = append(slots, entity.NewTimeSlot(current, end))
	}
	return slots
}

// isWorkingTime checks the start instant only. A start exactly on the
// closing hour is allowed.
func (g *SlotGenerator) isWorkingTime(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	secs := t.Hour()*3600 + t.Minute()*60 + t.Second()
	return secs >= g.workDayStart*3600 && secs <= g.workDayEnd*3600
}
