package service

import (
	"testing"
	"time"

	"talentsched/modules/scheduler/entity"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	base := wedAt(10, 0)

	tests := []struct {
		name     string
		start2   time.Time
		end2     time.Time
		expected bool
	}{
		{"partial overlap", wedAt(10, 30), wedAt(11, 30), true},
		{"touching end does not overlap", wedAt(11, 0), wedAt(12, 0), false},
		{"touching start does not overlap", wedAt(9, 0), wedAt(10, 0), false},
		{"contained", wedAt(10, 15), wedAt(10, 45), true},
		{"identical", wedAt(10, 0), wedAt(11, 0), true},
		{"surrounding", wedAt(9, 0), wedAt(12, 0), true},
		{"disjoint", wedAt(13, 0), wedAt(14, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(base, wedAt(11, 0), tt.start2, tt.end2))
		})
	}
}

func TestCheckReportsBookingsAndBusyMarkers(t *testing.T) {
	detector := NewConflictDetector()
	note := "Focus block"
	data := &AvailabilityData{
		Bookings: []entity.Interview{{
			Title:             "System Design Review",
			ScheduledStart:    wedAt(10, 0),
			ScheduledEnd:      wedAt(11, 0),
			InterviewerEmails: pq.StringArray{"blake.lee@example.com"},
			Status:            entity.StatusScheduled,
		}},
		BusySlots: []entity.AvailabilitySlot{{
			Email:            "casey.kim@example.com",
			AvailabilityType: entity.AvailabilityBusy,
			StartTime:        wedAt(14, 0),
			EndTime:          wedAt(16, 0),
			Notes:            &note,
		}},
	}
	emails := []string{"alex.morgan@example.com", "blake.lee@example.com", "casey.kim@example.com"}

	conflicts := detector.Check(wedAt(10, 30), wedAt(11, 30), emails, data)

	require.Len(t, conflicts, 1)
	require.Len(t, conflicts["blake.lee@example.com"], 1)
	assert.Equal(t, "Existing interview: System Design Review (10:00-11:00)", conflicts["blake.lee@example.com"][0])

	conflicts = detector.Check(wedAt(15, 0), wedAt(15, 30), emails, data)

	require.Len(t, conflicts, 1)
	require.Len(t, conflicts["casey.kim@example.com"], 1)
	assert.Equal(t, "Busy: Focus block (14:00-16:00)", conflicts["casey.kim@example.com"][0])
}

func TestCheckIgnoresAvailableMarkers(t *testing.T) {
	detector := NewConflictDetector()
	data := &AvailabilityData{
		BusySlots: []entity.AvailabilitySlot{{
			Email:            "alex.morgan@example.com",
			AvailabilityType: entity.AvailabilityAvailable,
			StartTime:        wedAt(9, 0),
			EndTime:          wedAt(17, 0),
		}},
	}

	conflicts := detector.Check(wedAt(10, 0), wedAt(11, 0), []string{"alex.morgan@example.com"}, data)

	assert.Empty(t, conflicts)
}

func TestCheckDefaultsBusyNote(t *testing.T) {
	detector := NewConflictDetector()
	data := &AvailabilityData{
		BusySlots: []entity.AvailabilitySlot{{
			Email:            "alex.morgan@example.com",
			AvailabilityType: entity.AvailabilityBusy,
			StartTime:        wedAt(10, 0),
			EndTime:          wedAt(11, 0),
		}},
	}

	conflicts := detector.Check(wedAt(10, 0), wedAt(11, 0), []string{"alex.morgan@example.com"}, data)

	require.Len(t, conflicts["alex.morgan@example.com"], 1)
	assert.Equal(t, "Busy: Unavailable (10:00-11:00)", conflicts["alex.morgan@example.com"][0])
}

func TestAnnotatePartitionsParticipants(t *testing.T) {
	detector := NewConflictDetector()
	data := &AvailabilityData{
		Bookings: []entity.Interview{{
			Title:             "Panel Prep",
			ScheduledStart:    wedAt(10, 0),
			ScheduledEnd:      wedAt(11, 0),
			InterviewerEmails: pq.StringArray{"blake.lee@example.com"},
		}},
	}
	emails := []string{"alex.morgan@example.com", "blake.lee@example.com", "casey.kim@example.com"}

	slot := entity.NewTimeSlot(wedAt(10, 30), wedAt(11, 30))
	detector.Annotate(slot, emails, data)

	assert.Equal(t, []string{"alex.morgan@example.com", "casey.kim@example.com"}, slot.ParticipantsAvailable)
	assert.Equal(t, []string{"blake.lee@example.com"}, slot.ParticipantsUnavailable)
	require.Len(t, slot.Conflicts, 1)
	assert.Contains(t, slot.Conflicts[0], "Panel Prep")

	// Every participant lands in exactly one of the two lists.
	assert.Len(t, slot.ParticipantsAvailable, len(emails)-len(slot.ParticipantsUnavailable))
}

func TestAnnotateCleanSlot(t *testing.T) {
	detector := NewConflictDetector()
	emails := []string{"alex.morgan@example.com", "blake.lee@example.com"}

	slot := entity.NewTimeSlot(wedAt(9, 0), wedAt(10, 0))
	detector.Annotate(slot, emails, &AvailabilityData{})

	assert.Equal(t, emails, slot.ParticipantsAvailable)
	assert.Empty(t, slot.ParticipantsUnavailable)
	assert.Empty(t, slot.Conflicts)
}
