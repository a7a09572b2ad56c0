package service

import (
	"fmt"
	"testing"
	"time"

	"talentsched/modules/scheduler/entity"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScorer() *SlotScorer {
	scorer := NewSlotScorer(testSchedulerConfig())
	scorer.now = func() time.Time { return testNow }
	return scorer
}

func TestScoreTimePreference(t *testing.T) {
	scorer := newTestScorer()

	tests := []struct {
		hour     int
		expected float64
	}{
		{7, 0.3},
		{8, 0.7},
		{9, 1.0},
		{10, 1.0},
		{11, 1.0},
		{12, 0.7},
		{13, 0.9},
		{15, 0.9},
		{16, 0.7},
		{17, 0.7},
		{18, 0.3},
		{22, 0.3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("hour %d", tt.hour), func(t *testing.T) {
			slot := entity.NewTimeSlot(wedAt(tt.hour, 0), wedAt(tt.hour+1, 0))
			assert.Equal(t, tt.expected, scorer.scoreTimePreference(slot))
		})
	}
}

func TestScoreAvailabilityQuality(t *testing.T) {
	scorer := newTestScorer()
	request := newTestRequest()

	slot := entity.NewTimeSlot(wedAt(9, 0), wedAt(10, 0))
	slot.ParticipantsAvailable = []string{"alex.morgan@example.com", "blake.lee@example.com"}
	assert.Equal(t, 1.0, scorer.scoreAvailabilityQuality(slot, request))

	slot.ParticipantsAvailable = []string{"alex.morgan@example.com"}
	assert.Equal(t, 0.5, scorer.scoreAvailabilityQuality(slot, request))

	slot.ParticipantsAvailable = nil
	assert.Equal(t, 0.0, scorer.scoreAvailabilityQuality(slot, request))
}

func TestScoreInterviewerWorkload(t *testing.T) {
	scorer := newTestScorer()

	bookingsFor := func(email string, count int) []entity.Interview {
		bookings := make([]entity.Interview, 0, count)
		for i := 0; i < count; i++ {
			bookings = append(bookings, entity.Interview{
				ScheduledStart:    wedAt(9+i, 0),
				ScheduledEnd:      wedAt(10+i, 0),
				InterviewerEmails: pq.StringArray{email},
			})
		}
		return bookings
	}

	tests := []struct {
		daily    int
		expected float64
	}{
		{0, 1.0},
		{1, 0.8},
		{2, 0.8},
		{3, 0.6},
		{4, 0.6},
		{5, 0.3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d interviews that day", tt.daily), func(t *testing.T) {
			slot := entity.NewTimeSlot(wedAt(14, 0), wedAt(15, 0))
			slot.ParticipantsAvailable = []string{"alex.morgan@example.com"}
			data := &AvailabilityData{Bookings: bookingsFor("alex.morgan@example.com", tt.daily)}
			assert.Equal(t, tt.expected, scorer.scoreInterviewerWorkload(slot, data))
		})
	}

	t.Run("averages across participants", func(t *testing.T) {
		slot := entity.NewTimeSlot(wedAt(14, 0), wedAt(15, 0))
		slot.ParticipantsAvailable = []string{"alex.morgan@example.com", "blake.lee@example.com"}
		data := &AvailabilityData{Bookings: bookingsFor("blake.lee@example.com", 1)}
		assert.InDelta(t, 0.9, scorer.scoreInterviewerWorkload(slot, data), 1e-9)
	})

	t.Run("other days do not count", func(t *testing.T) {
		slot := entity.NewTimeSlot(wedAt(14, 0), wedAt(15, 0))
		slot.ParticipantsAvailable = []string{"alex.morgan@example.com"}
		data := &AvailabilityData{Bookings: []entity.Interview{{
			ScheduledStart:    wedAt(14, 0).Add(24 * time.Hour),
			ScheduledEnd:      wedAt(15, 0).Add(24 * time.Hour),
			InterviewerEmails: pq.StringArray{"alex.morgan@example.com"},
		}}}
		assert.Equal(t, 1.0, scorer.scoreInterviewerWorkload(slot, data))
	})
}

func TestScoreCandidateConvenience(t *testing.T) {
	scorer := newTestScorer()

	tests := []struct {
		name     string
		timezone string
		hour     int
		expected float64
	}{
		{"core hours", "UTC", 9, 1.0},
		{"end of core hours", "UTC", 17, 1.0},
		{"early edge", "UTC", 8, 0.8},
		{"late edge", "UTC", 18, 0.8},
		{"too early", "UTC", 7, 0.4},
		{"too late", "UTC", 19, 0.4},
		// 14:00 UTC is 09:00 in New York before DST kicks in.
		{"converted to candidate timezone", "America/New_York", 14, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := newTestRequest()
			request.Timezone = tt.timezone
			slot := entity.NewTimeSlot(wedAt(tt.hour, 0), wedAt(tt.hour+1, 0))
			assert.Equal(t, tt.expected, scorer.scoreCandidateConvenience(slot, request))
		})
	}

	t.Run("unparseable timezone falls back to neutral", func(t *testing.T) {
		request := newTestRequest()
		request.Timezone = "Mars/Olympus_Mons"
		slot := entity.NewTimeSlot(wedAt(3, 0), wedAt(4, 0))
		assert.Equal(t, 0.8, scorer.scoreCandidateConvenience(slot, request))
	})
}

func TestScoreUrgencyFactor(t *testing.T) {
	scorer := newTestScorer()

	tests := []struct {
		name       string
		priority   entity.SchedulingPriority
		hoursAhead int
		expected   float64
	}{
		{"urgent soon", entity.PriorityUrgent, 10, 1.0},
		{"urgent within two days", entity.PriorityUrgent, 30, 0.8},
		{"urgent too far out", entity.PriorityUrgent, 60, 0.5},
		{"high within three days", entity.PriorityHigh, 60, 1.0},
		{"high beyond three days", entity.PriorityHigh, 80, 0.7},
		{"medium with notice", entity.PriorityMedium, 30, 1.0},
		{"medium too soon", entity.PriorityMedium, 10, 0.6},
		{"low with notice", entity.PriorityLow, 30, 1.0},
		{"low too soon", entity.PriorityLow, 10, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := newTestRequest()
			request.Priority = tt.priority
			start := testNow.Add(time.Duration(tt.hoursAhead) * time.Hour)
			slot := entity.NewTimeSlot(start, start.Add(time.Hour))
			assert.Equal(t, tt.expected, scorer.scoreUrgencyFactor(slot, request))
		})
	}
}

func TestScoreCombinesWeightedFactors(t *testing.T) {
	scorer := newTestScorer()
	request := newTestRequest()

	slot := entity.NewTimeSlot(testWindowStart, testWindowStart.Add(time.Hour))
	slot.ParticipantsAvailable = []string{"alex.morgan@example.com", "blake.lee@example.com"}

	scorer.Score([]*entity.TimeSlot{slot}, request, &AvailabilityData{})

	// Every factor maxes out: 0.3 + 0.25 + 0.2 + 0.15 + 0.1.
	assert.InDelta(t, 1.0, slot.Score, 1e-9)
	assert.Equal(t, []string{
		"Good time match (score: 1.0)",
		"High availability quality",
		"Good interviewer availability",
		"Convenient for candidate",
		"Meets urgency requirements",
	}, slot.Reasons)
}

func TestScoreAppliesConflictPenalty(t *testing.T) {
	scorer := newTestScorer()
	request := newTestRequest()

	clean := entity.NewTimeSlot(testWindowStart, testWindowStart.Add(time.Hour))
	clean.ParticipantsAvailable = []string{"alex.morgan@example.com", "blake.lee@example.com"}

	conflicted := entity.NewTimeSlot(testWindowStart, testWindowStart.Add(time.Hour))
	conflicted.ParticipantsAvailable = []string{"alex.morgan@example.com", "blake.lee@example.com"}
	conflicted.Conflicts = []string{"Existing interview: Panel Prep (09:00-10:00)"}

	scorer.Score([]*entity.TimeSlot{clean, conflicted}, request, &AvailabilityData{})

	assert.InDelta(t, clean.Score*0.7, conflicted.Score, 1e-12)
	assert.Contains(t, conflicted.Reasons, "Has 1 conflicts")
}

func TestScorePenalizedSlotStillRanksBelowClean(t *testing.T) {
	scorer := newTestScorer()
	request := newTestRequest()

	// One interviewer is unavailable at 10:00 but free at 09:00.
	clean := entity.NewTimeSlot(wedAt(9, 0), wedAt(10, 0))
	clean.ParticipantsAvailable = []string{"alex.morgan@example.com", "blake.lee@example.com"}

	conflicted := entity.NewTimeSlot(wedAt(10, 0), wedAt(11, 0))
	conflicted.ParticipantsAvailable = []string{"alex.morgan@example.com"}
	conflicted.ParticipantsUnavailable = []string{"blake.lee@example.com"}
	conflicted.Conflicts = []string{"Existing interview: System Design Review (10:00-11:00)"}

	scorer.Score([]*entity.TimeSlot{clean, conflicted}, request, &AvailabilityData{})

	// 0.3 + 0.5*0.25 + 0.2 + 0.15 + 0.1, then the 0.7 penalty.
	assert.InDelta(t, 0.6125, conflicted.Score, 1e-9)
	assert.Greater(t, clean.Score, conflicted.Score)
	assert.NotContains(t, conflicted.Reasons, "High availability quality")
}

func TestScoreStaysWithinBounds(t *testing.T) {
	scorer := newTestScorer()
	request := newTestRequest()
	generator := NewSlotGenerator(testSchedulerConfig())
	detector := NewConflictDetector()

	data := &AvailabilityData{
		Bookings: []entity.Interview{{
			Title:             "System Design Review",
			ScheduledStart:    wedAt(10, 0),
			ScheduledEnd:      wedAt(11, 0),
			InterviewerEmails: pq.StringArray{"blake.lee@example.com"},
		}},
	}

	slots := generator.Generate(testWindowStart, testWindowEnd, 60)
	for _, slot := range slots {
		detector.Annotate(slot, request.InterviewerEmails, data)
	}
	scorer.Score(slots, request, data)

	require.NotEmpty(t, slots)
	for _, slot := range slots {
		assert.GreaterOrEqual(t, slot.Score, 0.0)
		assert.LessOrEqual(t, slot.Score, 1.0)
	}
}
