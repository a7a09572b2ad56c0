package service

import (
	"context"
	"strings"
	"testing"
	"time"

	coreentity "talentsched/core/entity"
	"talentsched/core/queue"
	"talentsched/modules/scheduler/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notifierRecorder struct {
	published []publishedEvent
	reminders []queuedReminder
	uploads   map[string]string
}

func newTestNotifier() (*Notifier, *notifierRecorder) {
	rec := &notifierRecorder{uploads: map[string]string{}}
	notifier := NewNotifier(
		&MockBroker{PublishFunc: func(ctx context.Context, channel string, data any) error {
			rec.published = append(rec.published, publishedEvent{channel: channel, data: data})
			return nil
		}},
		&MockQueue{EnqueueReminderFunc: func(ctx context.Context, payload queue.ReminderPayload, processAt time.Time) error {
			rec.reminders = append(rec.reminders, queuedReminder{payload: payload, processAt: processAt})
			return nil
		}},
		&MockStorage{UploadFunc: func(ctx context.Context, key string, body []byte, contentType string) (string, error) {
			rec.uploads[key] = string(body)
			return "s3://talentsched-invites/" + key, nil
		}},
		testSchedulerConfig(),
	)
	notifier.now = func() time.Time { return testNow }
	return notifier, rec
}

func inviteInterview() *entity.Interview {
	return &entity.Interview{
		CandidateID:       uuid.New(),
		JobPositionID:     uuid.New(),
		Title:             "Technical Interview - Dana Reyes",
		Description:       "Interview for Platform Engineer position",
		InterviewType:     entity.TypeTechnical,
		Status:            entity.StatusScheduled,
		ScheduledStart:    wedAt(9, 0),
		ScheduledEnd:      wedAt(10, 0),
		DurationMinutes:   60,
		Timezone:          "UTC",
		InterviewerEmails: pq.StringArray{"alex.morgan@example.com", "blake.lee@example.com"},
		InterviewerNames:  pq.StringArray{"Alex Morgan", "Blake Lee"},
		BaseEntity:        coreentity.BaseEntity{ID: uuid.New()},
	}
}

func TestInterviewScheduledUploadsInvite(t *testing.T) {
	notifier, rec := newTestNotifier()
	interview := inviteInterview()
	slot := entity.NewTimeSlot(interview.ScheduledStart, interview.ScheduledEnd)

	notifier.InterviewScheduled(context.Background(), interview, slot, "dana.reyes@example.com")

	require.Len(t, rec.uploads, 1)
	for key, body := range rec.uploads {
		assert.True(t, strings.HasPrefix(key, "invites/technical-interview-dana-reyes-"))
		assert.True(t, strings.HasSuffix(key, ".ics"))

		assert.True(t, strings.HasPrefix(body, "BEGIN:VCALENDAR\r\n"))
		assert.True(t, strings.HasSuffix(body, "END:VCALENDAR\r\n"))
		assert.Contains(t, body, "DTSTART:20250305T090000Z\r\n")
		assert.Contains(t, body, "DTEND:20250305T100000Z\r\n")
		assert.Contains(t, body, "SUMMARY:Technical Interview - Dana Reyes\r\n")
		assert.Contains(t, body, "UID:"+interview.ID.String()+"@talentsched\r\n")
		assert.Contains(t, body, "ATTENDEE;CN=Alex Morgan:mailto:alex.morgan@example.com\r\n")
		assert.Contains(t, body, "ATTENDEE;CN=Blake Lee:mailto:blake.lee@example.com\r\n")
	}
}

func TestBuildICSEscapesText(t *testing.T) {
	notifier, _ := newTestNotifier()
	interview := inviteInterview()
	interview.Title = "Panel, Round 2; Systems"

	ics := notifier.buildICS(interview)

	assert.Contains(t, ics, "SUMMARY:Panel\\, Round 2\\; Systems\r\n")
}

func TestReminderScheduledOneLeadBeforeStart(t *testing.T) {
	notifier, rec := newTestNotifier()
	interview := inviteInterview()
	slot := entity.NewTimeSlot(interview.ScheduledStart, interview.ScheduledEnd)

	notifier.InterviewScheduled(context.Background(), interview, slot, "dana.reyes@example.com")

	require.Len(t, rec.reminders, 1)
	reminder := rec.reminders[0]
	assert.Equal(t, interview.ScheduledStart.Add(-24*time.Hour), reminder.processAt)
	assert.Equal(t, interview.ID.String(), reminder.payload.InterviewID)
	assert.Equal(t, interview.Title, reminder.payload.Title)
	assert.Equal(t, "dana.reyes@example.com", reminder.payload.CandidateEmail)
	assert.Equal(t, interview.ScheduledStart, reminder.payload.ScheduledTime)
}

func TestReminderSkippedWhenLeadAlreadyPassed(t *testing.T) {
	notifier, rec := newTestNotifier()
	interview := inviteInterview()
	// Less than the 24 hour lead away: the reminder moment is in the past.
	interview.ScheduledStart = testNow.Add(2 * time.Hour)
	interview.ScheduledEnd = testNow.Add(3 * time.Hour)
	slot := entity.NewTimeSlot(interview.ScheduledStart, interview.ScheduledEnd)

	notifier.InterviewScheduled(context.Background(), interview, slot, "dana.reyes@example.com")

	assert.Empty(t, rec.reminders)
	// The event and the invite still go out.
	require.Len(t, rec.published, 1)
	require.Len(t, rec.uploads, 1)
}

func TestInterviewRescheduledEvent(t *testing.T) {
	notifier, rec := newTestNotifier()
	replacement := inviteInterview()
	originalID := uuid.New()

	notifier.InterviewRescheduled(context.Background(), originalID, replacement, "panel change")

	require.Len(t, rec.published, 1)
	event, ok := rec.published[0].data.(rescheduleEvent)
	require.True(t, ok)
	assert.Equal(t, originalID, event.OriginalInterviewID)
	assert.Equal(t, replacement.ID, event.NewInterviewID)
	assert.Equal(t, "panel change", event.Reason)
}
