package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"talentsched/core/broker"
	"talentsched/core/config"
	"talentsched/core/constants"
	"talentsched/core/logger"
	"talentsched/core/queue"
	"talentsched/core/storage"
	"talentsched/modules/scheduler/entity"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

const icsTimeLayout = "20060102T150405Z"

type interviewEvent struct {
	InterviewID       uuid.UUID      `json:"interview_id"`
	CandidateID       uuid.UUID      `json:"candidate_id"`
	JobPositionID     uuid.UUID      `json:"job_position_id"`
	InterviewType     string         `json:"interview_type"`
	ScheduledStart    time.Time      `json:"scheduled_start"`
	ScheduledEnd      time.Time      `json:"scheduled_end"`
	InterviewerEmails []string       `json:"interviewer_emails"`
	MeetingDetails    meetingDetails `json:"meeting_details"`
}

type meetingDetails struct {
	Duration  int      `json:"duration"`
	Timezone  string   `json:"timezone"`
	Conflicts []string `json:"conflicts"`
}

type rescheduleEvent struct {
	OriginalInterviewID uuid.UUID `json:"original_interview_id"`
	NewInterviewID      uuid.UUID `json:"new_interview_id"`
	Reason              string    `json:"reason"`
	ScheduledStart      time.Time `json:"scheduled_start"`
	ScheduledEnd        time.Time `json:"scheduled_end"`
}

type cancelEvent struct {
	InterviewID    uuid.UUID `json:"interview_id"`
	CandidateID    uuid.UUID `json:"candidate_id"`
	ScheduledStart time.Time `json:"scheduled_start"`
}

// Notifier fans scheduling outcomes out to the event bus, the reminder
// queue and invite storage. Every delivery is best-effort: failures are
// logged and never bubble up to fail a scheduling run.
type Notifier struct {
	broker  broker.IBroker
	queue   queue.IQueue
	storage storage.IStorage
	lead    time.Duration
	now     func() time.Time
}

func NewNotifier(b broker.IBroker, q queue.IQueue, s storage.IStorage, cfg config.SchedulerConfig) *Notifier {
	return &Notifier{
		broker:  b,
		queue:   q,
		storage: s,
		lead:    cfg.ReminderLead(),
		now:     time.Now,
	}
}

// InterviewScheduled publishes the scheduled event, queues a reminder and
// uploads a calendar invite.
func (n *Notifier) InterviewScheduled(ctx context.Context, interview *entity.Interview, slot *entity.TimeSlot, candidateEmail string) {
	event := interviewEvent{
		InterviewID:       interview.ID,
		CandidateID:       interview.CandidateID,
		JobPositionID:     interview.JobPositionID,
		InterviewType:     string(interview.InterviewType),
		ScheduledStart:    interview.ScheduledStart,
		ScheduledEnd:      interview.ScheduledEnd,
		InterviewerEmails: interview.InterviewerEmails,
		MeetingDetails: meetingDetails{
			Duration:  interview.DurationMinutes,
			Timezone:  interview.Timezone,
			Conflicts: slot.Conflicts,
		},
	}
	if err := n.broker.Publish(ctx, constants.ChannelInterviewScheduled, event); err != nil {
		logger.Error("Notifier:InterviewScheduled:Publish:Error:", err)
	}

	n.enqueueReminder(ctx, interview, candidateEmail)
	n.uploadInvite(ctx, interview)
}

// InterviewRescheduled announces the link between the closed interview
// and its replacement.
func (n *Notifier) InterviewRescheduled(ctx context.Context, originalID uuid.UUID, replacement *entity.Interview, reason string) {
	event := rescheduleEvent{
		OriginalInterviewID: originalID,
		NewInterviewID:      replacement.ID,
		Reason:              reason,
		ScheduledStart:      replacement.ScheduledStart,
		ScheduledEnd:        replacement.ScheduledEnd,
	}
	if err := n.broker.Publish(ctx, constants.ChannelInterviewRescheduled, event); err != nil {
		logger.Error("Notifier:InterviewRescheduled:Publish:Error:", err)
	}
}

// InterviewCancelled announces a cancellation.
func (n *Notifier) InterviewCancelled(ctx context.Context, interview *entity.Interview) {
	event := cancelEvent{
		InterviewID:    interview.ID,
		CandidateID:    interview.CandidateID,
		ScheduledStart: interview.ScheduledStart,
	}
	if err := n.broker.Publish(ctx, constants.ChannelInterviewCancelled, event); err != nil {
		logger.Error("Notifier:InterviewCancelled:Publish:Error:", err)
	}
}

func (n *Notifier) enqueueReminder(ctx context.Context, interview *entity.Interview, candidateEmail string) {
	remindAt := interview.ScheduledStart.Add(-n.lead)
	if !remindAt.After(n.now()) {
		return
	}

	payload := queue.ReminderPayload{
		InterviewID:       interview.ID.String(),
		Title:             interview.Title,
		CandidateEmail:    candidateEmail,
		InterviewerEmails: interview.InterviewerEmails,
		ScheduledTime:     interview.ScheduledStart,
	}
	if err := n.queue.EnqueueReminder(ctx, payload, remindAt); err != nil {
		logger.Error("Notifier:EnqueueReminder:Error:", err)
	}
}

func (n *Notifier) uploadInvite(ctx context.Context, interview *entity.Interview) {
	key := fmt.Sprintf("invites/%s-%s.ics", slug.Make(interview.Title), interview.ID)

	location, err := n.storage.Upload(ctx, key, []byte(n.buildICS(interview)), "text/calendar")
	if err != nil {
		logger.Error("Notifier:UploadInvite:Error:", err)
		return
	}
	logger.Debug("Notifier:UploadInvite:Done", "location", location)
}

func (n *Notifier) buildICS(interview *entity.Interview) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//TalentSched//Scheduler//EN\r\n")
	b.WriteString("METHOD:REQUEST\r\n")
	b.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(&b, "UID:%s@talentsched\r\n", interview.ID)
	fmt.Fprintf(&b, "DTSTAMP:%s\r\n", n.now().UTC().Format(icsTimeLayout))
	fmt.Fprintf(&b, "DTSTART:%s\r\n", interview.ScheduledStart.UTC().Format(icsTimeLayout))
	fmt.Fprintf(&b, "DTEND:%s\r\n", interview.ScheduledEnd.UTC().Format(icsTimeLayout))
	fmt.Fprintf(&b, "SUMMARY:%s\r\n", escapeICSText(interview.Title))
	fmt.Fprintf(&b, "DESCRIPTION:%s\r\n", escapeICSText(interview.Description))
	for i, email := range interview.InterviewerEmails {
		name := email
		if i < len(interview.InterviewerNames) {
			name = interview.InterviewerNames[i]
		}
		fmt.Fprintf(&b, "ATTENDEE;CN=%s:mailto:%s\r\n", name, email)
	}
	b.WriteString("END:VEVENT\r\n")
	b.WriteString("END:VCALENDAR\r\n")
	return b.String()
}

func escapeICSText(text string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return replacer.Replace(text)
}
