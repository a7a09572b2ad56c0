package entity

import (
	"strings"
	"time"

	"talentsched/core/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type InterviewStatus string

const (
	StatusScheduled   InterviewStatus = "scheduled"
	StatusConfirmed   InterviewStatus = "confirmed"
	StatusCompleted   InterviewStatus = "completed"
	StatusCancelled   InterviewStatus = "cancelled"
	StatusRescheduled InterviewStatus = "rescheduled"
	StatusNoShow      InterviewStatus = "no_show"
)

func (s InterviewStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted,
		StatusCancelled, StatusRescheduled, StatusNoShow:
		return true
	}
	return false
}

// IsTerminal reports whether the record can no longer change status.
// A rescheduled record is terminal; its successor carries on.
func (s InterviewStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusRescheduled, StatusNoShow:
		return true
	}
	return false
}

func (s InterviewStatus) CanTransitionTo(next InterviewStatus) bool {
	switch s {
	case StatusScheduled:
		switch next {
		case StatusConfirmed, StatusCompleted, StatusCancelled, StatusRescheduled, StatusNoShow:
			return true
		}
		return false
	case StatusConfirmed:
		switch next {
		case StatusCompleted, StatusCancelled, StatusRescheduled, StatusNoShow:
			return true
		}
		return false
	}
	return false
}

type InterviewType string

const (
	TypePhoneScreen InterviewType = "phone_screen"
	TypeVideoCall   InterviewType = "video_call"
	TypeTechnical   InterviewType = "technical"
	TypeBehavioral  InterviewType = "behavioral"
	TypeOnsite      InterviewType = "onsite"
	TypeFinal       InterviewType = "final"
)

func (t InterviewType) Valid() bool {
	switch t {
	case TypePhoneScreen, TypeVideoCall, TypeTechnical,
		TypeBehavioral, TypeOnsite, TypeFinal:
		return true
	}
	return false
}

// DisplayName renders the type for interview titles, e.g. "video_call"
// becomes "Video Call".
func (t InterviewType) DisplayName() string {
	words := strings.Split(string(t), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

type Interview struct {
	CandidateID           uuid.UUID       `db:"candidate_id" json:"candidate_id"`
	JobPositionID         uuid.UUID       `db:"job_position_id" json:"job_position_id"`
	Title                 string          `db:"title" json:"title"`
	Description           string          `db:"description" json:"description"`
	InterviewType         InterviewType   `db:"interview_type" json:"interview_type"`
	Status                InterviewStatus `db:"status" json:"status"`
	ScheduledStart        time.Time       `db:"scheduled_start" json:"scheduled_start"`
	ScheduledEnd          time.Time       `db:"scheduled_end" json:"scheduled_end"`
	DurationMinutes       int             `db:"duration_minutes" json:"duration_minutes"`
	Timezone              string          `db:"timezone" json:"timezone"`
	InterviewerEmails     pq.StringArray  `db:"interviewer_emails" json:"interviewer_emails"`
	InterviewerNames      pq.StringArray  `db:"interviewer_names" json:"interviewer_names"`
	PrimaryInterviewer    *string         `db:"primary_interviewer" json:"primary_interviewer,omitempty"`
	AutoScheduled         bool            `db:"auto_scheduled" json:"auto_scheduled"`
	SchedulingPreferences JSONB           `db:"scheduling_preferences" json:"scheduling_preferences,omitempty"`
	ConflictsDetected     pq.StringArray  `db:"conflicts_detected" json:"conflicts_detected"`
	SelectionScore        float64         `db:"selection_score" json:"selection_score"`
	RescheduleCount       int             `db:"reschedule_count" json:"reschedule_count"`
	RescheduleReason      *string         `db:"reschedule_reason" json:"reschedule_reason,omitempty"`
	OriginalInterviewID   *uuid.UUID      `db:"original_interview_id" json:"original_interview_id,omitempty"`
	Version               int             `db:"version" json:"version"`
	entity.BaseEntity
}

// CanReschedule reports whether the interview may still be moved: it must
// be active, in the future and under the reschedule cap.
func (i *Interview) CanReschedule(now time.Time, maxReschedules int) bool {
	switch i.Status {
	case StatusScheduled, StatusConfirmed:
	default:
		return false
	}
	if !i.ScheduledStart.After(now) {
		return false
	}
	return i.RescheduleCount < maxReschedules
}

type PaginatedInterviews = entity.Pagination[Interview]
