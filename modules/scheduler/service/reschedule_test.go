package service

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"talentsched/core/constants"
	coreentity "talentsched/core/entity"
	"talentsched/core/errors"
	"talentsched/modules/scheduler/dto"
	"talentsched/modules/scheduler/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rescheduleOriginal(id uuid.UUID) *entity.Interview {
	return &entity.Interview{
		CandidateID:       uuid.New(),
		JobPositionID:     uuid.New(),
		Title:             "Technical Interview - Dana Reyes",
		InterviewType:     entity.TypeTechnical,
		Status:            entity.StatusScheduled,
		ScheduledStart:    testNow.Add(48 * time.Hour),
		ScheduledEnd:      testNow.Add(49 * time.Hour),
		DurationMinutes:   60,
		Timezone:          "UTC",
		InterviewerEmails: pq.StringArray{"alex.morgan@example.com", "blake.lee@example.com"},
		RescheduleCount:   1,
		Version:           2,
		BaseEntity:        coreentity.BaseEntity{ID: id},
	}
}

func TestRescheduleInterviewReplacesOriginal(t *testing.T) {
	svc, deps := newTestService(t)
	originalID := uuid.New()
	original := rescheduleOriginal(originalID)
	deps.interviews.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*entity.Interview, error) {
		if id == originalID {
			return original, nil
		}
		return nil, nil
	}

	var markedID uuid.UUID
	var markedVersion int
	var markedReason string
	deps.interviews.MarkRescheduledFunc = func(ctx context.Context, id uuid.UUID, version int, reason string) (bool, error) {
		markedID, markedVersion, markedReason = id, version, reason
		return true, nil
	}

	windowStart, windowEnd := testWindowStart, testWindowEnd
	request := &dto.RescheduleInterviewRequest{
		Reason:           "Interviewer out sick",
		NewEarliestStart: &windowStart,
		NewLatestEnd:     &windowEnd,
	}

	result, appErr := svc.RescheduleInterview(context.Background(), originalID, request)

	require.Nil(t, appErr)
	assert.Equal(t, originalID, result.OriginalInterviewID)
	assert.Equal(t, "Interviewer out sick", result.RescheduleReason)
	assert.Equal(t, 2, result.RescheduleCount)

	replacement := result.NewInterview
	require.NotNil(t, replacement)
	assert.NotEqual(t, originalID, replacement.ID)
	assert.Equal(t, entity.StatusScheduled, replacement.Status)
	assert.Equal(t, testWindowStart, replacement.ScheduledStart)
	require.NotNil(t, replacement.OriginalInterviewID)
	assert.Equal(t, originalID, *replacement.OriginalInterviewID)

	assert.Equal(t, originalID, markedID)
	assert.Equal(t, 2, markedVersion)
	assert.Equal(t, "Interviewer out sick", markedReason)

	// One schedule entry for the replacement, one reschedule entry.
	require.Len(t, deps.appended, 2)
	assert.Equal(t, entity.ActionSchedule, deps.appended[0].ActionType)
	assert.Equal(t, entity.ActionReschedule, deps.appended[1].ActionType)
	assert.Equal(t, entity.ActionStatusSuccess, deps.appended[1].ActionStatus)
	require.NotNil(t, deps.appended[1].InterviewID)
	assert.Equal(t, originalID, *deps.appended[1].InterviewID)

	require.Len(t, deps.published, 2)
	assert.Equal(t, constants.ChannelInterviewScheduled, deps.published[0].channel)
	assert.Equal(t, constants.ChannelInterviewRescheduled, deps.published[1].channel)
	event, ok := deps.published[1].data.(rescheduleEvent)
	require.True(t, ok)
	assert.Equal(t, originalID, event.OriginalInterviewID)
	assert.Equal(t, replacement.ID, event.NewInterviewID)
}

func TestRescheduleInterviewRequiresReason(t *testing.T) {
	svc, deps := newTestService(t)
	loaded := false
	deps.interviews.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*entity.Interview, error) {
		loaded = true
		return nil, nil
	}

	_, appErr := svc.RescheduleInterview(context.Background(), uuid.New(), &dto.RescheduleInterviewRequest{})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrValidationFailed, appErr.Code)
	assert.Equal(t, []string{"Reschedule reason is required"}, appErr.Details)
	assert.False(t, loaded)
}

func TestRescheduleInterviewNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, appErr := svc.RescheduleInterview(context.Background(), uuid.New(), &dto.RescheduleInterviewRequest{Reason: "candidate conflict"})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInterviewNotFound, appErr.Code)
}

func TestRescheduleInterviewGuards(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(interview *entity.Interview)
	}{
		{
			name: "completed interview",
			mutate: func(interview *entity.Interview) {
				interview.Status = entity.StatusCompleted
			},
		},
		{
			name: "cancelled interview",
			mutate: func(interview *entity.Interview) {
				interview.Status = entity.StatusCancelled
			},
		},
		{
			name: "already started",
			mutate: func(interview *entity.Interview) {
				interview.ScheduledStart = testNow.Add(-time.Hour)
			},
		},
		{
			name: "attempts exhausted",
			mutate: func(interview *entity.Interview) {
				interview.RescheduleCount = 3
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestService(t)
			originalID := uuid.New()
			original := rescheduleOriginal(originalID)
			tt.mutate(original)
			deps.interviews.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*entity.Interview, error) {
				return original, nil
			}
			marked := false
			deps.interviews.MarkRescheduledFunc = func(ctx context.Context, id uuid.UUID, version int, reason string) (bool, error) {
				marked = true
				return true, nil
			}

			_, appErr := svc.RescheduleInterview(context.Background(), originalID, &dto.RescheduleInterviewRequest{Reason: "candidate conflict"})

			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrCannotReschedule, appErr.Code)
			assert.Empty(t, deps.created)
			assert.False(t, marked)
		})
	}
}

func TestRescheduleInterviewConcurrentModification(t *testing.T) {
	svc, deps := newTestService(t)
	originalID := uuid.New()
	original := rescheduleOriginal(originalID)
	deps.interviews.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*entity.Interview, error) {
		if id == originalID {
			return original, nil
		}
		return nil, nil
	}
	deps.interviews.MarkRescheduledFunc = func(ctx context.Context, id uuid.UUID, version int, reason string) (bool, error) {
		return false, nil
	}
	var cancelledID uuid.UUID
	var cancelledStatus entity.InterviewStatus
	deps.interviews.UpdateStatusFunc = func(ctx context.Context, id uuid.UUID, status entity.InterviewStatus) error {
		cancelledID, cancelledStatus = id, status
		return nil
	}

	windowStart, windowEnd := testWindowStart, testWindowEnd
	result, appErr := svc.RescheduleInterview(context.Background(), originalID, &dto.RescheduleInterviewRequest{
		Reason:           "candidate conflict",
		NewEarliestStart: &windowStart,
		NewLatestEnd:     &windowEnd,
	})

	require.Nil(t, result)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCannotReschedule, appErr.Code)
	assert.Contains(t, appErr.Message, "concurrently")

	// The replacement that was already created gets backed out.
	require.Len(t, deps.created, 1)
	assert.Equal(t, deps.created[0].ID, cancelledID)
	assert.Equal(t, entity.StatusCancelled, cancelledStatus)

	channels := make([]string, 0, len(deps.published))
	for _, event := range deps.published {
		channels = append(channels, event.channel)
	}
	assert.Equal(t, []string{constants.ChannelInterviewScheduled, constants.ChannelInterviewCancelled}, channels)
}

func TestRescheduleInterviewMarkFailure(t *testing.T) {
	svc, deps := newTestService(t)
	originalID := uuid.New()
	original := rescheduleOriginal(originalID)
	deps.interviews.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*entity.Interview, error) {
		return original, nil
	}
	deps.interviews.MarkRescheduledFunc = func(ctx context.Context, id uuid.UUID, version int, reason string) (bool, error) {
		return false, stderrors.New("connection reset")
	}
	cancelled := false
	deps.interviews.UpdateStatusFunc = func(ctx context.Context, id uuid.UUID, status entity.InterviewStatus) error {
		cancelled = true
		return nil
	}

	windowStart, windowEnd := testWindowStart, testWindowEnd
	_, appErr := svc.RescheduleInterview(context.Background(), originalID, &dto.RescheduleInterviewRequest{
		Reason:           "candidate conflict",
		NewEarliestStart: &windowStart,
		NewLatestEnd:     &windowEnd,
	})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUpdateFailed, appErr.Code)
	assert.True(t, cancelled)
}

func TestBuildRescheduleRequestSeedsFromOriginal(t *testing.T) {
	svc, _ := newTestService(t)
	original := rescheduleOriginal(uuid.New())

	seeded := svc.buildRescheduleRequest(original, &dto.RescheduleInterviewRequest{Reason: "candidate conflict"})

	assert.Equal(t, original.CandidateID, seeded.CandidateID)
	assert.Equal(t, original.JobPositionID, seeded.JobPositionID)
	assert.Equal(t, entity.TypeTechnical, seeded.InterviewType)
	assert.Equal(t, []string{"alex.morgan@example.com", "blake.lee@example.com"}, seeded.InterviewerEmails)
	assert.Equal(t, 60, seeded.DurationMinutes)
	assert.Equal(t, "UTC", seeded.Timezone)
	assert.Equal(t, entity.PriorityHigh, seeded.Priority)
	require.NotNil(t, seeded.OriginalInterviewID)
	assert.Equal(t, original.ID, *seeded.OriginalInterviewID)
}

func TestBuildRescheduleRequestAppliesOverrides(t *testing.T) {
	svc, _ := newTestService(t)
	original := rescheduleOriginal(uuid.New())

	windowStart, windowEnd := testWindowStart, testWindowEnd
	duration := 90
	seeded := svc.buildRescheduleRequest(original, &dto.RescheduleInterviewRequest{
		Reason:               "panel change",
		NewEarliestStart:     &windowStart,
		NewLatestEnd:         &windowEnd,
		NewInterviewerEmails: []string{"casey.kim@example.com"},
		NewDurationMinutes:   &duration,
		Priority:             "urgent",
	})

	assert.Equal(t, testWindowStart, seeded.EarliestStart)
	assert.Equal(t, testWindowEnd, seeded.LatestEnd)
	assert.Equal(t, []string{"casey.kim@example.com"}, seeded.InterviewerEmails)
	assert.Equal(t, 90, seeded.DurationMinutes)
	assert.Equal(t, entity.PriorityUrgent, seeded.Priority)
}
