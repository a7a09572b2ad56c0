package service

import (
	"context"

	"talentsched/core/errors"
	"talentsched/core/logger"
	"talentsched/modules/scheduler/dto"
	"talentsched/modules/scheduler/entity"

	"github.com/google/uuid"
)

// RescheduleInterview replaces an active interview with a freshly
// scheduled one. The new interview is created first; the original is then
// closed with an optimistic version check so a concurrent update cancels
// the replacement instead of double-booking.
func (s *SchedulerService) RescheduleInterview(ctx context.Context, interviewID uuid.UUID, request *dto.RescheduleInterviewRequest) (*dto.RescheduleResult, *errors.AppError) {
	logger.Info("SchedulerService:RescheduleInterview", "interview_id", interviewID)

	if request.Reason == "" {
		return nil, errors.NewAppError(errors.ErrValidationFailed, "reschedule request failed validation", nil).
			WithDetails([]string{"Reschedule reason is required"})
	}

	interview, err := s.interviews.GetByID(ctx, interviewID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load interview", err)
	}
	if interview == nil {
		return nil, errors.NewAppError(errors.ErrInterviewNotFound, "interview not found", nil)
	}
	if !interview.CanReschedule(s.now(), s.cfg.MaxReschedules) {
		return nil, errors.NewAppError(errors.ErrCannotReschedule, "interview cannot be rescheduled", nil)
	}

	seeded := s.buildRescheduleRequest(interview, request)
	result, appErr := s.ScheduleInterview(ctx, seeded)
	if appErr != nil {
		return nil, appErr
	}
	replacement := result.Interview

	moved, err := s.interviews.MarkRescheduled(ctx, interview.ID, interview.Version, request.Reason)
	if err != nil {
		s.cancelReplacement(ctx, replacement)
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "failed to close original interview", err)
	}
	if !moved {
		s.cancelReplacement(ctx, replacement)
		return nil, errors.NewAppError(errors.ErrCannotReschedule, "interview was modified concurrently", nil)
	}

	s.logAttempt(ctx, &interview.ID, entity.ActionReschedule, entity.ActionStatusSuccess, attemptMeta{
		algorithm:      string(seeded.Strategy),
		slotsEvaluated: result.Metadata.SlotsEvaluated,
		processingMs:   result.Metadata.ProcessingTimeMs,
		bestScore:      result.SlotDetails.Score,
	})

	s.notifier.InterviewRescheduled(ctx, interview.ID, replacement, request.Reason)
	s.collector.RecordRescheduled()

	logger.Info("SchedulerService:RescheduleInterview:Done",
		"interview_id", interview.ID,
		"new_interview_id", replacement.ID,
	)
	return &dto.RescheduleResult{
		OriginalInterviewID: interview.ID,
		NewInterview:        replacement,
		RescheduleReason:    request.Reason,
		RescheduleCount:     interview.RescheduleCount + 1,
	}, nil
}

// buildRescheduleRequest seeds a scheduling request from the original
// interview, then applies the caller's overrides. Reschedules default to
// high priority.
func (s *SchedulerService) buildRescheduleRequest(interview *entity.Interview, request *dto.RescheduleInterviewRequest) *entity.SchedulingRequest {
	seeded := entity.NewSchedulingRequest(
		interview.CandidateID,
		interview.JobPositionID,
		interview.InterviewType,
		interview.InterviewerEmails,
	)
	seeded.DurationMinutes = interview.DurationMinutes
	seeded.Timezone = interview.Timezone
	seeded.Priority = entity.PriorityHigh
	seeded.OriginalInterviewID = &interview.ID

	if request.NewEarliestStart != nil {
		seeded.EarliestStart = request.NewEarliestStart.UTC()
	}
	if request.NewLatestEnd != nil {
		seeded.LatestEnd = request.NewLatestEnd.UTC()
	}
	if len(request.NewInterviewerEmails) > 0 {
		seeded.InterviewerEmails = request.NewInterviewerEmails
	}
	if request.NewDurationMinutes != nil {
		seeded.DurationMinutes = *request.NewDurationMinutes
	}
	if request.Priority != "" {
		seeded.Priority = entity.SchedulingPriority(request.Priority)
	}
	return seeded
}

// cancelReplacement backs out a replacement interview after the original
// could not be closed. Best-effort: a failure leaves the replacement
// scheduled and is only logged.
func (s *SchedulerService) cancelReplacement(ctx context.Context, replacement *entity.Interview) {
	if err := s.interviews.UpdateStatus(ctx, replacement.ID, entity.StatusCancelled); err != nil {
		logger.Error("SchedulerService:CancelReplacement:Error:", err)
		return
	}
	replacement.Status = entity.StatusCancelled
	s.notifier.InterviewCancelled(ctx, replacement)
}
