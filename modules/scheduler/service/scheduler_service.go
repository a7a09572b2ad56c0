package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"math"
	"strings"
	"time"

	"talentsched/core/config"
	coreentity "talentsched/core/entity"
	"talentsched/core/errors"
	"talentsched/core/logger"
	"talentsched/core/metrics"
	"talentsched/core/params"
	"talentsched/core/utils"
	candidateentity "talentsched/modules/candidate/entity"
	candidaterepo "talentsched/modules/candidate/repository"
	jobentity "talentsched/modules/job/entity"
	jobrepo "talentsched/modules/job/repository"
	"talentsched/modules/scheduler/dto"
	"talentsched/modules/scheduler/entity"
	"talentsched/modules/scheduler/repository"

	"github.com/google/uuid"
)

// recentLogLimit bounds the audit trail returned with a single interview.
const recentLogLimit = 10

// SchedulerServiceInterface is the scheduling API consumed by the
// HTTP controller.
type SchedulerServiceInterface interface {
	ScheduleInterview(ctx context.Context, request *entity.SchedulingRequest) (*dto.ScheduleResult, *errors.AppError)
	RescheduleInterview(ctx context.Context, interviewID uuid.UUID, request *dto.RescheduleInterviewRequest) (*dto.RescheduleResult, *errors.AppError)
	FindOptimalSlots(ctx context.Context, request *entity.SchedulingRequest, maxSlots int) (*dto.OptimalSlotsResult, *errors.AppError)
	DetectConflicts(ctx context.Context, start, end time.Time, emails []string) (*dto.ConflictCheckResult, *errors.AppError)
	CreateAvailabilitySlot(ctx context.Context, slot *entity.AvailabilitySlot) (*entity.AvailabilitySlot, *errors.AppError)
	GetAvailability(ctx context.Context, email string, startDate, endDate *time.Time) (*dto.AvailabilityView, *errors.AppError)
	GetAvailabilitySummary(ctx context.Context, emails []string, start, end time.Time) (map[string]*dto.AvailabilitySummary, *errors.AppError)
	ListInterviews(ctx context.Context, filter repository.InterviewFilter, queryParams params.QueryParams) (*entity.PaginatedInterviews, *errors.AppError)
	GetInterview(ctx context.Context, id uuid.UUID) (*dto.InterviewDetails, *errors.AppError)
	UpdateInterviewStatus(ctx context.Context, id uuid.UUID, status entity.InterviewStatus) (*entity.Interview, *errors.AppError)
	Analytics(ctx context.Context, startDate, endDate *time.Time) (*dto.SchedulingAnalytics, *errors.AppError)
}

// SchedulerService orchestrates the scheduling pipeline: validate the
// request, gather availability once, generate and annotate candidate
// slots, score and rank them, persist the winner and fan out
// notifications.
type SchedulerService struct {
	interviews   repository.InterviewRepositoryInterface
	availability repository.AvailabilityRepositoryInterface
	logs         repository.SchedulingLogRepositoryInterface
	candidates   candidaterepo.CandidateRepositoryInterface
	jobs         jobrepo.JobRepositoryInterface

	gateway   AvailabilityGateway
	directory CalendarDirectory
	notifier  *Notifier

	generator *SlotGenerator
	detector  *ConflictDetector
	scorer    *SlotScorer
	selector  *Selector

	collector *metrics.Collector
	cfg       config.SchedulerConfig
	now       func() time.Time
}

// ServiceDeps collects everything the scheduler service needs.
type ServiceDeps struct {
	Interviews   repository.InterviewRepositoryInterface
	Availability repository.AvailabilityRepositoryInterface
	Logs         repository.SchedulingLogRepositoryInterface
	Candidates   candidaterepo.CandidateRepositoryInterface
	Jobs         jobrepo.JobRepositoryInterface
	Gateway      AvailabilityGateway
	Directory    CalendarDirectory
	Notifier     *Notifier
	Collector    *metrics.Collector
	Config       config.SchedulerConfig
}

func NewSchedulerService(deps ServiceDeps) *SchedulerService {
	return &SchedulerService{
		interviews:   deps.Interviews,
		availability: deps.Availability,
		logs:         deps.Logs,
		candidates:   deps.Candidates,
		jobs:         deps.Jobs,
		gateway:      deps.Gateway,
		directory:    deps.Directory,
		notifier:     deps.Notifier,
		generator:    NewSlotGenerator(deps.Config),
		detector:     NewConflictDetector(),
		scorer:       NewSlotScorer(deps.Config),
		selector:     NewSelector(),
		collector:    deps.Collector,
		cfg:          deps.Config,
		now:          time.Now,
	}
}

// ScheduleInterview runs the full pipeline for a scheduling request and
// persists the best slot as a new interview.
func (s *SchedulerService) ScheduleInterview(ctx context.Context, request *entity.SchedulingRequest) (*dto.ScheduleResult, *errors.AppError) {
	started := s.now()
	logger.Info("SchedulerService:ScheduleInterview",
		"candidate_id", request.CandidateID,
		"priority", request.Priority,
		"strategy", request.Strategy,
	)

	validation, appErr := s.validateRequest(ctx, request)
	if appErr != nil {
		return nil, appErr
	}
	if len(validation.Errors) > 0 {
		s.collector.RecordValidationRejected()
		return nil, errors.NewAppError(errors.ErrValidationFailed, "scheduling request failed validation", nil).
			WithDetails(validation.Errors)
	}

	data, appErr := s.gatherAvailability(ctx, request)
	if appErr != nil {
		s.collector.RecordFailed()
		return nil, appErr
	}

	candidates := s.buildCandidateSlots(request, data)
	if len(candidates) == 0 {
		s.collector.RecordNoSlotsFound(0)
		s.logAttempt(ctx, nil, entity.ActionSchedule, entity.ActionStatusFailed, attemptMeta{
			algorithm:    string(request.Strategy),
			errorMessage: "no suitable time slots found",
		})
		return nil, errors.NewAppError(errors.ErrNoSlotsAvailable, "no suitable time slots found for the given constraints", nil)
	}

	s.scorer.Score(candidates, request, data)
	ranked := s.selector.Rank(candidates)
	best, alternatives := s.selector.Select(ranked)

	interview, err := s.createInterview(ctx, best, request, validation)
	if err != nil {
		s.collector.RecordFailed()
		s.logAttempt(ctx, nil, entity.ActionSchedule, entity.ActionStatusFailed, attemptMeta{
			algorithm:    string(request.Strategy),
			errorMessage: err.Error(),
		})
		return nil, errors.NewAppError(errors.ErrSchedulingError, "failed to persist scheduled interview", err)
	}

	processingMs := int(s.now().Sub(started).Milliseconds())
	s.logAttempt(ctx, &interview.ID, entity.ActionSchedule, entity.ActionStatusSuccess, attemptMeta{
		algorithm:      string(request.Strategy),
		slotsEvaluated: len(candidates),
		processingMs:   processingMs,
		bestScore:      best.Score,
		conflicts:      best.Conflicts,
		alternatives:   alternatives,
	})

	s.notifier.InterviewScheduled(ctx, interview, best, validation.Candidate.Email)
	s.collector.RecordScheduled(float64(processingMs)/1000.0, len(candidates))

	logger.Info("SchedulerService:ScheduleInterview:Done",
		"interview_id", interview.ID,
		"score", best.Score,
		"slots_evaluated", len(candidates),
	)
	return dto.NewScheduleResult(interview, best, alternatives, len(candidates), processingMs, request.Strategy), nil
}

// FindOptimalSlots runs the search pipeline without persisting anything
// and returns up to maxSlots ranked windows.
func (s *SchedulerService) FindOptimalSlots(ctx context.Context, request *entity.SchedulingRequest, maxSlots int) (*dto.OptimalSlotsResult, *errors.AppError) {
	logger.Info("SchedulerService:FindOptimalSlots", "candidate_id", request.CandidateID, "max_slots", maxSlots)

	validation, appErr := s.validateRequest(ctx, request)
	if appErr != nil {
		return nil, appErr
	}
	if len(validation.Errors) > 0 {
		return nil, errors.NewAppError(errors.ErrValidationFailed, "scheduling request failed validation", nil).
			WithDetails(validation.Errors)
	}

	data, appErr := s.gatherAvailability(ctx, request)
	if appErr != nil {
		return nil, appErr
	}

	candidates := s.buildCandidateSlots(request, data)
	s.scorer.Score(candidates, request, data)
	ranked := s.selector.Rank(candidates)
	if len(ranked) > maxSlots {
		ranked = ranked[:maxSlots]
	}

	return dto.NewOptimalSlotsResult(ranked), nil
}

// DetectConflicts probes one window for every participant and reports
// the conflicts found.
func (s *SchedulerService) DetectConflicts(ctx context.Context, start, end time.Time, emails []string) (*dto.ConflictCheckResult, *errors.AppError) {
	if !start.Before(end) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "start time must be before end time", nil)
	}
	if len(emails) == 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "at least one participant email is required", nil)
	}

	gctx, cancel := context.WithTimeout(ctx, s.cfg.GatherTimeout())
	defer cancel()

	data, err := s.gateway.Gather(gctx, emails, start, end)
	if err != nil {
		if stderrors.Is(gctx.Err(), context.DeadlineExceeded) {
			return nil, errors.NewAppError(errors.ErrAvailabilityGatherTimeout, "availability lookup timed out", err)
		}
		return nil, errors.NewAppError(errors.ErrSchedulingError, "failed to gather availability", err)
	}

	conflicts := s.detector.Check(start, end, emails, data)
	return dto.NewConflictCheckResult(conflicts, emails), nil
}

// CreateAvailabilitySlot registers a manual availability or busy marker.
func (s *SchedulerService) CreateAvailabilitySlot(ctx context.Context, slot *entity.AvailabilitySlot) (*entity.AvailabilitySlot, *errors.AppError) {
	var violations []string
	if slot.Email == "" {
		violations = append(violations, "Email is required")
	}
	if slot.UserType == "" {
		violations = append(violations, "User type is required")
	}
	if !slot.AvailabilityType.Valid() {
		violations = append(violations, "Availability type must be available or busy")
	}
	if !slot.StartTime.Before(slot.EndTime) {
		violations = append(violations, "Start time must be before end time")
	}
	if len(violations) > 0 {
		return nil, errors.NewAppError(errors.ErrValidationFailed, "availability slot failed validation", nil).
			WithDetails(violations)
	}

	now := s.now()
	slot.CreatedAt = now
	slot.UpdatedAt = now
	if err := s.availability.Create(ctx, slot); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to create availability slot", err)
	}

	logger.Info("SchedulerService:CreateAvailabilitySlot:Done", "email", slot.Email, "type", slot.AvailabilityType)
	return slot, nil
}

// GetAvailability returns a participant's slots, integration state and
// summary over a window. The window defaults to the next thirty days.
func (s *SchedulerService) GetAvailability(ctx context.Context, email string, startDate, endDate *time.Time) (*dto.AvailabilityView, *errors.AppError) {
	start := s.now()
	if startDate != nil {
		start = *startDate
	}
	end := start.Add(30 * 24 * time.Hour)
	if endDate != nil {
		end = *endDate
	}

	slots, err := s.availability.ListByEmail(ctx, email, start, end)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load availability slots", err)
	}

	profile, appErr := s.lookupProfile(ctx, email)
	if appErr != nil {
		return nil, appErr
	}

	summary, appErr := s.availabilitySummaryFor(ctx, email, start, end, slots, profile)
	if appErr != nil {
		return nil, appErr
	}

	view := &dto.AvailabilityView{
		Email:             email,
		AvailabilitySlots: slots,
		Summary:           *summary,
		DateRange:         dto.DateRange{StartDate: start, EndDate: end},
	}
	if profile != nil {
		view.CalendarIntegration = newIntegrationView(profile)
	}
	return view, nil
}

// GetAvailabilitySummary returns the per-participant summaries for a set
// of emails over a window.
func (s *SchedulerService) GetAvailabilitySummary(ctx context.Context, emails []string, start, end time.Time) (map[string]*dto.AvailabilitySummary, *errors.AppError) {
	summaries := make(map[string]*dto.AvailabilitySummary, len(emails))
	for _, email := range emails {
		slots, err := s.availability.ListByEmail(ctx, email, start, end)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load availability slots", err)
		}
		profile, appErr := s.lookupProfile(ctx, email)
		if appErr != nil {
			return nil, appErr
		}
		summary, appErr := s.availabilitySummaryFor(ctx, email, start, end, slots, profile)
		if appErr != nil {
			return nil, appErr
		}
		summaries[email] = summary
	}
	return summaries, nil
}

// ListInterviews returns a filtered, paginated interview list ordered by
// scheduled start, newest first.
func (s *SchedulerService) ListInterviews(ctx context.Context, filter repository.InterviewFilter, queryParams params.QueryParams) (*entity.PaginatedInterviews, *errors.AppError) {
	page, err := s.interviews.List(ctx, filter, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to list interviews", err)
	}
	return page, nil
}

// GetInterview returns one interview with its candidate, job and recent
// audit trail.
func (s *SchedulerService) GetInterview(ctx context.Context, id uuid.UUID) (*dto.InterviewDetails, *errors.AppError) {
	interview, err := s.interviews.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load interview", err)
	}
	if interview == nil {
		return nil, errors.NewAppError(errors.ErrInterviewNotFound, "interview not found", nil)
	}

	candidate, err := s.candidates.GetByID(ctx, interview.CandidateID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load candidate", err)
	}
	job, err := s.jobs.GetByID(ctx, interview.JobPositionID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load job position", err)
	}

	logs, err := s.logs.ListByInterview(ctx, id, recentLogLimit)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load scheduling logs", err)
	}

	views := make([]dto.SchedulingLogView, 0, len(logs))
	for _, log := range logs {
		views = append(views, dto.SchedulingLogView{
			ActionType:       log.ActionType,
			ActionStatus:     log.ActionStatus,
			CreatedAt:        log.CreatedAt,
			ProcessingTimeMs: log.ProcessingTimeMs,
			SlotsEvaluated:   log.SlotsEvaluated,
		})
	}

	return &dto.InterviewDetails{
		Interview:      interview,
		Candidate:      candidate,
		Job:            job,
		SchedulingLogs: views,
	}, nil
}

// UpdateInterviewStatus applies a lifecycle transition. Invalid
// transitions are rejected; cancellations publish a cancel event.
func (s *SchedulerService) UpdateInterviewStatus(ctx context.Context, id uuid.UUID, status entity.InterviewStatus) (*entity.Interview, *errors.AppError) {
	if !status.Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("invalid interview status %q", status), nil)
	}

	interview, err := s.interviews.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load interview", err)
	}
	if interview == nil {
		return nil, errors.NewAppError(errors.ErrInterviewNotFound, "interview not found", nil)
	}
	if !interview.Status.CanTransitionTo(status) {
		return nil, errors.NewAppError(errors.ErrInvalidInput,
			fmt.Sprintf("cannot transition interview from %s to %s", interview.Status, status), nil)
	}

	if err := s.interviews.UpdateStatus(ctx, id, status); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "failed to update interview status", err)
	}
	interview.Status = status
	interview.Version++

	if status == entity.StatusCancelled {
		s.notifier.InterviewCancelled(ctx, interview)
	}

	logger.Info("SchedulerService:UpdateInterviewStatus:Done", "interview_id", id, "status", status)
	return interview, nil
}

// Analytics aggregates scheduling logs over a window. The window
// defaults to the last thirty days.
func (s *SchedulerService) Analytics(ctx context.Context, startDate, endDate *time.Time) (*dto.SchedulingAnalytics, *errors.AppError) {
	end := s.now()
	if endDate != nil {
		end = *endDate
	}
	start := end.Add(-30 * 24 * time.Hour)
	if startDate != nil {
		start = *startDate
	}

	logs, err := s.logs.ListBetween(ctx, start, end)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load scheduling logs", err)
	}

	var (
		successful, failed, reschedules  int
		processingSum, processingSamples float64
		slotsSum, slotsSamples           float64
		scoreSum, scoreSamples           float64
	)
	for _, log := range logs {
		if log.ActionType == entity.ActionSchedule {
			switch log.ActionStatus {
			case entity.ActionStatusSuccess:
				successful++
			case entity.ActionStatusFailed:
				failed++
			}
		}
		if log.ActionType == entity.ActionReschedule {
			reschedules++
		}
		if log.ProcessingTimeMs != nil {
			processingSum += float64(*log.ProcessingTimeMs)
			processingSamples++
		}
		if log.SlotsEvaluated != nil {
			slotsSum += float64(*log.SlotsEvaluated)
			slotsSamples++
		}
		if log.SuccessScore != nil {
			scoreSum += *log.SuccessScore
			scoreSamples++
		}
	}

	attempts := successful + failed
	if attempts == 0 {
		attempts = 1
	}
	analytics := &dto.SchedulingAnalytics{
		DateRange: dto.DateRange{StartDate: start, EndDate: end},
		Summary: dto.AnalyticsSummary{
			TotalRequests:       len(logs),
			SuccessfulSchedules: successful,
			FailedSchedules:     failed,
			Reschedules:         reschedules,
			SuccessRate:         round2(float64(successful) / float64(attempts) * 100),
		},
	}
	if processingSamples > 0 {
		analytics.Performance.AvgProcessingTimeMs = round2(processingSum / processingSamples)
	}
	if slotsSamples > 0 {
		analytics.Performance.AvgSlotsEvaluated = round2(slotsSum / slotsSamples)
	}
	if scoreSamples > 0 {
		analytics.Performance.AvgSuccessScore = round3(scoreSum / scoreSamples)
	}
	return analytics, nil
}

// validationResult carries the collected violations plus the records
// loaded while validating, so the pipeline does not fetch them twice.
type validationResult struct {
	Errors    []string
	Candidate *candidateentity.Candidate
	Job       *jobentity.JobPosition
}

// validateRequest collects every violation instead of stopping at the
// first one. A non-nil AppError means a lookup itself failed.
func (s *SchedulerService) validateRequest(ctx context.Context, request *entity.SchedulingRequest) (*validationResult, *errors.AppError) {
	result := &validationResult{}

	candidate, err := s.candidates.GetByID(ctx, request.CandidateID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load candidate", err)
	}
	if candidate == nil {
		result.Errors = append(result.Errors, "Candidate not found")
	}
	result.Candidate = candidate

	job, err := s.jobs.GetByID(ctx, request.JobPositionID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load job position", err)
	}
	if job == nil {
		result.Errors = append(result.Errors, "Job position not found")
	}
	result.Job = job

	if !request.InterviewType.Valid() {
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid interview type: %s", request.InterviewType))
	}
	if !request.Priority.Valid() {
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid scheduling priority: %s", request.Priority))
	}
	if !request.Strategy.Valid() {
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid scheduling strategy: %s", request.Strategy))
	}
	if !request.EarliestStart.Before(request.LatestEnd) {
		result.Errors = append(result.Errors, "Earliest start time must be before latest end time")
	}
	if request.DurationMinutes < 15 || request.DurationMinutes > 480 {
		result.Errors = append(result.Errors, "Duration must be between 15 minutes and 8 hours")
	}
	if len(request.InterviewerEmails) == 0 {
		result.Errors = append(result.Errors, "At least one interviewer email is required")
	}

	return result, nil
}

// gatherAvailability fetches the availability snapshot for the whole
// search window under the configured deadline.
func (s *SchedulerService) gatherAvailability(ctx context.Context, request *entity.SchedulingRequest) (*AvailabilityData, *errors.AppError) {
	gctx, cancel := context.WithTimeout(ctx, s.cfg.GatherTimeout())
	defer cancel()

	data, err := s.gateway.Gather(gctx, request.InterviewerEmails, request.EarliestStart, request.LatestEnd)
	if err != nil {
		if stderrors.Is(gctx.Err(), context.DeadlineExceeded) {
			logger.Error("SchedulerService:GatherAvailability:Timeout", "timeout", s.cfg.GatherTimeout())
			return nil, errors.NewAppError(errors.ErrAvailabilityGatherTimeout, "availability lookup timed out", err)
		}
		return nil, errors.NewAppError(errors.ErrSchedulingError, "failed to gather availability", err)
	}
	return data, nil
}

// buildCandidateSlots generates the slot grid, annotates each slot with
// conflicts and drops slots where nobody is available.
func (s *SchedulerService) buildCandidateSlots(request *entity.SchedulingRequest, data *AvailabilityData) []*entity.TimeSlot {
	generated := s.generator.Generate(request.EarliestStart, request.LatestEnd, request.DurationMinutes)

	candidates := make([]*entity.TimeSlot, 0, len(generated))
	for _, slot := range generated {
		s.detector.Annotate(slot, request.InterviewerEmails, data)
		if len(slot.ParticipantsAvailable) > 0 {
			candidates = append(candidates, slot)
		}
	}
	return candidates
}

// createInterview persists the winning slot as a scheduled interview.
func (s *SchedulerService) createInterview(ctx context.Context, slot *entity.TimeSlot, request *entity.SchedulingRequest, validation *validationResult) (*entity.Interview, error) {
	names := make([]string, 0, len(slot.ParticipantsAvailable))
	for _, email := range slot.ParticipantsAvailable {
		names = append(names, displayNameFromEmail(email))
	}

	var primary *string
	if len(slot.ParticipantsAvailable) > 0 {
		first := slot.ParticipantsAvailable[0]
		primary = &first
	}

	now := s.now()
	interview := &entity.Interview{
		CandidateID:           request.CandidateID,
		JobPositionID:         request.JobPositionID,
		Title:                 fmt.Sprintf("%s Interview - %s", request.InterviewType.DisplayName(), validation.Candidate.Name),
		Description:           fmt.Sprintf("Interview for %s position", validation.Job.Title),
		InterviewType:         request.InterviewType,
		Status:                entity.StatusScheduled,
		ScheduledStart:        slot.StartTime,
		ScheduledEnd:          slot.EndTime,
		DurationMinutes:       request.DurationMinutes,
		Timezone:              request.Timezone,
		InterviewerEmails:     slot.ParticipantsAvailable,
		InterviewerNames:      names,
		PrimaryInterviewer:    primary,
		AutoScheduled:         true,
		SchedulingPreferences: request.Requirements,
		ConflictsDetected:     slot.Conflicts,
		SelectionScore:        slot.Score,
		OriginalInterviewID:   request.OriginalInterviewID,
		Version:               1,
		BaseEntity: coreentity.BaseEntity{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.interviews.Create(ctx, interview); err != nil {
		return nil, err
	}
	return interview, nil
}

// attemptMeta carries the per-run numbers recorded in the audit trail.
type attemptMeta struct {
	algorithm      string
	slotsEvaluated int
	processingMs   int
	bestScore      float64
	conflicts      []string
	alternatives   []*entity.TimeSlot
	errorMessage   string
}

// logAttempt appends an audit entry. Audit failures are logged and
// swallowed so they never fail the scheduling run itself.
func (s *SchedulerService) logAttempt(ctx context.Context, interviewID *uuid.UUID, action, status string, meta attemptMeta) {
	now := s.now()
	log := &entity.SchedulingLog{
		InterviewID:  interviewID,
		RequestID:    utils.GenerateID(),
		ActionType:   action,
		ActionStatus: status,
		BaseEntity: coreentity.BaseEntity{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if meta.algorithm != "" {
		algorithm := meta.algorithm
		log.AlgorithmUsed = &algorithm
	}
	if meta.errorMessage != "" {
		message := meta.errorMessage
		log.ErrorMessage = &message
	}
	if len(meta.conflicts) > 0 {
		log.ConflictsFound = entity.JSONB{"conflicts": meta.conflicts}
	}

	if status == entity.ActionStatusSuccess {
		slots := meta.slotsEvaluated
		processing := meta.processingMs
		score := meta.bestScore
		log.SlotsEvaluated = &slots
		log.ProcessingTimeMs = &processing
		log.SuccessScore = &score

		if len(meta.alternatives) > 0 {
			alts := make([]map[string]interface{}, 0, len(meta.alternatives))
			for _, alt := range meta.alternatives {
				alts = append(alts, map[string]interface{}{
					"start_time": alt.StartTime,
					"end_time":   alt.EndTime,
					"score":      alt.Score,
				})
			}
			log.AlternativesConsidered = entity.JSONB{"alternatives": alts}
		}
		log.DecisionFactors = entity.JSONB{"strategy": meta.algorithm}
	}

	if err := s.logs.Append(ctx, log); err != nil {
		logger.Error("SchedulerService:LogAttempt:Error:", err)
	}
}

// lookupProfile resolves a calendar integration, tolerating a missing
// directory.
func (s *SchedulerService) lookupProfile(ctx context.Context, email string) (*CalendarProfile, *errors.AppError) {
	if s.directory == nil {
		return nil, nil
	}
	profile, err := s.directory.Profile(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load calendar integration", err)
	}
	return profile, nil
}

// availabilitySummaryFor condenses one participant's window into counts
// and working hours. Missing integrations fall back to default hours.
func (s *SchedulerService) availabilitySummaryFor(ctx context.Context, email string, start, end time.Time, slots []entity.AvailabilitySlot, profile *CalendarProfile) (*dto.AvailabilitySummary, *errors.AppError) {
	interviews, err := s.interviews.ListActiveForEmail(ctx, email, start, end)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to load interviews", err)
	}

	busy, available := 0, 0
	for _, slot := range slots {
		switch slot.AvailabilityType {
		case entity.AvailabilityBusy:
			busy++
		case entity.AvailabilityAvailable:
			available++
		}
	}

	summary := &dto.AvailabilitySummary{
		IntegrationStatus: "none",
		TotalInterviews:   len(interviews),
		BusySlots:         busy,
		AvailableSlots:    available,
		WorkingHours: dto.WorkingHours{
			Start: "09:00",
			End:   "17:00",
			Days:  []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
		},
	}
	if profile != nil {
		summary.HasCalendarIntegration = true
		summary.IntegrationStatus = profile.IntegrationStatus
		summary.WorkingHours = dto.WorkingHours{
			Start: profile.WorkingHoursStart,
			End:   profile.WorkingHoursEnd,
			Days:  profile.WorkingDays,
		}
		summary.LastSync = profile.LastSyncAt
	}
	return summary, nil
}

func newIntegrationView(profile *CalendarProfile) *dto.CalendarIntegrationView {
	return &dto.CalendarIntegrationView{
		Email:             profile.Email,
		Name:              profile.Name,
		Provider:          profile.Provider,
		IntegrationStatus: profile.IntegrationStatus,
		WorkingHours: dto.WorkingHours{
			Start: profile.WorkingHoursStart,
			End:   profile.WorkingHoursEnd,
			Days:  profile.WorkingDays,
		},
		Timezone:    profile.Timezone,
		SyncEnabled: profile.SyncEnabled,
		LastSyncAt:  profile.LastSyncAt,
	}
}

// displayNameFromEmail derives "Jane Doe" from "jane.doe@example.com".
func displayNameFromEmail(email string) string {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}

	words := strings.Split(strings.ReplaceAll(local, ".", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

func round3(value float64) float64 {
	return math.Round(value*1000) / 1000
}
