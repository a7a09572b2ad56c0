package dto

import (
	"math"
	"time"

	candidateentity "talentsched/modules/candidate/entity"
	jobentity "talentsched/modules/job/entity"
	"talentsched/modules/scheduler/entity"

	"github.com/google/uuid"
)

// ScheduleInterviewRequest is the payload for scheduling a new interview.
// Omitted optional fields fall back to the engine defaults.
type ScheduleInterviewRequest struct {
	CandidateID       uuid.UUID              `json:"candidate_id"`
	JobPositionID     uuid.UUID              `json:"job_position_id"`
	InterviewType     string                 `json:"interview_type"`
	InterviewerEmails []string               `json:"interviewer_emails"`
	DurationMinutes   int                    `json:"duration_minutes"`
	EarliestStart     *time.Time             `json:"earliest_start"`
	LatestEnd         *time.Time             `json:"latest_end"`
	Timezone          string                 `json:"timezone"`
	Priority          string                 `json:"priority"`
	Strategy          string                 `json:"strategy"`
	PreferredTimes    []map[string]any       `json:"preferred_times"`
	Requirements      map[string]interface{} `json:"requirements"`
}

// ToEntity converts the payload into a scheduling request, filling every
// omitted field with its default.
func (r *ScheduleInterviewRequest) ToEntity() *entity.SchedulingRequest {
	request := entity.NewSchedulingRequest(
		r.CandidateID,
		r.JobPositionID,
		entity.InterviewType(r.InterviewType),
		r.InterviewerEmails,
	)
	if r.DurationMinutes != 0 {
		request.DurationMinutes = r.DurationMinutes
	}
	if r.EarliestStart != nil {
		request.EarliestStart = r.EarliestStart.UTC()
	}
	if r.LatestEnd != nil {
		request.LatestEnd = r.LatestEnd.UTC()
	}
	if r.Timezone != "" {
		request.Timezone = r.Timezone
	}
	if r.Priority != "" {
		request.Priority = entity.SchedulingPriority(r.Priority)
	}
	if r.Strategy != "" {
		request.Strategy = entity.SchedulingStrategy(r.Strategy)
	}
	if len(r.PreferredTimes) > 0 {
		preferred := make([]entity.JSONB, 0, len(r.PreferredTimes))
		for _, hint := range r.PreferredTimes {
			preferred = append(preferred, entity.JSONB(hint))
		}
		request.PreferredTimes = preferred
	}
	if r.Requirements != nil {
		request.Requirements = entity.JSONB(r.Requirements)
	}
	return request
}

// RescheduleInterviewRequest is the payload for rescheduling an existing
// interview. Only the reason is required; new constraints default to the
// original interview's values.
type RescheduleInterviewRequest struct {
	Reason               string     `json:"reason"`
	NewEarliestStart     *time.Time `json:"new_earliest_start"`
	NewLatestEnd         *time.Time `json:"new_latest_end"`
	NewInterviewerEmails []string   `json:"new_interviewer_emails"`
	NewDurationMinutes   *int       `json:"new_duration_minutes"`
	Priority             string     `json:"priority"`
}

// UpdateInterviewStatusRequest is the payload for a status transition.
type UpdateInterviewStatusRequest struct {
	Status string `json:"status"`
}

// ConflictCheckRequest probes a specific window for participant conflicts.
type ConflictCheckRequest struct {
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	ParticipantEmails []string  `json:"participant_emails"`
}

// SlotDetails describes the winning slot of a scheduling run.
type SlotDetails struct {
	Score                 float64  `json:"score"`
	Conflicts             []string `json:"conflicts"`
	Reasons               []string `json:"reasons"`
	ParticipantsAvailable []string `json:"participants_available"`
}

// AlternativeSlot is a runner-up slot offered alongside the scheduled one.
type AlternativeSlot struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Score     float64   `json:"score"`
	Reasons   []string  `json:"reasons"`
}

// ScheduleMetadata summarizes the scheduling run itself.
type ScheduleMetadata struct {
	SlotsEvaluated   int    `json:"slots_evaluated"`
	ProcessingTimeMs int    `json:"processing_time_ms"`
	StrategyUsed     string `json:"strategy_used"`
}

// ScheduleResult is the full outcome of a successful scheduling run.
type ScheduleResult struct {
	Interview    *entity.Interview `json:"interview"`
	SlotDetails  SlotDetails       `json:"slot_details"`
	Alternatives []AlternativeSlot `json:"alternatives"`
	Metadata     ScheduleMetadata  `json:"metadata"`
}

// NewScheduleResult maps the winning slot and its runners-up into the
// response shape. Alternative reasons are capped at three per slot.
func NewScheduleResult(interview *entity.Interview, best *entity.TimeSlot, alternatives []*entity.TimeSlot, slotsEvaluated, processingMs int, strategy entity.SchedulingStrategy) *ScheduleResult {
	alts := make([]AlternativeSlot, 0, len(alternatives))
	for _, slot := range alternatives {
		reasons := slot.Reasons
		if len(reasons) > 3 {
			reasons = reasons[:3]
		}
		alts = append(alts, AlternativeSlot{
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Score:     roundScore(slot.Score),
			Reasons:   reasons,
		})
	}

	return &ScheduleResult{
		Interview: interview,
		SlotDetails: SlotDetails{
			Score:                 roundScore(best.Score),
			Conflicts:             best.Conflicts,
			Reasons:               best.Reasons,
			ParticipantsAvailable: best.ParticipantsAvailable,
		},
		Alternatives: alts,
		Metadata: ScheduleMetadata{
			SlotsEvaluated:   slotsEvaluated,
			ProcessingTimeMs: processingMs,
			StrategyUsed:     string(strategy),
		},
	}
}

// RescheduleResult links the closed interview to its replacement.
type RescheduleResult struct {
	OriginalInterviewID uuid.UUID         `json:"original_interview_id"`
	NewInterview        *entity.Interview `json:"new_interview"`
	RescheduleReason    string            `json:"reschedule_reason"`
	RescheduleCount     int               `json:"reschedule_count"`
}

// OptimalSlot is one ranked candidate window from a dry-run search.
type OptimalSlot struct {
	StartTime               time.Time `json:"start_time"`
	EndTime                 time.Time `json:"end_time"`
	Score                   float64   `json:"score"`
	Conflicts               []string  `json:"conflicts"`
	ParticipantsAvailable   []string  `json:"participants_available"`
	ParticipantsUnavailable []string  `json:"participants_unavailable"`
	Reasons                 []string  `json:"reasons"`
}

// OptimalSlotAnalysis aggregates the dry-run search outcome.
type OptimalSlotAnalysis struct {
	TotalSlotsFound      int     `json:"total_slots_found"`
	BestScore            float64 `json:"best_score"`
	HasConflictFreeSlots bool    `json:"has_conflict_free_slots"`
}

// OptimalSlotsResult is the response for the optimal-slots search.
type OptimalSlotsResult struct {
	OptimalSlots []OptimalSlot       `json:"optimal_slots"`
	Analysis     OptimalSlotAnalysis `json:"analysis"`
}

// NewOptimalSlotsResult maps ranked slots into the response shape.
func NewOptimalSlotsResult(slots []*entity.TimeSlot) *OptimalSlotsResult {
	views := make([]OptimalSlot, 0, len(slots))
	conflictFree := false
	for _, slot := range slots {
		if len(slot.Conflicts) == 0 {
			conflictFree = true
		}
		views = append(views, OptimalSlot{
			StartTime:               slot.StartTime,
			EndTime:                 slot.EndTime,
			Score:                   roundScore(slot.Score),
			Conflicts:               slot.Conflicts,
			ParticipantsAvailable:   slot.ParticipantsAvailable,
			ParticipantsUnavailable: slot.ParticipantsUnavailable,
			Reasons:                 slot.Reasons,
		})
	}

	analysis := OptimalSlotAnalysis{
		TotalSlotsFound:      len(slots),
		HasConflictFreeSlots: conflictFree,
	}
	if len(slots) > 0 {
		analysis.BestScore = roundScore(slots[0].Score)
	}

	return &OptimalSlotsResult{OptimalSlots: views, Analysis: analysis}
}

// ConflictSummary aggregates a conflict check across participants.
type ConflictSummary struct {
	TotalConflicts        int      `json:"total_conflicts"`
	AffectedParticipants  int      `json:"affected_participants"`
	AvailableParticipants []string `json:"available_participants"`
}

// ConflictCheckResult is the response for a conflict probe.
type ConflictCheckResult struct {
	HasConflicts    bool                `json:"has_conflicts"`
	Conflicts       map[string][]string `json:"conflicts"`
	ConflictSummary ConflictSummary     `json:"conflict_summary"`
}

// NewConflictCheckResult builds the probe response, keeping the request's
// participant order for the available list.
func NewConflictCheckResult(conflicts map[string][]string, participantEmails []string) *ConflictCheckResult {
	total := 0
	for _, found := range conflicts {
		total += len(found)
	}

	available := make([]string, 0, len(participantEmails))
	for _, email := range participantEmails {
		if _, ok := conflicts[email]; !ok {
			available = append(available, email)
		}
	}

	return &ConflictCheckResult{
		HasConflicts: len(conflicts) > 0,
		Conflicts:    conflicts,
		ConflictSummary: ConflictSummary{
			TotalConflicts:        total,
			AffectedParticipants:  len(conflicts),
			AvailableParticipants: available,
		},
	}
}

// SchedulingLogView is the trimmed audit entry returned with an interview.
type SchedulingLogView struct {
	ActionType       string    `json:"action_type"`
	ActionStatus     string    `json:"action_status"`
	CreatedAt        time.Time `json:"created_at"`
	ProcessingTimeMs *int      `json:"processing_time_ms"`
	SlotsEvaluated   *int      `json:"slots_evaluated"`
}

// InterviewDetails is the full view of a single interview with its
// related records and recent audit trail.
type InterviewDetails struct {
	Interview      *entity.Interview          `json:"interview"`
	Candidate      *candidateentity.Candidate `json:"candidate"`
	Job            *jobentity.JobPosition     `json:"job"`
	SchedulingLogs []SchedulingLogView        `json:"scheduling_logs"`
}

// DateRange bounds an analytics or availability query.
type DateRange struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// AnalyticsSummary counts scheduling outcomes over a window.
type AnalyticsSummary struct {
	TotalRequests       int     `json:"total_requests"`
	SuccessfulSchedules int     `json:"successful_schedules"`
	FailedSchedules     int     `json:"failed_schedules"`
	Reschedules         int     `json:"reschedules"`
	SuccessRate         float64 `json:"success_rate"`
}

// AnalyticsPerformance averages run statistics over a window.
type AnalyticsPerformance struct {
	AvgProcessingTimeMs float64 `json:"avg_processing_time_ms"`
	AvgSlotsEvaluated   float64 `json:"avg_slots_evaluated"`
	AvgSuccessScore     float64 `json:"avg_success_score"`
}

// SchedulingAnalytics is the response for the analytics endpoint.
type SchedulingAnalytics struct {
	DateRange   DateRange            `json:"date_range"`
	Summary     AnalyticsSummary     `json:"summary"`
	Performance AnalyticsPerformance `json:"performance"`
}

func roundScore(score float64) float64 {
	return math.Round(score*1000) / 1000
}
