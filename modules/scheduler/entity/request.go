package entity

import (
	"time"

	"github.com/google/uuid"
)

type SchedulingPriority string

const (
	PriorityUrgent SchedulingPriority = "urgent"
	PriorityHigh   SchedulingPriority = "high"
	PriorityMedium SchedulingPriority = "medium"
	PriorityLow    SchedulingPriority = "low"
)

func (p SchedulingPriority) Valid() bool {
	switch p {
	case PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type SchedulingStrategy string

const (
	StrategyOptimizeTime      SchedulingStrategy = "optimize_time"
	StrategyOptimizeQuality   SchedulingStrategy = "optimize_quality"
	StrategyOptimizeCandidate SchedulingStrategy = "optimize_candidate"
	StrategyBalanced          SchedulingStrategy = "balanced"
)

func (s SchedulingStrategy) Valid() bool {
	switch s {
	case StrategyOptimizeTime, StrategyOptimizeQuality, StrategyOptimizeCandidate, StrategyBalanced:
		return true
	}
	return false
}

// SchedulingRequest carries everything one scheduling run needs.
// Immutable once constructed; NewSchedulingRequest applies the defaults.
type SchedulingRequest struct {
	CandidateID       uuid.UUID
	JobPositionID     uuid.UUID
	InterviewType     InterviewType
	InterviewerEmails []string
	DurationMinutes   int
	EarliestStart     time.Time
	LatestEnd         time.Time
	Timezone          string
	Priority          SchedulingPriority
	Strategy          SchedulingStrategy
	PreferredTimes    []JSONB
	Requirements      JSONB

	// OriginalInterviewID links a reschedule run back to the record it
	// replaces; zero for first-time scheduling.
	OriginalInterviewID *uuid.UUID
}

// NewSchedulingRequest fills the window and tuning defaults: search
// starts a day out and spans 30 days, hour-long balanced medium-priority
// interview in UTC.
func NewSchedulingRequest(candidateID, jobPositionID uuid.UUID, interviewType InterviewType, interviewerEmails []string) *SchedulingRequest {
	now := time.Now().UTC()
	return &SchedulingRequest{
		CandidateID:       candidateID,
		JobPositionID:     jobPositionID,
		InterviewType:     interviewType,
		InterviewerEmails: interviewerEmails,
		DurationMinutes:   60,
		EarliestStart:     now.Add(24 * time.Hour),
		LatestEnd:         now.Add(30 * 24 * time.Hour),
		Timezone:          "UTC",
		Priority:          PriorityMedium,
		Strategy:          StrategyBalanced,
		PreferredTimes:    []JSONB{},
		Requirements:      JSONB{},
	}
}
