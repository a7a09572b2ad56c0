package entity

import (
	"talentsched/core/entity"

	"github.com/google/uuid"
)

// SchedulingLog is an append-only audit record of a scheduling attempt.
type SchedulingLog struct {
	InterviewID            *uuid.UUID `db:"interview_id" json:"interview_id,omitempty"`
	RequestID              string     `db:"request_id" json:"request_id"`
	ActionType             string     `db:"action_type" json:"action_type"`
	ActionStatus           string     `db:"action_status" json:"action_status"`
	AlgorithmUsed          *string    `db:"algorithm_used" json:"algorithm_used,omitempty"`
	ConflictsFound         JSONB      `db:"conflicts_found" json:"conflicts_found,omitempty"`
	AlternativesConsidered JSONB      `db:"alternatives_considered" json:"alternatives_considered,omitempty"`
	DecisionFactors        JSONB      `db:"decision_factors" json:"decision_factors,omitempty"`
	ProcessingTimeMs       *int       `db:"processing_time_ms" json:"processing_time_ms,omitempty"`
	SlotsEvaluated         *int       `db:"slots_evaluated" json:"slots_evaluated,omitempty"`
	SuccessScore           *float64   `db:"success_score" json:"success_score,omitempty"`
	ErrorMessage           *string    `db:"error_message" json:"error_message,omitempty"`
	entity.BaseEntity
}

// Audit action types and statuses.
const (
	ActionSchedule   = "schedule"
	ActionReschedule = "reschedule"

	ActionStatusSuccess = "success"
	ActionStatusFailed  = "failed"
)
