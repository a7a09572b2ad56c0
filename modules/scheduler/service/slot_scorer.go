package service

import (
	"fmt"
	"time"

	"talentsched/core/config"
	"talentsched/modules/scheduler/entity"
)

// ScoringWeights holds the relative weight of each scoring factor.
// They are expected to sum to 1.0 so composite scores stay in [0, 1].
type ScoringWeights struct {
	TimePreference       float64
	AvailabilityQuality  float64
	InterviewerWorkload  float64
	CandidateConvenience float64
	UrgencyFactor        float64
}

// SlotScorer computes a weighted composite score per slot and tags each
// slot with human-readable reasons for its ranking.
type SlotScorer struct {
	weights         ScoringWeights
	conflictPenalty float64
	now             func() time.Time
}

func NewSlotScorer(cfg config.SchedulerConfig) *SlotScorer {
	return &SlotScorer{
		weights: ScoringWeights{
			TimePreference:       cfg.TimeWeight,
			AvailabilityQuality:  cfg.AvailabilityWeight,
			InterviewerWorkload:  cfg.WorkloadWeight,
			CandidateConvenience: cfg.CandidateWeight,
			UrgencyFactor:        cfg.UrgencyWeight,
		},
		conflictPenalty: cfg.ConflictPenalty,
		now:             time.Now,
	}
}

// Score fills in the score and reasons for every slot. Slots with
// conflicts keep a reduced score rather than being discarded, so they can
// still surface as alternatives when nothing clean exists.
func (s *SlotScorer) Score(slots []*entity.TimeSlot, request *entity.SchedulingRequest, data *AvailabilityData) {
	for _, slot := range slots {
		score := 0.0
		reasons := []string{}

		timeScore := s.scoreTimePreference(slot)
		score += timeScore * s.weights.TimePreference
		if timeScore > 0.7 {
			reasons = append(reasons, fmt.Sprintf("Good time match (score: %.1f)", timeScore))
		}

		availabilityScore := s.scoreAvailabilityQuality(slot, request)
		score += availabilityScore * s.weights.AvailabilityQuality
		if availabilityScore > 0.8 {
			reasons = append(reasons, "High availability quality")
		}

		workloadScore := s.scoreInterviewerWorkload(slot, data)
		score += workloadScore * s.weights.InterviewerWorkload
		if workloadScore > 0.7 {
			reasons = append(reasons, "Good interviewer availability")
		}

		convenienceScore := s.scoreCandidateConvenience(slot, request)
		score += convenienceScore * s.weights.CandidateConvenience
		if convenienceScore > 0.8 {
			reasons = append(reasons, "Convenient for candidate")
		}

		urgencyScore := s.scoreUrgencyFactor(slot, request)
		score += urgencyScore * s.weights.UrgencyFactor
		if urgencyScore > 0.5 {
			reasons = append(reasons, "Meets urgency requirements")
		}

		if len(slot.Conflicts) > 0 {
			score *= s.conflictPenalty
			reasons = append(reasons, fmt.Sprintf("Has %d conflicts", len(slot.Conflicts)))
		}

		slot.Score = score
		slot.Reasons = reasons
	}
}

// scoreTimePreference favors mid-morning starts, then early afternoon,
// then anything inside the extended business day.
func (s *SlotScorer) scoreTimePreference(slot *entity.TimeSlot) float64 {
	hour := slot.StartTime.Hour()
	switch {
	case hour >= 9 && hour <= 11:
		return 1.0
	case hour >= 13 && hour <= 15:
		return 0.9
	case hour >= 8 && hour <= 17:
		return 0.7
	default:
		return 0.3
	}
}

// scoreAvailabilityQuality is the fraction of requested interviewers who
// are free for the slot.
func (s *SlotScorer) scoreAvailabilityQuality(slot *entity.TimeSlot, request *entity.SchedulingRequest) float64 {
	total := len(request.InterviewerEmails)
	available := len(slot.ParticipantsAvailable)
	if total == 0 || available == 0 {
		return 0.0
	}
	return float64(available) / float64(total)
}

// scoreInterviewerWorkload averages a per-interviewer bucket score based
// on how many interviews each available participant already has that day.
func (s *SlotScorer) scoreInterviewerWorkload(slot *entity.TimeSlot, data *AvailabilityData) float64 {
	if len(slot.ParticipantsAvailable) == 0 {
		return 0.0
	}

	slotYear, slotMonth, slotDay := slot.StartTime.Date()
	total := 0.0
	for _, email := range slot.ParticipantsAvailable {
		daily := 0
		for _, interview := range data.Bookings {
			if !containsEmail(interview.InterviewerEmails, email) {
				continue
			}
			year, month, day := interview.ScheduledStart.Date()
			if year == slotYear && month == slotMonth && day == slotDay {
				daily++
			}
		}

		switch {
		case daily == 0:
			total += 1.0
		case daily <= 2:
			total += 0.8
		case daily <= 4:
			total += 0.6
		default:
			total += 0.3
		}
	}
	return total / float64(len(slot.ParticipantsAvailable))
}

// scoreCandidateConvenience rates the start hour in the request's
// timezone. An unparseable timezone falls back to a neutral score.
func (s *SlotScorer) scoreCandidateConvenience(slot *entity.TimeSlot, request *entity.SchedulingRequest) float64 {
	loc, err := time.LoadLocation(request.Timezone)
	if err != nil {
		return 0.8
	}
	hour := slot.StartTime.In(loc).Hour()
	switch {
	case hour >= 9 && hour <= 17:
		return 1.0
	case hour >= 8 && hour <= 18:
		return 0.8
	default:
		return 0.4
	}
}

// scoreUrgencyFactor rates how well the slot's lead time matches the
// request priority. Urgent requests want the soonest slots; low priority
// requests want at least a day of notice.
func (s *SlotScorer) scoreUrgencyFactor(slot *entity.TimeSlot, request *entity.SchedulingRequest) float64 {
	hoursUntil := slot.StartTime.Sub(s.now()).Hours()

	switch request.Priority {
	case entity.PriorityUrgent:
		switch {
		case hoursUntil <= 24:
			return 1.0
		case hoursUntil <= 48:
			return 0.8
		default:
			return 0.5
		}
	case entity.PriorityHigh:
		if hoursUntil <= 72 {
			return 1.0
		}
		return 0.7
	default:
		if hoursUntil >= 24 {
			return 1.0
		}
		return 0.6
	}
}
