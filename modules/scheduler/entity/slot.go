package entity

import "time"

// TimeSlot is an in-memory candidate window flowing through the
// generate/detect/score/select pipeline. It is never persisted directly.
type TimeSlot struct {
	StartTime               time.Time `json:"start_time"`
	EndTime                 time.Time `json:"end_time"`
	Score                   float64   `json:"score"`
	Conflicts               []string  `json:"conflicts"`
	ParticipantsAvailable   []string  `json:"participants_available"`
	ParticipantsUnavailable []string  `json:"participants_unavailable"`
	Reasons                 []string  `json:"reasons"`
}

func NewTimeSlot(start, end time.Time) *TimeSlot {
	return &TimeSlot{
		StartTime:               start,
		EndTime:                 end,
		Conflicts:               []string{},
		ParticipantsAvailable:   []string{},
		ParticipantsUnavailable: []string{},
		Reasons:                 []string{},
	}
}
