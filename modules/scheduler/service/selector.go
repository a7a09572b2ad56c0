package service

import (
	"sort"

	"talentsched/modules/scheduler/entity"
)

const maxAlternatives = 3

// Selector ranks scored slots and picks the winner plus runners-up.
type Selector struct{}

func NewSelector() *Selector {
	return &Selector{}
}

// Rank orders slots by score descending. Equal scores break toward the
// earlier start, so the same inputs always produce the same order.
func (s *Selector) Rank(slots []*entity.TimeSlot) []*entity.TimeSlot {
	ranked := make([]*entity.TimeSlot, len(slots))
	copy(ranked, slots)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].StartTime.Before(ranked[j].StartTime)
	})
	return ranked
}

// Select returns the best slot and up to maxAlternatives runners-up from
// an already ranked list.
func (s *Selector) Select(ranked []*entity.TimeSlot) (*entity.TimeSlot, []*entity.TimeSlot) {
	if len(ranked) == 0 {
		return nil, nil
	}

	rest := len(ranked) - 1
	if rest > maxAlternatives {
		rest = maxAlternatives
	}
	return ranked[0], ranked[1 : 1+rest]
}
