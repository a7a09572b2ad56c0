package service

import (
	"testing"
	"time"

	"talentsched/modules/scheduler/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredSlot(start time.Time, score float64) *entity.TimeSlot {
	slot := entity.NewTimeSlot(start, start.Add(time.Hour))
	slot.Score = score
	return slot
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	selector := NewSelector()

	slots := []*entity.TimeSlot{
		scoredSlot(wedAt(9, 0), 0.5),
		scoredSlot(wedAt(10, 0), 0.9),
		scoredSlot(wedAt(11, 0), 0.7),
	}

	ranked := selector.Rank(slots)

	require.Len(t, ranked, 3)
	assert.Equal(t, 0.9, ranked[0].Score)
	assert.Equal(t, 0.7, ranked[1].Score)
	assert.Equal(t, 0.5, ranked[2].Score)

	// The input slice is left untouched.
	assert.Equal(t, 0.5, slots[0].Score)
	assert.Equal(t, wedAt(9, 0), slots[0].StartTime)
}

func TestRankBreaksTiesTowardEarlierStart(t *testing.T) {
	selector := NewSelector()

	slots := []*entity.TimeSlot{
		scoredSlot(wedAt(14, 0), 0.9),
		scoredSlot(wedAt(9, 0), 0.9),
		scoredSlot(wedAt(11, 0), 0.9),
	}

	ranked := selector.Rank(slots)

	assert.Equal(t, wedAt(9, 0), ranked[0].StartTime)
	assert.Equal(t, wedAt(11, 0), ranked[1].StartTime)
	assert.Equal(t, wedAt(14, 0), ranked[2].StartTime)
}

func TestSelectReturnsBestAndAlternatives(t *testing.T) {
	selector := NewSelector()

	t.Run("empty", func(t *testing.T) {
		best, alternatives := selector.Select(nil)
		assert.Nil(t, best)
		assert.Nil(t, alternatives)
	})

	t.Run("single slot", func(t *testing.T) {
		ranked := []*entity.TimeSlot{scoredSlot(wedAt(9, 0), 0.9)}
		best, alternatives := selector.Select(ranked)
		assert.Same(t, ranked[0], best)
		assert.Empty(t, alternatives)
	})

	t.Run("caps alternatives at three", func(t *testing.T) {
		ranked := selector.Rank([]*entity.TimeSlot{
			scoredSlot(wedAt(9, 0), 0.9),
			scoredSlot(wedAt(10, 0), 0.8),
			scoredSlot(wedAt(11, 0), 0.7),
			scoredSlot(wedAt(12, 0), 0.6),
			scoredSlot(wedAt(13, 0), 0.5),
		})

		best, alternatives := selector.Select(ranked)

		assert.Equal(t, 0.9, best.Score)
		require.Len(t, alternatives, 3)
		assert.Equal(t, 0.8, alternatives[0].Score)
		assert.Equal(t, 0.6, alternatives[2].Score)
	})
}
