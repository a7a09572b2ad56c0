package service

import (
	"context"
	"sync"
	"time"

	"talentsched/modules/scheduler/entity"
	"talentsched/modules/scheduler/repository"
)

// AvailabilityData is the merged picture of participant time usage over a
// search window. It is fetched once per scheduling run; everything
// downstream (conflict detection, scoring) works off this snapshot.
type AvailabilityData struct {
	Bookings  []entity.Interview
	BusySlots []entity.AvailabilitySlot
}

// AvailabilityGateway loads the bookings and availability markers that
// overlap a window for a set of participants.
type AvailabilityGateway interface {
	Gather(ctx context.Context, emails []string, windowStart, windowEnd time.Time) (*AvailabilityData, error)
}

// CalendarProfile describes a participant's calendar integration.
type CalendarProfile struct {
	Email             string
	Name              string
	Provider          string
	IntegrationStatus string
	WorkingHoursStart string
	WorkingHoursEnd   string
	WorkingDays       []string
	Timezone          string
	SyncEnabled       bool
	LastSyncAt        *time.Time
}

// CalendarDirectory resolves calendar integrations by email. Returns
// (nil, nil) when no integration exists.
type CalendarDirectory interface {
	Profile(ctx context.Context, email string) (*CalendarProfile, error)
}

type storeGateway struct {
	interviews   repository.InterviewRepositoryInterface
	availability repository.AvailabilityRepositoryInterface
}

// NewStoreGateway builds the default gateway backed by the interview and
// availability tables.
func NewStoreGateway(interviews repository.InterviewRepositoryInterface, availability repository.AvailabilityRepositoryInterface) AvailabilityGateway {
	return &storeGateway{interviews: interviews, availability: availability}
}

// Gather runs the booking and availability queries concurrently. The
// caller bounds the whole fetch with a context deadline.
func (g *storeGateway) Gather(ctx context.Context, emails []string, windowStart, windowEnd time.Time) (*AvailabilityData, error) {
	var (
		wg       sync.WaitGroup
		bookings []entity.Interview
		slots    []entity.AvailabilitySlot
		bookErr  error
		slotErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		bookings, bookErr = g.interviews.ListActiveInWindow(ctx, windowStart, windowEnd)
	}()
	go func() {
		defer wg.Done()
		slots, slotErr = g.availability.ListOverlappingForEmails(ctx, emails, windowStart, windowEnd)
	}()
	wg.Wait()

	if bookErr != nil {
		return nil, bookErr
	}
	if slotErr != nil {
		return nil, slotErr
	}

	return &AvailabilityData{Bookings: bookings, BusySlots: slots}, nil
}
