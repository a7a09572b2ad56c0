package service

import (
	"fmt"
	"time"

	"talentsched/modules/scheduler/entity"
)

// ConflictDetector finds overlaps between a candidate window and the
// gathered bookings and busy markers. It is pure: all data comes in as
// arguments, nothing is fetched.
type ConflictDetector struct{}

func NewConflictDetector() *ConflictDetector {
	return &ConflictDetector{}
}

// Overlaps reports whether [start1, end1) and [start2, end2) intersect.
// Touching endpoints do not overlap.
func Overlaps(start1, end1, start2, end2 time.Time) bool {
	return start1.Before(end2) && start2.Before(end1)
}

// Check returns conflict descriptions keyed by participant email for the
// given window. Participants without conflicts are absent from the map.
func (d *ConflictDetector) Check(start, end time.Time, emails []string, data *AvailabilityData) map[string][]string {
	conflicts := make(map[string][]string)

	for _, email := range emails {
		var found []string

		for _, interview := range data.Bookings {
			if !containsEmail(interview.InterviewerEmails, email) {
				continue
			}
			if Overlaps(interview.ScheduledStart, interview.ScheduledEnd, start, end) {
				found = append(found, fmt.Sprintf("Existing interview: %s (%s-%s)",
					interview.Title,
					interview.ScheduledStart.Format("15:04"),
					interview.ScheduledEnd.Format("15:04")))
			}
		}

		for _, slot := range data.BusySlots {
			if slot.Email != email || slot.AvailabilityType != entity.AvailabilityBusy {
				continue
			}
			if Overlaps(slot.StartTime, slot.EndTime, start, end) {
				note := "Unavailable"
				if slot.Notes != nil && *slot.Notes != "" {
					note = *slot.Notes
				}
				found = append(found, fmt.Sprintf("Busy: %s (%s-%s)",
					note,
					slot.StartTime.Format("15:04"),
					slot.EndTime.Format("15:04")))
			}
		}

		if len(found) > 0 {
			conflicts[email] = found
		}
	}

	return conflicts
}

// Annotate fills a slot's conflict and participant fields from the
// detection result, preserving the request's email order.
func (d *ConflictDetector) Annotate(slot *entity.TimeSlot, emails []string, data *AvailabilityData) {
	conflicts := d.Check(slot.StartTime, slot.EndTime, emails, data)

	for _, email := range emails {
		if found, ok := conflicts[email]; ok {
			slot.Conflicts = append(slot.Conflicts, found...)
			slot.ParticipantsUnavailable = append(slot.ParticipantsUnavailable, email)
		} else {
			slot.ParticipantsAvailable = append(slot.ParticipantsAvailable, email)
		}
	}
}

func containsEmail(list []string, email string) bool {
	for _, item := range list {
		if item == email {
			return true
		}
	}
	return false
}
