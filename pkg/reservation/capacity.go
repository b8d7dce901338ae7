package reservation

import (
	"sort"
	"time"

	"github.com/arnavshah/shift-planner-go/pkg/models"
)

// Booking is a reservation about to be created or moved
type Booking struct {
	UserID    uint
	Start     time.Time
	End       time.Time
	ExcludeID uint // reservation being updated, ignored when counting
}

// Overlap checks if two time ranges overlap
func Overlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// CheckCapacity rejects a booking that overlaps another booking of the same user,
// or that would put more than volunteers people in the shop at any instant.
func CheckCapacity(existing []models.Reservation, booking Booking, volunteers int) Result {
	type change struct {
		at    time.Time
		delta int
	}

	var changes []change
	for _, r := range existing {
		if booking.ExcludeID != 0 && r.ID == booking.ExcludeID {
			continue
		}
		if !Overlap(booking.Start, booking.End, r.StartTime, r.EndTime) {
			continue
		}
		if r.UserID == booking.UserID {
			return Invalid(Overbooked)
		}
		changes = append(changes, change{r.StartTime, 1}, change{r.EndTime, -1})
	}

	// Departures sort before arrivals at the same instant so back-to-back bookings never stack
	sort.Slice(changes, func(i, j int) bool {
		if changes[i].at.Equal(changes[j].at) {
			return changes[i].delta < changes[j].delta
		}
		return changes[i].at.Before(changes[j].at)
	})

	if volunteers < 1 {
		return Invalid(Overbooked)
	}
	present := 1 // the booking itself
	for _, c := range changes {
		present += c.delta
		if present > volunteers {
			return Invalid(Overbooked)
		}
	}
	return Valid()
}
