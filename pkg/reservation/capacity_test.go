package reservation

import (
	"testing"

	"github.com/arnavshah/shift-planner-go/pkg/models"
)

func existing(id, user uint, startHour, endHour int) models.Reservation {
	return models.Reservation{ID: id, UserID: user, ShopID: 1, StartTime: at(0, startHour, 0), EndTime: at(0, endHour, 0)}
}

func TestOverlap(t *testing.T) {
	if !Overlap(at(0, 9, 0), at(0, 11, 0), at(0, 10, 0), at(0, 12, 0)) {
		t.Errorf("Expected 9-11 and 10-12 to overlap")
	}
	if Overlap(at(0, 9, 0), at(0, 10, 0), at(0, 10, 0), at(0, 11, 0)) {
		t.Errorf("Expected back-to-back ranges not to overlap")
	}
}

func TestCheckCapacity_UnderLimit(t *testing.T) {
	reservations := []models.Reservation{existing(1, 10, 9, 11)}
	booking := Booking{UserID: 20, Start: at(0, 10, 0), End: at(0, 12, 0)}
	expectReason(t, CheckCapacity(reservations, booking, 2), "")
}

func TestCheckCapacity_Full(t *testing.T) {
	reservations := []models.Reservation{
		existing(1, 10, 9, 11),
		existing(2, 11, 10, 12),
	}
	booking := Booking{UserID: 20, Start: at(0, 10, 30), End: at(0, 11, 30)}
	expectReason(t, CheckCapacity(reservations, booking, 2), Overbooked)
}

func TestCheckCapacity_ContainedReservationCounts(t *testing.T) {
	// the existing booking sits fully inside the new one
	reservations := []models.Reservation{existing(1, 10, 10, 11)}
	booking := Booking{UserID: 20, Start: at(0, 9, 0), End: at(0, 12, 0)}
	expectReason(t, CheckCapacity(reservations, booking, 1), Overbooked)
}

func TestCheckCapacity_BackToBack(t *testing.T) {
	reservations := []models.Reservation{
		existing(1, 10, 9, 10),
		existing(2, 11, 10, 11),
	}
	booking := Booking{UserID: 20, Start: at(0, 9, 0), End: at(0, 11, 0)}
	expectReason(t, CheckCapacity(reservations, booking, 2), "")
}

func TestCheckCapacity_SameUser(t *testing.T) {
	reservations := []models.Reservation{existing(1, 10, 9, 11)}
	booking := Booking{UserID: 10, Start: at(0, 10, 0), End: at(0, 12, 0)}
	expectReason(t, CheckCapacity(reservations, booking, 5), Overbooked)

	// moving the same reservation does not collide with itself
	booking.ExcludeID = 1
	expectReason(t, CheckCapacity(reservations, booking, 5), "")
}

func TestCheckCapacity_NoVolunteers(t *testing.T) {
	booking := Booking{UserID: 10, Start: at(0, 10, 0), End: at(0, 12, 0)}
	expectReason(t, CheckCapacity(nil, booking, 0), Overbooked)
}
