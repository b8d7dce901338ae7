package reservation

import (
	"testing"

	"github.com/arnavshah/shift-planner-go/pkg/calendar"
	"github.com/arnavshah/shift-planner-go/pkg/models"
)

func TestPlanning(t *testing.T) {
	anchor := calendar.AnchorOf(at(2, 12, 0))
	reservations := []models.Reservation{
		{ID: 1, StartTime: at(0, 9, 0), EndTime: at(0, 10, 0)},
		{ID: 2, StartTime: at(0, 14, 0), EndTime: at(0, 15, 0)},
		{ID: 3, StartTime: at(4, 9, 0), EndTime: at(4, 11, 0)},
		{ID: 4, StartTime: at(6, 23, 0), EndTime: at(7, 0, 0)},   // ends on the next midnight
		{ID: 5, StartTime: at(7, 9, 0), EndTime: at(7, 10, 0)},   // next week
		{ID: 6, StartTime: at(-1, 9, 0), EndTime: at(-1, 10, 0)}, // previous week
	}

	week := Planning(anchor, reservations)

	counts := [7]int{2, 0, 0, 0, 1, 0, 0}
	for day, expected := range counts {
		if len(week[day]) != expected {
			t.Errorf("Expected %d reservations on day %d, got %d", expected, day, len(week[day]))
		}
	}
	if week[4][0].ID != 3 {
		t.Errorf("Expected reservation 3 on Friday, got %d", week[4][0].ID)
	}
	if week[1] == nil {
		t.Errorf("Expected empty days to be non-nil for JSON encoding")
	}
}
