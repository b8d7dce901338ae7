package models

import (
	"errors"
	"testing"
	"time"

	"github.com/arnavshah/shift-planner-go/pkg/calendar"
)

func snapshot() *ScheduleSnapshot {
	return &ScheduleSnapshot{
		OpenRanges: []OpenRange{
			{Day: 0, StartTime: 9 * 60, EndTime: 12 * 60},
			{Day: 0, StartTime: 14 * 60, EndTime: 18 * 60},
		},
		AvailableFrom:  "2024-01-01",
		AvailableUntil: "2024-12-31T23:59",
		MinTime:        30,
		MaxTime:        120,
	}
}

func TestToSchedule(t *testing.T) {
	schedule, err := snapshot().ToSchedule(time.UTC)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if schedule.AvailableUntil.Hour() != 23 || schedule.AvailableUntil.Minute() != 59 {
		t.Errorf("Expected available_until at 23:59, got %v", schedule.AvailableUntil)
	}
	if len(schedule.RangesOn(0)) != 2 {
		t.Errorf("Expected 2 ranges on Monday, got %d", len(schedule.RangesOn(0)))
	}
	if len(schedule.RangesOn(2)) != 0 {
		t.Errorf("Expected no ranges on Wednesday, got %d", len(schedule.RangesOn(2)))
	}
}

func TestToSchedule_BadDate(t *testing.T) {
	snap := snapshot()
	snap.AvailableFrom = "01/01/2024"
	_, err := snap.ToSchedule(time.UTC)
	var formatErr *calendar.FormatError
	if !errors.As(err, &formatErr) {
		t.Errorf("Expected FormatError, got %v", err)
	}
}

func TestCheck(t *testing.T) {
	cases := map[string]func(s *ScheduleSnapshot){
		"day out of range":  func(s *ScheduleSnapshot) { s.OpenRanges[0].Day = 7 },
		"end before start":  func(s *ScheduleSnapshot) { s.OpenRanges[1].EndTime = 13 * 60 },
		"negative min time": func(s *ScheduleSnapshot) { s.MinTime = -1 },
		"max below min":     func(s *ScheduleSnapshot) { s.MaxTime = 10 },
		"until before from": func(s *ScheduleSnapshot) { s.AvailableUntil = "2023-12-31" },
	}
	for name, mutate := range cases {
		snap := snapshot()
		mutate(snap)
		if _, err := snap.ToSchedule(time.UTC); err == nil {
			t.Errorf("%s: expected the schedule to be rejected", name)
		}
	}
}
