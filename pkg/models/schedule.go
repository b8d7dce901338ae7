package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/arnavshah/shift-planner-go/pkg/calendar"
)

var validate = validator.New()

// Check verifies the invariants a schedule snapshot must hold before it is validated against
func (s *ShopSchedule) Check() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid schedule: %w", err)
	}
	return nil
}

// RangesOn returns the open ranges of weekday day
func (s *ShopSchedule) RangesOn(day int) []OpenRange {
	var ranges []OpenRange
	for _, r := range s.OpenRanges {
		if r.Day == day {
			ranges = append(ranges, r)
		}
	}
	return ranges
}

// ToSchedule converts the wire snapshot into a schedule whose dates live in loc
func (s *ScheduleSnapshot) ToSchedule(loc *time.Location) (*ShopSchedule, error) {
	from, err := calendar.ParseNetworkInstant(s.AvailableFrom, loc)
	if err != nil {
		return nil, err
	}
	until, err := calendar.ParseNetworkInstant(s.AvailableUntil, loc)
	if err != nil {
		return nil, err
	}
	schedule := &ShopSchedule{
		OpenRanges:     s.OpenRanges,
		AvailableFrom:  from,
		AvailableUntil: until,
		MinTime:        s.MinTime,
		MaxTime:        s.MaxTime,
		Volunteers:     s.Volunteers,
	}
	if err := schedule.Check(); err != nil {
		return nil, err
	}
	return schedule, nil
}
