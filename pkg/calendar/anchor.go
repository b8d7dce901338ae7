package calendar

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotMonday      = errors.New("week anchor is not a Monday")
	ErrWeekOutOfRange = errors.New("iso week out of range")
)

// WeekAnchor identifies a calendar week by the midnight of its Monday.
// Every other representation of a week converts through the adapters below.
type WeekAnchor struct {
	monday time.Time
}

// AnchorOf returns the anchor of the week containing date
func AnchorOf(date time.Time) WeekAnchor {
	return WeekAnchor{monday: MondayOf(date)}
}

// ParseMondayAnchor reads a YYYY-MM-DD Monday date in loc
func ParseMondayAnchor(text string, loc *time.Location) (WeekAnchor, error) {
	date, err := ParseNetworkDate(text, loc)
	if err != nil {
		return WeekAnchor{}, err
	}
	if WeekdayIndex(date) != 0 {
		return WeekAnchor{}, fmt.Errorf("%s: %w", text, ErrNotMonday)
	}
	return WeekAnchor{monday: date}, nil
}

// AnchorFromISOWeek returns the anchor of ISO week `week` of ISO year `year`
func AnchorFromISOWeek(year, week int, loc *time.Location) (WeekAnchor, error) {
	if week < 1 || week > WeeksInYear(year) {
		return WeekAnchor{}, fmt.Errorf("%d-W%02d: %w", year, week, ErrWeekOutOfRange)
	}
	return WeekAnchor{monday: DateOfWeek(year, week, loc)}, nil
}

// IsZero reports whether the anchor was never set
func (a WeekAnchor) IsZero() bool {
	return a.monday.IsZero()
}

// Monday returns midnight of the anchored Monday
func (a WeekAnchor) Monday() time.Time {
	return a.monday
}

// ISOWeek returns the (ISO year, ISO week) pair of the anchored week
func (a WeekAnchor) ISOWeek() (year, week int) {
	return ISOWeekOf(a.monday)
}

// Day returns midnight of weekday `day` (0..6) of the anchored week
func (a WeekAnchor) Day(day int) time.Time {
	return AddDays(a.monday, day)
}

// Next returns the anchor of the following week
func (a WeekAnchor) Next() WeekAnchor {
	return WeekAnchor{monday: AddDays(a.monday, 7)}
}

func (a WeekAnchor) String() string {
	return ToNetworkDate(a.monday)
}
