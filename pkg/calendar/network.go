package calendar

import (
	"time"
)

// Wire encoding of instants.
//
// IMPORTANT: these strings are NOT UTC instants. They carry the shop's local
// wall clock, written as if it were UTC, so that 09:30 on screen is 09:30 on the
// wire whatever timezone the reader runs in. The server side uses the same
// convention. Do not convert to true UTC before formatting and do not convert
// from UTC after parsing: both ends would then disagree by the local offset.
const (
	NetworkInstantLayout = "2006-01-02T15:04"
	NetworkDateLayout    = "2006-01-02"
)

// ToNetworkInstant formats the local wall clock of date at minute resolution.
// The offset of date's location is dropped by restamping its fields as UTC.
func ToNetworkInstant(date time.Time) string {
	return wallClockUTC(date).Format(NetworkInstantLayout)
}

// ToNetworkDate formats the local calendar date of date
func ToNetworkDate(date time.Time) string {
	return wallClockUTC(date).Format(NetworkDateLayout)
}

// ParseNetworkInstant reads an instant written with the wall-clock convention and
// places the same wall clock in loc. A date on its own reads as midnight. Any
// zone suffix present in text is ignored, seconds are dropped.
func ParseNetworkInstant(text string, loc *time.Location) (time.Time, error) {
	if len(text) == len(NetworkDateLayout) {
		return ParseNetworkDate(text, loc)
	}
	t, ok := parseWallClock(text)
	if !ok {
		return time.Time{}, &FormatError{Kind: "date-time", Input: text}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

// ParseNetworkDate reads a YYYY-MM-DD date as midnight in loc
func ParseNetworkDate(text string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(NetworkDateLayout, text, loc)
	if err != nil {
		return time.Time{}, &FormatError{Kind: "date", Input: text}
	}
	return t, nil
}

func wallClockUTC(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, date.Hour(), date.Minute(), 0, 0, time.UTC)
}
