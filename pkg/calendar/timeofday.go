package calendar

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// FormatError reports a time or date string that does not have any accepted shape.
// It signals bad upstream data rather than a user booking mistake.
type FormatError struct {
	Kind  string
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Kind, e.Input)
}

var dateTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// ParseTimeOfDay returns the minute of day written in text. It accepts HH:MM,
// HH:MM:SS or a full date-time, in which case only the written wall clock is used.
func ParseTimeOfDay(text string) (int, error) {
	var layout string
	switch len(text) {
	case 5:
		layout = "15:04"
	case 8:
		layout = "15:04:05"
	default:
		t, ok := parseWallClock(text)
		if !ok {
			return 0, &FormatError{Kind: "time of day", Input: text}
		}
		return MinutesOfDay(t), nil
	}
	t, err := time.Parse(layout, text)
	if err != nil {
		return 0, &FormatError{Kind: "time of day", Input: text}
	}
	return MinutesOfDay(t), nil
}

// MinutesToTime formats a minute of day as HH:MM
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func parseWallClock(text string) (time.Time, bool) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// EndOfDay is the minute a range closing at midnight ends on, written "24:00"
const EndOfDay = 24 * 60

// TimeOfDay is a minute of day. On the wire it is written as "HH:MM" and read
// from either such a string or a plain integer number of minutes.
type TimeOfDay int

func (t TimeOfDay) Minutes() int {
	return int(t)
}

func (t TimeOfDay) String() string {
	return MinutesToTime(int(t))
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if strings.HasPrefix(raw, `"`) {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		if text == "24:00" {
			*t = EndOfDay
			return nil
		}
		minutes, err := ParseTimeOfDay(text)
		if err != nil {
			return err
		}
		*t = TimeOfDay(minutes)
		return nil
	}
	var minutes int
	if err := json.Unmarshal(data, &minutes); err != nil {
		return &FormatError{Kind: "time of day", Input: raw}
	}
	if minutes < 0 || minutes > EndOfDay {
		return &FormatError{Kind: "time of day", Input: raw}
	}
	*t = TimeOfDay(minutes)
	return nil
}
