package reservation

import (
	"time"

	"github.com/arnavshah/shift-planner-go/pkg/calendar"
	"github.com/arnavshah/shift-planner-go/pkg/models"
)

// AnyDay is the ProposedWindow.Day value that skips the weekday checks, used
// before a shop's recurring schedule is loaded.
const AnyDay = -1

// Validate decides whether window can be booked against schedule. Failures are
// reported in a fixed order: missing schedule, closed day, closed time, end
// before start, then the duration bounds. Validate never mutates its inputs.
func Validate(schedule *models.ShopSchedule, window models.ProposedWindow) Result {
	if schedule == nil {
		return Invalid(ShopNotLoaded)
	}

	start := calendar.MinutesOfDay(window.Start)
	end, onStartDay := endMinute(window.Start, window.End)

	if window.Day != AnyDay {
		day := calendar.WeekdayIndex(window.Start)
		anchor := window.Anchor
		if anchor.IsZero() {
			anchor = calendar.AnchorOf(window.Start)
		}

		live := LiveRanges(schedule, anchor, day)
		if len(live) == 0 {
			return Invalid(NotOpenDay)
		}
		if !onStartDay || !anyContains(live, start, end) {
			return Invalid(NotOpenTime)
		}
	}

	duration := end - start
	if duration < 0 {
		return Invalid(EndBeforeStart)
	}
	if duration < schedule.MinTime {
		return invalidWith(TooShort, "min_time", schedule.MinTime)
	}
	if duration > schedule.MaxTime {
		return invalidWith(TooLong, "max_time", schedule.MaxTime)
	}
	return Valid()
}

// LiveRanges returns the open ranges of weekday day whose occurrence in the
// anchored week overlaps the shop's active span. An occurrence is live when its
// day ends after available_from and starts no later than available_until.
func LiveRanges(schedule *models.ShopSchedule, anchor calendar.WeekAnchor, day int) []models.OpenRange {
	var live []models.OpenRange
	for _, r := range schedule.RangesOn(day) {
		dayStart := calendar.DateOfWeekday(anchor, r.Day)
		dayEnd := calendar.AddDays(dayStart, 1)
		if !dayEnd.After(schedule.AvailableFrom) || dayStart.After(schedule.AvailableUntil) {
			continue
		}
		live = append(live, r)
	}
	return live
}

// endMinute returns the minute of day end falls on and whether it is on start's
// day. The midnight right after start's day counts as EndOfDay of that day.
func endMinute(start, end time.Time) (int, bool) {
	if end.Equal(calendar.AddDays(calendar.StartOfDay(start), 1)) {
		return calendar.EndOfDay, true
	}
	return calendar.MinutesOfDay(end), sameDay(start, end)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// anyContains reports whether a single range holds [start, end). A booking
// may end exactly when a range closes but may not spill into the next range.
func anyContains(ranges []models.OpenRange, start, end int) bool {
	for _, r := range ranges {
		if start >= r.StartTime.Minutes() && start < r.EndTime.Minutes() && end <= r.EndTime.Minutes() {
			return true
		}
	}
	return false
}
