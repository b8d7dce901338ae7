package calendar

import (
	"time"
)

// WeekdayIndex returns the Monday-based weekday index (Monday=0 .. Sunday=6)
func WeekdayIndex(date time.Time) int {
	native := int(date.Weekday())
	if native == 0 {
		return 6
	}
	return native - 1
}

// StartOfDay returns midnight of date's calendar day in date's location
func StartOfDay(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, date.Location())
}

// AddDays moves date by n calendar days. The arithmetic runs on year/month/day
// so a DST transition in between never shifts the result to a neighbouring day.
func AddDays(date time.Time, n int) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d+n, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}

// MondayOf returns midnight of the Monday of the ISO week containing date
func MondayOf(date time.Time) time.Time {
	return StartOfDay(AddDays(date, -WeekdayIndex(date)))
}

// DateOfWeek returns midnight of the Monday of ISO week `week` of ISO year `year`.
// January 4th always falls in week 1, so week 1 starts on the Monday of that week.
// Weeks outside 1..WeeksInYear(year) roll over into the neighbouring years.
func DateOfWeek(year, week int, loc *time.Location) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, loc)
	return AddDays(MondayOf(jan4), (week-1)*7)
}

// DateOfWeekday returns the calendar date of weekday `day` (0..6) within the anchored week
func DateOfWeekday(anchor WeekAnchor, day int) time.Time {
	return anchor.Day(day)
}

// ISOWeekOf returns the ISO year and week number of date. The date is shifted to
// the Thursday of its week; that Thursday's year is the ISO year and its day of
// year divided by seven, rounded up, is the week number.
func ISOWeekOf(date time.Time) (year, week int) {
	thursday := AddDays(StartOfDay(date), 3-WeekdayIndex(date))
	return thursday.Year(), (thursday.YearDay()-1)/7 + 1
}

// WeekNumberOf returns the ISO week number of date
func WeekNumberOf(date time.Time) int {
	_, week := ISOWeekOf(date)
	return week
}

// WeeksInYear returns 53 for long ISO years and 52 otherwise.
// December 28th is always in the last week of its ISO year.
func WeeksInYear(year int) int {
	return WeekNumberOf(time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC))
}

// MinutesOfDay returns the wall-clock minute of day (0..1439) of instant in its own location
func MinutesOfDay(instant time.Time) int {
	return instant.Hour()*60 + instant.Minute()
}
