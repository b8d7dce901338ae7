package reservation

import (
	"github.com/arnavshah/shift-planner-go/pkg/calendar"
	"github.com/arnavshah/shift-planner-go/pkg/models"
)

// Planning buckets reservations into the seven days of the anchored week.
// A reservation lands on a day when it starts on or after the day's midnight
// and ends before the next midnight; anything else is left out.
func Planning(anchor calendar.WeekAnchor, reservations []models.Reservation) [7][]models.Reservation {
	var week [7][]models.Reservation
	for day := 0; day < 7; day++ {
		dayStart := anchor.Day(day)
		dayEnd := calendar.AddDays(dayStart, 1)
		week[day] = []models.Reservation{}
		for _, r := range reservations {
			if r.StartTime.Before(dayStart) || !r.EndTime.Before(dayEnd) {
				continue
			}
			week[day] = append(week[day], r)
		}
	}
	return week
}
