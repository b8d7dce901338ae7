package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arnavshah/shift-planner-go/pkg/calendar"
	"github.com/arnavshah/shift-planner-go/pkg/models"
)

// GetWeek describes ISO week :week of ISO year :year
func (h *Handler) GetWeek(c *gin.Context) {
	year, errYear := strconv.Atoi(c.Param("year"))
	week, errWeek := strconv.Atoi(c.Param("week"))
	if errYear != nil || errWeek != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and week must be integers"})
		return
	}

	anchor, err := calendar.AnchorFromISOWeek(year, week, h.Location)
	if err != nil {
		badInput(c, err)
		return
	}
	c.JSON(http.StatusOK, weekResponse(anchor))
}

// GetWeekOf describes the ISO week containing :date
func (h *Handler) GetWeekOf(c *gin.Context) {
	date, err := calendar.ParseNetworkInstant(c.Param("date"), h.Location)
	if err != nil {
		badInput(c, err)
		return
	}
	c.JSON(http.StatusOK, weekResponse(calendar.AnchorOf(date)))
}

func weekResponse(anchor calendar.WeekAnchor) models.WeekResponse {
	year, week := anchor.ISOWeek()
	days := make([]string, 7)
	for day := range days {
		days[day] = calendar.ToNetworkDate(anchor.Day(day))
	}
	return models.WeekResponse{
		Year:   year,
		Week:   week,
		Monday: anchor.String(),
		Days:   days,
	}
}
