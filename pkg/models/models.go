package models

import (
	"time"

	"github.com/arnavshah/shift-planner-go/pkg/calendar"
)

// OpenRange represents one recurring weekly interval during which a shop accepts reservations
type OpenRange struct {
	ID        uint               `json:"id,omitempty"`
	Day       int                `json:"day" validate:"min=0,max=6"` // 0 = Monday, 6 = Sunday
	StartTime calendar.TimeOfDay `json:"start_time" validate:"min=0,max=1439"`
	EndTime   calendar.TimeOfDay `json:"end_time" validate:"min=1,max=1440,gtfield=StartTime"`
}

// ShopSchedule is the bookable window of a shop
type ShopSchedule struct {
	ShopID         uint        `json:"shop_id,omitempty"`
	OpenRanges     []OpenRange `json:"open_ranges" validate:"dive"`
	AvailableFrom  time.Time   `json:"available_from"`
	AvailableUntil time.Time   `json:"available_until" validate:"gtefield=AvailableFrom"`
	MinTime        int         `json:"min_time" validate:"min=0"`
	MaxTime        int         `json:"max_time" validate:"gtefield=MinTime"`
	Volunteers     int         `json:"volunteers" validate:"min=0"`
}

// ProposedWindow is a booking attempt. Day set to -1 skips the weekday checks;
// any other value is ignored and the weekday is taken from Start.
type ProposedWindow struct {
	Start  time.Time
	End    time.Time
	Anchor calendar.WeekAnchor
	Day    int
}

// Reservation is an existing booking as seen by the capacity check and the planning view
type Reservation struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	ShopID    uint      `json:"shop_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Validated bool      `json:"validated"`
}

// ScheduleSnapshot is the wire form of a ShopSchedule. Dates use the wall-clock encoding.
type ScheduleSnapshot struct {
	OpenRanges     []OpenRange `json:"open_ranges" binding:"required"`
	AvailableFrom  string      `json:"available_from" binding:"required"`
	AvailableUntil string      `json:"available_until" binding:"required"`
	MinTime        int         `json:"min_time"`
	MaxTime        int         `json:"max_time"`
	Volunteers     int         `json:"volunteers"`
}

// CheckRequest is the payload of the validation endpoints
type CheckRequest struct {
	Schedule *ScheduleSnapshot `json:"schedule,omitempty"`
	Start    string            `json:"start" binding:"required"`
	End      string            `json:"end" binding:"required"`
	Monday   string            `json:"monday,omitempty"`
	Year     int               `json:"year,omitempty"`
	Week     int               `json:"week,omitempty"`
	Day      *int              `json:"day,omitempty"`
}

// BookRequest is the payload of the booking endpoint
type BookRequest struct {
	StartTime       string `json:"start_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
}

// ReservedTimeRange is a reservation as returned to clients
type ReservedTimeRange struct {
	ID              uint   `json:"id"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Status          int    `json:"status"` // -1 booked by someone, -2 booked by the caller, >0 user id (admins only)
	Validated       bool   `json:"validated"`
}

// WeekResponse describes one ISO week
type WeekResponse struct {
	Year   int      `json:"year"`
	Week   int      `json:"week"`
	Monday string   `json:"monday"`
	Days   []string `json:"days"`
}
