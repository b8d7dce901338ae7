package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arnavshah/shift-planner-go/pkg/calendar"
	"github.com/arnavshah/shift-planner-go/pkg/models"
	"github.com/arnavshah/shift-planner-go/pkg/reservation"
)

// GetPlanning returns the reservations of shop :id for the week starting on :monday,
// one list per weekday. Other users' bookings are anonymised for non-admins.
func (h *Handler) GetPlanning(c *gin.Context) {
	id, ok := shopID(c)
	if !ok {
		return
	}

	anchor, err := calendar.ParseMondayAnchor(c.Param("monday"), h.Location)
	if errors.Is(err, calendar.ErrNotMonday) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "error.reservation.not_monday"})
		return
	}
	if err != nil {
		badInput(c, err)
		return
	}

	reservations, err := h.Store.Reservations(c.Request.Context(), id, anchor.Monday(), anchor.Next().Monday())
	if err != nil {
		h.Log.Error("planning lookup failed", zap.Uint("shop_id", id), zap.String("monday", anchor.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load planning"})
		return
	}

	userID, admin := caller(c)
	week := reservation.Planning(anchor, reservations)
	out := make([][]models.ReservedTimeRange, len(week))
	for day, rs := range week {
		out[day] = make([]models.ReservedTimeRange, 0, len(rs))
		for _, r := range rs {
			out[day] = append(out[day], reservedRange(r, userID, admin))
		}
	}
	c.JSON(http.StatusOK, out)
}

// Book validates and creates a reservation in shop :id for the caller.
// Admins bypass the opening hours, duration, past time and capacity checks.
func (h *Handler) Book(c *gin.Context) {
	id, ok := shopID(c)
	if !ok {
		return
	}

	var req models.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := calendar.ParseNetworkInstant(req.StartTime, h.Location)
	if err != nil {
		badInput(c, err)
		return
	}
	end := start.Add(time.Duration(req.DurationMinutes) * time.Minute)

	ctx := c.Request.Context()
	schedule, err := h.loadSchedule(ctx, id)
	if err != nil {
		h.Log.Error("schedule lookup failed", zap.Uint("shop_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load shop"})
		return
	}
	if schedule == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "error.shop.not_found"})
		return
	}

	userID, admin := caller(c)
	if !admin {
		if result := reservation.Validate(schedule, models.ProposedWindow{Start: start, End: end}); !result.Valid {
			c.JSON(http.StatusBadRequest, result)
			return
		}
		if start.Before(h.Now()) {
			c.JSON(http.StatusBadRequest, reservation.Invalid(reservation.PastTime))
			return
		}

		existing, err := h.Store.Reservations(ctx, id, start, end)
		if err != nil {
			h.Log.Error("reservation lookup failed", zap.Uint("shop_id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load reservations"})
			return
		}
		booking := reservation.Booking{UserID: userID, Start: start, End: end}
		if result := reservation.CheckCapacity(existing, booking, schedule.Volunteers); !result.Valid {
			c.JSON(http.StatusBadRequest, result)
			return
		}
	}

	created := models.Reservation{UserID: userID, ShopID: id, StartTime: start, EndTime: end}
	if err := h.Store.CreateReservation(ctx, &created); err != nil {
		h.Log.Error("reservation insert failed", zap.Uint("shop_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create reservation"})
		return
	}

	h.Log.Info("reservation created",
		zap.Uint("reservation_id", created.ID),
		zap.Uint("shop_id", id),
		zap.Uint("user_id", userID),
		zap.String("start", calendar.ToNetworkInstant(start)),
		zap.Int("duration_minutes", req.DurationMinutes),
	)
	c.JSON(http.StatusCreated, reservedRange(created, userID, admin))
}

func reservedRange(r models.Reservation, userID uint, admin bool) models.ReservedTimeRange {
	status := -1
	switch {
	case r.UserID == userID:
		status = -2
	case admin:
		status = int(r.UserID)
	}
	return models.ReservedTimeRange{
		ID:              r.ID,
		StartTime:       calendar.ToNetworkInstant(r.StartTime),
		DurationMinutes: int(r.EndTime.Sub(r.StartTime) / time.Minute),
		Status:          status,
		Validated:       r.Validated,
	}
}
