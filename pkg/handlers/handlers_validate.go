package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arnavshah/shift-planner-go/pkg/calendar"
	"github.com/arnavshah/shift-planner-go/pkg/models"
	"github.com/arnavshah/shift-planner-go/pkg/reservation"
)

// ValidateSchedule checks a window against a schedule sent in the request body
func (h *Handler) ValidateSchedule(c *gin.Context) {
	var req models.CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	window, err := h.window(&req)
	if err != nil {
		badInput(c, err)
		return
	}

	var schedule *models.ShopSchedule
	if req.Schedule != nil {
		schedule, err = req.Schedule.ToSchedule(h.Location)
		if err != nil {
			badInput(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, reservation.Validate(schedule, window))
}

// CheckShop checks a window against the stored schedule of shop :id
func (h *Handler) CheckShop(c *gin.Context) {
	id, ok := shopID(c)
	if !ok {
		return
	}

	var req models.CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	window, err := h.window(&req)
	if err != nil {
		badInput(c, err)
		return
	}

	schedule, err := h.loadSchedule(c.Request.Context(), id)
	if err != nil {
		h.Log.Error("schedule lookup failed", zap.Uint("shop_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load shop"})
		return
	}

	c.JSON(http.StatusOK, reservation.Validate(schedule, window))
}

// window builds the proposed window of a check request. The week anchor is
// taken from monday, then from year+week, and otherwise from the start date.
func (h *Handler) window(req *models.CheckRequest) (models.ProposedWindow, error) {
	var w models.ProposedWindow

	start, err := calendar.ParseNetworkInstant(req.Start, h.Location)
	if err != nil {
		return w, err
	}
	end, err := calendar.ParseNetworkInstant(req.End, h.Location)
	if err != nil {
		return w, err
	}
	w.Start, w.End = start, end

	switch {
	case req.Monday != "":
		w.Anchor, err = calendar.ParseMondayAnchor(req.Monday, h.Location)
	case req.Year != 0:
		w.Anchor, err = calendar.AnchorFromISOWeek(req.Year, req.Week, h.Location)
	}
	if err != nil {
		return w, err
	}

	if req.Day != nil && *req.Day == reservation.AnyDay {
		w.Day = reservation.AnyDay
	}
	return w, nil
}
