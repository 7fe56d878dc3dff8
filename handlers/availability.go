package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fixhub/services/availability"
	"fixhub/utils"
)

// AvailabilityHandler serves the day schedule and the live availability
// stream.
type AvailabilityHandler struct {
	Engine availability.AvailabilityEngine
	Logger *zap.Logger
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(engine availability.AvailabilityEngine, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine, Logger: logger}
}

// GetDaySchedule returns the classified catalog and the plain offerable
// list for one technician and date.
func (h *AvailabilityHandler) GetDaySchedule(c *gin.Context) {
	technicianID := c.Param("technicianId")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "date query parameter is required", "expected date=YYYY-MM-DD")
		return
	}

	schedule, err := h.Engine.DaySchedule(c.Request.Context(), technicianID, date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute day schedule", err.Error())
		return
	}

	offerable := make([]string, 0, len(schedule))
	for _, view := range schedule {
		if view.State == availability.SlotAvailable {
			offerable = append(offerable, view.Label)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"technicianId": technicianID,
		"date":         date,
		"schedule":     schedule,
		"offerable":    offerable,
	})
}

// StreamAvailability streams held-slot snapshots over Server-Sent Events
// until the client disconnects. Each event carries the labels currently
// off the market for the requested date.
func (h *AvailabilityHandler) StreamAvailability(c *gin.Context) {
	technicianID := c.Param("technicianId")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "date query parameter is required", "expected date=YYYY-MM-DD")
		return
	}

	// Latest-wins buffer: a slow client sees the freshest snapshot, not a
	// backlog of stale ones.
	updates := make(chan []string, 1)
	cancel, err := h.Engine.SubscribeToAvailability(technicianID, date, func(held availability.HeldSlotSet) {
		labels := held.Labels()
		for {
			select {
			case updates <- labels:
				return
			default:
				select {
				case <-updates:
				default:
				}
			}
		}
	})
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to subscribe to availability", err.Error())
		return
	}
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case labels := <-updates:
			c.SSEvent("held", gin.H{"date": date, "heldSlots": labels})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
