package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	reservationRepo "fixhub/database/repository/reservation"
	"fixhub/models"
	"fixhub/services/availability"
	"fixhub/utils"
)

// BookingHandler serves booking attempts and reservation management.
type BookingHandler struct {
	Engine availability.AvailabilityEngine
	Logger *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(engine availability.AvailabilityEngine, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Engine: engine, Logger: logger}
}

// AttemptBooking validates and stores a new Pending reservation.
func (h *BookingHandler) AttemptBooking(c *gin.Context) {
	var input struct {
		TechnicianID string `json:"technicianId" binding:"required"`
		CustomerID   string `json:"customerId" binding:"required"`
		Date         string `json:"date" binding:"required"`
		TimeSlot     string `json:"timeSlot" binding:"required"`
		Service      string `json:"service"`
		Notes        string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload", err.Error())
		return
	}

	slot, err := models.ParseSlotLabel(input.TimeSlot)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid time slot", err.Error())
		return
	}

	reservationID, err := h.Engine.AttemptBooking(c.Request.Context(), availability.BookingRequest{
		TechnicianID: input.TechnicianID,
		CustomerID:   input.CustomerID,
		Date:         input.Date,
		Slot:         slot,
		Service:      input.Service,
		Notes:        input.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrDateBlocked), errors.Is(err, availability.ErrSlotHeld):
			utils.JSONError(c, http.StatusConflict, "booking rejected", err.Error())
		case errors.Is(err, availability.ErrSlotInPast), errors.Is(err, availability.ErrSlotNotOffered):
			utils.JSONError(c, http.StatusUnprocessableEntity, "booking rejected", err.Error())
		default:
			utils.JSONError(c, http.StatusBadGateway, "failed to store booking", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reservationId": reservationID,
		"status":        models.ReservationPending,
	})
}

// ListTechnicianBookings returns a technician's reservations, optionally
// narrowed to one date.
func (h *BookingHandler) ListTechnicianBookings(c *gin.Context) {
	technicianID := c.Param("id")
	date := c.Query("date")

	reservations, err := h.Engine.ListReservations(c.Request.Context(), technicianID, date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": reservations})
}

// UpdateBookingStatus applies a technician-facing accept / decline /
// cancel / complete action.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	reservationID := c.Param("id")
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid status payload", err.Error())
		return
	}

	target, ok := parseTargetStatus(input.Status)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "unknown status", input.Status)
		return
	}

	err := h.Engine.TransitionStatus(c.Request.Context(), reservationID, target)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"id": reservationID, "status": target})
	case errors.Is(err, reservationRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "reservation not found", reservationID)
	case errors.Is(err, availability.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "invalid status transition", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "failed to update booking", err.Error())
	}
}

// parseTargetStatus accepts the canonical transition targets in any case.
func parseTargetStatus(raw string) (models.ReservationStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "accepted":
		return models.ReservationAccepted, true
	case "cancelled", "declined":
		return models.ReservationCancelled, true
	case "completed":
		return models.ReservationCompleted, true
	}
	return "", false
}
