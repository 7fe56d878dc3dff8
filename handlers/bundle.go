package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Technician endpoints.
	GetTechnicianByIDHandler gin.HandlerFunc

	// Availability endpoints.
	GetDayScheduleHandler     gin.HandlerFunc
	StreamAvailabilityHandler gin.HandlerFunc

	// Booking endpoints.
	AttemptBookingHandler         gin.HandlerFunc
	ListTechnicianBookingsHandler gin.HandlerFunc
	UpdateBookingStatusHandler    gin.HandlerFunc
}
