package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fixhub/models"
)

func TestParseTargetStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want models.ReservationStatus
		ok   bool
	}{
		{"accepted", models.ReservationAccepted, true},
		{"Accepted", models.ReservationAccepted, true},
		{" accepted ", models.ReservationAccepted, true},
		{"cancelled", models.ReservationCancelled, true},
		{"Cancelled", models.ReservationCancelled, true},
		{"declined", models.ReservationCancelled, true},
		{"Declined", models.ReservationCancelled, true},
		{"completed", models.ReservationCompleted, true},
		{"COMPLETED", models.ReservationCompleted, true},
		{"pending", "", false},
		{"", "", false},
		{"approved", "", false},
	}
	for _, tc := range cases {
		got, ok := parseTargetStatus(tc.raw)
		assert.Equal(t, tc.ok, ok, "raw=%q", tc.raw)
		assert.Equal(t, tc.want, got, "raw=%q", tc.raw)
	}
}

func TestUpdateBookingStatusAcceptsCapitalizedDecline(t *testing.T) {
	var gotTarget models.ReservationStatus
	engine := &stubEngine{
		transition: func(ctx context.Context, reservationID string, target models.ReservationStatus) error {
			gotTarget = target
			return nil
		},
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewBookingHandler(engine, zap.NewNop())
	router.PATCH("/api/bookings/:id/status", h.UpdateBookingStatus)

	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/res-1/status",
		bytes.NewBufferString(`{"status":"Declined"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.ReservationCancelled, gotTarget)
}
