package reservationRepo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fixhub/models"
)

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		raw  any
		want models.ReservationStatus
	}{
		{true, models.ReservationAccepted},
		{false, models.ReservationPending},
		{"accepted", models.ReservationAccepted},
		{"Accepted", models.ReservationAccepted},
		{"CONFIRMED", models.ReservationAccepted},
		{" confirmed ", models.ReservationAccepted},
		{"cancelled", models.ReservationCancelled},
		{"canceled", models.ReservationCancelled},
		{"Declined", models.ReservationCancelled},
		{"rejected", models.ReservationCancelled},
		{"completed", models.ReservationCompleted},
		{"done", models.ReservationCompleted},
		{"pending", models.ReservationPending},
		{"", models.ReservationPending},
		{"something else", models.ReservationPending},
		{nil, models.ReservationPending},
		{int32(1), models.ReservationPending},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, normalizeStatus(tc.raw), "raw=%v", tc.raw)
	}
}

func TestToModelNormalizesLegacyDocument(t *testing.T) {
	created := time.Date(2025, 9, 10, 13, 45, 0, 0, time.UTC)
	doc := reservationDoc{
		ID:           "res-1",
		TechnicianID: "tech-1",
		CustomerID:   "cust-1",
		Date:         "2025-09-10",
		TimeSlot:     "2:00 PM",
		Status:       true,
		CreatedAtMs:  created.UnixMilli(),
		Service:      "plumbing",
	}

	res := doc.toModel()
	assert.Equal(t, models.ReservationAccepted, res.Status)
	assert.True(t, res.CreatedAt.Equal(created))
	assert.Equal(t, "2:00 PM", res.TimeSlot)
}

func TestFromModelWritesTaggedStatus(t *testing.T) {
	created := time.Date(2025, 9, 10, 13, 45, 0, 0, time.UTC)
	res := models.Reservation{
		ID:           "res-1",
		TechnicianID: "tech-1",
		CustomerID:   "cust-1",
		Date:         "2025-09-10",
		TimeSlot:     "2:00 PM",
		Status:       models.ReservationPending,
		CreatedAt:    created,
	}

	doc := fromModel(&res)
	assert.Equal(t, "Pending", doc.Status)
	assert.Equal(t, created.UnixMilli(), doc.CreatedAtMs)

	// New writes survive a read back unchanged.
	back := doc.toModel()
	assert.Equal(t, res.Status, back.Status)
	assert.True(t, back.CreatedAt.Equal(created))
}
