package reservationRepo

import (
	"strings"
	"time"

	"fixhub/models"
)

// reservationDoc is the raw shape of a bookings document. Legacy writers
// stored status as a boolean or as strings of varying case, and creation
// time as epoch milliseconds; toModel normalizes both so nothing past
// this package ever branches on raw store values.
type reservationDoc struct {
	ID           string `bson:"id"`
	TechnicianID string `bson:"technicianId"`
	CustomerID   string `bson:"customerId"`
	Date         string `bson:"date"`
	TimeSlot     string `bson:"timeSlot"`
	Status       any    `bson:"status,omitempty"`
	CreatedAtMs  int64  `bson:"createdAtMs"`
	Service      string `bson:"service,omitempty"`
	Notes        string `bson:"notes,omitempty"`
}

func (d reservationDoc) toModel() models.Reservation {
	return models.Reservation{
		ID:           d.ID,
		TechnicianID: d.TechnicianID,
		CustomerID:   d.CustomerID,
		Date:         d.Date,
		TimeSlot:     d.TimeSlot,
		Status:       normalizeStatus(d.Status),
		CreatedAt:    time.UnixMilli(d.CreatedAtMs),
		Service:      d.Service,
		Notes:        d.Notes,
	}
}

func fromModel(res *models.Reservation) reservationDoc {
	return reservationDoc{
		ID:           res.ID,
		TechnicianID: res.TechnicianID,
		CustomerID:   res.CustomerID,
		Date:         res.Date,
		TimeSlot:     res.TimeSlot,
		Status:       string(res.Status),
		CreatedAtMs:  res.CreatedAt.UnixMilli(),
		Service:      res.Service,
		Notes:        res.Notes,
	}
}

// normalizeStatus maps every status representation found in stored
// documents onto the tagged enum. A boolean true means the technician
// accepted; anything missing or unrecognized is treated as Pending.
func normalizeStatus(raw any) models.ReservationStatus {
	switch v := raw.(type) {
	case bool:
		if v {
			return models.ReservationAccepted
		}
		return models.ReservationPending
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "accepted", "confirmed":
			return models.ReservationAccepted
		case "cancelled", "canceled", "declined", "rejected":
			return models.ReservationCancelled
		case "completed", "done":
			return models.ReservationCompleted
		}
	}
	return models.ReservationPending
}
