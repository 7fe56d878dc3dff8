package reservationRepo

import (
	"context"
	"time"

	"fixhub/models"
)

// ReservationRepository is the document-store surface for the bookings
// collection. Reads are keyed by technician; writes are single-key sets
// under a store-generated id.
type ReservationRepository interface {
	Create(ctx context.Context, res *models.Reservation) (string, error)
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	ListByTechnician(ctx context.Context, technicianID string) ([]models.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status models.ReservationStatus) error
	Watch(ctx context.Context, technicianID string, notify func()) error
	CountExpiredPending(ctx context.Context, now time.Time) (int64, error)
}
