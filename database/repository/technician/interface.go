package technicianRepo

import (
	"context"
	"errors"

	"fixhub/models"
)

// ErrNotFound is returned when a technician id resolves to nothing.
var ErrNotFound = errors.New("technician not found")

// TechnicianRepository reads technician profiles. Profiles are owned by
// the external onboarding flow; this server never writes them.
type TechnicianRepository interface {
	GetByID(ctx context.Context, id string) (*models.Technician, error)
	ListIDs(ctx context.Context) ([]string, error)
}
