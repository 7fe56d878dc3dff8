package technician

import (
	"context"

	"fixhub/models"
)

// Service exposes read-only technician profiles with caching.
type Service interface {
	// GetByID returns a profile, serving from cache when possible.
	GetByID(ctx context.Context, id string) (*models.Technician, error)
	// Invalidate drops the cached copy of one profile.
	Invalidate(ctx context.Context, id string) error
	// RefreshAll re-reads every profile into the cache. Run periodically
	// by the housekeeping worker.
	RefreshAll(ctx context.Context) error
}
