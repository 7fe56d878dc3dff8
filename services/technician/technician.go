package technician

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	technicianRepo "fixhub/database/repository/technician"
	"fixhub/models"
	"fixhub/utils"
)

// DefaultTechnicianService implements Service with a Redis cache-aside
// in front of the profile repository. The cache client is injected so
// nothing here depends on package-level state.
type DefaultTechnicianService struct {
	Repo   technicianRepo.TechnicianRepository
	Cache  *redis.Client
	Logger *zap.Logger
}

func cacheKey(id string) string {
	return utils.TechnicianCachePrefix + id
}

// GetByID returns a technician profile, serving from cache when the
// entry is fresh. Cache failures fall through to the repository.
func (s *DefaultTechnicianService) GetByID(ctx context.Context, id string) (*models.Technician, error) {
	if id == "" {
		return nil, errors.New("technician id is required")
	}

	if cached, err := s.Cache.Get(ctx, cacheKey(id)).Result(); err == nil {
		var tech models.Technician
		if err := json.Unmarshal([]byte(cached), &tech); err == nil {
			return &tech, nil
		}
		// Unreadable entry: drop it and fall through to the repository.
		s.Cache.Del(ctx, cacheKey(id))
	} else if !errors.Is(err, redis.Nil) {
		s.Logger.Warn("technician cache read failed", zap.String("id", id), zap.Error(err))
	}

	tech, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.store(ctx, tech)
	return tech, nil
}

// Invalidate drops the cached copy of one profile.
func (s *DefaultTechnicianService) Invalidate(ctx context.Context, id string) error {
	if err := s.Cache.Del(ctx, cacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate technician %s: %w", id, err)
	}
	return nil
}

// RefreshAll re-reads every technician profile into the cache.
func (s *DefaultTechnicianService) RefreshAll(ctx context.Context) error {
	ids, err := s.Repo.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list technicians for cache refresh: %w", err)
	}
	for _, id := range ids {
		tech, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			s.Logger.Warn("skipping technician during cache refresh", zap.String("id", id), zap.Error(err))
			continue
		}
		s.store(ctx, tech)
	}
	s.Logger.Info("technician cache refreshed", zap.Int("count", len(ids)))
	return nil
}

func (s *DefaultTechnicianService) store(ctx context.Context, tech *models.Technician) {
	data, err := json.Marshal(tech)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, cacheKey(tech.ID), data, utils.TechnicianCacheTTL).Err(); err != nil {
		s.Logger.Warn("technician cache write failed", zap.String("id", tech.ID), zap.Error(err))
	}
}

var _ Service = (*DefaultTechnicianService)(nil)
