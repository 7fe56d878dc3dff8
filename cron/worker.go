package cron

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"fixhub/config"
	reservationRepo "fixhub/database/repository/reservation"
	"fixhub/services/technician"
)

const (
	// TypeCacheRefresh re-reads technician profiles into the Redis cache.
	TypeCacheRefresh = "technician:cache_refresh"
	// TypeExpiryAudit logs how many Pending reservations have outlived
	// their ten-minute hold. Expiry itself is computed at read time; this
	// task only gives the lapsed holds visibility.
	TypeExpiryAudit = "bookings:expiry_audit"
)

// InitHousekeeping starts the background worker and its schedule.
// Neither task ever mutates reservation records.
func InitHousekeeping(techSvc technician.Service, reservations reservationRepo.ReservationRepository, logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCacheRefresh, handleCacheRefresh(techSvc, logger))
	mux.HandleFunc(TypeExpiryAudit, handleExpiryAudit(reservations, logger))

	go func() {
		logger.Info("starting housekeeping worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("housekeeping worker stopped", zap.Error(err))
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	if _, err := scheduler.Register("@every 10m", asynq.NewTask(TypeCacheRefresh, nil)); err != nil {
		logger.Error("failed to schedule cache refresh", zap.Error(err))
	}
	if _, err := scheduler.Register("@every 1m", asynq.NewTask(TypeExpiryAudit, nil)); err != nil {
		logger.Error("failed to schedule expiry audit", zap.Error(err))
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("housekeeping scheduler stopped", zap.Error(err))
		}
	}()
}

func handleCacheRefresh(techSvc technician.Service, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		if err := techSvc.RefreshAll(ctx); err != nil {
			logger.Warn("technician cache refresh failed", zap.Error(err))
			return err
		}
		return nil
	}
}

func handleExpiryAudit(reservations reservationRepo.ReservationRepository, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		count, err := reservations.CountExpiredPending(ctx, time.Now())
		if err != nil {
			logger.Warn("expiry audit failed", zap.Error(err))
			return err
		}
		if count > 0 {
			logger.Info("pending reservations past their hold window", zap.Int64("count", count))
		}
		return nil
	}
}
