package availability

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"fixhub/models"
)

// ledgerSubscription is the live held-slot projection for one
// (technician, date) pair. It refreshes its reservation snapshot from the
// store on every change-feed event, and re-derives the held set from that
// latest snapshot on a fixed timer so Pending holds lapse even when
// nothing is written. The snapshot is owned by this subscription alone.
type ledgerSubscription struct {
	engine       *DefaultAvailabilityEngine
	technicianID string
	date         string

	mu       sync.Mutex
	snapshot []models.Reservation
	onChange func(HeldSlotSet)
	closed   bool
}

// SubscribeToAvailability starts a ledger subscription and returns its
// cancel handle. The first held set is delivered asynchronously once the
// initial ledger read completes; transient read failures are logged and
// skipped, leaving the previous held set in effect.
func (e *DefaultAvailabilityEngine) SubscribeToAvailability(technicianID, date string, onChange func(HeldSlotSet)) (CancelFunc, error) {
	if technicianID == "" {
		return nil, errors.New("technician id is required")
	}
	if date == "" {
		return nil, errors.New("date is required")
	}
	if onChange == nil {
		return nil, errors.New("onChange callback is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	sub := &ledgerSubscription{
		engine:       e,
		technicianID: technicianID,
		date:         date,
		onChange:     onChange,
	}
	go sub.run(ctx)

	return func() {
		cancel()
		// Mark closed under the same lock deliveries take, so once this
		// returns no further onChange call can begin.
		sub.mu.Lock()
		sub.closed = true
		sub.mu.Unlock()
	}, nil
}

func (s *ledgerSubscription) run(ctx context.Context) {
	s.refresh(ctx)

	events := make(chan struct{}, 1)
	go s.watch(ctx, events)

	ticker := time.NewTicker(s.engine.recheckInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-events:
			// A genuine data change: re-read the ledger so the next
			// delivery reflects it.
			s.refresh(ctx)
		case <-ticker.C:
			// No data change, but time has passed: re-derive from the
			// latest snapshot so expired Pending holds fall out.
			s.deliver()
		}
	}
}

// watch forwards change-feed events into the events channel, restarting
// the feed with a short backoff if it fails. A pending event is never
// queued more than once; the refresh it triggers reads the full ledger
// anyway.
func (s *ledgerSubscription) watch(ctx context.Context, events chan<- struct{}) {
	for ctx.Err() == nil {
		err := s.engine.Reservations.Watch(ctx, s.technicianID, func() {
			select {
			case events <- struct{}{}:
			default:
			}
		})
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			s.engine.Logger.Warn("reservation change feed interrupted, restarting",
				zap.String("technicianId", s.technicianID),
				zap.Error(err),
			)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(2 * time.Second):
		}
	}
}

// refresh re-reads the technician's reservations and delivers a newly
// computed held set. On failure the previous snapshot stays in effect.
func (s *ledgerSubscription) refresh(ctx context.Context) {
	records, err := s.engine.Reservations.ListByTechnician(ctx, s.technicianID)
	if err != nil {
		if ctx.Err() == nil {
			s.engine.Logger.Warn("ledger refresh failed, keeping previous snapshot",
				zap.String("technicianId", s.technicianID),
				zap.String("date", s.date),
				zap.Error(err),
			)
		}
		return
	}

	s.mu.Lock()
	s.snapshot = records
	s.mu.Unlock()
	s.deliver()
}

// deliver recomputes the held set from the latest snapshot at the current
// clock reading and invokes the callback, unless the subscription has
// been cancelled.
func (s *ledgerSubscription) deliver() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.onChange(ComputeHeldSlots(s.snapshot, s.date, s.engine.now()))
}
