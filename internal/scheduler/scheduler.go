package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"expertcall/internal/domain"
)

type BookingSweeper interface {
	SweepExpired(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler периодически отменяет pending-брони, не дождавшиеся оплаты.
type Scheduler struct {
	bookingService BookingSweeper
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService BookingSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("sweeper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.bookingService.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("failed to sweep expired bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range cancelled {
		s.logger.Info("booking expired",
			logger.String("booking_id", b.ID),
			logger.String("expert_id", b.ExpertID),
			logger.String("slot_id", b.SlotID),
		)
	}
}
