package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"expertcall/internal/domain"
	"expertcall/internal/metrics"
	"expertcall/internal/service/ports"
	"expertcall/internal/session"
)

type SessionService struct {
	manager     *session.Manager
	bookingRepo ports.BookingRepo
	expertRepo  ports.ExpertRepo
	metrics     *metrics.Metrics
	logger      logger.Logger
}

func NewSessionService(
	manager *session.Manager,
	bookingRepo ports.BookingRepo,
	expertRepo ports.ExpertRepo,
	m *metrics.Metrics,
	logger logger.Logger,
) *SessionService {
	return &SessionService{
		manager:     manager,
		bookingRepo: bookingRepo,
		expertRepo:  expertRepo,
		metrics:     m,
		logger:      logger,
	}
}

// Open готовит сессию страницы звонка: бронь должна быть оплачена,
// данные эксперта подтягиваются независимо.
func (s *SessionService) Open(ctx context.Context, bookingID string) (session.Snapshot, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return session.Snapshot{}, fmt.Errorf("get booking: %w", err)
	}

	if booking.Status != domain.BookingStatusConfirmed && booking.Status != domain.BookingStatusInProgress {
		return session.Snapshot{}, domain.ErrBookingNotPayable
	}

	expert, err := s.expertRepo.GetByID(ctx, booking.ExpertID)
	if err != nil {
		return session.Snapshot{}, fmt.Errorf("get expert: %w", err)
	}

	scheduledEnd, err := scheduledEndUTC(booking.Date, booking.EndTime)
	if err != nil {
		return session.Snapshot{}, fmt.Errorf("scheduled end: %w", err)
	}

	// Тарифицируем по ставке из брони — той, под которую сделан холд.
	sess := s.manager.Open(bookingID, expert.ID, expert.Name, booking.HourlyRateCents, scheduledEnd)
	snap, _ := sess.Tick()

	return snap, nil
}

// Start запускает отсчёт: бронь переводится в in-progress, момент старта
// фиксируется на сервере.
func (s *SessionService) Start(ctx context.Context, bookingID string) (session.Snapshot, error) {
	sess, err := s.manager.Get(bookingID)
	if err != nil {
		return session.Snapshot{}, err
	}

	if err = s.bookingRepo.MarkInProgress(ctx, bookingID); err != nil {
		return session.Snapshot{}, fmt.Errorf("mark in progress: %w", err)
	}

	snap, err := sess.Start()
	if err != nil {
		return snap, err
	}

	s.logger.Info("call started",
		logger.String("booking_id", bookingID),
	)

	return snap, nil
}

func (s *SessionService) Status(ctx context.Context, bookingID string) (session.Snapshot, error) {
	sess, err := s.manager.Get(bookingID)
	if err != nil {
		return session.Snapshot{}, err
	}

	snap, _ := sess.Tick()
	return snap, nil
}

// End завершает звонок и фиксирует итоговую сумму в брони. Запись итога идёт
// внутри перехода: если она не удалась, сессия остаётся активной и запрос
// завершения можно повторить.
func (s *SessionService) End(ctx context.Context, bookingID string) (domain.CallOutcome, error) {
	sess, err := s.manager.Get(bookingID)
	if err != nil {
		return domain.CallOutcome{}, err
	}

	outcome, err := sess.End(func(o domain.CallOutcome) error {
		if err := s.bookingRepo.Complete(ctx, bookingID, o); err != nil {
			return fmt.Errorf("complete booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.CallOutcome{}, err
	}

	s.manager.Remove(bookingID)

	s.metrics.SessionsEnded.Inc()
	s.metrics.FinalChargeCents.Observe(float64(outcome.FinalChargeCents))
	s.logger.Info("call ended",
		logger.String("booking_id", bookingID),
		logger.Int("actual_minutes", outcome.ActualMinutes),
		logger.Int64("final_charge_cents", outcome.FinalChargeCents),
	)

	return outcome, nil
}

func scheduledEndUTC(date, endTime string) (time.Time, error) {
	// Слот 23:00–24:00 несёт время конца за пределами суток.
	if endTime == "24:00" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			return time.Time{}, err
		}
		return day.Add(24 * time.Hour), nil
	}

	return time.Parse("2006-01-02 15:04", date+" "+endTime)
}
