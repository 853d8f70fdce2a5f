package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"expertcall/internal/domain"
	"expertcall/internal/metrics"
	"expertcall/internal/service/ports"
)

// Полный час удерживается при создании; фактическая сумма считается по звонку.
const bookingDurationMinutes = 60

type BookingService struct {
	bookingRepo ports.BookingRepo
	slotRepo    ports.SlotRepo
	expertRepo  ports.ExpertRepo
	payments    ports.PaymentGateway
	notifier    ports.BookingNotifier
	metrics     *metrics.Metrics
	currency    string
	pendingTTL  time.Duration
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	slotRepo ports.SlotRepo,
	expertRepo ports.ExpertRepo,
	payments ports.PaymentGateway,
	notifier ports.BookingNotifier,
	m *metrics.Metrics,
	currency string,
	pendingTTL time.Duration,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		expertRepo:  expertRepo,
		payments:    payments,
		notifier:    notifier,
		metrics:     m,
		currency:    currency,
		pendingTTL:  pendingTTL,
		logger:      logger,
	}
}

// Create проводит бронирование фиксированной последовательностью шагов:
// бронь → захват слота → платёжный интент → дозапись интента. Откатов нет:
// провал после захвата слота оставляет pending-бронь, её подберёт sweeper.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.BookingHold, error) {
	normalizeBookingInput(&input)
	if err := validateBookingInput(input); err != nil {
		return nil, err
	}

	expert, err := s.expertRepo.GetByID(ctx, input.ExpertID)
	if err != nil {
		return nil, fmt.Errorf("check expert: %w", err)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:               uuid.New().String(),
		ExpertID:         input.ExpertID,
		ClientName:       input.ClientName,
		ClientEmail:      input.ClientEmail,
		ClientCompany:    input.ClientCompany,
		Topic:            input.Topic,
		SlotID:           input.SlotID,
		Date:             input.Date,
		StartTime:        input.StartTime,
		EndTime:          input.EndTime,
		DurationMinutes:  bookingDurationMinutes,
		HourlyRateCents:  input.HourlyRateCents,
		TotalAmountCents: input.HourlyRateCents,
		Status:           domain.BookingStatusPending,
		PaymentStatus:    domain.PaymentStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	// Бронь создаётся ДО захвата слота: сбой дальше не оставит занятого
	// слота без записи, на которую можно сослаться.
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if err = s.slotRepo.Reserve(ctx, input.SlotID, booking.ID); err != nil {
		if errors.Is(err, domain.ErrSlotAlreadyBooked) {
			s.metrics.ReservationConflicts.Inc()
			s.logger.Info("slot reservation lost",
				logger.String("booking_id", booking.ID),
				logger.String("slot_id", input.SlotID),
			)
		}
		return nil, fmt.Errorf("reserve slot: %w", err)
	}

	intent, err := s.payments.CreateIntent(ctx, booking.TotalAmountCents, s.currency, map[string]string{
		"booking_id":   booking.ID,
		"expert_id":    booking.ExpertID,
		"client_email": booking.ClientEmail,
	})
	if err != nil {
		s.metrics.PaymentIntentErrors.Inc()
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	if err = s.bookingRepo.SetPaymentIntent(ctx, booking.ID, intent.ID); err != nil {
		return nil, fmt.Errorf("backfill payment intent: %w", err)
	}
	booking.PaymentIntentID = &intent.ID

	s.metrics.BookingsCreated.Inc()
	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("expert_id", booking.ExpertID),
		logger.String("slot_id", booking.SlotID),
		logger.Int64("total_amount_cents", booking.TotalAmountCents),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), expert, booking)

	return &domain.BookingHold{Booking: booking, ClientSecret: intent.ClientSecret}, nil
}

// ConfirmPayment обрабатывает внешнее событие успешной оплаты.
func (s *BookingService) ConfirmPayment(ctx context.Context, bookingID string) error {
	if err := s.bookingRepo.ConfirmPayment(ctx, bookingID); err != nil {
		return fmt.Errorf("confirm payment: %w", err)
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", bookingID),
	)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		s.logger.Error("failed to get booking for notification",
			logger.String("booking_id", bookingID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	expert, err := s.expertRepo.GetByID(ctx, booking.ExpertID)
	if err != nil {
		s.logger.Error("failed to get expert for notification",
			logger.String("expert_id", booking.ExpertID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), expert, booking)

	return nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

// SweepExpired отменяет зависшие pending-брони и освобождает их слоты.
func (s *BookingService) SweepExpired(ctx context.Context) ([]*domain.Booking, error) {
	cancelled, err := s.bookingRepo.CancelExpired(ctx, s.pendingTTL)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}

	if len(cancelled) == 0 {
		return cancelled, nil
	}

	ids := make([]string, len(cancelled))
	for i, b := range cancelled {
		ids[i] = b.ID
	}
	if err = s.slotRepo.Release(ctx, ids); err != nil {
		return nil, fmt.Errorf("release slots: %w", err)
	}

	s.logger.Info("expired bookings cancelled",
		logger.Int("count", len(cancelled)),
	)

	go s.notifyCancelled(context.WithoutCancel(ctx), cancelled)

	return cancelled, nil
}

func (s *BookingService) notifyCancelled(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		expert, err := s.expertRepo.GetByID(ctx, b.ExpertID)
		if err != nil {
			s.logger.Error("failed to get expert for cancel notification",
				logger.String("expert_id", b.ExpertID),
			)
			continue
		}

		s.notifier.NotifyBookingCancelled(ctx, expert, b)
	}
}
