package ports

import (
	"context"
	"time"

	"expertcall/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	SetPaymentIntent(ctx context.Context, bookingID, intentID string) error
	ConfirmPayment(ctx context.Context, bookingID string) error
	MarkInProgress(ctx context.Context, bookingID string) error
	Complete(ctx context.Context, bookingID string, outcome domain.CallOutcome) error
	CancelExpired(ctx context.Context, ttl time.Duration) ([]*domain.Booking, error)
}
