package ports

import (
	"context"

	"expertcall/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, expert *domain.Expert, booking *domain.Booking)
	NotifyBookingConfirmed(ctx context.Context, expert *domain.Expert, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, expert *domain.Expert, booking *domain.Booking)
}
