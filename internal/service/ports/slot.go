package ports

import (
	"context"

	"expertcall/internal/domain"
)

type SlotRepo interface {
	BulkCreate(ctx context.Context, slots []*domain.AvailabilitySlot) error
	GetByID(ctx context.Context, id string) (*domain.AvailabilitySlot, error)
	ListByExpertDate(ctx context.Context, expertID, date string) ([]*domain.AvailabilitySlot, error)
	Reserve(ctx context.Context, slotID, bookingID string) error
	Release(ctx context.Context, bookingIDs []string) error
}
