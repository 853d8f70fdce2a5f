package ports

import (
	"context"

	"expertcall/internal/domain"
)

type ExpertRepo interface {
	Create(ctx context.Context, e *domain.Expert) error
	GetByID(ctx context.Context, id string) (*domain.Expert, error)
	List(ctx context.Context) ([]*domain.Expert, error)
}
