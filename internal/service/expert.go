package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"expertcall/internal/domain"
	"expertcall/internal/service/ports"
)

type ExpertService struct {
	expertRepo ports.ExpertRepo
	slotRepo   ports.SlotRepo
}

func NewExpertService(expertRepo ports.ExpertRepo, slotRepo ports.SlotRepo) *ExpertService {
	return &ExpertService{
		expertRepo: expertRepo,
		slotRepo:   slotRepo,
	}
}

func (s *ExpertService) Create(ctx context.Context, input domain.CreateExpertInput) (*domain.Expert, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if input.HourlyRateCents <= minHourlyRateCents || input.HourlyRateCents > maxHourlyRateCents {
		return nil, fmt.Errorf("%w: hourly rate must be greater than 0 and at most 10000", domain.ErrValidation)
	}

	now := time.Now().UTC()
	expert := &domain.Expert{
		ID:              uuid.New().String(),
		Name:            sanitize(input.Name),
		Specialty:       sanitize(input.Specialty),
		Email:           input.Email,
		HourlyRateCents: input.HourlyRateCents,
		TelegramChatID:  input.TelegramChatID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.expertRepo.Create(ctx, expert); err != nil {
		return nil, fmt.Errorf("create expert: %w", err)
	}

	return expert, nil
}

func (s *ExpertService) GetByID(ctx context.Context, id string) (*domain.Expert, error) {
	return s.expertRepo.GetByID(ctx, id)
}

func (s *ExpertService) List(ctx context.Context) ([]*domain.Expert, error) {
	return s.expertRepo.List(ctx)
}

// GenerateSlots создаёт дневную сетку часовых слотов эксперта.
func (s *ExpertService) GenerateSlots(ctx context.Context, input domain.GenerateSlotsInput) ([]*domain.AvailabilitySlot, error) {
	if !dateRe.MatchString(input.Date) {
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", domain.ErrValidation)
	}
	if input.StartHour < 0 || input.EndHour > 24 || input.StartHour >= input.EndHour {
		return nil, fmt.Errorf("%w: start hour must be before end hour within 0..24", domain.ErrValidation)
	}

	if _, err := s.expertRepo.GetByID(ctx, input.ExpertID); err != nil {
		return nil, fmt.Errorf("check expert: %w", err)
	}

	now := time.Now().UTC()
	slots := make([]*domain.AvailabilitySlot, 0, input.EndHour-input.StartHour)
	for hour := input.StartHour; hour < input.EndHour; hour++ {
		slots = append(slots, &domain.AvailabilitySlot{
			ID:        fmt.Sprintf("%s-%s-%02d", input.ExpertID, input.Date, hour),
			ExpertID:  input.ExpertID,
			Date:      input.Date,
			StartTime: fmt.Sprintf("%02d:00", hour),
			EndTime:   fmt.Sprintf("%02d:00", hour+1),
			CreatedAt: now,
		})
	}

	if err := s.slotRepo.BulkCreate(ctx, slots); err != nil {
		return nil, fmt.Errorf("bulk create slots: %w", err)
	}

	return slots, nil
}

func (s *ExpertService) ListSlots(ctx context.Context, expertID, date string) ([]*domain.AvailabilitySlot, error) {
	if !dateRe.MatchString(date) {
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", domain.ErrValidation)
	}

	return s.slotRepo.ListByExpertDate(ctx, expertID, date)
}
