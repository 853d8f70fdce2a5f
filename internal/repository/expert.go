package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"expertcall/internal/domain"
)

type ExpertRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewExpertRepo(db *dbpg.DB) *ExpertRepository {
	return &ExpertRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ExpertRepository) Create(ctx context.Context, e *domain.Expert) error {
	query := `INSERT INTO experts (id, name, specialty, email, hourly_rate_cents, telegram_chat_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Specialty, e.Email, e.HourlyRateCents, e.TelegramChatID, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrExpertEmailTaken
		}
		return fmt.Errorf("insert expert: %w", err)
	}

	return nil
}

func (r *ExpertRepository) GetByID(ctx context.Context, id string) (*domain.Expert, error) {
	query := `SELECT id, name, specialty, email, hourly_rate_cents, telegram_chat_id, created_at, updated_at
			  FROM experts
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get expert: %w", err)
	}

	var e domain.Expert
	if err = row.Scan(&e.ID, &e.Name, &e.Specialty, &e.Email, &e.HourlyRateCents, &e.TelegramChatID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrExpertNotFound
		}
		return nil, fmt.Errorf("scan expert: %w", err)
	}

	return &e, nil
}

func (r *ExpertRepository) List(ctx context.Context) ([]*domain.Expert, error) {
	query := `SELECT id, name, specialty, email, hourly_rate_cents, telegram_chat_id, created_at, updated_at
			  FROM experts
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list experts: %w", err)
	}
	defer rows.Close()

	var res []*domain.Expert
	for rows.Next() {
		var e domain.Expert
		if err = rows.Scan(&e.ID, &e.Name, &e.Specialty, &e.Email, &e.HourlyRateCents, &e.TelegramChatID, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan expert: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}
