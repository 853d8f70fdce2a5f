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

type SlotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSlotRepo(db *dbpg.DB) *SlotRepository {
	return &SlotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// BulkCreate вставляет дневную пачку слотов одной транзакцией.
func (r *SlotRepository) BulkCreate(ctx context.Context, slots []*domain.AvailabilitySlot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO availability_slots (id, expert_id, date, start_time, end_time, booked, created_at)
			  VALUES ($1, $2, $3, $4, $5, FALSE, $6)`
	for _, s := range slots {
		if _, err := tx.ExecContext(
			ctx, query, s.ID, s.ExpertID, s.Date, s.StartTime, s.EndTime, s.CreatedAt,
		); err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return domain.ErrSlotExists
			}
			return fmt.Errorf("insert slot: %w", err)
		}
	}

	return tx.Commit()
}

func (r *SlotRepository) GetByID(ctx context.Context, id string) (*domain.AvailabilitySlot, error) {
	query := `SELECT id, expert_id, date, start_time, end_time, booked, booking_id, created_at
			  FROM availability_slots
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	var s domain.AvailabilitySlot
	if err = row.Scan(&s.ID, &s.ExpertID, &s.Date, &s.StartTime, &s.EndTime, &s.Booked, &s.BookingID, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}

	return &s, nil
}

func (r *SlotRepository) ListByExpertDate(ctx context.Context, expertID, date string) ([]*domain.AvailabilitySlot, error) {
	query := `SELECT id, expert_id, date, start_time, end_time, booked, booking_id, created_at
			  FROM availability_slots
			  WHERE expert_id = $1 AND date = $2
			  ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, expertID, date)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var res []*domain.AvailabilitySlot
	for rows.Next() {
		var s domain.AvailabilitySlot
		if err = rows.Scan(&s.ID, &s.ExpertID, &s.Date, &s.StartTime, &s.EndTime, &s.Booked, &s.BookingID, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

// Reserve — единственная точка захвата слота: условный UPDATE срабатывает
// только если слот ещё свободен. Из двух конкурентных запросов коммитится один,
// второй получает ноль затронутых строк и различимую ошибку конфликта.
func (r *SlotRepository) Reserve(ctx context.Context, slotID, bookingID string) error {
	query := `UPDATE availability_slots
			  SET booked = TRUE, booking_id = $2
			  WHERE id = $1 AND booked = FALSE`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, slotID, bookingID)
	if err != nil {
		return fmt.Errorf("reserve slot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reserve rows affected: %w", err)
	}
	if rows == 0 {
		// Строка есть — слот занят, строки нет — слот не существует.
		var one int
		checkQuery := `SELECT 1 FROM availability_slots WHERE id = $1`
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, slotID)
		if err != nil {
			return fmt.Errorf("check slot: %w", err)
		}
		if err := row.Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrSlotNotFound
			}
			return fmt.Errorf("check slot scan: %w", err)
		}
		return domain.ErrSlotAlreadyBooked
	}

	return nil
}

// Release освобождает слоты отменённых бронирований.
func (r *SlotRepository) Release(ctx context.Context, bookingIDs []string) error {
	if len(bookingIDs) == 0 {
		return nil
	}

	query := `UPDATE availability_slots
			  SET booked = FALSE, booking_id = NULL
			  WHERE booking_id = ANY($1)`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, pq.Array(bookingIDs)); err != nil {
		return fmt.Errorf("release slots: %w", err)
	}

	return nil
}
