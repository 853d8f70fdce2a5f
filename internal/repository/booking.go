package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"expertcall/internal/domain"
)

const bookingColumns = `id, expert_id, client_name, client_email, client_company, topic,
		slot_id, date, start_time, end_time, duration_minutes,
		hourly_rate_cents, total_amount_cents, status, payment_status,
		payment_intent_id, actual_minutes, final_charge_cents, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func scanBooking(row interface{ Scan(...any) error }) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.ExpertID, &b.ClientName, &b.ClientEmail, &b.ClientCompany, &b.Topic,
		&b.SlotID, &b.Date, &b.StartTime, &b.EndTime, &b.DurationMinutes,
		&b.HourlyRateCents, &b.TotalAmountCents, &b.Status, &b.PaymentStatus,
		&b.PaymentIntentID, &b.ActualMinutes, &b.FinalChargeCents, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.ExpertID, b.ClientName, b.ClientEmail, b.ClientCompany, b.Topic,
		b.SlotID, b.Date, b.StartTime, b.EndTime, b.DurationMinutes,
		b.HourlyRateCents, b.TotalAmountCents, b.Status, b.PaymentStatus,
		b.PaymentIntentID, b.ActualMinutes, b.FinalChargeCents, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// SetPaymentIntent дописывает в бронь идентификатор платёжного интента.
func (r *BookingRepository) SetPaymentIntent(ctx context.Context, bookingID, intentID string) error {
	query := `UPDATE bookings
			  SET payment_intent_id = $2, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, bookingID, intentID)
	if err != nil {
		return fmt.Errorf("set payment intent: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("payment intent rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

// ConfirmPayment атомарно переводит pending-бронь в confirmed после успешной оплаты.
func (r *BookingRepository) ConfirmPayment(ctx context.Context, bookingID string) error {
	query := `UPDATE bookings
			  SET status = $2, payment_status = $3, updated_at = now()
			  WHERE id = $1 AND status = $4`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, bookingID,
		domain.BookingStatusConfirmed, domain.PaymentStatusHeld,
		domain.BookingStatusPending,
	)
	if err != nil {
		return fmt.Errorf("confirm booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("confirm rows affected: %w", err)
	}
	if rows == 0 {
		return r.diagnoseTransition(ctx, bookingID, domain.BookingStatusPending)
	}

	return nil
}

// MarkInProgress переводит confirmed-бронь в in-progress при старте звонка.
func (r *BookingRepository) MarkInProgress(ctx context.Context, bookingID string) error {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, bookingID,
		domain.BookingStatusInProgress, domain.BookingStatusConfirmed,
	)
	if err != nil {
		return fmt.Errorf("mark in progress: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("in progress rows affected: %w", err)
	}
	if rows == 0 {
		return r.diagnoseTransition(ctx, bookingID, domain.BookingStatusConfirmed)
	}

	return nil
}

// Complete фиксирует итог звонка: статус, освобождение холда и фактическую сумму.
// Итог пишется в отдельные колонки, total_amount_cents (первоначальный холд) не трогаем.
func (r *BookingRepository) Complete(ctx context.Context, bookingID string, outcome domain.CallOutcome) error {
	query := `UPDATE bookings
			  SET status = $2, payment_status = $3,
			      actual_minutes = $4, final_charge_cents = $5, updated_at = now()
			  WHERE id = $1 AND status = $6`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, bookingID,
		domain.BookingStatusCompleted, domain.PaymentStatusReleased,
		outcome.ActualMinutes, outcome.FinalChargeCents,
		domain.BookingStatusInProgress,
	)
	if err != nil {
		return fmt.Errorf("complete booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("complete rows affected: %w", err)
	}
	if rows == 0 {
		return r.diagnoseTransition(ctx, bookingID, domain.BookingStatusInProgress)
	}

	return nil
}

// CancelExpired отменяет pending-брони старше ttl и возвращает их для освобождения слотов.
func (r *BookingRepository) CancelExpired(ctx context.Context, ttl time.Duration) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE status = $1
			    AND created_at + make_interval(secs => $3) < now()
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusPending, domain.BookingStatusCancelled,
		ttl.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cancelled booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// diagnoseTransition выясняет, почему условный UPDATE не затронул строк.
func (r *BookingRepository) diagnoseTransition(ctx context.Context, bookingID string, want domain.BookingStatus) error {
	var status domain.BookingStatus
	query := `SELECT status FROM bookings WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return fmt.Errorf("diagnose transition: %w", err)
	}
	if err := row.Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("diagnose transition scan: %w", err)
	}

	switch want {
	case domain.BookingStatusPending:
		return domain.ErrBookingNotPending
	case domain.BookingStatusConfirmed:
		return domain.ErrBookingNotPayable
	default:
		return domain.ErrSessionNotActive
	}
}
