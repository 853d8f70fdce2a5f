package dto

import (
	"time"

	"expertcall/internal/domain"
	"expertcall/internal/session"
)

// BookingCreatedResponse — то, что получает форма для перехода к оплате.
type BookingCreatedResponse struct {
	BookingID    string `json:"bookingId"`
	ClientSecret string `json:"clientSecret"`
}

type BookingResponse struct {
	ID               string  `json:"id"`
	ExpertID         string  `json:"expert_id"`
	ClientName       string  `json:"client_name"`
	ClientEmail      string  `json:"client_email"`
	ClientCompany    string  `json:"client_company,omitempty"`
	Topic            string  `json:"topic,omitempty"`
	SlotID           string  `json:"slot_id"`
	Date             string  `json:"date"`
	StartTime        string  `json:"start_time"`
	EndTime          string  `json:"end_time"`
	DurationMinutes  int     `json:"duration_minutes"`
	HourlyRateCents  int64   `json:"hourly_rate_cents"`
	TotalAmountCents int64   `json:"total_amount_cents"`
	Status           string  `json:"status"`
	PaymentStatus    string  `json:"payment_status"`
	PaymentIntentID  *string `json:"payment_intent_id,omitempty"`
	ActualMinutes    *int    `json:"actual_minutes,omitempty"`
	FinalChargeCents *int64  `json:"final_charge_cents,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

type ExpertResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Specialty       string `json:"specialty,omitempty"`
	Email           string `json:"email"`
	HourlyRateCents int64  `json:"hourly_rate_cents"`
	CreatedAt       string `json:"created_at"`
}

type SlotResponse struct {
	ID        string `json:"id"`
	ExpertID  string `json:"expert_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Booked    bool   `json:"booked"`
}

type SessionResponse struct {
	BookingID          string `json:"booking_id"`
	ExpertID           string `json:"expert_id"`
	ExpertName         string `json:"expert_name"`
	HourlyRateCents    int64  `json:"hourly_rate_cents"`
	State              string `json:"state"`
	ElapsedSeconds     int64  `json:"elapsed_seconds"`
	RemainingSeconds   int64  `json:"remaining_seconds"`
	BudgetSeconds      int64  `json:"budget_seconds"`
	Warning            bool   `json:"warning"`
	CurrentChargeCents int64  `json:"current_charge_cents"`
}

type OutcomeResponse struct {
	ActualMinutes    int   `json:"actual_minutes"`
	FinalChargeCents int64 `json:"final_charge_cents"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		ExpertID:         b.ExpertID,
		ClientName:       b.ClientName,
		ClientEmail:      b.ClientEmail,
		ClientCompany:    b.ClientCompany,
		Topic:            b.Topic,
		SlotID:           b.SlotID,
		Date:             b.Date,
		StartTime:        b.StartTime,
		EndTime:          b.EndTime,
		DurationMinutes:  b.DurationMinutes,
		HourlyRateCents:  b.HourlyRateCents,
		TotalAmountCents: b.TotalAmountCents,
		Status:           string(b.Status),
		PaymentStatus:    string(b.PaymentStatus),
		PaymentIntentID:  b.PaymentIntentID,
		ActualMinutes:    b.ActualMinutes,
		FinalChargeCents: b.FinalChargeCents,
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}
}

func ToExpertResponse(e *domain.Expert) ExpertResponse {
	return ExpertResponse{
		ID:              e.ID,
		Name:            e.Name,
		Specialty:       e.Specialty,
		Email:           e.Email,
		HourlyRateCents: e.HourlyRateCents,
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
	}
}

func ToSlotResponse(s *domain.AvailabilitySlot) SlotResponse {
	return SlotResponse{
		ID:        s.ID,
		ExpertID:  s.ExpertID,
		Date:      s.Date,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Booked:    s.Booked,
	}
}

func ToSessionResponse(snap session.Snapshot) SessionResponse {
	return SessionResponse{
		BookingID:          snap.BookingID,
		ExpertID:           snap.ExpertID,
		ExpertName:         snap.ExpertName,
		HourlyRateCents:    snap.HourlyRateCents,
		State:              string(snap.State),
		ElapsedSeconds:     snap.ElapsedSeconds,
		RemainingSeconds:   snap.RemainingSeconds,
		BudgetSeconds:      snap.BudgetSeconds,
		Warning:            snap.Warning,
		CurrentChargeCents: snap.CurrentChargeCents,
	}
}

func ToOutcomeResponse(o domain.CallOutcome) OutcomeResponse {
	return OutcomeResponse{
		ActualMinutes:    o.ActualMinutes,
		FinalChargeCents: o.FinalChargeCents,
	}
}
