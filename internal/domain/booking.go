package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in-progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusHeld     PaymentStatus = "held"
	PaymentStatusReleased PaymentStatus = "released"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Денежные суммы везде в центах.
type Booking struct {
	ID               string        `json:"id"`
	ExpertID         string        `json:"expert_id"`
	ClientName       string        `json:"client_name"`
	ClientEmail      string        `json:"client_email"`
	ClientCompany    string        `json:"client_company,omitempty"`
	Topic            string        `json:"topic,omitempty"`
	SlotID           string        `json:"slot_id"`
	Date             string        `json:"date"`
	StartTime        string        `json:"start_time"`
	EndTime          string        `json:"end_time"`
	DurationMinutes  int           `json:"duration_minutes"`
	HourlyRateCents  int64         `json:"hourly_rate_cents"`
	TotalAmountCents int64         `json:"total_amount_cents"`
	Status           BookingStatus `json:"status"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	PaymentIntentID  *string       `json:"payment_intent_id,omitempty"`
	ActualMinutes    *int          `json:"actual_minutes,omitempty"`
	FinalChargeCents *int64        `json:"final_charge_cents,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

type CreateBookingInput struct {
	ExpertID        string
	SlotID          string
	ClientName      string
	ClientEmail     string
	ClientCompany   string
	Topic           string
	HourlyRateCents int64
	Date            string
	StartTime       string
	EndTime         string
}

// BookingHold is what the creation flow hands back to the payment UI.
type BookingHold struct {
	Booking      *Booking
	ClientSecret string
}

// CallOutcome is the definitive billing result of an ended session.
type CallOutcome struct {
	ActualMinutes    int   `json:"actual_minutes"`
	FinalChargeCents int64 `json:"final_charge_cents"`
}
