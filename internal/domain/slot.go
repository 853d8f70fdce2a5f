package domain

import "time"

type AvailabilitySlot struct {
	ID        string    `json:"id"`
	ExpertID  string    `json:"expert_id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Booked    bool      `json:"booked"`
	BookingID *string   `json:"booking_id,omitempty"` // nil, пока слот свободен
	CreatedAt time.Time `json:"created_at"`
}

type GenerateSlotsInput struct {
	ExpertID  string
	Date      string
	StartHour int
	EndHour   int
}
