package domain

import "time"

type Expert struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Specialty       string    `json:"specialty"`
	Email           string    `json:"email"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	TelegramChatID  *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateExpertInput struct {
	Name            string
	Specialty       string
	Email           string
	HourlyRateCents int64
	TelegramChatID  *int64
}
