package dto

import "math"

// CreateBookingRequest повторяет внешний контракт формы бронирования
// (camelCase); порядок проверок полей задаёт сервис, поэтому binding-тегов нет.
type CreateBookingRequest struct {
	ExpertID      string  `json:"expertId"`
	SlotID        string  `json:"slotId"`
	ClientName    string  `json:"clientName"`
	ClientEmail   string  `json:"clientEmail"`
	ClientCompany string  `json:"clientCompany"`
	Topic         string  `json:"topic"`
	HourlyRate    float64 `json:"hourlyRate"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
}

type CreateExpertRequest struct {
	Name           string  `json:"name" binding:"required"`
	Specialty      string  `json:"specialty"`
	Email          string  `json:"email" binding:"required"`
	HourlyRate     float64 `json:"hourly_rate" binding:"required"`
	TelegramChatID *int64  `json:"telegram_chat_id"`
}

type GenerateSlotsRequest struct {
	Date      string `json:"date" binding:"required"`
	StartHour int    `json:"start_hour"`
	EndHour   int    `json:"end_hour" binding:"required"`
}

// DollarsToCents конвертирует ставку в центы один раз, на границе HTTP.
func DollarsToCents(v float64) int64 {
	return int64(math.Round(v * 100))
}
