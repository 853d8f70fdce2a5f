package service

import (
	"fmt"
	"regexp"
	"strings"

	"expertcall/internal/domain"
)

const (
	minHourlyRateCents = 0       // exclusive
	maxHourlyRateCents = 1000000 // $10000, inclusive

	maxNameLen  = 255
	maxEmailLen = 255
	maxTopicLen = 1000
)

var (
	htmlTagRe   = regexp.MustCompile(`<[^>]*>`)
	dateRe      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockTimeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
	emailRe     = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)
)

// sanitize вырезает HTML-теги и обрезает пробелы; идемпотентна.
func sanitize(s string) string {
	return strings.TrimSpace(htmlTagRe.ReplaceAllString(s, ""))
}

func normalizeBookingInput(in *domain.CreateBookingInput) {
	in.ClientName = sanitize(in.ClientName)
	in.ClientEmail = strings.ToLower(sanitize(in.ClientEmail))
	in.ClientCompany = sanitize(in.ClientCompany)
	in.Topic = sanitize(in.Topic)
}

// validateBookingInput проверяет вход в фиксированном порядке: возвращается
// ошибка первого нарушенного ограничения.
func validateBookingInput(in domain.CreateBookingInput) error {
	if in.ExpertID == "" {
		return fmt.Errorf("%w: expert id is required", domain.ErrValidation)
	}
	if in.SlotID == "" {
		return fmt.Errorf("%w: slot id is required", domain.ErrValidation)
	}

	if in.ClientName == "" {
		return fmt.Errorf("%w: client name is required", domain.ErrValidation)
	}
	if in.ClientEmail == "" {
		return fmt.Errorf("%w: client email is required", domain.ErrValidation)
	}

	if in.HourlyRateCents <= minHourlyRateCents || in.HourlyRateCents > maxHourlyRateCents {
		return fmt.Errorf("%w: hourly rate must be greater than 0 and at most 10000", domain.ErrValidation)
	}

	if !dateRe.MatchString(in.Date) {
		return fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", domain.ErrValidation)
	}
	if !clockTimeRe.MatchString(in.StartTime) {
		return fmt.Errorf("%w: invalid start time format, expected HH:MM", domain.ErrValidation)
	}
	if !clockTimeRe.MatchString(in.EndTime) {
		return fmt.Errorf("%w: invalid end time format, expected HH:MM", domain.ErrValidation)
	}

	if len(in.ClientName) > maxNameLen {
		return fmt.Errorf("%w: client name is too long", domain.ErrValidation)
	}
	if len(in.ClientEmail) > maxEmailLen {
		return fmt.Errorf("%w: client email is too long", domain.ErrValidation)
	}
	if len(in.ClientCompany) > maxNameLen {
		return fmt.Errorf("%w: client company is too long", domain.ErrValidation)
	}
	if len(in.Topic) > maxTopicLen {
		return fmt.Errorf("%w: topic is too long", domain.ErrValidation)
	}

	if !emailRe.MatchString(in.ClientEmail) {
		return fmt.Errorf("%w: invalid client email", domain.ErrValidation)
	}

	return nil
}
