package domain

import "errors"

var (
	ErrExpertNotFound  = errors.New("expert not found")
	ErrSlotNotFound    = errors.New("slot not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrSessionNotFound = errors.New("call session not found")
)

var (
	ErrSlotAlreadyBooked = errors.New("slot is already booked")
	ErrBookingNotPending = errors.New("booking is not in pending status")
	ErrBookingNotPayable = errors.New("booking is not confirmed for a call")
	ErrSlotExists        = errors.New("slots for this date already generated")
)

var (
	ErrSessionNotWaiting = errors.New("call session already started")
	ErrSessionNotActive  = errors.New("call session is not active")
)

var (
	ErrExpertEmailTaken = errors.New("expert email is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
