package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"expertcall/internal/domain"
	"expertcall/internal/handler/dto"
	"expertcall/internal/session"
)

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.BookingHold, error)
	ConfirmPayment(ctx context.Context, bookingID string) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

type ExpertSvc interface {
	Create(ctx context.Context, input domain.CreateExpertInput) (*domain.Expert, error)
	GetByID(ctx context.Context, id string) (*domain.Expert, error)
	List(ctx context.Context) ([]*domain.Expert, error)
	GenerateSlots(ctx context.Context, input domain.GenerateSlotsInput) ([]*domain.AvailabilitySlot, error)
	ListSlots(ctx context.Context, expertID, date string) ([]*domain.AvailabilitySlot, error)
}

type SessionSvc interface {
	Open(ctx context.Context, bookingID string) (session.Snapshot, error)
	Start(ctx context.Context, bookingID string) (session.Snapshot, error)
	Status(ctx context.Context, bookingID string) (session.Snapshot, error)
	End(ctx context.Context, bookingID string) (domain.CallOutcome, error)
}

type Handler struct {
	bookingService BookingSvc
	expertService  ExpertSvc
	sessionService SessionSvc
}

func NewHandler(bookingService BookingSvc, expertService ExpertSvc, sessionService SessionSvc) *Handler {
	return &Handler{
		bookingService: bookingService,
		expertService:  expertService,
		sessionService: sessionService,
	}
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateBookingInput{
		ExpertID:        req.ExpertID,
		SlotID:          req.SlotID,
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		ClientCompany:   req.ClientCompany,
		Topic:           req.Topic,
		HourlyRateCents: dto.DollarsToCents(req.HourlyRate),
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
	}

	hold, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingCreatedResponse{
		BookingID:    hold.Booking.ID,
		ClientSecret: hold.ClientSecret,
	})
}

func (h *Handler) GetBooking(c *ginext.Context) {
	booking, err := h.bookingService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ConfirmBookingPayment(c *ginext.Context) {
	if err := h.bookingService.ConfirmPayment(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "confirmed"})
}

// Experts

func (h *Handler) CreateExpert(c *ginext.Context) {
	var req dto.CreateExpertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateExpertInput{
		Name:            req.Name,
		Specialty:       req.Specialty,
		Email:           req.Email,
		HourlyRateCents: dto.DollarsToCents(req.HourlyRate),
		TelegramChatID:  req.TelegramChatID,
	}

	expert, err := h.expertService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpertResponse(expert))
}

func (h *Handler) GetExpert(c *ginext.Context) {
	expert, err := h.expertService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExpertResponse(expert))
}

func (h *Handler) ListExperts(c *ginext.Context) {
	experts, err := h.expertService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ExpertResponse, 0, len(experts))
	for _, e := range experts {
		resp = append(resp, dto.ToExpertResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Slots

func (h *Handler) GenerateSlots(c *ginext.Context) {
	var req dto.GenerateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.GenerateSlotsInput{
		ExpertID:  c.Param("id"),
		Date:      req.Date,
		StartHour: req.StartHour,
		EndHour:   req.EndHour,
	}

	slots, err := h.expertService.GenerateSlots(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, dto.ToSlotResponse(s))
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) ListSlots(c *ginext.Context) {
	slots, err := h.expertService.ListSlots(c.Request.Context(), c.Param("id"), c.Query("date"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, dto.ToSlotResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Sessions

func (h *Handler) OpenSession(c *ginext.Context) {
	snap, err := h.sessionService.Open(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(snap))
}

func (h *Handler) StartSession(c *ginext.Context) {
	snap, err := h.sessionService.Start(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(snap))
}

func (h *Handler) GetSession(c *ginext.Context) {
	snap, err := h.sessionService.Status(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(snap))
}

func (h *Handler) EndSession(c *ginext.Context) {
	outcome, err := h.sessionService.End(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOutcomeResponse(outcome))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrExpertNotFound),
		errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	// Проигранная гонка за слот отличима от прочих ошибок: клиент может
	// перезапросить свободные слоты.
	case errors.Is(err, domain.ErrSlotAlreadyBooked),
		errors.Is(err, domain.ErrBookingNotPending),
		errors.Is(err, domain.ErrBookingNotPayable),
		errors.Is(err, domain.ErrSlotExists),
		errors.Is(err, domain.ErrSessionNotWaiting),
		errors.Is(err, domain.ErrSessionNotActive):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrExpertEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
