package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"expertcall/internal/domain"
	"expertcall/internal/handler/dto"
	hmocks "expertcall/internal/handler/mocks"
	"expertcall/internal/session"
)

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, *hmocks.MockExpertSvc, *hmocks.MockSessionSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)
	expertSvc := hmocks.NewMockExpertSvc(t)
	sessionSvc := hmocks.NewMockSessionSvc(t)

	h := NewHandler(bookingSvc, expertSvc, sessionSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/confirm", h.ConfirmBookingPayment)
		api.POST("/experts", h.CreateExpert)
		api.GET("/experts", h.ListExperts)
		api.GET("/experts/:id", h.GetExpert)
		api.POST("/experts/:id/slots", h.GenerateSlots)
		api.GET("/experts/:id/slots", h.ListSlots)
		api.POST("/sessions/:bookingId", h.OpenSession)
		api.POST("/sessions/:bookingId/start", h.StartSession)
		api.GET("/sessions/:bookingId", h.GetSession)
		api.POST("/sessions/:bookingId/end", h.EndSession)
	}

	return bookingSvc, expertSvc, sessionSvc, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	hold := &domain.BookingHold{
		Booking:      &domain.Booking{ID: bookingID, Status: domain.BookingStatusPending},
		ClientSecret: "pi_123_secret",
	}

	bookingSvc.EXPECT().
		Create(mock.Anything, mock.Anything).
		Return(hold, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		ExpertID:    "e1",
		SlotID:      "e1-2025-06-01-14",
		ClientName:  "Alice",
		ClientEmail: "alice@example.com",
		HourlyRate:  500,
		Date:        "2025-06-01",
		StartTime:   "14:00",
		EndTime:     "15:00",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingCreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, bookingID, resp.BookingID)
	assert.Equal(t, "pi_123_secret", resp.ClientSecret)
}

func TestHandler_CreateBooking_ConvertsRateToCents(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	var got domain.CreateBookingInput
	bookingSvc.EXPECT().
		Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, input domain.CreateBookingInput) {
			got = input
		}).
		Return(&domain.BookingHold{Booking: &domain.Booking{ID: "b1"}, ClientSecret: "s"}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		ExpertID:    "e1",
		SlotID:      "s1",
		ClientName:  "Alice",
		ClientEmail: "alice@example.com",
		HourlyRate:  499.99,
		Date:        "2025-06-01",
		StartTime:   "14:00",
		EndTime:     "15:00",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(49999), got.HourlyRateCents)
}

func TestHandler_CreateBooking_SlotConflict(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().
		Create(mock.Anything, mock.Anything).
		Return(nil, domain.ErrSlotAlreadyBooked)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		ExpertID: "e1", SlotID: "s1", ClientName: "Alice",
		ClientEmail: "alice@example.com", HourlyRate: 500,
		Date: "2025-06-01", StartTime: "14:00", EndTime: "15:00",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_ValidationError(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().
		Create(mock.Anything, mock.Anything).
		Return(nil, domain.ErrValidation)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_InternalErrorIsOpaque(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().
		Create(mock.Anything, mock.Anything).
		Return(nil, errors.New("pq: connection refused"))

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		ExpertID: "e1", SlotID: "s1", ClientName: "Alice",
		ClientEmail: "alice@example.com", HourlyRate: 500,
		Date: "2025-06-01", StartTime: "14:00", EndTime: "15:00",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
	assert.NotContains(t, w.Body.String(), "pq:")
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().GetByID(mock.Anything, "nope").Return(nil, domain.ErrBookingNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/nope", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ConfirmBooking(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().ConfirmPayment(mock.Anything, "b1").Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/b1/confirm", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ConfirmBooking_AlreadyConfirmed(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().ConfirmPayment(mock.Anything, "b1").Return(domain.ErrBookingNotPending)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/b1/confirm", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Experts ---

func TestHandler_CreateExpert(t *testing.T) {
	_, expertSvc, _, r := setupRouter(t)

	expert := &domain.Expert{
		ID:              uuid.New().String(),
		Name:            "Dr. Bob",
		Email:           "bob@clinic.example",
		HourlyRateCents: 50000,
		CreatedAt:       time.Now(),
	}

	expertSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(expert, nil)

	w := doJSON(t, r, http.MethodPost, "/api/experts", dto.CreateExpertRequest{
		Name:       "Dr. Bob",
		Email:      "bob@clinic.example",
		HourlyRate: 500,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ExpertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Dr. Bob", resp.Name)
	assert.Equal(t, int64(50000), resp.HourlyRateCents)
}

func TestHandler_CreateExpert_EmailTaken(t *testing.T) {
	_, expertSvc, _, r := setupRouter(t)

	expertSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrExpertEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/api/experts", dto.CreateExpertRequest{
		Name:       "Dr. Bob",
		Email:      "bob@clinic.example",
		HourlyRate: 500,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GenerateSlots(t *testing.T) {
	_, expertSvc, _, r := setupRouter(t)

	slots := []*domain.AvailabilitySlot{
		{ID: "e1-2025-06-01-09", ExpertID: "e1", Date: "2025-06-01", StartTime: "09:00", EndTime: "10:00"},
		{ID: "e1-2025-06-01-10", ExpertID: "e1", Date: "2025-06-01", StartTime: "10:00", EndTime: "11:00"},
	}

	var got domain.GenerateSlotsInput
	expertSvc.EXPECT().
		GenerateSlots(mock.Anything, mock.Anything).
		Run(func(_ context.Context, input domain.GenerateSlotsInput) {
			got = input
		}).
		Return(slots, nil)

	w := doJSON(t, r, http.MethodPost, "/api/experts/e1/slots", dto.GenerateSlotsRequest{
		Date:      "2025-06-01",
		StartHour: 9,
		EndHour:   11,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "e1", got.ExpertID)

	var resp []dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "09:00", resp[0].StartTime)
}

func TestHandler_GenerateSlots_Duplicate(t *testing.T) {
	_, expertSvc, _, r := setupRouter(t)

	expertSvc.EXPECT().GenerateSlots(mock.Anything, mock.Anything).Return(nil, domain.ErrSlotExists)

	w := doJSON(t, r, http.MethodPost, "/api/experts/e1/slots", dto.GenerateSlotsRequest{
		Date:    "2025-06-01",
		EndHour: 11,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListSlots(t *testing.T) {
	_, expertSvc, _, r := setupRouter(t)

	expertSvc.EXPECT().
		ListSlots(mock.Anything, "e1", "2025-06-01").
		Return([]*domain.AvailabilitySlot{
			{ID: "s1", ExpertID: "e1", Booked: true},
		}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/experts/e1/slots?date=2025-06-01", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.True(t, resp[0].Booked)
}

// --- Sessions ---

func TestHandler_OpenSession(t *testing.T) {
	_, _, sessionSvc, r := setupRouter(t)

	snap := session.Snapshot{
		BookingID:       "b1",
		ExpertName:      "Dr. Bob",
		HourlyRateCents: 50000,
		State:           session.StateWaiting,
		BudgetSeconds:   3600,
	}

	sessionSvc.EXPECT().Open(mock.Anything, "b1").Return(snap, nil)

	w := doJSON(t, r, http.MethodPost, "/api/sessions/b1", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "waiting", resp.State)
	assert.Equal(t, int64(3600), resp.BudgetSeconds)
}

func TestHandler_OpenSession_UnpaidBooking(t *testing.T) {
	_, _, sessionSvc, r := setupRouter(t)

	sessionSvc.EXPECT().Open(mock.Anything, "b1").Return(session.Snapshot{}, domain.ErrBookingNotPayable)

	w := doJSON(t, r, http.MethodPost, "/api/sessions/b1", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetSession_NotFound(t *testing.T) {
	_, _, sessionSvc, r := setupRouter(t)

	sessionSvc.EXPECT().Status(mock.Anything, "b1").Return(session.Snapshot{}, domain.ErrSessionNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/sessions/b1", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_StartSession_AlreadyActive(t *testing.T) {
	_, _, sessionSvc, r := setupRouter(t)

	sessionSvc.EXPECT().Start(mock.Anything, "b1").Return(session.Snapshot{}, domain.ErrSessionNotWaiting)

	w := doJSON(t, r, http.MethodPost, "/api/sessions/b1/start", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_EndSession(t *testing.T) {
	_, _, sessionSvc, r := setupRouter(t)

	sessionSvc.EXPECT().
		End(mock.Anything, "b1").
		Return(domain.CallOutcome{ActualMinutes: 25, FinalChargeCents: 20833}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/sessions/b1/end", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.OutcomeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 25, resp.ActualMinutes)
	assert.Equal(t, int64(20833), resp.FinalChargeCents)
}
