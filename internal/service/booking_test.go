package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"expertcall/internal/domain"
	"expertcall/internal/metrics"
	"expertcall/internal/service/ports"
	"expertcall/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestMetrics() *metrics.Metrics {
	return metrics.New("expertcall_test", prometheus.NewRegistry())
}

type bookingFixture struct {
	bookingRepo *mocks.MockBookingRepo
	slotRepo    *mocks.MockSlotRepo
	expertRepo  *mocks.MockExpertRepo
	payments    *mocks.MockPaymentGateway
	notifier    *mocks.MockBookingNotifier
	svc         *BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	f := &bookingFixture{
		bookingRepo: mocks.NewMockBookingRepo(t),
		slotRepo:    mocks.NewMockSlotRepo(t),
		expertRepo:  mocks.NewMockExpertRepo(t),
		payments:    mocks.NewMockPaymentGateway(t),
		notifier:    mocks.NewMockBookingNotifier(t),
	}
	f.svc = NewBookingService(
		f.bookingRepo, f.slotRepo, f.expertRepo,
		f.payments, f.notifier, newTestMetrics(),
		"usd", 20*time.Minute, newTestLogger(t),
	)
	return f
}

func validInput() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		ExpertID:        "e1",
		SlotID:          "e1-2025-06-01-14",
		ClientName:      "Alice",
		ClientEmail:     "alice@example.com",
		ClientCompany:   "Acme",
		Topic:           "Architecture review",
		Date:            "2025-06-01",
		StartTime:       "14:00",
		EndTime:         "15:00",
		HourlyRateCents: 50000,
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	f := newBookingFixture(t)

	expert := &domain.Expert{ID: "e1", Name: "Dr. Bob", HourlyRateCents: 50000}

	f.expertRepo.EXPECT().GetByID(mock.Anything, "e1").Return(expert, nil)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.slotRepo.EXPECT().Reserve(mock.Anything, "e1-2025-06-01-14", mock.Anything).Return(nil)
	f.payments.EXPECT().
		CreateIntent(mock.Anything, int64(50000), "usd", mock.Anything).
		Return(&ports.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret"}, nil)
	f.bookingRepo.EXPECT().SetPaymentIntent(mock.Anything, mock.Anything, "pi_123").Return(nil)
	f.notifier.EXPECT().NotifyBookingCreated(mock.Anything, expert, mock.Anything).Return()

	hold, err := f.svc.Create(context.Background(), validInput())

	require.NoError(t, err)
	assert.NotEmpty(t, hold.Booking.ID)
	assert.Equal(t, "pi_123_secret", hold.ClientSecret)
	assert.Equal(t, domain.BookingStatusPending, hold.Booking.Status)
	assert.Equal(t, domain.PaymentStatusPending, hold.Booking.PaymentStatus)
	assert.Equal(t, int64(50000), hold.Booking.TotalAmountCents)
	assert.Equal(t, 60, hold.Booking.DurationMinutes)
	require.NotNil(t, hold.Booking.PaymentIntentID)
	assert.Equal(t, "pi_123", *hold.Booking.PaymentIntentID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_IntentMetadata(t *testing.T) {
	f := newBookingFixture(t)

	expert := &domain.Expert{ID: "e1", Name: "Dr. Bob"}
	var gotMeta map[string]string

	f.expertRepo.EXPECT().GetByID(mock.Anything, "e1").Return(expert, nil)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.slotRepo.EXPECT().Reserve(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.payments.EXPECT().
		CreateIntent(mock.Anything, int64(50000), "usd", mock.Anything).
		Run(func(_ context.Context, _ int64, _ string, metadata map[string]string) {
			gotMeta = metadata
		}).
		Return(&ports.PaymentIntent{ID: "pi_1", ClientSecret: "sec"}, nil)
	f.bookingRepo.EXPECT().SetPaymentIntent(mock.Anything, mock.Anything, "pi_1").Return(nil)
	f.notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, mock.Anything).Return()

	hold, err := f.svc.Create(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, hold.Booking.ID, gotMeta["booking_id"])
	assert.Equal(t, "e1", gotMeta["expert_id"])
	assert.Equal(t, "alice@example.com", gotMeta["client_email"])

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_SlotConflictAbortsBeforePayment(t *testing.T) {
	f := newBookingFixture(t)

	f.expertRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Expert{ID: "e1"}, nil)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.slotRepo.EXPECT().
		Reserve(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.ErrSlotAlreadyBooked)

	// Платёжный шлюз не трогается: у мока нет ожиданий, любой вызов уронит тест.
	_, err := f.svc.Create(context.Background(), validInput())

	assert.ErrorIs(t, err, domain.ErrSlotAlreadyBooked)
}

func TestBookingService_Create_IntentFailureNoRollback(t *testing.T) {
	f := newBookingFixture(t)

	f.expertRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Expert{ID: "e1"}, nil)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.slotRepo.EXPECT().Reserve(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.payments.EXPECT().
		CreateIntent(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("stripe unavailable"))

	// Слот остаётся за pending-бронью, компенсаций нет: подчистит sweeper.
	_, err := f.svc.Create(context.Background(), validInput())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create payment intent")
}

func TestBookingService_Create_UnknownExpert(t *testing.T) {
	f := newBookingFixture(t)

	f.expertRepo.EXPECT().GetByID(mock.Anything, "e1").Return(nil, domain.ErrExpertNotFound)

	_, err := f.svc.Create(context.Background(), validInput())

	assert.ErrorIs(t, err, domain.ErrExpertNotFound)
}

func TestBookingService_Create_ValidationOrder(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*domain.CreateBookingInput)
		wantMsg string
	}{
		{
			name:    "missing expert id wins over everything",
			mutate:  func(in *domain.CreateBookingInput) { *in = domain.CreateBookingInput{} },
			wantMsg: "expert id is required",
		},
		{
			name: "missing slot id",
			mutate: func(in *domain.CreateBookingInput) {
				in.SlotID = ""
				in.ClientName = ""
			},
			wantMsg: "slot id is required",
		},
		{
			name: "name sanitized to empty",
			mutate: func(in *domain.CreateBookingInput) {
				in.ClientName = "  <b></b>  "
			},
			wantMsg: "client name is required",
		},
		{
			name: "missing email before rate check",
			mutate: func(in *domain.CreateBookingInput) {
				in.ClientEmail = ""
				in.HourlyRateCents = -1
			},
			wantMsg: "client email is required",
		},
		{
			name:    "zero rate",
			mutate:  func(in *domain.CreateBookingInput) { in.HourlyRateCents = 0 },
			wantMsg: "hourly rate",
		},
		{
			name:    "rate above cap",
			mutate:  func(in *domain.CreateBookingInput) { in.HourlyRateCents = 1000001 },
			wantMsg: "hourly rate",
		},
		{
			name:    "bad date before bad email",
			mutate:  func(in *domain.CreateBookingInput) { in.Date = "June 1"; in.ClientEmail = "nope" },
			wantMsg: "invalid date format",
		},
		{
			name:    "bad start time",
			mutate:  func(in *domain.CreateBookingInput) { in.StartTime = "2pm" },
			wantMsg: "invalid start time",
		},
		{
			name: "name too long",
			mutate: func(in *domain.CreateBookingInput) {
				in.ClientName = strings.Repeat("a", 256)
			},
			wantMsg: "client name is too long",
		},
		{
			name: "topic too long",
			mutate: func(in *domain.CreateBookingInput) {
				in.Topic = strings.Repeat("a", 1001)
			},
			wantMsg: "topic is too long",
		},
		{
			name:    "malformed email checked last",
			mutate:  func(in *domain.CreateBookingInput) { in.ClientEmail = "a@b" },
			wantMsg: "invalid client email",
		},
		{
			name:    "single-letter TLD rejected",
			mutate:  func(in *domain.CreateBookingInput) { in.ClientEmail = "a@b.c" },
			wantMsg: "invalid client email",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newBookingFixture(t)

			in := validInput()
			tc.mutate(&in)

			_, err := f.svc.Create(context.Background(), in)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestBookingService_Create_RateBoundaryAccepted(t *testing.T) {
	f := newBookingFixture(t)

	f.expertRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Expert{ID: "e1"}, nil)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.slotRepo.EXPECT().Reserve(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.payments.EXPECT().
		CreateIntent(mock.Anything, int64(1000000), "usd", mock.Anything).
		Return(&ports.PaymentIntent{ID: "pi_1", ClientSecret: "sec"}, nil)
	f.bookingRepo.EXPECT().SetPaymentIntent(mock.Anything, mock.Anything, "pi_1").Return(nil)
	f.notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, mock.Anything).Return()

	in := validInput()
	in.HourlyRateCents = 1000000 // верхняя граница включительно
	in.ClientEmail = "a@b.co"    // минимально допустимый TLD

	_, err := f.svc.Create(context.Background(), in)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_SanitizesInput(t *testing.T) {
	f := newBookingFixture(t)

	var created *domain.Booking

	f.expertRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Expert{ID: "e1"}, nil)
	f.bookingRepo.EXPECT().
		Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, b *domain.Booking) { created = b }).
		Return(nil)
	f.slotRepo.EXPECT().Reserve(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.payments.EXPECT().
		CreateIntent(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&ports.PaymentIntent{ID: "pi_1", ClientSecret: "sec"}, nil)
	f.bookingRepo.EXPECT().SetPaymentIntent(mock.Anything, mock.Anything, "pi_1").Return(nil)
	f.notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, mock.Anything).Return()

	in := validInput()
	in.ClientName = "  <script>x</script>Alice  "
	in.ClientEmail = "  ALICE@Example.COM "

	_, err := f.svc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "xAlice", created.ClientName)
	assert.Equal(t, "alice@example.com", created.ClientEmail)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_ConfirmPayment(t *testing.T) {
	f := newBookingFixture(t)

	booking := &domain.Booking{ID: "b1", ExpertID: "e1", Status: domain.BookingStatusConfirmed}
	expert := &domain.Expert{ID: "e1", Name: "Dr. Bob"}

	f.bookingRepo.EXPECT().ConfirmPayment(mock.Anything, "b1").Return(nil)
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.expertRepo.EXPECT().GetByID(mock.Anything, "e1").Return(expert, nil)
	f.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, expert, booking).Return()

	err := f.svc.ConfirmPayment(context.Background(), "b1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_ConfirmPayment_WrongStatus(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().ConfirmPayment(mock.Anything, "b1").Return(domain.ErrBookingNotPending)

	err := f.svc.ConfirmPayment(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrBookingNotPending)
}

func TestBookingService_SweepExpired(t *testing.T) {
	f := newBookingFixture(t)

	expired := []*domain.Booking{
		{ID: "b1", ExpertID: "e1", Status: domain.BookingStatusCancelled},
		{ID: "b2", ExpertID: "e1", Status: domain.BookingStatusCancelled},
	}
	expert := &domain.Expert{ID: "e1", Name: "Dr. Bob"}

	f.bookingRepo.EXPECT().CancelExpired(mock.Anything, 20*time.Minute).Return(expired, nil)
	f.slotRepo.EXPECT().Release(mock.Anything, []string{"b1", "b2"}).Return(nil)
	f.expertRepo.EXPECT().GetByID(mock.Anything, "e1").Return(expert, nil).Times(2)
	f.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, expert, mock.Anything).Return().Times(2)

	cancelled, err := f.svc.SweepExpired(context.Background())

	require.NoError(t, err)
	assert.Len(t, cancelled, 2)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_SweepExpired_NothingToDo(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().CancelExpired(mock.Anything, mock.Anything).Return(nil, nil)

	cancelled, err := f.svc.SweepExpired(context.Background())

	require.NoError(t, err)
	assert.Empty(t, cancelled)
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"  plain  ",
		"<b>bold</b> text",
		"<script>alert(1)</script>safe",
		"no tags at all",
	}

	for _, in := range inputs {
		once := sanitize(in)
		twice := sanitize(once)
		assert.Equal(t, once, twice, "input=%q", in)
	}
}
