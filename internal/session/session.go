package session

import (
	"sync"
	"time"

	"expertcall/internal/domain"
)

type State string

const (
	StateWaiting State = "waiting"
	StateActive  State = "active"
	StateEnded   State = "ended"
)

// Session — серверное состояние живого звонка. Время считается от
// зафиксированного на сервере момента старта, клиенту не доверяем.
type Session struct {
	mu sync.Mutex

	bookingID       string
	expertID        string
	expertName      string
	hourlyRateCents int64

	// Бюджет сессии фиксируется один раз при открытии.
	budgetSeconds int64
	warnAfter     int64

	state     State
	startedAt time.Time
	warned    bool

	clock func() time.Time
}

// Snapshot is a point-in-time view of a session served to the meeting page.
type Snapshot struct {
	BookingID          string `json:"booking_id"`
	ExpertID           string `json:"expert_id"`
	ExpertName         string `json:"expert_name"`
	HourlyRateCents    int64  `json:"hourly_rate_cents"`
	State              State  `json:"state"`
	ElapsedSeconds     int64  `json:"elapsed_seconds"`
	RemainingSeconds   int64  `json:"remaining_seconds"`
	BudgetSeconds      int64  `json:"budget_seconds"`
	Warning            bool   `json:"warning"`
	CurrentChargeCents int64  `json:"current_charge_cents"`
}

// ActualMinutes rounds elapsed time UP to the next whole minute: a started
// minute is a billed minute.
func ActualMinutes(elapsedSeconds int64) int {
	if elapsedSeconds <= 0 {
		return 0
	}
	return int((elapsedSeconds + 59) / 60)
}

// FinalChargeCents applies the per-minute proportion of the hourly rate.
func FinalChargeCents(hourlyRateCents int64, actualMinutes int) int64 {
	return hourlyRateCents * int64(actualMinutes) / 60
}

// CurrentChargeCents — текущая оценка стоимости по секундам.
func CurrentChargeCents(hourlyRateCents, elapsedSeconds int64) int64 {
	return hourlyRateCents * elapsedSeconds / 3600
}

// Start переводит сессию из waiting в active и фиксирует момент старта.
func (s *Session) Start() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateWaiting {
		return s.snapshotLocked(0), domain.ErrSessionNotWaiting
	}

	s.state = StateActive
	s.startedAt = s.clock()

	return s.snapshotLocked(0), nil
}

// Tick пересчитывает производные значения. Возвращает снапшот и признак
// того, что именно этот тик впервые зажёг 15-минутное предупреждение.
func (s *Session) Tick() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elapsed := s.elapsedLocked()
	snap := s.snapshotLocked(elapsed)

	if s.state != StateActive {
		return snap, false
	}

	// Предупреждение липкое: один раз за сессию, только пока remaining > 0.
	if !s.warned && snap.RemainingSeconds > 0 && snap.RemainingSeconds <= s.warnAfter {
		s.warned = true
		snap.Warning = true
		return snap, true
	}

	return snap, false
}

// End завершает сессию только по явному действию: таймаут бюджета звонок
// не обрывает, перерасход продолжает тарифицироваться. Итог сначала отдаётся
// в commit, и только его успех фиксирует переход в ended: сбой записи
// оставляет сессию активной, завершение можно повторить.
func (s *Session) End(commit func(domain.CallOutcome) error) (domain.CallOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive {
		return domain.CallOutcome{}, domain.ErrSessionNotActive
	}

	elapsed := s.elapsedLocked()
	minutes := ActualMinutes(elapsed)
	outcome := domain.CallOutcome{
		ActualMinutes:    minutes,
		FinalChargeCents: FinalChargeCents(s.hourlyRateCents, minutes),
	}

	if commit != nil {
		if err := commit(outcome); err != nil {
			return domain.CallOutcome{}, err
		}
	}

	s.state = StateEnded
	return outcome, nil
}

func (s *Session) elapsedLocked() int64 {
	if s.state != StateActive {
		return 0
	}
	elapsed := int64(s.clock().Sub(s.startedAt) / time.Second)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func (s *Session) snapshotLocked(elapsed int64) Snapshot {
	remaining := s.budgetSeconds - elapsed
	if remaining < 0 {
		remaining = 0
	}

	return Snapshot{
		BookingID:          s.bookingID,
		ExpertID:           s.expertID,
		ExpertName:         s.expertName,
		HourlyRateCents:    s.hourlyRateCents,
		State:              s.state,
		ElapsedSeconds:     elapsed,
		RemainingSeconds:   remaining,
		BudgetSeconds:      s.budgetSeconds,
		Warning:            s.warned,
		CurrentChargeCents: CurrentChargeCents(s.hourlyRateCents, elapsed),
	}
}
