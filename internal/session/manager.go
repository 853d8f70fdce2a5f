package session

import (
	"context"
	"sync"
	"time"

	"github.com/wb-go/wbf/logger"

	"expertcall/internal/domain"
)

// Manager держит живые сессии в памяти и тикает активные раз в секунду.
// Сессии эфемерны: рестарт сервиса их теряет, бронь при этом остаётся.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	tick      time.Duration
	warnAfter int64
	clock     func() time.Time
	logger    logger.Logger
}

type Option func(*Manager)

// WithClock подменяет источник времени в тестах.
func WithClock(clock func() time.Time) Option {
	return func(m *Manager) {
		m.clock = clock
	}
}

func NewManager(tick, warnThreshold time.Duration, log logger.Logger, opts ...Option) *Manager {
	m := &Manager{
		sessions:  make(map[string]*Session),
		tick:      tick,
		warnAfter: int64(warnThreshold / time.Second),
		clock:     time.Now,
		logger:    log,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Open создаёт waiting-сессию с бюджетом, зафиксированным на момент
// открытия. Повторное открытие возвращает живую сессию как есть.
func (m *Manager) Open(bookingID, expertID, expertName string, hourlyRateCents int64, scheduledEnd time.Time) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[bookingID]; ok {
		return s
	}

	budget := int64(scheduledEnd.Sub(m.clock()) / time.Second)
	if budget < 0 {
		budget = 0
	}

	s := &Session{
		bookingID:       bookingID,
		expertID:        expertID,
		expertName:      expertName,
		hourlyRateCents: hourlyRateCents,
		budgetSeconds:   budget,
		warnAfter:       m.warnAfter,
		state:           StateWaiting,
		clock:           m.clock,
	}
	m.sessions[bookingID] = s

	return s
}

func (m *Manager) Get(bookingID string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[bookingID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	return s, nil
}

func (m *Manager) Remove(bookingID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, bookingID)
}

// Run тикает все сессии до отмены контекста.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.tick)
	defer ticker.Stop()

	m.logger.Info("session manager started",
		logger.Duration("tick", m.tick),
	)

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("session manager stopped")
			return
		case <-ticker.C:
			m.tickAll()
		}
	}
}

func (m *Manager) tickAll() {
	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.RUnlock()

	for _, s := range sessions {
		snap, warnFired := s.Tick()
		if warnFired {
			m.logger.Info("session nearing scheduled end",
				logger.String("booking_id", snap.BookingID),
				logger.Int64("remaining_seconds", snap.RemainingSeconds),
			)
		}
	}
}
