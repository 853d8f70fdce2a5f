package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"expertcall/internal/domain"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// fakeClock — управляемое время для детерминированных тиков.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestManager(t *testing.T, clock *fakeClock) *Manager {
	t.Helper()
	return NewManager(time.Second, 15*time.Minute, newTestLogger(t), WithClock(clock.Now))
}

func TestActualMinutes(t *testing.T) {
	cases := []struct {
		elapsed int64
		want    int
	}{
		{0, 0},
		{1, 1}, // начатая минута тарифицируется целиком
		{59, 1},
		{60, 1},
		{61, 2},
		{1500, 25},
		{3600, 60},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ActualMinutes(tc.elapsed), "elapsed=%d", tc.elapsed)
	}
}

func TestFinalChargeCents(t *testing.T) {
	// 25 минут при $500/час: 50000*25/60 = 20833 (усечение, не округление).
	assert.Equal(t, int64(20833), FinalChargeCents(50000, 25))
	assert.Equal(t, int64(50000), FinalChargeCents(50000, 60))
	assert.Equal(t, int64(0), FinalChargeCents(50000, 0))
}

func TestCurrentChargeCents(t *testing.T) {
	assert.Equal(t, int64(0), CurrentChargeCents(50000, 0))
	assert.Equal(t, int64(13), CurrentChargeCents(50000, 1))
	assert.Equal(t, int64(25000), CurrentChargeCents(50000, 1800))
}

func TestSession_StartOnlyFromWaiting(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)}
	m := newTestManager(t, clock)

	sess := m.Open("b1", "e1", "Alice", 50000, clock.now.Add(time.Hour))

	snap, err := sess.Start()
	require.NoError(t, err)
	assert.Equal(t, StateActive, snap.State)

	_, err = sess.Start()
	assert.ErrorIs(t, err, domain.ErrSessionNotWaiting)
}

func TestSession_WarningFiresExactlyOnce(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)}
	m := newTestManager(t, clock)

	sess := m.Open("b1", "e1", "Alice", 50000, clock.now.Add(time.Hour))
	_, err := sess.Start()
	require.NoError(t, err)

	// До порога предупреждения нет.
	clock.Advance(44 * time.Minute)
	snap, fired := sess.Tick()
	assert.False(t, fired)
	assert.False(t, snap.Warning)

	// Осталось ровно 15 минут — срабатывает.
	clock.Advance(time.Minute)
	snap, fired = sess.Tick()
	assert.True(t, fired)
	assert.True(t, snap.Warning)
	assert.Equal(t, int64(900), snap.RemainingSeconds)

	// Повторные тики флаг не перевзводят, но снапшот его помнит.
	clock.Advance(time.Minute)
	snap, fired = sess.Tick()
	assert.False(t, fired)
	assert.True(t, snap.Warning)
}

func TestSession_NoWarningAfterBudgetExhausted(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)}
	m := newTestManager(t, clock)

	sess := m.Open("b1", "e1", "Alice", 50000, clock.now.Add(10*time.Minute))
	_, err := sess.Start()
	require.NoError(t, err)

	// remaining уже 0 — окно предупреждения пропущено, флаг не взводится.
	clock.Advance(11 * time.Minute)
	snap, fired := sess.Tick()
	assert.False(t, fired)
	assert.False(t, snap.Warning)
	assert.Equal(t, int64(0), snap.RemainingSeconds)
}

func TestSession_NoAutoEndOnOverrun(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)}
	m := newTestManager(t, clock)

	sess := m.Open("b1", "e1", "Alice", 50000, clock.now.Add(time.Hour))
	_, err := sess.Start()
	require.NoError(t, err)

	// Бюджет давно исчерпан, но сессия остаётся активной и счётчик растёт.
	clock.Advance(90 * time.Minute)
	snap, _ := sess.Tick()
	assert.Equal(t, StateActive, snap.State)
	assert.Equal(t, int64(0), snap.RemainingSeconds)
	assert.Equal(t, int64(5400), snap.ElapsedSeconds)
	assert.Equal(t, int64(75000), snap.CurrentChargeCents)
}

func TestSession_EndComputesOutcome(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)}
	m := newTestManager(t, clock)

	sess := m.Open("b1", "e1", "Alice", 50000, clock.now.Add(time.Hour))
	_, err := sess.Start()
	require.NoError(t, err)

	clock.Advance(1500 * time.Second) // 25 минут ровно

	outcome, err := sess.End(nil)
	require.NoError(t, err)
	assert.Equal(t, 25, outcome.ActualMinutes)
	assert.Equal(t, int64(20833), outcome.FinalChargeCents)

	_, err = sess.End(nil)
	assert.ErrorIs(t, err, domain.ErrSessionNotActive)
}

func TestSession_PartialMinuteRoundsUp(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)}
	m := newTestManager(t, clock)

	sess := m.Open("b1", "e1", "Alice", 60000, clock.now.Add(time.Hour))
	_, err := sess.Start()
	require.NoError(t, err)

	clock.Advance(time.Second)

	outcome, err := sess.End(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.ActualMinutes)
	assert.Equal(t, int64(1000), outcome.FinalChargeCents)
}

func TestSession_EndCommitFailureKeepsSessionActive(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)}
	m := newTestManager(t, clock)

	sess := m.Open("b1", "e1", "Alice", 50000, clock.now.Add(time.Hour))
	_, err := sess.Start()
	require.NoError(t, err)

	clock.Advance(1500 * time.Second)

	// Неудачная запись итога не завершает сессию.
	_, err = sess.End(func(domain.CallOutcome) error {
		return errors.New("db down")
	})
	require.Error(t, err)

	snap, _ := sess.Tick()
	assert.Equal(t, StateActive, snap.State)

	// Повторное завершение проходит и отдаёт актуальный итог.
	outcome, err := sess.End(nil)
	require.NoError(t, err)
	assert.Equal(t, 25, outcome.ActualMinutes)
	assert.Equal(t, int64(20833), outcome.FinalChargeCents)
}

func TestSession_EndBeforeStart(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)}
	m := newTestManager(t, clock)

	sess := m.Open("b1", "e1", "Alice", 50000, clock.now.Add(time.Hour))

	_, err := sess.End(nil)
	assert.ErrorIs(t, err, domain.ErrSessionNotActive)
}

func TestManager_OpenIsIdempotent(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)}
	m := newTestManager(t, clock)

	first := m.Open("b1", "e1", "Alice", 50000, clock.now.Add(time.Hour))
	_, err := first.Start()
	require.NoError(t, err)

	// Повторное открытие возвращает ту же живую сессию, не пересоздаёт.
	second := m.Open("b1", "e1", "Alice", 50000, clock.now.Add(2*time.Hour))
	assert.Same(t, first, second)

	snap, _ := second.Tick()
	assert.Equal(t, StateActive, snap.State)
	assert.Equal(t, int64(3600), snap.BudgetSeconds)
}

func TestManager_BudgetClampedAtZero(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)}
	m := newTestManager(t, clock)

	// Слот уже в прошлом: бюджет нулевой, но сессию открыть можно.
	sess := m.Open("b1", "e1", "Alice", 50000, clock.now.Add(-time.Hour))
	snap, _ := sess.Tick()
	assert.Equal(t, int64(0), snap.BudgetSeconds)
	assert.Equal(t, int64(0), snap.RemainingSeconds)
}

func TestManager_GetAndRemove(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)}
	m := newTestManager(t, clock)

	_, err := m.Get("missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	m.Open("b1", "e1", "Alice", 50000, clock.now.Add(time.Hour))

	sess, err := m.Get("b1")
	require.NoError(t, err)
	assert.NotNil(t, sess)

	m.Remove("b1")
	_, err = m.Get("b1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
