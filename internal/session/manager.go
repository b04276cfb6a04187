package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Session сессия композиции бронирования: аккумулятор выборов + снимок занятости
type Session struct {
	ID          string
	Accumulator *Accumulator
	Snapshot    *SnapshotHolder

	mu        sync.Mutex
	touchedAt time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.touchedAt = now
	s.mu.Unlock()
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.touchedAt) > ttl
}

// Manager владеет активными сессиями и чистит брошенные по TTL
// Явный жизненный цикл вместо выборов, живущих вечно после ухода пользователя
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	logger   Logger
}

// NewManager создает менеджер сессий с заданным TTL
func NewManager(ttl time.Duration, logger Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		logger:   logger,
	}
}

// Create создает новую сессию композиции
func (m *Manager) Create() *Session {
	s := &Session{
		ID:          newSessionID(),
		Accumulator: NewAccumulator(),
		Snapshot:    NewSnapshotHolder(),
		touchedAt:   time.Now(),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.logger.Info("session: created id=%s", s.ID)
	return s
}

// Get возвращает сессию по id, продлевая её TTL
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	s.touch(time.Now())
	return s, nil
}

// Delete удаляет сессию (отказ от композиции)
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// RunCleanup запускает периодическую чистку брошенных сессий
// Останавливается закрытием stopCh
func (m *Manager) RunCleanup(interval time.Duration, stopCh <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.cleanup()
			case <-stopCh:
				return
			}
		}
	}()
}

func (m *Manager) cleanup() {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range m.sessions {
		if s.expired(now, m.ttl) {
			delete(m.sessions, id)
			m.logger.Info("session: expired id=%s", id)
		}
	}
}

func newSessionID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
