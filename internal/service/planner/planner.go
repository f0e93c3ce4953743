package planner

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campora/PMS-SchedulerService/internal/domain"
)

// Planner реестр сессий планирования. Сессии живут в памяти и
// вытесняются лениво по TTL при обращении
type Planner struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	rules    domain.DropRules
	ttl      time.Duration
	debounce time.Duration
	logger   Logger
}

// NewPlanner создает новый реестр сессий
func NewPlanner(rules domain.DropRules, ttl, debounce time.Duration, logger Logger) *Planner {
	return &Planner{
		sessions: map[uuid.UUID]*Session{},
		rules:    rules,
		ttl:      ttl,
		debounce: debounce,
		logger:   logger,
	}
}

// CreateSession создает пустую сессию для пользователя. Сетка
// устанавливается отдельным вызовом ReplaceGrid
func (p *Planner) CreateSession(userID int64) *Session {
	session := newSession(userID, p.rules)

	p.mu.Lock()
	p.evictExpiredLocked()
	p.sessions[session.ID] = session
	p.mu.Unlock()

	p.logger.Info("Planner: created session id=%s for user=%d", session.ID, userID)
	return session
}

// Get возвращает сессию по ID и продлевает ее время жизни
func (p *Planner) Get(id uuid.UUID) (*Session, error) {
	p.mu.RLock()
	session, ok := p.sessions[id]
	p.mu.RUnlock()

	if !ok || session.expired(p.ttl) {
		if ok {
			p.Delete(id)
		}
		return nil, ErrSessionNotFound
	}

	session.touch()
	return session, nil
}

// Delete удаляет сессию
func (p *Planner) Delete(id uuid.UUID) {
	p.mu.Lock()
	delete(p.sessions, id)
	p.mu.Unlock()
}

// RefreshDebounce возвращает интервал дебаунса обновлений сетки
func (p *Planner) RefreshDebounce() time.Duration {
	return p.debounce
}

// evictExpiredLocked удаляет истекшие сессии; вызывается под mu
func (p *Planner) evictExpiredLocked() {
	for id, session := range p.sessions {
		if session.expired(p.ttl) {
			delete(p.sessions, id)
			p.logger.Info("Planner: evicted expired session id=%s", id)
		}
	}
}
