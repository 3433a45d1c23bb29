package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store in-memory хранилище гостевых сессий. Состояние сессий живет только
// в памяти процесса и умирает вместе с сессией - персистентности нет по
// требованиям домена.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore создает пустое хранилище сессий
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// Create создает новую сессию с черновиком в дефолтном состоянии
func (s *Store) Create() *Session {
	sess := newSession(uuid.NewString(), time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess

	return sess
}

// Get возвращает сессию по ID
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Delete удаляет сессию. Удаление идемпотентно.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Count возвращает число активных сессий
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// DeleteIdle удаляет сессии без активности дольше ttl, возвращает число удаленных
func (s *Store) DeleteIdle(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.LastSeen().Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
