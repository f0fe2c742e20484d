// Package memory implementa puertos de dominio en memoria del proceso.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/dhaliwal-pos/internal/domain/entity"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/repository"
	"github.com/jhoicas/dhaliwal-pos/pkg/logger"
)

var _ repository.SessionRepository = (*SessionStore)(nil)

// SessionStore registro de sesiones de caja. Las sesiones no se comparten:
// cada id tiene su propia instancia de *entity.Session.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
	now      func() time.Time
}

// NewSessionStore construye el registro vacío.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*entity.Session), now: time.Now}
}

// GetOrCreate devuelve la sesión y registra actividad.
func (s *SessionStore) GetOrCreate(id string) *entity.Session {
	now := s.now()
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		sess = entity.NewSession(id, now)
		s.sessions[id] = sess
	}
	s.mu.Unlock()
	sess.Touch(now)
	return sess
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Sweep elimina sesiones inactivas desde cutoff.
func (s *SessionStore) Sweep(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.IdleSince(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len cantidad de sesiones activas.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// RunJanitor barre sesiones inactivas cada interval hasta que ctx termine.
func (s *SessionStore) RunJanitor(ctx context.Context, interval, idle time.Duration, log *logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(s.now().Add(-idle)); n > 0 {
				log.Debug().Int("removed", n).Int("active", s.Len()).Msg("sesiones inactivas eliminadas")
			}
		}
	}
}
