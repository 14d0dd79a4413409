package generator

import (
	"sync"
	"time"

	"github.com/fitforge/webfront/internal/fitapi"

	log "github.com/sirupsen/logrus"
)

type sessionWorkout struct {
	workout    *fitapi.GeneratedWorkout
	lastActive time.Time
}

// SessionStore keeps the most recent generated workout per session.
// A new generation overwrites the previous one, the same way a browser
// tab only ever shows one active plan.
type SessionStore struct {
	mutex    sync.Mutex
	sessions map[string]*sessionWorkout
	ttl      time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*sessionWorkout),
		ttl:      ttl,
	}
}

func (s *SessionStore) Set(token string, workout *fitapi.GeneratedWorkout) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.sessions[token] = &sessionWorkout{
		workout:    workout,
		lastActive: time.Now(),
	}
}

// Current returns the session's workout, or nil when nothing was
// generated (or the session was swept).
func (s *SessionStore) Current(token string) *fitapi.GeneratedWorkout {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	sw, ok := s.sessions[token]
	if !ok {
		return nil
	}
	sw.lastActive = time.Now()
	return sw.workout
}

func (s *SessionStore) Clear(token string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.sessions, token)
}

func (s *SessionStore) ScanAndClean() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	now := time.Now()
	for token, sw := range s.sessions {
		if now.Sub(sw.lastActive) > s.ttl {
			log.Tracef("generator store, sweeping stale session: %s", token)
			delete(s.sessions, token)
		}
	}
}
