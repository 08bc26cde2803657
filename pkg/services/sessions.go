package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-site/pkg/clients/formrelay"
)

var (
	ErrSessionExpired = errors.New("contact session expired")
	ErrSessionLimit   = errors.New("too many active contact sessions")
)

const (
	// DefaultSessionTTL is how long an untouched session is kept
	DefaultSessionTTL = 30 * time.Minute
	// DefaultMaxSessions caps the number of live sessions
	DefaultMaxSessions = 10000
)

// Session is one visitor's contact form and its controller
type Session struct {
	ID         string
	Form       *ContactForm
	Controller SubmissionController
	ExpiresAt  time.Time
}

// SessionStore keeps one independent form per visitor.
// Expired sessions are swept at most once per sweep interval; when the store
// is full the least recently used idle session is evicted.
type SessionStore struct {
	relay        formrelay.Client
	logger       *zap.Logger
	relayTimeout time.Duration
	ttl          time.Duration
	maxSessions  int
	sweepEvery   time.Duration
	now          func() time.Time

	mu        sync.Mutex
	sessions  map[string]*Session
	nextSweep time.Time
}

func NewSessionStore(relay formrelay.Client, logger *zap.Logger, relayTimeout, ttl time.Duration, maxSessions int) *SessionStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	sweepEvery := ttl / 4
	if sweepEvery > time.Minute {
		sweepEvery = time.Minute
	}
	return &SessionStore{
		relay:        relay,
		logger:       logger,
		relayTimeout: relayTimeout,
		ttl:          ttl,
		maxSessions:  maxSessions,
		sweepEvery:   sweepEvery,
		now:          time.Now,
		sessions:     make(map[string]*Session),
	}
}

// Create starts a new session with an empty form in the idle state.
// It fails with ErrSessionLimit only when every session has an attempt in flight.
func (s *SessionStore) Create() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.maybeSweepLocked(now)

	if len(s.sessions) >= s.maxSessions {
		s.sweepLocked(now)
		if len(s.sessions) >= s.maxSessions && !s.evictOldestLocked() {
			return nil, ErrSessionLimit
		}
	}

	id := uuid.NewString()
	form := NewContactForm()
	session := &Session{
		ID:         id,
		Form:       form,
		Controller: NewSubmissionController(s.relay, form, s.logger.With(zap.String("session", id)), s.relayTimeout),
		ExpiresAt:  now.Add(s.ttl),
	}
	s.sessions[id] = session
	return session, nil
}

// Get returns a live session and extends its lifetime
func (s *SessionStore) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.maybeSweepLocked(now)

	session, exists := s.sessions[id]
	if !exists {
		return nil, ErrSessionExpired
	}
	if s.expiredLocked(session, now) {
		delete(s.sessions, id)
		return nil, ErrSessionExpired
	}
	session.ExpiresAt = now.Add(s.ttl)
	return session, nil
}

// GetOrCreate returns the session for id, or a fresh one if it is unknown or expired
func (s *SessionStore) GetOrCreate(id string) (*Session, error) {
	if id != "" {
		if session, err := s.Get(id); err == nil {
			return session, nil
		}
	}
	return s.Create()
}

// TTL is the idle lifetime granted by each Create or Get
func (s *SessionStore) TTL() time.Duration {
	return s.ttl
}

// Len returns the number of live sessions
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(s.now())
	return len(s.sessions)
}

// An attempt still in flight keeps its session alive
func (s *SessionStore) expiredLocked(session *Session, now time.Time) bool {
	return now.After(session.ExpiresAt) && !session.Controller.State().Submitting()
}

func (s *SessionStore) maybeSweepLocked(now time.Time) {
	if now.Before(s.nextSweep) {
		return
	}
	s.sweepLocked(now)
}

func (s *SessionStore) sweepLocked(now time.Time) {
	for id, session := range s.sessions {
		if s.expiredLocked(session, now) {
			delete(s.sessions, id)
			s.logger.Debug("Expired contact session", zap.String("session", id))
		}
	}
	s.nextSweep = now.Add(s.sweepEvery)
}

// evictOldestLocked drops the idle session closest to expiry
func (s *SessionStore) evictOldestLocked() bool {
	var oldest *Session
	for _, session := range s.sessions {
		if session.Controller.State().Submitting() {
			continue
		}
		if oldest == nil || session.ExpiresAt.Before(oldest.ExpiresAt) {
			oldest = session
		}
	}
	if oldest == nil {
		return false
	}
	delete(s.sessions, oldest.ID)
	s.logger.Debug("Evicted contact session", zap.String("session", oldest.ID))
	return true
}
