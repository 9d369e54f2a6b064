package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"tourapi/internal/domain"
	"tourapi/internal/wizard"
)

// DefaultSessionTTL bounds how long an abandoned wizard lives. Sessions are
// never persisted; an inactive one is simply evicted and the client starts
// the flow over.
const DefaultSessionTTL = 30 * time.Minute

type session struct {
	ctrl     *wizard.Controller
	flow     string
	deadline time.Time

	// searchGen is the monotonic autocomplete generation for this wizard.
	// Responses from superseded generations are reported stale so the
	// client never lets an old result clobber a newer one.
	searchGen uint64
}

// SessionStore keeps live wizard controllers in memory, keyed by uuid.
// Nothing is ever persisted mid-flow.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		sessions: map[string]*session{},
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create registers a controller and returns its session id.
func (s *SessionStore) Create(flow string, ctrl *wizard.Controller) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &session{
		ctrl:     ctrl,
		flow:     flow,
		deadline: s.now().Add(s.ttl),
	}
	return id
}

// Get returns the controller for id and renews its deadline.
func (s *SessionStore) Get(id string) (*wizard.Controller, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok || s.now().After(sess.deadline) {
		delete(s.sessions, id)
		return nil, "", domain.NotFoundError{Resource: "wizard session"}
	}
	sess.deadline = s.now().Add(s.ttl)
	return sess.ctrl, sess.flow, nil
}

// Delete discards a session, normally right after a successful submit.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// NextSearchGeneration bumps and returns the autocomplete generation for a
// session. The caller tags its lookup with the returned value.
func (s *SessionStore) NextSearchGeneration(id string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return 0, domain.NotFoundError{Resource: "wizard session"}
	}
	sess.searchGen++
	return sess.searchGen, nil
}

// SearchGenerationCurrent reports whether gen is still the newest lookup for
// the session. A stale generation means a later keystroke superseded it.
func (s *SessionStore) SearchGenerationCurrent(id string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return ok && sess.searchGen == gen
}

// StartJanitor evicts expired sessions until stop is closed.
func (s *SessionStore) StartJanitor(interval time.Duration, stop <-chan struct{}) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-stop:
				return
			}
		}
	}()
}

func (s *SessionStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for id, sess := range s.sessions {
		if now.After(sess.deadline) {
			delete(s.sessions, id)
		}
	}
}
