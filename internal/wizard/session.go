package wizard

import (
	"sync"
	"time"

	"optimizer/internal/model"
)

// State enumerates the wizard steps.
type State int

const (
	StateLanguage State = iota
	StateFullName
	StateRole
	StatePassword
	StateBranch
	StateSettings
)

// EditField marks which single field a settings session may change.
type EditField int

const (
	EditNone EditField = iota
	EditLanguage
	EditFullName
	EditRole
	EditBranch
)

// Session is the per-conversation scratch state. It is owned by exactly one
// active conversation and discarded on completion or cancellation.
type Session struct {
	UserID   int64
	State    State
	Language model.Language
	FullName string
	Role     model.Role
	Branch   model.Branch
	Edit     EditField
	Touched  time.Time
}

// SessionRegistry keeps at most one session per identity. Starting a new
// flow for the same identity supersedes any stale session.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	now      func() time.Time
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[int64]*Session),
		now:      time.Now,
	}
}

// Put stores the session, replacing any existing one for the identity.
func (r *SessionRegistry) Put(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.Touched = r.now()
	r.sessions[s.UserID] = s
}

// Get returns the active session and refreshes its activity timestamp.
func (r *SessionRegistry) Get(userID int64) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[userID]
	if ok {
		s.Touched = r.now()
	}
	return s, ok
}

func (r *SessionRegistry) Delete(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, userID)
}

// Sweep drops sessions idle for longer than ttl and reports how many were
// removed. An abandoned mid-wizard session is therefore reclaimed instead of
// living forever.
func (r *SessionRegistry) Sweep(ttl time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	deadline := r.now().Add(-ttl)
	removed := 0
	for id, s := range r.sessions {
		if s.Touched.Before(deadline) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of active sessions.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
