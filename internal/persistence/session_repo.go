package persistence

import (
	"sync"

	"github.com/google/uuid"

	"github.com/felixbrock/coachbot/internal/domain"
)

// SessionRepo holds per-session state in process memory. Sessions die with
// the process; there is no cross-session sharing.
type SessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{sessions: map[string]*domain.Session{}}
}

func (r *SessionRepo) Create() *domain.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	session := &domain.Session{Id: uuid.New().String()}
	r.sessions[session.Id] = session
	return session
}

func (r *SessionRepo) Get(id string) (*domain.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	return session, ok
}

// SetProfile overwrites the session's profile wholesale, as the form submits it.
func (r *SessionRepo) SetProfile(id string, profile domain.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return
	}
	session.Profile = &profile
}
