package persistence

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/felixbrock/coachbot/internal/domain"
)

// ErrorLogRepo keeps a per-session append-only error log, unbounded and
// clearable only on request. It backs the debug panel.
type ErrorLogRepo struct {
	mu      sync.Mutex
	entries map[string][]domain.ErrorEntry
}

func NewErrorLogRepo() *ErrorLogRepo {
	return &ErrorLogRepo{entries: map[string][]domain.ErrorEntry{}}
}

func (r *ErrorLogRepo) Append(sessionId string, context string, message string, detail string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[sessionId] = append(r.entries[sessionId], domain.ErrorEntry{
		Id:        uuid.New().String(),
		Timestamp: time.Now(),
		Context:   context,
		Message:   message,
		Detail:    detail,
	})
}

func (r *ErrorLogRepo) List(sessionId string) []domain.ErrorEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.entries[sessionId]
	out := make([]domain.ErrorEntry, len(entries))
	copy(out, entries)
	return out
}

func (r *ErrorLogRepo) Clear(sessionId string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, sessionId)
}
