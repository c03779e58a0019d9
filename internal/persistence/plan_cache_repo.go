package persistence

import (
	"sync"

	"github.com/felixbrock/coachbot/internal/domain"
)

// PlanCacheRepo maps typed plan keys to generated plans, scoped per session.
// Entries are never evicted or expired; the cache lives as long as the process.
type PlanCacheRepo struct {
	mu    sync.Mutex
	plans map[string]map[domain.PlanKey]domain.Plan
}

func NewPlanCacheRepo() *PlanCacheRepo {
	return &PlanCacheRepo{plans: map[string]map[domain.PlanKey]domain.Plan{}}
}

func (r *PlanCacheRepo) Get(sessionId string, key domain.PlanKey) (domain.Plan, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	plan, ok := r.plans[sessionId][key]
	return plan, ok
}

func (r *PlanCacheRepo) Set(sessionId string, key domain.PlanKey, plan domain.Plan) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, ok := r.plans[sessionId]
	if !ok {
		entries = map[domain.PlanKey]domain.Plan{}
		r.plans[sessionId] = entries
	}
	entries[key] = plan
}
