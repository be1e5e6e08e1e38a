// pkg/mem/plan_cache.go
package mem

import (
	"sync"
	"time"

	"voyago/internal/models/response_models"
)

type PlanCache interface {
	Set(planID string, plan *response_models.TravelPlanResponse, ttl time.Duration)

	// Get returns the cached plan if present and not expired.
	Get(planID string) (*response_models.TravelPlanResponse, bool)

	// Invalidate removes a plan, e.g. after deletion.
	Invalidate(planID string)
}

type entry struct {
	plan      *response_models.TravelPlanResponse
	expiresAt time.Time
}

type PlanCacheStore struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewPlanCache() *PlanCacheStore {
	return &PlanCacheStore{
		data: make(map[string]entry),
	}
}

func (s *PlanCacheStore) Set(planID string, plan *response_models.TravelPlanResponse, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[planID] = entry{
		plan:      plan,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *PlanCacheStore) Get(planID string) (*response_models.TravelPlanResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[planID]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.plan, true
}

func (s *PlanCacheStore) Invalidate(planID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, planID)
}
