package grants

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu           sync.RWMutex
	grants       map[string]Grant
	order        []string
	applications []Application
}

// NewMemoryRepository builds an in-memory grants store pre-seeded with the
// demo catalogue. Used in dev mode and in tests.
func NewMemoryRepository() Repository {
	r := &memoryRepository{grants: make(map[string]Grant)}
	for _, g := range demoGrants {
		r.grants[g.ID] = g
		r.order = append(r.order, g.ID)
	}
	r.applications = append(r.applications, demoApplications...)
	return r
}

func (r *memoryRepository) ListGrants(_ context.Context) ([]Grant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Grant, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.grants[id])
	}
	return out, nil
}

func (r *memoryRepository) GetGrant(_ context.Context, id string) (Grant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.grants[id]
	if !ok {
		return Grant{}, ErrGrantNotFound
	}
	return g, nil
}

func (r *memoryRepository) CreateGrant(_ context.Context, g Grant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.grants[g.ID]; !exists {
		r.order = append(r.order, g.ID)
	}
	r.grants[g.ID] = g
	return nil
}

func (r *memoryRepository) ListApplications(_ context.Context) ([]Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Application, len(r.applications))
	copy(out, r.applications)
	return out, nil
}

func (r *memoryRepository) CreateApplication(_ context.Context, app Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.grants[app.GrantID]
	if !ok {
		return ErrGrantNotFound
	}
	if g.CurrentApplications >= g.MaxApplications {
		return ErrApplicationsFull
	}
	g.CurrentApplications++
	r.grants[app.GrantID] = g
	r.applications = append(r.applications, app)
	return nil
}
