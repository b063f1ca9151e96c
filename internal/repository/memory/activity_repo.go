// Package memory holds the process-lifetime activity catalog. Nothing is persisted;
// the catalog is seeded at startup and lost on restart.
package memory

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"mergington/internal/domain"
)

// activityEntry pairs an activity with its guard. Entries are built completely
// before they are inserted, so a lookup never sees one half without the other.
type activityEntry struct {
	mu       sync.Mutex
	activity *domain.Activity
}

type activityRepository struct {
	// mu protects the key set only. It is never held while an entry guard is held.
	mu      sync.RWMutex
	entries map[string]*activityEntry
}

// NewActivityRepository returns an empty in-memory catalog.
func NewActivityRepository() domain.ActivityRepository {
	return &activityRepository{
		entries: make(map[string]*activityEntry),
	}
}

// NewSeededActivityRepository returns a catalog populated with seed.
func NewSeededActivityRepository(ctx context.Context, seed []*domain.Activity) (domain.ActivityRepository, error) {
	repo := NewActivityRepository()
	for _, a := range seed {
		if err := repo.Create(ctx, a); err != nil {
			return nil, fmt.Errorf("seed activity %q: %w", a.Name, err)
		}
	}
	return repo, nil
}

func (r *activityRepository) lookup(name string) (*activityEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

func (r *activityRepository) List(ctx context.Context) (map[string]*domain.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	entries := maps.Clone(r.entries)
	r.mu.RUnlock()

	out := make(map[string]*domain.Activity, len(entries))
	for name, e := range entries {
		e.mu.Lock()
		out[name] = e.activity.Clone()
		e.mu.Unlock()
	}
	return out, nil
}

func (r *activityRepository) Get(ctx context.Context, name string) (*domain.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, ok := r.lookup(name)
	if !ok {
		return nil, domain.ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.activity.Clone(), nil
}

func (r *activityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if activity == nil || activity.Name == "" {
		return fmt.Errorf("%w: activity name is required", domain.ErrInvalidInput)
	}
	entry := &activityEntry{activity: activity.Clone()}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[activity.Name]; exists {
		return domain.ErrAlreadyExists
	}
	r.entries[activity.Name] = entry
	return nil
}

func (r *activityRepository) Update(ctx context.Context, name string, fn func(activity *domain.Activity) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e, ok := r.lookup(name)
	if !ok {
		return domain.ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.activity)
}
