// Package memory provides the in-memory activity registry backing the
// roster service. The registry is the only owner of roster state; callers
// get deep copies and never a live reference.
package memory

import (
	"context"
	"sync"

	"example.com/roster/internal/domain"
)

// Registry is a mutex-guarded in-memory implementation of domain.ActivityStore.
type Registry struct {
	mu              sync.RWMutex
	activities      map[string]*domain.Activity
	order           []string
	enforceCapacity bool
}

// Option customises registry behaviour.
type Option func(*Registry)

// WithCapacityEnforcement toggles rejection of signups once a roster is at
// max_participants. Enabled by default.
func WithCapacityEnforcement(enabled bool) Option {
	return func(r *Registry) {
		r.enforceCapacity = enabled
	}
}

// NewRegistry seeds a registry. A later seed entry with a duplicate name
// replaces the earlier one.
func NewRegistry(seed []domain.Activity, opts ...Option) *Registry {
	r := &Registry{
		activities:      make(map[string]*domain.Activity, len(seed)),
		order:           make([]string, 0, len(seed)),
		enforceCapacity: true,
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, activity := range seed {
		clone := activity.Clone()
		if _, exists := r.activities[clone.Name]; !exists {
			r.order = append(r.order, clone.Name)
		}
		r.activities[clone.Name] = &clone
	}
	return r
}

// List returns deep copies of every activity in seed order.
func (r *Registry) List(_ context.Context) ([]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Activity, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.activities[name].Clone())
	}
	return out, nil
}

// Signup adds email to the named activity's roster.
func (r *Registry) Signup(_ context.Context, activityName, email string) (*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[activityName]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	if activity.HasParticipant(email) {
		return nil, domain.ErrAlreadySignedUp
	}
	if r.enforceCapacity && activity.Full() {
		return nil, domain.ErrActivityFull
	}

	activity.Participants = append(activity.Participants, email)
	clone := activity.Clone()
	return &clone, nil
}

// Unregister removes email from the named activity's roster.
func (r *Registry) Unregister(_ context.Context, activityName, email string) (*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[activityName]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}

	idx := -1
	for i, p := range activity.Participants {
		if p == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrNotSignedUp
	}

	activity.Participants = append(activity.Participants[:idx], activity.Participants[idx+1:]...)
	clone := activity.Clone()
	return &clone, nil
}
