// Package domain defines the business logic for the roster service.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrActivityNotFound is returned when an activity cannot be located.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the student is already on the roster.
	ErrAlreadySignedUp = errors.New("student is already signed up")
	// ErrNotSignedUp indicates the student is not on the roster.
	ErrNotSignedUp = errors.New("student is not signed up for this activity")
	// ErrActivityFull indicates the roster has reached max_participants.
	ErrActivityFull = errors.New("activity is full")
	// ErrEmailRequired indicates a missing or blank student email.
	ErrEmailRequired = errors.New("email is required")
)

// ActivityStore captures registry operations. Implementations own any
// locking needed for concurrent callers.
type ActivityStore interface {
	List(ctx context.Context) ([]Activity, error)
	Signup(ctx context.Context, activityName, email string) (*Activity, error)
	Unregister(ctx context.Context, activityName, email string) (*Activity, error)
}

// Service orchestrates roster workflows.
type Service struct {
	store ActivityStore
}

// NewService constructs a Service.
func NewService(store ActivityStore) *Service {
	return &Service{store: store}
}

// ListActivities returns a snapshot of every activity and its roster.
func (s *Service) ListActivities(ctx context.Context) ([]Activity, error) {
	return s.store.List(ctx)
}

// Signup enrolls a student into an activity.
func (s *Service) Signup(ctx context.Context, activityName, email string) (*Activity, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	activity, err := s.store.Signup(ctx, activityName, email)
	if err != nil {
		return nil, fmt.Errorf("signup %q for %q: %w", email, activityName, err)
	}
	return activity, nil
}

// Unregister removes a student from an activity roster.
func (s *Service) Unregister(ctx context.Context, activityName, email string) (*Activity, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	activity, err := s.store.Unregister(ctx, activityName, email)
	if err != nil {
		return nil, fmt.Errorf("unregister %q from %q: %w", email, activityName, err)
	}
	return activity, nil
}
