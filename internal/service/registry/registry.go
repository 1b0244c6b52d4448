package registry

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/oshokin/alarm-clock/internal/clock"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/prompt"
)

// Prompter is the part of the user interaction the handling protocol needs.
type Prompter interface {
	Select(ctx context.Context, message string, options []prompt.Option) (string, error)
}

var (
	// ErrNotFound is returned by Remove when the alarm is not in the registry.
	ErrNotFound = errors.New("alarm not found")
	// errUnknownWeekday is returned when the clock yields an out-of-range weekday.
	errUnknownWeekday = errors.New("unknown weekday")
)

// Registry holds the alarms in insertion order.
// Duplicates are allowed; alarms are identified by pointer.
type Registry struct {
	prompter Prompter
	clock    clock.Clock

	// mu guards alarms. It is never held while a prompt is shown.
	mu     sync.Mutex
	alarms []*domain.Alarm
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock replaces the system clock.
func WithClock(c clock.Clock) Option {
	return func(r *Registry) {
		if c != nil {
			r.clock = c
		}
	}
}

// New creates an empty registry that asks p when an alarm goes off.
func New(p Prompter, opts ...Option) *Registry {
	r := &Registry{
		prompter: p,
		clock:    clock.System(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Add appends a new alarm with no snoozes and returns it.
func (r *Registry) Add(ctx context.Context, time, day string) *domain.Alarm {
	a := domain.New(time, day)

	r.mu.Lock()
	r.alarms = append(r.alarms, a)
	r.mu.Unlock()

	logger.InfoKV(ctx, "Alarm set", "time", time, "day", day)

	return a
}

// Remove deletes a from the registry.
// It returns ErrNotFound and leaves the registry unchanged if a is absent.
func (r *Registry) Remove(ctx context.Context, a *domain.Alarm) error {
	r.mu.Lock()
	index := slices.Index(r.alarms, a)

	if index < 0 {
		r.mu.Unlock()
		logger.WarnKV(ctx, "Alarm not found", "alarm", a)

		return ErrNotFound
	}

	r.alarms = slices.Delete(r.alarms, index, index+1)
	r.mu.Unlock()

	logger.InfoKV(ctx, "Alarm deleted", "alarm", a)

	return nil
}

// Alarms returns a snapshot of the alarms in insertion order.
func (r *Registry) Alarms() []*domain.Alarm {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.alarms)
}

// Len returns the number of registered alarms.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.alarms)
}

// Contains reports whether a is registered.
func (r *Registry) Contains(a *domain.Alarm) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Contains(r.alarms, a)
}
