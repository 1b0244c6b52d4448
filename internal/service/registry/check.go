package registry

import (
	"context"
	"fmt"

	"github.com/oshokin/alarm-clock/internal/clock"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/prompt"
)

// MaxAttempts bounds the Snooze/Dismiss rounds of the handling protocol.
const MaxAttempts = 3

// Outcome is the terminal state of the handling protocol for one alarm.
type Outcome int

const (
	// OutcomeSnoozed means the alarm stays registered with one more snooze.
	OutcomeSnoozed Outcome = iota + 1
	// OutcomeDismissed means the user dismissed and the alarm was removed.
	OutcomeDismissed
	// OutcomeForceDismissed means MaxAttempts rounds went unresolved and the
	// alarm was removed automatically.
	OutcomeForceDismissed
)

// String returns a lowercase name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSnoozed:
		return "snoozed"
	case OutcomeDismissed:
		return "dismissed"
	case OutcomeForceDismissed:
		return "force-dismissed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Resolution reports how one triggered alarm was handled.
type Resolution struct {
	// Alarm is the triggered alarm.
	Alarm *domain.Alarm
	// Outcome is the terminal state reached.
	Outcome Outcome
	// Rounds is how many prompts were shown, at most MaxAttempts.
	Rounds int
}

// Choice values offered while an alarm is ringing.
const (
	ChoiceSnooze  = "snooze"
	ChoiceDismiss = "dismiss"
)

// AlarmPrompt is the question asked while an alarm is ringing.
const AlarmPrompt = "Alarm! What do you want to do?"

//nolint:gochecknoglobals // Fixed option list.
var alarmChoices = []prompt.Option{
	{Label: "Snooze", Value: ChoiceSnooze},
	{Label: "Dismiss", Value: ChoiceDismiss},
}

// Check compares every alarm against the current clock time (HH:MM) and
// weekday, then handles each triggered alarm in registry order, one at a
// time. It returns one Resolution per triggered alarm; an empty result means
// nothing was triggered.
func (r *Registry) Check(ctx context.Context) ([]Resolution, error) {
	now := r.clock.Now()
	currentTime := clock.FormatTime(now)

	currentDay, ok := domain.DayName(clock.WeekdayIndex(now))
	if !ok {
		return nil, fmt.Errorf("resolve weekday of %s: %w", now, errUnknownWeekday)
	}

	triggered := r.triggered(currentTime, currentDay)
	if len(triggered) == 0 {
		logger.InfoKV(ctx, "No alarms triggered currently", "time", currentTime, "day", currentDay)
		return nil, nil
	}

	logger.InfoKV(ctx, "Alarm triggered", "count", len(triggered), "time", currentTime, "day", currentDay)

	resolutions := make([]Resolution, 0, len(triggered))
	for _, a := range triggered {
		resolutions = append(resolutions, r.handle(ctx, a))
	}

	return resolutions, nil
}

// triggered returns the alarms matching the given time and day.
func (r *Registry) triggered(currentTime, currentDay string) []*domain.Alarm {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matches []*domain.Alarm

	for _, a := range r.alarms {
		if a.IsTriggered(currentTime, currentDay) {
			matches = append(matches, a)
		}
	}

	return matches
}

// handle runs the Snooze/Dismiss protocol for a single alarm. Each round
// that neither snoozes successfully nor dismisses consumes an attempt; when
// none are left the alarm is removed.
func (r *Registry) handle(ctx context.Context, a *domain.Alarm) Resolution {
	ctx = logger.WithKV(ctx, "alarm", a.String())

	rounds := 0

	for attempts := MaxAttempts; attempts > 0; attempts-- {
		rounds++

		choice, err := r.prompter.Select(ctx, AlarmPrompt, alarmChoices)
		if err != nil {
			logger.DebugKV(ctx, "Alarm prompt unresolved", "round", rounds, "error", err)
			continue
		}

		switch choice {
		case ChoiceSnooze:
			if a.Snooze() {
				logger.InfoKV(ctx, "Alarm snoozed", "snooze_count", a.SnoozeCount)

				return Resolution{Alarm: a, Outcome: OutcomeSnoozed, Rounds: rounds}
			}

			logger.InfoKV(ctx, "Maximum snooze limit reached", "snooze_count", a.SnoozeCount)
		case ChoiceDismiss:
			r.removeTriggered(ctx, a)

			return Resolution{Alarm: a, Outcome: OutcomeDismissed, Rounds: rounds}
		default:
			logger.DebugKV(ctx, "Unrecognized alarm choice", "round", rounds, "choice", choice)
		}
	}

	logger.InfoKV(ctx, "Maximum attempts reached, dismissing alarm automatically", "rounds", rounds)
	r.removeTriggered(ctx, a)

	return Resolution{Alarm: a, Outcome: OutcomeForceDismissed, Rounds: rounds}
}

// removeTriggered removes an alarm at the end of the protocol.
// A missing alarm is only reported.
func (r *Registry) removeTriggered(ctx context.Context, a *domain.Alarm) {
	if err := r.Remove(ctx, a); err != nil {
		logger.DebugKV(ctx, "Triggered alarm already gone", "error", err)
	}
}
