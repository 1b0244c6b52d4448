package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/prompt"
	"github.com/oshokin/alarm-clock/internal/service/registry"
)

// Action is a top-level menu entry, numbered as shown to the user.
type Action int

const (
	// ActionSet asks for a time and a day and registers an alarm.
	ActionSet Action = iota + 1
	// ActionCheck checks alarms against the current time.
	ActionCheck
	// ActionDelete removes a chosen alarm.
	ActionDelete
	// ActionExit leaves the menu.
	ActionExit
)

//nolint:gochecknoglobals // Fixed menu labels.
var actionLabels = map[Action]string{
	ActionSet:    "Set Alarm",
	ActionCheck:  "Check Alarms",
	ActionDelete: "Delete Alarm",
	ActionExit:   "Exit",
}

// String returns the menu label of the action.
func (a Action) String() string {
	if label, ok := actionLabels[a]; ok {
		return label
	}

	return "Action(" + strconv.Itoa(int(a)) + ")"
}

// Menu is the interactive shell over a registry.
type Menu struct {
	registry *registry.Registry
	prompter prompt.Prompter
	out      io.Writer
	title    lipgloss.Style
}

// New creates a menu that reports to out and asks p for input.
func New(r *registry.Registry, p prompt.Prompter, out io.Writer) *Menu {
	return &Menu{
		registry: r,
		prompter: p,
		out:      out,
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
	}
}

// Loop shows the menu until Exit is chosen, input ends or ctx is cancelled.
func (m *Menu) Loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			logger.Info(ctx, "Context canceled, exiting")
			return nil
		}

		m.display()

		choice, err := m.prompter.Number(ctx, "Enter your choice:", int(ActionSet), int(ActionExit))

		switch {
		case errors.Is(err, prompt.ErrAborted), errors.Is(err, context.Canceled):
			m.println("Exiting Alarm Clock...")
			return nil
		case err != nil:
			return fmt.Errorf("read menu choice: %w", err)
		}

		exit, err := m.Dispatch(ctx, Action(choice))

		switch {
		case errors.Is(err, context.Canceled):
			logger.Info(ctx, "Context canceled, exiting")
			return nil
		case err != nil:
			return err
		}

		if exit {
			return nil
		}
	}
}

// Dispatch performs one menu action. It reports true when the menu should exit.
func (m *Menu) Dispatch(ctx context.Context, action Action) (bool, error) {
	logger.DebugKV(ctx, "Menu action", "action", action.String())

	switch action {
	case ActionSet:
		return false, m.setAlarm(ctx)
	case ActionCheck:
		return false, m.checkAlarms(ctx)
	case ActionDelete:
		return false, m.deleteAlarm(ctx)
	case ActionExit:
		m.println("Exiting Alarm Clock...")
		return true, nil
	default:
		m.println("Unexpected error.")
		return false, nil
	}
}

func (m *Menu) display() {
	m.println(m.title.Render("Alarm Clock Menu:"))

	for action := ActionSet; action <= ActionExit; action++ {
		m.printf("%d. %s\n", int(action), action)
	}
}

func (m *Menu) setAlarm(ctx context.Context) error {
	value, err := m.prompter.Input(ctx, "Enter alarm time (HH:MM):")
	if err != nil {
		return m.cancelled(ctx, err)
	}

	options := make([]prompt.Option, 0, len(domain.MenuDays))
	for _, day := range domain.MenuDays {
		options = append(options, prompt.Option{Label: day, Value: day})
	}

	day, err := m.prompter.Select(ctx, "Select day:", options)
	if err != nil {
		return m.cancelled(ctx, err)
	}

	a := m.registry.Add(ctx, value, day)
	m.printf("Alarm set for %s.\n", a)

	return nil
}

func (m *Menu) checkAlarms(ctx context.Context) error {
	resolutions, err := m.registry.Check(ctx)
	if err != nil {
		return fmt.Errorf("check alarms: %w", err)
	}

	if len(resolutions) == 0 {
		m.println("No alarms triggered currently.")
		return nil
	}

	m.println("Alarm triggered!")

	for _, resolution := range resolutions {
		switch resolution.Outcome {
		case registry.OutcomeSnoozed:
			m.printf("Alarm %s snoozed (%d of %d).\n",
				resolution.Alarm, resolution.Alarm.SnoozeCount, domain.MaxSnoozes)
		case registry.OutcomeDismissed:
			m.printf("Alarm %s dismissed.\n", resolution.Alarm)
		case registry.OutcomeForceDismissed:
			m.println("Maximum attempts reached. Dismissing alarm automatically.")
		}
	}

	return nil
}

func (m *Menu) deleteAlarm(ctx context.Context) error {
	alarms := m.registry.Alarms()
	if len(alarms) == 0 {
		m.println("No alarms to delete.")
		return nil
	}

	options := make([]prompt.Option, 0, len(alarms))
	for i, a := range alarms {
		options = append(options, prompt.Option{
			Label: fmt.Sprintf("%d. %s", i+1, a),
			Value: strconv.Itoa(i),
		})
	}

	value, err := m.prompter.Select(ctx, "Select alarm to delete:", options)
	if err != nil {
		return m.cancelled(ctx, err)
	}

	index, err := strconv.Atoi(value)
	if err != nil || index < 0 || index >= len(alarms) {
		m.println("Alarm not found.")
		return nil
	}

	if err := m.registry.Remove(ctx, alarms[index]); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			m.println("Alarm not found.")
			return nil
		}

		return fmt.Errorf("delete alarm: %w", err)
	}

	m.println("Alarm deleted.")

	return nil
}

// cancelled treats an aborted or rejected prompt as a cancelled action.
// Any other error is returned.
func (m *Menu) cancelled(ctx context.Context, err error) error {
	if errors.Is(err, prompt.ErrAborted) || errors.Is(err, prompt.ErrInvalidChoice) {
		logger.DebugKV(ctx, "Menu action cancelled", "error", err)
		m.println("Cancelled.")

		return nil
	}

	return err
}

func (m *Menu) println(s string) {
	_, _ = fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}
