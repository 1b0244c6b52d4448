package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Option is one labeled choice of a Select prompt.
type Option struct {
	// Label is shown to the user.
	Label string
	// Value is returned when the option is chosen.
	Value string
}

// Mode selects a Prompter implementation.
type Mode string

const (
	// ModeAuto uses Terminal on a TTY and Line otherwise.
	ModeAuto Mode = "auto"
	// ModeLine always uses the line-oriented prompter.
	ModeLine Mode = "line"
	// ModeTerminal always uses the interactive terminal prompter.
	ModeTerminal Mode = "terminal"
)

var (
	// ErrAborted is the "no selection" signal: the user cancelled or input ended.
	ErrAborted = errors.New("prompt aborted")
	// ErrInvalidChoice is returned by Select when the answer matches no option.
	ErrInvalidChoice = errors.New("invalid choice")
	// errNoOptions is returned when Select is called without options.
	errNoOptions = errors.New("no options to choose from")
	// errInvalidRange is returned when Number is given min > max.
	errInvalidRange = errors.New("invalid numeric range")
	// errUnknownMode is returned for an unsupported Mode.
	errUnknownMode = errors.New("unknown prompter mode")
)

// Prompter supplies the interaction primitives used by the menu and the
// alarm handling protocol.
type Prompter interface {
	// Select asks for one of options and returns its Value.
	Select(ctx context.Context, message string, options []Option) (string, error)
	// Input asks for a line of free text.
	Input(ctx context.Context, message string) (string, error)
	// Number asks for an integer in [minValue, maxValue], re-prompting until valid.
	Number(ctx context.Context, message string, minValue, maxValue int) (int, error)
}

// ParseMode validates a mode name. An empty name means ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeLine, ModeTerminal:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", errUnknownMode, s)
	}
}

// New builds the prompter for mode on top of the given files.
//
//nolint:ireturn // The concrete type depends on mode.
func New(mode Mode, in, out *os.File) (Prompter, error) {
	switch mode {
	case ModeLine:
		return NewLine(in, out), nil
	case ModeTerminal:
		return NewTerminal(in, out), nil
	case ModeAuto, "":
		if IsTerminal(in) && IsTerminal(out) {
			return NewTerminal(in, out), nil
		}

		return NewLine(in, out), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownMode, mode)
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd())) //nolint:gosec // File descriptors fit in int.
}

// matchOption resolves an answer to an option value: a 1-based index,
// or a case-insensitive label or value.
func matchOption(answer string, options []Option) (string, bool) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", false
	}

	if index, err := strconv.Atoi(answer); err == nil {
		if index >= 1 && index <= len(options) {
			return options[index-1].Value, true
		}

		return "", false
	}

	for _, option := range options {
		if strings.EqualFold(option.Label, answer) || strings.EqualFold(option.Value, answer) {
			return option.Value, true
		}
	}

	return "", false
}
