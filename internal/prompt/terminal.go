package prompt

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Terminal is an interactive Prompter. Each prompt runs a short-lived
// bubbletea program: arrows or j/k move, enter chooses, esc or ctrl+c aborts.
type Terminal struct {
	in     io.Reader
	out    io.Writer
	keys   keyMap
	styles styles
}

var _ Prompter = (*Terminal)(nil)

// NewTerminal creates a Terminal prompter on the given streams.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:     in,
		out:    out,
		keys:   defaultKeyMap(),
		styles: defaultStyles(),
	}
}

// Select shows the options as a list and returns the highlighted value on enter.
func (t *Terminal) Select(ctx context.Context, message string, options []Option) (string, error) {
	if len(options) == 0 {
		return "", errNoOptions
	}

	final, err := t.run(ctx, newSelectModel(message, options, t.keys, t.styles))
	if err != nil {
		return "", err
	}

	m, ok := final.(selectModel)
	if !ok || !m.chosen {
		return "", ErrAborted
	}

	return m.options[m.cursor].Value, nil
}

// Input asks for free text.
func (t *Terminal) Input(ctx context.Context, message string) (string, error) {
	final, err := t.run(ctx, newInputModel(message, nil, t.keys, t.styles))
	if err != nil {
		return "", err
	}

	m, ok := final.(inputModel)
	if !ok || !m.done {
		return "", ErrAborted
	}

	return strings.TrimSpace(m.input.Value()), nil
}

// Number asks for an integer in [minValue, maxValue]; invalid answers are
// rejected in place with "Invalid choice".
func (t *Terminal) Number(ctx context.Context, message string, minValue, maxValue int) (int, error) {
	if minValue > maxValue {
		return 0, errInvalidRange
	}

	validate := func(s string) error {
		value, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || value < minValue || value > maxValue {
			return ErrInvalidChoice
		}

		return nil
	}

	final, err := t.run(ctx, newInputModel(message, validate, t.keys, t.styles))
	if err != nil {
		return 0, err
	}

	m, ok := final.(inputModel)
	if !ok || !m.done {
		return 0, ErrAborted
	}

	// Already validated by the model.
	value, _ := strconv.Atoi(strings.TrimSpace(m.input.Value()))

	return value, nil
}

func (t *Terminal) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	program := tea.NewProgram(
		model,
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	if err != nil {
		return nil, fmt.Errorf("run prompt: %w", err)
	}

	return final, nil
}

// keyMap holds the bindings shared by all prompt models.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Abort  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		Abort: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

type styles struct {
	message  lipgloss.Style
	selected lipgloss.Style
	normal   lipgloss.Style
	answer   lipgloss.Style
	invalid  lipgloss.Style
	help     lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		message:  lipgloss.NewStyle().Bold(true),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		answer:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		invalid:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// selectModel is a single-select list.
type selectModel struct {
	message string
	options []Option
	cursor  int
	chosen  bool
	aborted bool
	keys    keyMap
	styles  styles
}

func newSelectModel(message string, options []Option, keys keyMap, st styles) selectModel {
	return selectModel{
		message: message,
		options: options,
		keys:    keys,
		styles:  st,
	}
}

// Init implements tea.Model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and finishes on choose or abort.
//
//nolint:ireturn // tea.Model is the bubbletea contract.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Abort):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Choose):
		m.chosen = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor--
		if m.cursor < 0 {
			m.cursor = len(m.options) - 1
		}
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor++
		if m.cursor >= len(m.options) {
			m.cursor = 0
		}
	}

	return m, nil
}

// View renders the list, or only the answer once the prompt is finished.
func (m selectModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.message.Render(m.message))

	switch {
	case m.chosen:
		b.WriteString(" " + m.styles.answer.Render(m.options[m.cursor].Label) + "\n")
		return b.String()
	case m.aborted:
		b.WriteString(" " + m.styles.help.Render("(cancelled)") + "\n")
		return b.String()
	}

	b.WriteString("\n")

	for i, option := range m.options {
		if i == m.cursor {
			b.WriteString(m.styles.selected.Render("> "+option.Label) + "\n")
			continue
		}

		b.WriteString(m.styles.normal.Render("  "+option.Label) + "\n")
	}

	b.WriteString(m.styles.help.Render(helpLine(m.keys.Up, m.keys.Down, m.keys.Choose, m.keys.Abort)) + "\n")

	return b.String()
}

// inputModel reads one line of text, optionally validated on enter.
type inputModel struct {
	message  string
	input    textinput.Model
	validate func(string) error
	invalid  bool
	done     bool
	aborted  bool
	keys     keyMap
	styles   styles
}

func newInputModel(message string, validate func(string) error, keys keyMap, st styles) inputModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Focus()

	return inputModel{
		message:  message,
		input:    input,
		validate: validate,
		keys:     keys,
		styles:   st,
	}
}

// Init implements tea.Model.
func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards typing to the text input and finishes on choose or abort.
//
//nolint:ireturn // tea.Model is the bubbletea contract.
func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Abort):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Choose):
			if m.validate != nil && m.validate(m.input.Value()) != nil {
				m.invalid = true
				m.input.SetValue("")

				return m, nil
			}

			m.done = true

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// View renders the question and the text field.
func (m inputModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.message.Render(m.message))

	switch {
	case m.done:
		b.WriteString(" " + m.styles.answer.Render(m.input.Value()) + "\n")
		return b.String()
	case m.aborted:
		b.WriteString(" " + m.styles.help.Render("(cancelled)") + "\n")
		return b.String()
	}

	b.WriteString("\n" + m.input.View() + "\n")

	if m.invalid {
		b.WriteString(m.styles.invalid.Render("Invalid choice") + "\n")
	}

	return b.String()
}

func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}

	return strings.Join(parts, " • ")
}
