package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line is a line-oriented Prompter: options are printed as a numbered list
// and every answer is one line of input.
type Line struct {
	in  *bufio.Reader
	out io.Writer

	// pending carries the result of a read still in flight, so a line
	// typed after a cancelled prompt is handed to the next one.
	pending chan readResult
}

// readResult is one ReadString outcome.
type readResult struct {
	line string
	err  error
}

var _ Prompter = (*Line)(nil)

// NewLine creates a Line prompter reading answers from in and writing to out.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Select prints the options and returns the value of the chosen one.
// An empty answer or end of input yields ErrAborted; an answer matching no
// option yields ErrInvalidChoice.
func (l *Line) Select(ctx context.Context, message string, options []Option) (string, error) {
	if len(options) == 0 {
		return "", errNoOptions
	}

	l.printf("%s\n", message)

	for i, option := range options {
		l.printf("  %d) %s\n", i+1, option.Label)
	}

	l.printf("> ")

	answer, err := l.readLine(ctx)
	if err != nil {
		return "", err
	}

	if answer == "" {
		return "", ErrAborted
	}

	value, ok := matchOption(answer, options)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidChoice, answer)
	}

	return value, nil
}

// Input prints message and returns the trimmed answer.
func (l *Line) Input(ctx context.Context, message string) (string, error) {
	l.printf("%s ", message)

	return l.readLine(ctx)
}

// Number keeps asking until the answer is an integer in [minValue, maxValue].
func (l *Line) Number(ctx context.Context, message string, minValue, maxValue int) (int, error) {
	if minValue > maxValue {
		return 0, errInvalidRange
	}

	for {
		l.printf("%s ", message)

		answer, err := l.readLine(ctx)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(answer)
		if err == nil && value >= minValue && value <= maxValue {
			return value, nil
		}

		l.printf("Invalid choice\n")
	}
}

// readLine returns the next trimmed line. End of input without any pending
// text is reported as ErrAborted. The blocking read runs in its own
// goroutine so cancelling ctx returns immediately.
func (l *Line) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if l.pending == nil {
		l.pending = make(chan readResult, 1)

		go func(in *bufio.Reader, results chan<- readResult) {
			line, err := in.ReadString('\n')
			results <- readResult{line: line, err: err}
		}(l.in, l.pending)
	}

	var result readResult

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result = <-l.pending:
		l.pending = nil
	}

	line, err := result.line, result.err
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read answer: %w", err)
		}

		if line == "" {
			return "", ErrAborted
		}
	}

	return strings.TrimSpace(line), nil
}

func (l *Line) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(l.out, format, args...)
}
