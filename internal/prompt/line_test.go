package prompt

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var choices = []Option{
	{Label: "Snooze", Value: "snooze"},
	{Label: "Dismiss", Value: "dismiss"},
}

// TestLine_Select covers index, label and value answers as well as aborts.
func TestLine_Select(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "by index", input: "2\n", want: "dismiss"},
		{name: "by label", input: "Snooze\n", want: "snooze"},
		{name: "by value ignoring case", input: "DISMISS\n", want: "dismiss"},
		{name: "index out of range", input: "3\n", wantErr: ErrInvalidChoice},
		{name: "unknown answer", input: "later\n", wantErr: ErrInvalidChoice},
		{name: "empty answer", input: "\n", wantErr: ErrAborted},
		{name: "end of input", input: "", wantErr: ErrAborted},
		{name: "last line without newline", input: "1", want: "snooze"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			p := NewLine(strings.NewReader(tc.input), &out)

			got, err := p.Select(context.Background(), "Alarm! What do you want to do?", choices)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Contains(t, out.String(), "1) Snooze")
			require.Contains(t, out.String(), "2) Dismiss")
		})
	}
}

// TestLine_SelectWithoutOptions ensures an empty option list is rejected.
func TestLine_SelectWithoutOptions(t *testing.T) {
	t.Parallel()

	p := NewLine(strings.NewReader("1\n"), new(bytes.Buffer))

	_, err := p.Select(context.Background(), "Pick", nil)
	require.Error(t, err)
}

// TestLine_Input verifies free text is trimmed and end of input aborts.
func TestLine_Input(t *testing.T) {
	t.Parallel()

	p := NewLine(strings.NewReader("  07:30 \n"), new(bytes.Buffer))

	got, err := p.Input(context.Background(), "Enter alarm time (HH:MM):")
	require.NoError(t, err)
	require.Equal(t, "07:30", got)

	_, err = p.Input(context.Background(), "Enter alarm time (HH:MM):")
	require.ErrorIs(t, err, ErrAborted)
}

// TestLine_Number verifies invalid answers are re-prompted until one is in range.
func TestLine_Number(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	p := NewLine(strings.NewReader("0\nfive\n5\n3\n"), &out)

	got, err := p.Number(context.Background(), "Enter your choice:", 1, 4)
	require.NoError(t, err)
	require.Equal(t, 3, got)
	require.Equal(t, 3, strings.Count(out.String(), "Invalid choice"))

	_, err = p.Number(context.Background(), "Enter your choice:", 1, 4)
	require.ErrorIs(t, err, ErrAborted)

	_, err = p.Number(context.Background(), "Enter your choice:", 4, 1)
	require.Error(t, err)
}

// TestLine_CanceledContext ensures no input is consumed once ctx is done.
func TestLine_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewLine(strings.NewReader("1\n"), new(bytes.Buffer))

	_, err := p.Input(ctx, "Enter alarm time (HH:MM):")
	require.ErrorIs(t, err, context.Canceled)
}

// TestLine_CancelWhileWaiting verifies a prompt blocked on input returns once ctx is cancelled,
// and that a line arriving later is handed to the next prompt.
func TestLine_CancelWhileWaiting(t *testing.T) {
	t.Parallel()

	reader, writer := io.Pipe()
	t.Cleanup(func() { _ = writer.Close() })

	p := NewLine(reader, new(bytes.Buffer))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		_, err := p.Number(ctx, "Enter your choice:", 1, 4)
		done <- err
	}()

	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Number did not return after cancel")
	}

	go func() {
		_, _ = io.WriteString(writer, "2\n")
	}()

	got, err := p.Number(context.Background(), "Enter your choice:", 1, 4)
	require.NoError(t, err)
	require.Equal(t, 2, got)
}
