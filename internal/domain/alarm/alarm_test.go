package alarm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNew verifies a fresh alarm keeps its values and starts with no snoozes.
func TestNew(t *testing.T) {
	t.Parallel()

	a := New("07:00", "Monday")

	require.Equal(t, "07:00", a.Time)
	require.Equal(t, "Monday", a.Day)
	require.Zero(t, a.SnoozeCount)
	require.Equal(t, "07:00 on Monday", a.String())
}

// TestIsTriggered checks that both time and day must match exactly.
func TestIsTriggered(t *testing.T) {
	t.Parallel()

	a := New("07:00", "Monday")

	cases := []struct {
		name string
		time string
		day  string
		want bool
	}{
		{name: "exact match", time: "07:00", day: "Monday", want: true},
		{name: "other time", time: "07:01", day: "Monday", want: false},
		{name: "other day", time: "07:00", day: "Tuesday", want: false},
		{name: "day is case sensitive", time: "07:00", day: "monday", want: false},
		{name: "no time normalization", time: "7:00", day: "Monday", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, a.IsTriggered(tc.time, tc.day))
		})
	}
}

// TestSnooze verifies the snooze cap and that a refused snooze does not mutate.
func TestSnooze(t *testing.T) {
	t.Parallel()

	a := New("07:00", "Monday")

	for i := 1; i <= MaxSnoozes; i++ {
		require.True(t, a.Snooze())
		require.Equal(t, i, a.SnoozeCount)
	}

	require.False(t, a.Snooze())
	require.Equal(t, MaxSnoozes, a.SnoozeCount)
}

// TestDayName checks the Sunday-first lookup table and out-of-range indexes.
func TestDayName(t *testing.T) {
	t.Parallel()

	name, ok := DayName(0)
	require.True(t, ok)
	require.Equal(t, "Sunday", name)

	name, ok = DayName(1)
	require.True(t, ok)
	require.Equal(t, "Monday", name)

	name, ok = DayName(6)
	require.True(t, ok)
	require.Equal(t, "Saturday", name)

	_, ok = DayName(7)
	require.False(t, ok)

	_, ok = DayName(-1)
	require.False(t, ok)

	require.True(t, IsDay("Friday"))
	require.False(t, IsDay("friday"))
	require.ElementsMatch(t, Days[:], MenuDays[:])
}
