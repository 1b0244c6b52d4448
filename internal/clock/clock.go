package clock

import "time"

// TimeLayout is the HH:MM 24-hour layout alarms are compared against.
const TimeLayout = "15:04"

// Clock supplies the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to the Clock interface.
type Func func() time.Time

// Now calls f.
func (f Func) Now() time.Time {
	return f()
}

// System returns a clock backed by time.Now.
//
//nolint:ireturn // Callers only need the interface.
func System() Clock {
	return Func(time.Now)
}

// Fixed returns a clock that always reports t.
//
//nolint:ireturn // Callers only need the interface.
func Fixed(t time.Time) Clock {
	return Func(func() time.Time { return t })
}

// FormatTime renders t as HH:MM.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// WeekdayIndex returns the weekday of t as 0..6 with Sunday = 0.
func WeekdayIndex(t time.Time) int {
	return int(t.Weekday())
}
