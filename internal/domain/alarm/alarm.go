package alarm

import "fmt"

// MaxSnoozes is the number of successful snoozes an alarm allows.
const MaxSnoozes = 3

// Days lists weekday names indexed Sunday-first, matching time.Weekday.
//
//nolint:gochecknoglobals // Fixed lookup table.
var Days = [...]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// MenuDays is the Monday-first order in which days are offered to the user.
//
//nolint:gochecknoglobals // Fixed lookup table.
var MenuDays = [...]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// DayName resolves a Sunday-first weekday index (0..6) to its name.
func DayName(index int) (string, bool) {
	if index < 0 || index >= len(Days) {
		return "", false
	}

	return Days[index], true
}

// IsDay reports whether name is one of the seven weekday names.
func IsDay(name string) bool {
	for _, day := range Days {
		if day == name {
			return true
		}
	}

	return false
}

// Alarm is a single scheduled time and day trigger.
type Alarm struct {
	// Time is the trigger time in HH:MM 24-hour format.
	Time string
	// Day is the weekday name the alarm fires on.
	Day string
	// SnoozeCount is how many times the alarm has been snoozed.
	SnoozeCount int
}

// New creates an alarm with a zero snooze count.
// Neither value is validated here.
func New(time, day string) *Alarm {
	return &Alarm{
		Time: time,
		Day:  day,
	}
}

// IsTriggered reports whether the alarm matches the current time and day exactly.
func (a *Alarm) IsTriggered(currentTime, currentDay string) bool {
	return a.Time == currentTime && a.Day == currentDay
}

// Snooze increments the snooze count while it is below MaxSnoozes.
// It returns false and leaves the alarm untouched once the limit is reached.
func (a *Alarm) Snooze() bool {
	if a.SnoozeCount >= MaxSnoozes {
		return false
	}

	a.SnoozeCount++

	return true
}

// String renders the alarm as "HH:MM on Day".
func (a *Alarm) String() string {
	return fmt.Sprintf("%s on %s", a.Time, a.Day)
}
