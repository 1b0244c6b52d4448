// Package alarm contains the core domain type of the alarm clock.
//
// An Alarm is a time (HH:MM) and a weekday name with a bounded snooze
// allowance. Whether it is triggered is derived from the current clock
// values and never stored.
package alarm
