// Package clock provides the current time to the alarm registry.
//
// The registry only needs the wall-clock time formatted as HH:MM and the
// weekday index, so tests can swap the system clock for a fixed instant.
package clock
