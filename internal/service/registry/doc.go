// Package registry owns the alarm collection and drives the handling
// protocol for triggered alarms.
//
// Alarms are only checked on demand. Every triggered alarm is resolved to
// Snoozed, Dismissed or ForceDismissed through at most MaxAttempts rounds of
// Snooze/Dismiss prompts, one alarm at a time.
package registry
