// Package menu runs the interactive alarm clock shell: Set Alarm, Check
// Alarms, Delete Alarm and Exit, each mapped onto one registry operation.
package menu
