// Package version exposes build metadata of the alarm clock.
//
// Version, Commit and BuildTime are injected with -ldflags and fall back to
// local-build defaults.
package version
