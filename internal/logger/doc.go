// Package logger wraps zap for the alarm clock.
//
// Log lines go to stderr so they never mix with the interactive prompts on
// stdout. A named logger travels in the context (ToContext, FromContext,
// WithName, WithKV) and the level-specific helpers read it from there.
package logger
