// Package config loads, validates and saves the alarm clock settings in YAML.
//
// Settings cover the log level, the prompter mode and a list of alarms that
// are registered when the program starts.
package config
