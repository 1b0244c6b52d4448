// Package prompt implements the user-interaction primitives the alarm clock
// depends on: single-select, free text and a bounded numeric choice.
//
// Line works over any reader/writer pair and is used for pipes and tests.
// Terminal runs a small bubbletea program per prompt when stdin and stdout
// are a TTY. Auto picks between them.
package prompt
