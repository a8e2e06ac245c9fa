// ABOUTME: Package doc and the error values shared by every prompt
// ABOUTME: Sentinel errors distinguish interrupt, cancel, and bad construction

// Package askline provides a family of interactive terminal prompts: text
// input with autocompletion, single- and multi-select with fuzzy filtering,
// reorderable lists, passwords with confirmation, a calendar date picker,
// parsed custom types, yes/no confirmation, and external-editor handoff.
//
// Every prompt follows the same shape: construct it with New*, refine it
// with the fluent With* setters, then call Prompt for the typed answer or
// PromptSkippable to treat Esc as "no answer".
package askline

import "errors"

var (
	// ErrInterrupted is returned when the user presses Ctrl+C. The prompt
	// exits immediately, leaving the current frame as the last terminal
	// state.
	ErrInterrupted = errors.New("prompt interrupted")

	// ErrCanceled is returned when the user presses Esc. A canceled
	// indicator line is rendered first. PromptSkippable swallows this error.
	ErrCanceled = errors.New("prompt canceled")

	// ErrInvalidConfiguration reports a construction-time error, such as a
	// select prompt over an empty option list. It is detected at Prompt
	// entry before the terminal is touched.
	ErrInvalidConfiguration = errors.New("invalid prompt configuration")
)
