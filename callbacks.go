// ABOUTME: Callback contracts plugged in by callers: validators, formatters, parsers
// ABOUTME: Built-in grapheme-aware validators: Required, MinLength, MaxLength

package askline

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Validator checks a candidate answer. A non-empty message re-prompts with
// that message rendered above the prompt; a non-nil error aborts the prompt
// and is returned to the caller as-is. Validators run in insertion order and
// evaluation stops at the first non-valid result.
type Validator[T any] func(value T) (msg string, err error)

// Formatter turns a submitted answer into its display form for the final
// answered line.
type Formatter[T any] func(value T) string

// Parser converts raw input text into a typed value for CustomType prompts.
// A false result re-prompts with the prompt's configured error message.
type Parser[T any] func(content string) (T, bool)

// Autocompleter supplies live suggestions for the Text prompt.
type Autocompleter interface {
	// GetSuggestions returns the suggestions for the typed text.
	GetSuggestions(content string) ([]string, error)

	// GetCompletion resolves a Tab press. highlighted holds the suggestion
	// under the cursor, if any. Returning ok=false leaves the buffer alone.
	GetCompletion(content string, highlighted string, hasHighlight bool) (replacement string, ok bool, err error)
}

// runValidators applies validators in order, stopping at the first failure.
func runValidators[T any](validators []Validator[T], value T) (string, error) {
	for _, v := range validators {
		msg, err := v(value)
		if err != nil || msg != "" {
			return msg, err
		}
	}
	return "", nil
}

// Required rejects empty or all-whitespace input.
func Required() Validator[string] {
	return func(value string) (string, error) {
		if strings.TrimSpace(value) == "" {
			return "a value is required", nil
		}
		return "", nil
	}
}

// MinLength rejects input shorter than n grapheme clusters.
func MinLength(n int) Validator[string] {
	return func(value string) (string, error) {
		if uniseg.GraphemeClusterCount(value) < n {
			return fmt.Sprintf("at least %d characters required", n), nil
		}
		return "", nil
	}
}

// MaxLength rejects input longer than n grapheme clusters.
func MaxLength(n int) Validator[string] {
	return func(value string) (string, error) {
		if uniseg.GraphemeClusterCount(value) > n {
			return fmt.Sprintf("at most %d characters allowed", n), nil
		}
		return "", nil
	}
}
