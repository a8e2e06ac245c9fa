// ABOUTME: Yes/no confirmation prompt built on the generic typed prompt
// ABOUTME: Accepts y/yes/n/no case-insensitively

package askline

import "strings"

// NewConfirm returns a yes/no prompt. The parser accepts "y", "yes", "n",
// and "no" in any casing; anything else re-prompts.
func NewConfirm(message string) *CustomType[bool] {
	return NewCustomType(message, ParseBool).
		WithFormatter(formatBool).
		WithDefaultFormatter(hintBool).
		WithParseErrorMessage("answer with y or n")
}

// ParseBool is the confirm prompt's parser, exported for reuse with
// NewCustomType.
func ParseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// hintBool renders the default hint in the conventional Y/n form, with the
// default answer capitalised.
func hintBool(v bool) string {
	if v {
		return "Y/n"
	}
	return "y/N"
}
