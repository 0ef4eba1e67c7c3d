// Package separator provides separator detection and resolution for the formx CLI tool.
//
// A Separator is one of the three concrete item separators (space, comma,
// newline). A Choice is what the user selects on the command line: one of
// the concrete separators, or Auto, which defers to frequency-based
// detection against the cleaned input text.
package separator

import (
	"fmt"
	"strings"
)

// Separator is a concrete item separator.
type Separator int

const (
	// Space separates items with single spaces (default)
	Space Separator = iota
	// Comma separates items with commas
	Comma
	// Newline separates items with line breaks
	Newline
)

// String returns the string representation of the separator.
func (s Separator) String() string {
	switch s {
	case Space:
		return "space"
	case Comma:
		return "comma"
	case Newline:
		return "newline"
	default:
		return "unknown"
	}
}

// Delimiter returns the character this separator splits input on.
func (s Separator) Delimiter() string {
	switch s {
	case Comma:
		return ","
	case Newline:
		return "\n"
	default:
		return " "
	}
}

// Join returns the string used to rejoin items in separator-style output.
// Commas render with a trailing space for readability.
func (s Separator) Join() string {
	switch s {
	case Comma:
		return ", "
	case Newline:
		return "\n"
	default:
		return " "
	}
}

// Detect chooses the most likely separator for the given text by counting
// candidate occurrences. Commas win whenever they appear at least as often
// as newlines; newlines win otherwise when present; space is the fallback.
// Empty text detects as Space.
//
// Note that callers pass cleaned text (see the tokenizer package), where
// whitespace runs have already collapsed to single spaces; in that case
// newlines can no longer win and detection resolves to Comma or Space.
func Detect(text string) Separator {
	if text == "" {
		return Space
	}

	commaCount := strings.Count(text, ",")
	newlineCount := strings.Count(text, "\n")

	switch {
	case commaCount > 0 && commaCount >= newlineCount:
		return Comma
	case newlineCount > 0:
		return Newline
	default:
		return Space
	}
}

// Choice is the user-selected separator option.
type Choice int

const (
	// Auto detects the separator from the input text (default)
	Auto Choice = iota
	// ManualSpace selects space joining
	ManualSpace
	// ManualComma selects comma joining
	ManualComma
	// ManualNewline selects newline joining
	ManualNewline
)

// String returns the string representation of the choice.
func (c Choice) String() string {
	switch c {
	case Auto:
		return "auto"
	case ManualSpace:
		return "space"
	case ManualComma:
		return "comma"
	case ManualNewline:
		return "newline"
	default:
		return "unknown"
	}
}

// Manual reports whether the choice names a concrete separator rather
// than deferring to detection.
func (c Choice) Manual() bool {
	return c != Auto
}

// Resolve maps the choice to a concrete separator, running detection
// against text when the choice is Auto.
func (c Choice) Resolve(text string) Separator {
	switch c {
	case ManualSpace:
		return Space
	case ManualComma:
		return Comma
	case ManualNewline:
		return Newline
	default:
		return Detect(text)
	}
}

// ParseChoice parses a separator choice from its CLI flag value.
func ParseChoice(s string) (Choice, error) {
	switch s {
	case "auto", "":
		return Auto, nil
	case "space":
		return ManualSpace, nil
	case "comma":
		return ManualComma, nil
	case "newline":
		return ManualNewline, nil
	default:
		return Auto, fmt.Errorf("unknown separator %q (want auto, space, comma, or newline)", s)
	}
}
