// Package tokenizer normalizes raw input and splits it into an ordered
// sequence of items.
//
// Normalization always runs first: literal "/n" markers (common in text
// pasted from escaped strings) become spaces, whitespace runs collapse to
// a single space, and the ends are trimmed. Splitting then depends on the
// separator choice: Auto detects a separator on the cleaned text and
// splits on it, while a manual choice always splits on whitespace — the
// manual selection describes how items are rejoined on output, not how
// the input is parsed.
package tokenizer

import (
	"log/slog"
	"regexp"
	"strings"

	"formx/internal/separator"
)

var (
	// literal two-character "/n" markers, not real newlines
	newlineMarkerRegex = regexp.MustCompile(`/n`)
	whitespaceRegex    = regexp.MustCompile(`\s+`)
)

// Normalize cleans raw input: "/n" markers become spaces, whitespace runs
// (including real newlines and tabs) collapse to single spaces, and
// leading/trailing whitespace is trimmed.
func Normalize(raw string) string {
	cleaned := newlineMarkerRegex.ReplaceAllString(raw, " ")
	cleaned = whitespaceRegex.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// Split normalizes raw input and splits it into items according to the
// separator choice. It returns the items in input order, with empty and
// whitespace-only pieces dropped, along with the resolved separator
// (for Auto, the detected one).
func Split(raw string, choice separator.Choice) ([]string, separator.Separator) {
	cleaned := Normalize(raw)
	resolved := choice.Resolve(cleaned)

	if cleaned == "" {
		return nil, resolved
	}

	var items []string
	if choice.Manual() {
		// manual choices affect output joining only; input always splits on whitespace
		items = strings.Fields(cleaned)
	} else {
		for _, piece := range strings.Split(cleaned, resolved.Delimiter()) {
			piece = strings.TrimSpace(piece)
			if piece != "" {
				items = append(items, piece)
			}
		}
	}

	slog.Debug("input tokenized", "choice", choice.String(), "resolved", resolved.String(), "items", len(items))
	return items, resolved
}
