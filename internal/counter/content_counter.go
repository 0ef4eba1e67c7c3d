package counter

import (
	"log/slog"
	"regexp"
	"strings"
)

// nonContentRegex matches everything except ASCII letters, digits, and whitespace
var nonContentRegex = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

// ContentCounter counts words remaining after punctuation and symbols are
// stripped, so operators and brackets never inflate the count.
type ContentCounter struct{}

// NewContentCounter creates a new ContentCounter instance.
func NewContentCounter() Counter {
	return &ContentCounter{}
}

// Count strips every character that is not an ASCII letter, digit, or
// whitespace, then counts the whitespace-separated pieces that remain.
func (cc *ContentCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	clean := nonContentRegex.ReplaceAllString(text, "")
	contentCount := len(strings.Fields(clean))

	slog.Debug("content count calculated", "textLength", len(text), "contentCount", contentCount)
	return contentCount
}

// Name returns the name of this counting method for logging and debugging.
func (cc *ContentCounter) Name() string {
	return "content"
}
