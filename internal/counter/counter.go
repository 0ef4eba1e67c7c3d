// Package counter provides item counting strategies for the formx CLI tool.
//
// The displayed item count is computed independently of the item sequence
// length. The default strategy counts content words: punctuation is
// stripped before counting, so an item like "(x)" contributes one word
// and a punctuation-only item contributes nothing. Word and character
// strategies are also available for callers that want raw totals.
//
// Usage Example:
//
//	c := counter.NewCounter(counter.Content)
//	count := c.Count("a,b")
//	// Returns 1: the comma is stripped, leaving one word
package counter

// Counter defines the interface for different item counting strategies.
type Counter interface {
	// Count returns the number of units (content words, words, or characters) in given text.
	Count(text string) int

	// Name returns a human-readable name for this counting method (for logging)
	Name() string
}

// Method represents the different available counting strategies.
type Method int

const (
	// Content counts words after stripping non-alphanumeric characters (default)
	Content Method = iota
	// Words counts words using whitespace splitting
	Words
	// Characters counts individual characters including whitespace
	Characters
)

// String returns the string representation of the counting method.
func (m Method) String() string {
	switch m {
	case Content:
		return "content"
	case Words:
		return "words"
	case Characters:
		return "characters"
	default:
		return "unknown"
	}
}

// ParseMethod parses a counting method from its CLI flag value.
func ParseMethod(s string) (Method, bool) {
	switch s {
	case "content", "":
		return Content, true
	case "words":
		return Words, true
	case "characters", "chars":
		return Characters, true
	default:
		return Content, false
	}
}

// NewCounter creates a new Counter instance based on the specified method.
// This functions as a factory; it returns concrete Counter types,
// providing a single, simple entry point to get a counter instance.
func NewCounter(method Method) Counter {
	switch method {
	case Words:
		return NewWordCounter()
	case Characters:
		return NewCharCounter()
	default:
		return NewContentCounter()
	}
}

// Sum counts each item with the given counter and returns the total.
func Sum(c Counter, items []string) int {
	total := 0
	for _, item := range items {
		total += c.Count(item)
	}
	return total
}
