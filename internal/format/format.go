// Package format renders the item sequence into its final textual form.
//
// Output always starts with an "Item count: N" header and a blank line,
// followed by the body. The body is either a literal-syntax structure
// (list, tuple, or dictionary) or, for the None style and for dictionary
// output without a key strategy, the items rejoined in the resolved
// separator's style.
package format

import (
	"fmt"
	"strings"

	"formx/internal/keygen"
	"formx/internal/separator"
)

// Style represents an output format.
type Style int

const (
	// None applies no bracket formatting; items rejoin in separator style
	None Style = iota
	// List renders a bracketed list of quoted items
	List
	// Tuple renders a parenthesized tuple of quoted items
	Tuple
	// Dict renders key/value pairs in curly braces
	Dict
)

// String returns the string representation of the style.
func (s Style) String() string {
	switch s {
	case None:
		return "none"
	case List:
		return "list"
	case Tuple:
		return "tuple"
	case Dict:
		return "dict"
	default:
		return "unknown"
	}
}

// countPrefix starts the header line of every successful output.
const countPrefix = "Item count:"

// Render produces the full output: the count header, a blank line, and
// the body for the requested style. sep must already be resolved (Auto
// resolves during tokenization), so separator-style joining always has a
// concrete join string. pairs is only consulted for Dict output; an empty
// pair slice there means no key strategy was chosen and the body falls
// back to separator-style joining.
func Render(items []string, count int, style Style, sep separator.Separator, pairs []keygen.Pair) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n\n", countPrefix, count)
	b.WriteString(body(items, style, sep, pairs))
	return b.String()
}

func body(items []string, style Style, sep separator.Separator, pairs []keygen.Pair) string {
	switch style {
	case List:
		return "[" + quoteJoin(items) + "]"
	case Tuple:
		return "(" + quoteJoin(items) + ")"
	case Dict:
		if len(pairs) == 0 {
			// no key strategy: rejoin with the current separator style
			return strings.Join(items, sep.Join())
		}
		entries := make([]string, len(pairs))
		for i, p := range pairs {
			entries[i] = fmt.Sprintf("%q: %q", p.Key, p.Value)
		}
		return "{" + strings.Join(entries, ", ") + "}"
	default:
		return strings.Join(items, sep.Join())
	}
}

// quoteJoin renders items as double-quoted strings, comma-space joined.
func quoteJoin(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return strings.Join(quoted, ", ")
}

// StripHeader removes the count header and blank spacer lines from a
// rendered output, leaving just the body. Output without a count header
// passes through unchanged. Used when copying or piping bare results.
func StripHeader(output string) string {
	lines := strings.Split(output, "\n")
	if len(lines) == 0 || !strings.HasPrefix(lines[0], countPrefix) {
		return output
	}

	kept := make([]string, 0, len(lines))
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
