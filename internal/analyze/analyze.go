// Package analyze flags input characters that commonly interfere with
// formatting. The scan is purely advisory: it never alters processing,
// it only lets the user know which characters to watch out for before
// committing to an output shape.
package analyze

import (
	"fmt"
	"strings"
)

// problematicChars are reported in this fixed order, each at most once.
var problematicChars = []rune{',', '.', '/', ';', '\'', '"', '[', ']', '{', '}', '(', ')'}

// Scan returns the problematic characters present in raw, in set order.
func Scan(raw string) []rune {
	var found []rune
	for _, c := range problematicChars {
		if strings.ContainsRune(raw, c) {
			found = append(found, c)
		}
	}
	return found
}

// Warning builds the advisory message for a scan result. An empty result
// produces the all-clear message.
func Warning(found []rune) string {
	if len(found) == 0 {
		return "No problematic characters found. The input should work well with all formatting options."
	}

	quoted := make([]string, len(found))
	for i, c := range found {
		quoted[i] = fmt.Sprintf("'%c'", c)
	}

	return fmt.Sprintf("Warning: found potentially problematic characters: %s. "+
		"These may interfere with formatting; consider removing them or choosing a manual separator.",
		strings.Join(quoted, ", "))
}
