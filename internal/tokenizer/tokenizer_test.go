package tokenizer

import (
	"reflect"
	"strings"
	"testing"

	"formx/internal/separator"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"empty string", "", ""},
		{"already clean", "hello world", "hello world"},
		{"collapses spaces", "a   b    c", "a b c"},
		{"collapses newlines and tabs", "a\n\tb\r\nc", "a b c"},
		{"trims ends", "  hello  ", "hello"},
		{"literal /n marker becomes space", "a/nb", "a b"},
		{"marker runs collapse", "a/n/n/nb", "a b"},
		{"marker only", "/n", ""},
		{"mixed markers and whitespace", " a /n b\n c ", "a b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.raw)
			if result != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, result, tt.expected)
			}
		})
	}
}

func TestSplitAuto(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		items    []string
		resolved separator.Separator
	}{
		{"spaces", "hello world test", []string{"hello", "world", "test"}, separator.Space},
		{"commas", "a,b,c", []string{"a", "b", "c"}, separator.Comma},
		{"commas with spaces", "a, b, c", []string{"a", "b", "c"}, separator.Comma},
		{"empty pieces dropped", "a,,b,", []string{"a", "b"}, separator.Comma},
		// real newlines collapse to spaces during normalization,
		// so auto-detection resolves them as space-separated input
		{"newlines normalize away", "a\nb\nc", []string{"a", "b", "c"}, separator.Space},
		{"empty input", "", nil, separator.Space},
		{"whitespace only", "  \n\t ", nil, separator.Space},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, resolved := Split(tt.raw, separator.Auto)
			if !reflect.DeepEqual(items, tt.items) {
				t.Errorf("Split(%q, Auto) items = %v, want %v", tt.raw, items, tt.items)
			}
			if resolved != tt.resolved {
				t.Errorf("Split(%q, Auto) resolved = %v, want %v", tt.raw, resolved, tt.resolved)
			}
		})
	}
}

// Manual separator choices describe output joining only; input always
// splits on whitespace regardless of the chosen separator.
func TestSplitManualAlwaysSplitsOnWhitespace(t *testing.T) {
	raw := "a,b c,d"

	for _, choice := range []separator.Choice{
		separator.ManualSpace,
		separator.ManualComma,
		separator.ManualNewline,
	} {
		t.Run(choice.String(), func(t *testing.T) {
			items, resolved := Split(raw, choice)
			want := []string{"a,b", "c,d"}
			if !reflect.DeepEqual(items, want) {
				t.Errorf("Split(%q, %v) items = %v, want %v", raw, choice, items, want)
			}
			if resolved != choice.Resolve("") {
				t.Errorf("Split(%q, %v) resolved = %v, want the manual separator", raw, choice, resolved)
			}
		})
	}
}

func TestSplitInvariantNoBlankItems(t *testing.T) {
	inputs := []string{"a,,b", " , , ", "a  b", "/n a /n", ",,,"}

	for _, raw := range inputs {
		for _, choice := range []separator.Choice{separator.Auto, separator.ManualSpace} {
			items, _ := Split(raw, choice)
			for i, item := range items {
				if strings.TrimSpace(item) == "" {
					t.Errorf("Split(%q, %v) item %d is blank", raw, choice, i)
				}
			}
		}
	}
}

// Joining items with a manual separator's style and re-splitting recovers
// the same sequence, as long as no item contains whitespace itself.
func TestSplitJoinRoundTrip(t *testing.T) {
	items := []string{"alpha", "beta", "gamma"}

	for _, choice := range []separator.Choice{
		separator.ManualSpace,
		separator.ManualComma,
		separator.ManualNewline,
	} {
		t.Run(choice.String(), func(t *testing.T) {
			joined := strings.Join(items, choice.Resolve("").Join())
			got, _ := Split(joined, choice)
			// comma-joined text keeps the commas attached to items when
			// re-split on whitespace; strip them before comparing
			for i := range got {
				got[i] = strings.TrimRight(got[i], ",")
			}
			if !reflect.DeepEqual(got, items) {
				t.Errorf("round trip via %v = %v, want %v", choice, got, items)
			}
		})
	}
}
