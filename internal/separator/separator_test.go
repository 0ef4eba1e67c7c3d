package separator

import (
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Separator
	}{
		{"empty string", "", Space},
		{"plain words", "hello world test", Space},
		{"commas only", "a,b,c", Comma},
		{"newlines only", "a\nb\nc", Newline},
		{"commas beat equal newlines", "a,b\nc,d\n", Comma},
		{"newlines beat fewer commas", "a,b\nc\nd\ne", Newline},
		{"single comma", "a,b", Comma},
		{"single newline", "a\nb", Newline},
		{"trailing comma", "a,", Comma},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Detect(tt.text)
			if result != tt.expected {
				t.Errorf("Detect(%q) = %v, want %v", tt.text, result, tt.expected)
			}
		})
	}
}

func TestChoiceResolve(t *testing.T) {
	tests := []struct {
		name     string
		choice   Choice
		text     string
		expected Separator
	}{
		{"auto detects comma", Auto, "a,b,c", Comma},
		{"auto detects space", Auto, "a b c", Space},
		{"auto on empty text", Auto, "", Space},
		{"manual space ignores text", ManualSpace, "a,b,c", Space},
		{"manual comma ignores text", ManualComma, "a b c", Comma},
		{"manual newline ignores text", ManualNewline, "a,b,c", Newline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.choice.Resolve(tt.text)
			if result != tt.expected {
				t.Errorf("%v.Resolve(%q) = %v, want %v", tt.choice, tt.text, result, tt.expected)
			}
		})
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input    string
		expected Choice
		wantErr  bool
	}{
		{"auto", Auto, false},
		{"", Auto, false},
		{"space", ManualSpace, false},
		{"comma", ManualComma, false},
		{"newline", ManualNewline, false},
		{"tab", Auto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseChoice(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseChoice(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseChoice(%q) unexpected error: %v", tt.input, err)
				return
			}
			if result != tt.expected {
				t.Errorf("ParseChoice(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSeparatorJoinAndDelimiter(t *testing.T) {
	tests := []struct {
		sep       Separator
		join      string
		delimiter string
	}{
		{Space, " ", " "},
		{Comma, ", ", ","},
		{Newline, "\n", "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.sep.String(), func(t *testing.T) {
			if got := tt.sep.Join(); got != tt.join {
				t.Errorf("%v.Join() = %q, want %q", tt.sep, got, tt.join)
			}
			if got := tt.sep.Delimiter(); got != tt.delimiter {
				t.Errorf("%v.Delimiter() = %q, want %q", tt.sep, got, tt.delimiter)
			}
		})
	}
}

func TestStrings(t *testing.T) {
	if Separator(99).String() != "unknown" {
		t.Errorf("Separator(99).String() = %q, want %q", Separator(99).String(), "unknown")
	}
	if Choice(99).String() != "unknown" {
		t.Errorf("Choice(99).String() = %q, want %q", Choice(99).String(), "unknown")
	}
	if Auto.Manual() {
		t.Error("Auto.Manual() = true, want false")
	}
	if !ManualComma.Manual() {
		t.Error("ManualComma.Manual() = false, want true")
	}
}
