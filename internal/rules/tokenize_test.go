package rules

import (
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "punctuation is a token",
			text: "The system shall be fast and scalable.",
			want: []string{"The", "system", "shall", "be", "fast", "and", "scalable", "."},
		},
		{
			name: "hyphenated compound",
			text: "The UI should be user-friendly.",
			want: []string{"The", "UI", "should", "be", "user-friendly", "."},
		},
		{
			name: "number and unit",
			text: "Store 10GB in 2 seconds",
			want: []string{"Store", "10GB", "in", "2", "seconds"},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
		{
			name: "whitespace only",
			text: " \t\n ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %q, want %q", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Tokenize(%q)[%d] = %q, want %q", tt.text, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTokenizeArbitraryInput(t *testing.T) {
	inputs := []string{"\xff\xfe", "日本語のテキスト", "a--b", "-", "a-", "((("}
	for _, in := range inputs {
		_ = Tokenize(in)
	}
}
