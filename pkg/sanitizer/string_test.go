package sanitizer

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trim spaces",
			input: "  Meeting room A  ",
			want:  "Meeting room A",
		},
		{
			name:  "multiple spaces between words",
			input: "Meeting    room A",
			want:  "Meeting room A",
		},
		{
			name:  "tabs and newlines",
			input: "Meeting\t\nroom",
			want:  "Meeting room",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   \t\n  ",
			want:  "",
		},
		{
			name:  "non-ascii characters",
			input: " Neuvotteluhuone Ä ",
			want:  "Neuvotteluhuone Ä",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeName(tt.input); got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"A", "A"},
		{"  user1 ", "user1"},
		{"\tuser 1\n", "user 1"},
		{"\x00room\x07", "room"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeIdentifier(tt.input); got != tt.want {
			t.Errorf("NormalizeIdentifier(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
