package render

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"fits unchanged", "abc", 5, "abc"},
		{"exact width unchanged", "abcde", 5, "abcde"},
		{"truncated with ellipsis", "abcdefgh", 5, "abcd…"},
		{"zero width", "abc", 0, ""},
		{"negative width", "abc", -1, ""},
		{"empty input", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.width); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	got := TruncateAndPad("ab", 5)
	if got != "ab   " {
		t.Errorf("TruncateAndPad(%q, 5) = %q, want %q", "ab", got, "ab   ")
	}
	got = TruncateAndPad("abcdefgh", 5)
	if got != "abcd…" {
		t.Errorf("TruncateAndPad(%q, 5) = %q, want %q", "abcdefgh", got, "abcd…")
	}
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 12)
	want := "left   right"
	if got != want {
		t.Errorf("Row() = %q, want %q", got, want)
	}

	// Content wider than the row still gets a single separating space.
	got = Row("left", "right", 5)
	want = "left right"
	if got != want {
		t.Errorf("Row() overflow = %q, want %q", got, want)
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := Separator(0); got != "" {
		t.Errorf("Separator(0) = %q, want empty", got)
	}
}
