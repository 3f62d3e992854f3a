package sizepopup

import (
	"testing"

	"github.com/llehouerou/resplit/internal/split/unit"
)

func TestParseSizes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []unit.Size
		wantErr bool
	}{
		{
			name:  "two fractions",
			input: "0.6fr 0.4fr",
			want:  []unit.Size{unit.Fr(0.6), unit.Fr(0.4)},
		},
		{
			name:  "mixed units",
			input: "200px 1fr",
			want:  []unit.Size{unit.Px(200), unit.Fr(1)},
		},
		{
			name:  "extra whitespace",
			input: "  0.5fr   0.5fr  ",
			want:  []unit.Size{unit.Fr(0.5), unit.Fr(0.5)},
		},
		{
			name:    "empty input",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "malformed entry",
			input:   "0.5fr nope",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSizes(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseSizes(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSizes(%q) error = %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseSizes(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseSizes(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNewPrefillsCurrentSizes(t *testing.T) {
	m := New([]unit.Size{unit.Fr(0.25), unit.Fr(0.75)})
	if got := m.input.Value(); got != "0.25fr 0.75fr" {
		t.Errorf("prefilled value = %q, want %q", got, "0.25fr 0.75fr")
	}
}
