package unit

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Size
		wantErr bool
	}{
		{
			name:  "fractional size",
			input: "0.5fr",
			want:  Fr(0.5),
		},
		{
			name:  "pixel size",
			input: "120px",
			want:  Px(120),
		},
		{
			name:  "integer fraction",
			input: "1fr",
			want:  Fr(1),
		},
		{
			name:  "zero pixels",
			input: "0px",
			want:  Px(0),
		},
		{
			name:  "surrounding whitespace",
			input: "  2fr ",
			want:  Fr(2),
		},
		{
			name:    "missing suffix",
			input:   "0.5",
			wantErr: true,
		},
		{
			name:    "unknown suffix",
			input:   "10em",
			wantErr: true,
		},
		{
			name:    "unparseable magnitude",
			input:   "abcfr",
			wantErr: true,
		},
		{
			name:    "negative magnitude",
			input:   "-1fr",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "bare suffix",
			input:   "px",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		size Size
		want string
	}{
		{Fr(0.5), "0.5fr"},
		{Fr(1), "1fr"},
		{Px(120), "120px"},
		{Px(0), "0px"},
		{Fr(0.3333333333333333), "0.3333333333333333fr"},
	}

	for _, tt := range tests {
		if got := tt.size.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	for _, s := range []string{"0.5fr", "120px", "1fr", "0fr"} {
		size, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", s, err)
		}
		if got := size.String(); got != s {
			t.Errorf("Parse(%q).String() = %q", s, got)
		}
	}
}

func TestToFraction(t *testing.T) {
	tests := []struct {
		name   string
		size   Size
		extent float64
		want   float64
	}{
		{"fr passes through", Fr(0.4), 800, 0.4},
		{"px divides by extent", Px(200), 800, 0.25},
		{"px with zero extent degrades to zero", Px(200), 0, 0},
		{"px with negative extent degrades to zero", Px(200), -5, 0},
		{"fr ignores extent", Fr(0.4), 0, 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.size.ToFraction(tt.extent); got != tt.want {
				t.Errorf("ToFraction(%v) = %v, want %v", tt.extent, got, tt.want)
			}
		})
	}
}

func TestConversions(t *testing.T) {
	if got := PxToFraction(100, 400); got != 0.25 {
		t.Errorf("PxToFraction(100, 400) = %v, want 0.25", got)
	}
	if got := FractionToPx(0.25, 400); got != 100 {
		t.Errorf("FractionToPx(0.25, 400) = %v, want 100", got)
	}
	if got := PxToFraction(100, 0); got != 0 {
		t.Errorf("PxToFraction with zero extent = %v, want 0", got)
	}
	if got := FractionToPx(0.25, 0); got != 0 {
		t.Errorf("FractionToPx with zero extent = %v, want 0", got)
	}
	if got := FractionToPx(0.5, -10); got != 0 {
		t.Errorf("FractionToPx with negative extent = %v, want 0", got)
	}

	// Round trip within floating point tolerance.
	frac := PxToFraction(333, 1000)
	if px := FractionToPx(frac, 1000); math.Abs(px-333) > 1e-9 {
		t.Errorf("round trip = %v, want 333", px)
	}
}
