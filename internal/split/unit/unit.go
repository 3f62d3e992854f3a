// Package unit converts between the size representations used by the
// split layout: fractional shares ("fr"), absolute pixels ("px"), and
// plain float ratios of the available space.
package unit

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies how a Size value is interpreted.
type Kind uint8

const (
	// KindFr is a proportional share of the available space.
	KindFr Kind = iota
	// KindPx is an absolute length along the layout axis.
	KindPx
)

// String returns the serialization suffix for the kind.
func (k Kind) String() string {
	if k == KindPx {
		return "px"
	}
	return "fr"
}

// Size is a dimension expressed in either fractional or pixel units.
// The zero value is 0fr.
type Size struct {
	Kind  Kind
	Value float64
}

// Fr returns a fractional Size.
func Fr(v float64) Size {
	return Size{Kind: KindFr, Value: v}
}

// Px returns a pixel Size.
func Px(v float64) Size {
	return Size{Kind: KindPx, Value: v}
}

// Parse parses a size string of the form "<number>fr" or "<number>px".
// Only non-negative magnitudes are accepted. Malformed input is a
// configuration error and should be surfaced at registration time.
func Parse(s string) (Size, error) {
	trimmed := strings.TrimSpace(s)

	var kind Kind
	var magnitude string
	switch {
	case strings.HasSuffix(trimmed, "fr"):
		kind = KindFr
		magnitude = strings.TrimSuffix(trimmed, "fr")
	case strings.HasSuffix(trimmed, "px"):
		kind = KindPx
		magnitude = strings.TrimSuffix(trimmed, "px")
	default:
		return Size{}, fmt.Errorf("size %q: unrecognized unit suffix", s)
	}

	v, err := strconv.ParseFloat(magnitude, 64)
	if err != nil {
		return Size{}, fmt.Errorf("size %q: unparseable magnitude", s)
	}
	if v < 0 {
		return Size{}, fmt.Errorf("size %q: negative magnitude", s)
	}

	return Size{Kind: kind, Value: v}, nil
}

// MustParse parses a size string and panics on error. For statically
// known values in tests and defaults.
func MustParse(s string) Size {
	size, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return size
}

// String serializes the size as "<number>fr" or "<number>px".
func (s Size) String() string {
	return strconv.FormatFloat(s.Value, 'f', -1, 64) + s.Kind.String()
}

// IsZero reports whether the size has a zero magnitude.
func (s Size) IsZero() bool {
	return s.Value == 0
}

// ToFraction converts the size to a fraction of the given extent.
// Fractional sizes are already fractions and pass through unchanged.
func (s Size) ToFraction(extent float64) float64 {
	if s.Kind == KindPx {
		return PxToFraction(s.Value, extent)
	}
	return s.Value
}

// PxToFraction converts an absolute length to a fraction of the extent.
// A zero or negative extent cannot host split panels, so all
// conversions degrade to zero rather than erroring.
func PxToFraction(px, extent float64) float64 {
	if extent <= 0 {
		return 0
	}
	return px / extent
}

// FractionToPx converts a fraction of the extent to an absolute length.
func FractionToPx(fraction, extent float64) float64 {
	if extent <= 0 {
		return 0
	}
	return fraction * extent
}
