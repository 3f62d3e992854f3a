package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/resplit/internal/split/registry"
	"github.com/llehouerou/resplit/internal/split/unit"
)

// Tracks a collapsible first panel with min 0.2fr through a full
// collapse/expand cycle and checks the hysteresis window plus the
// exactly-once callback guarantee.
func TestCollapseHysteresis(t *testing.T) {
	var collapses, expands, resizes int

	c := New(Horizontal, fixedExtent(1000))
	require.NoError(t, c.RegisterPanel(0, registry.PanelOptions{
		MinSize:     unit.Fr(0.2),
		Collapsible: true,
		Callbacks: registry.PanelCallbacks{
			OnResize:   func(unit.Size) { resizes++ },
			OnCollapse: func() { collapses++ },
			OnExpand:   func() { expands++ },
		},
	}))
	require.NoError(t, c.RegisterSplitter(1, registry.SplitterOptions{Size: unit.Px(0)}))
	require.NoError(t, c.RegisterPanel(2, registry.PanelOptions{}))

	first := c.PanelAt(0)
	require.InDelta(t, 0.5, first.Fraction, tolerance)

	// Shrink toward the minimum but above it: still expanded.
	c.ApplyDelta(1, -0.25)
	assert.InDelta(t, 0.25, first.Fraction, tolerance)
	assert.False(t, c.IsPaneMinSize(0))
	assert.False(t, c.IsPaneCollapsed(0))
	assert.Equal(t, 0, collapses)

	// Cross the minimum without crossing half of it: pinned, not collapsed.
	c.ApplyDelta(1, -0.1)
	assert.InDelta(t, 0.2, first.Fraction, tolerance)
	assert.True(t, c.IsPaneMinSize(0))
	assert.False(t, c.IsPaneCollapsed(0))
	assert.Equal(t, 0, collapses)

	// Cross half the minimum: collapses to its collapsed size (0fr
	// default) and OnCollapse fires once.
	c.ApplyDelta(1, -0.11)
	assert.InDelta(t, 0, first.Fraction, tolerance)
	assert.True(t, c.IsPaneCollapsed(0))
	assert.Equal(t, 1, collapses)

	// A small grow that stays at or below half the minimum does not
	// expand: the panel clamps back and the delta returns to the
	// neighbor. No extra OnCollapse while it stays collapsed.
	c.ApplyDelta(1, 0.05)
	assert.True(t, c.IsPaneCollapsed(0))
	assert.InDelta(t, 0, first.Fraction, tolerance)
	assert.Equal(t, 1, collapses)
	assert.Equal(t, 0, expands)
	assert.InDelta(t, 1, fractionSum(c), tolerance)

	// Growing past half the minimum expands; the tentative size lands
	// in the pinned band so the panel rests at its minimum.
	c.ApplyDelta(1, 0.15)
	assert.False(t, c.IsPaneCollapsed(0))
	assert.Equal(t, 1, expands)
	assert.InDelta(t, 0.2, first.Fraction, tolerance)
	assert.True(t, c.IsPaneMinSize(0))

	// And past the minimum back to fully expanded.
	c.ApplyDelta(1, 0.3)
	assert.False(t, c.IsPaneMinSize(0))
	assert.InDelta(t, 0.5, first.Fraction, tolerance)

	assert.Equal(t, 1, collapses)
	assert.Equal(t, 1, expands)
	assert.Positive(t, resizes)
	assert.InDelta(t, 1, fractionSum(c), tolerance)
}

// A collapsible panel with an explicit collapsed size pins exactly at
// that size, not at zero, and the freed space lands on the neighbor.
func TestCollapseToConfiguredSize(t *testing.T) {
	c := New(Horizontal, fixedExtent(1000))
	require.NoError(t, c.RegisterPanel(0, registry.PanelOptions{
		MinSize:       unit.Fr(0.2),
		Collapsible:   true,
		CollapsedSize: unit.Px(50),
	}))
	require.NoError(t, c.RegisterSplitter(1, registry.SplitterOptions{Size: unit.Px(0)}))
	require.NoError(t, c.RegisterPanel(2, registry.PanelOptions{}))

	c.ApplyDelta(1, -1)

	first := c.PanelAt(0)
	assert.True(t, first.IsCollapsed())
	assert.InDelta(t, 0.05, first.Fraction, tolerance) // 50px of 1000px
	assert.InDelta(t, 0.95, c.PanelAt(2).Fraction, tolerance)
	assert.InDelta(t, 1, fractionSum(c), tolerance)
}

// The shrink search must skip a collapsed panel and take space from
// the next panel outward.
func TestShrinkSearchSkipsCollapsed(t *testing.T) {
	c := threePanels(t, 900,
		registry.PanelOptions{},
		registry.PanelOptions{MinSize: unit.Fr(0.2), Collapsible: true},
		registry.PanelOptions{},
	)

	c.ApplyDelta(1, 1) // collapse the middle panel
	require.True(t, c.IsPaneCollapsed(2))
	before := fractions(c)

	c.ApplyDelta(1, 0.1)
	after := fractions(c)

	assert.InDelta(t, before[0]+0.1, after[0], tolerance)
	assert.InDelta(t, before[1], after[1], tolerance, "collapsed panel must not move")
	assert.InDelta(t, before[2]-0.1, after[2], tolerance)
}

// Growing side never skips: a collapsed immediate neighbor receives the
// growth (subject to its own hysteresis), it is not bypassed.
func TestGrowSideDoesNotSkip(t *testing.T) {
	c := threePanels(t, 900,
		registry.PanelOptions{},
		registry.PanelOptions{MinSize: unit.Fr(0.2), Collapsible: true},
		registry.PanelOptions{},
	)

	c.ApplyDelta(1, 1) // collapse the middle panel
	require.True(t, c.IsPaneCollapsed(2))

	// Drag S3 toward P2: middle panel is the grow side and expands
	// once the delta clears the hysteresis window.
	c.ApplyDelta(3, 0.25)
	assert.False(t, c.IsPaneCollapsed(2))
	assert.InDelta(t, 1, fractionSum(c), tolerance)
}
