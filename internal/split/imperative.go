package split

import (
	"fmt"

	"github.com/llehouerou/resplit/internal/split/registry"
	"github.com/llehouerou/resplit/internal/split/unit"
)

// SetPaneSizes overwrites each panel's size in order. This bypasses
// the clamp/cascade algorithm: the caller is responsible for supplying
// sizes that sum correctly, and nothing is re-normalized. Pinned and
// collapsed flags are recomputed by direct comparison against each
// panel's configured minimum and collapsed size.
func (c *Container) SetPaneSizes(sizes []unit.Size) error {
	panels := c.reg.Panels()
	if len(sizes) != len(panels) {
		return fmt.Errorf("got %d sizes for %d panels", len(sizes), len(panels))
	}

	avail := c.AvailableExtent()
	for i, p := range panels {
		frac := sizes[i].ToFraction(avail)
		if frac < 0 {
			frac = 0
		}
		_, state := clampPanel(p, frac, avail)
		p.Fraction = frac
		p.SetState(state)
	}
	return nil
}

// IsPaneCollapsed reports whether the panel at the given order is
// currently collapsed. False for unknown orders.
func (c *Container) IsPaneCollapsed(order int) bool {
	if p := c.reg.Panel(order); p != nil {
		return p.IsCollapsed()
	}
	return false
}

// IsPaneMinSize reports whether the panel at the given order is
// currently pinned at its minimum size. False for unknown orders.
func (c *Container) IsPaneMinSize(order int) bool {
	if p := c.reg.Panel(order); p != nil {
		return p.IsPinnedAtMin()
	}
	return false
}

// PanelAt returns the panel registered at the given order, or nil.
func (c *Container) PanelAt(order int) *registry.Panel {
	return c.reg.Panel(order)
}
