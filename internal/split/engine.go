package split

import (
	"github.com/llehouerou/resplit/internal/split/registry"
	"github.com/llehouerou/resplit/internal/split/unit"
)

// ApplyDelta resizes the two panels adjacent to the splitter at the
// given order by a signed fraction of the available space. A positive
// delta grows the panel before the splitter and shrinks the panel
// after it; a negative delta is the reverse.
//
// The shrinking side is resolved by walking outward past panels that
// can no longer shrink, so a drag keeps working past a pinned or
// collapsed neighbor. Each call resolves exactly one pair of panels;
// overshoot beyond what the resolved pair can absorb is not cascaded
// further within the same call.
//
// Space is redistributed, never created or destroyed: the two final
// sizes always sum to the pair's combined size before the call.
func (c *Container) ApplyDelta(splitterOrder int, delta float64) {
	if delta == 0 {
		return
	}
	i := c.reg.IndexOf(splitterOrder)
	if i < 0 || c.reg.At(i).Splitter == nil {
		return
	}

	// Positive delta: the panel after the splitter shrinks.
	shrinkDir, growDir := 1, -1
	if delta < 0 {
		shrinkDir, growDir = -1, 1
	}

	shrink := c.findShrinkable(i, shrinkDir)
	grow := c.nearestPanel(i, growDir)
	if shrink == nil || grow == nil || shrink == grow {
		return
	}

	mag := delta
	if mag < 0 {
		mag = -mag
	}

	// One extent read per event keeps the clamp math internally
	// consistent even if the container is resized mid-drag.
	avail := c.AvailableExtent()

	tentShrink := shrink.Fraction - mag
	tentGrow := grow.Fraction + mag

	// Clamp the shrinking side and hand whatever it could not absorb
	// back to the growing side.
	shrinkFinal, shrinkState := clampPanel(shrink, tentShrink, avail)
	tentGrow -= shrinkFinal - tentShrink

	// The growing side is checked symmetrically: an extreme delta can
	// push its tentative size below its own thresholds.
	growFinal, growState := clampPanel(grow, tentGrow, avail)
	shrinkFinal -= growFinal - tentGrow

	// Intermediate math may go transiently negative; never persist it.
	if shrinkFinal < 0 {
		shrinkFinal = 0
	}
	if growFinal < 0 {
		growFinal = 0
	}

	c.commit(shrink, shrinkFinal, shrinkState)
	c.commit(grow, growFinal, growState)
}

// clampPanel clamps a tentative fractional size against the panel's
// collapse threshold and minimum. The collapse check runs first: a
// collapsible panel whose tentative size falls to or below half its
// minimum is pinned at its collapsed size. Otherwise a size at or
// below the minimum pins the panel there.
func clampPanel(p *registry.Panel, tentative, avail float64) (float64, registry.PanelState) {
	minFrac := p.MinSize.ToFraction(avail)
	if p.Collapsible && tentative <= minFrac/2 {
		return p.CollapsedSize.ToFraction(avail), registry.StateCollapsed
	}
	if tentative <= minFrac {
		return minFrac, registry.StatePinnedAtMin
	}
	return tentative, registry.StateExpanded
}

// commit writes a panel's final size and state and fires callbacks:
// OnResize always, OnCollapse/OnExpand only on a flag transition.
func (c *Container) commit(p *registry.Panel, fraction float64, state registry.PanelState) {
	wasCollapsed := p.IsCollapsed()
	p.Fraction = fraction
	p.SetState(state)

	if p.Callbacks.OnResize != nil {
		p.Callbacks.OnResize(unit.Fr(fraction))
	}
	nowCollapsed := p.IsCollapsed()
	switch {
	case !wasCollapsed && nowCollapsed:
		if p.Callbacks.OnCollapse != nil {
			p.Callbacks.OnCollapse()
		}
	case wasCollapsed && !nowCollapsed:
		if p.Callbacks.OnExpand != nil {
			p.Callbacks.OnExpand()
		}
	}
}
