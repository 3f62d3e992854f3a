package split

import "github.com/llehouerou/resplit/internal/split/registry"

// nearestPanel returns the first panel found walking from index i in
// steps of dir (-1 toward lower orders, +1 toward higher), or nil at
// the registry boundary. Growth always lands on this panel: a growing
// panel can accept space without limit, so no skipping applies.
func (c *Container) nearestPanel(i, dir int) *registry.Panel {
	for j := i + dir; j >= 0 && j < c.reg.Len(); j += dir {
		if p := c.reg.At(j).Panel; p != nil {
			return p
		}
	}
	return nil
}

// findShrinkable returns the nearest panel from index i in direction
// dir that can still absorb shrinkage, skipping panels pinned at a
// non-collapsible minimum and panels already collapsed. Returns nil
// when the walk exhausts the registry; the engine treats that as
// "delta cannot be applied on this side", a legitimate no-op.
func (c *Container) findShrinkable(i, dir int) *registry.Panel {
	for j := i + dir; j >= 0 && j < c.reg.Len(); j += dir {
		p := c.reg.At(j).Panel
		if p == nil {
			continue
		}
		if p.CanShrink() {
			return p
		}
	}
	return nil
}
