// Package split implements the sizing and resize-propagation engine
// for a row or column of panels separated by draggable splitters.
//
// A Container owns one flat ordered sequence of alternating panels and
// splitters. Panel sizes are stored as fractions of the available
// space (container extent minus the combined splitter thickness), so
// the panel fractions always sum to 1. The container extent is read
// through a measure function on demand and never cached across resize
// events.
//
// A Container is owned by a single goroutine; callers in other
// goroutines must serialize access themselves. All callbacks fire
// synchronously within the call that produced them.
package split

import (
	"fmt"

	"github.com/llehouerou/resplit/internal/split/registry"
	"github.com/llehouerou/resplit/internal/split/unit"
)

// Direction is the layout axis.
type Direction uint8

const (
	// Horizontal lays panels out left to right; extent is width.
	Horizontal Direction = iota
	// Vertical lays panels out top to bottom; extent is height.
	Vertical
)

// Container manages the panels and splitters of one split layout.
type Container struct {
	reg       *registry.Registry
	measure   func() float64
	direction Direction

	active *registry.Splitter
}

// New creates a container for the given axis. The measure function
// returns the container extent along that axis and is called each time
// a conversion is needed.
func New(direction Direction, measure func() float64) *Container {
	return &Container{
		reg:       registry.New(),
		measure:   measure,
		direction: direction,
	}
}

// Direction returns the layout axis.
func (c *Container) Direction() Direction {
	return c.direction
}

// Extent returns the current container extent along the layout axis.
func (c *Container) Extent() float64 {
	return c.measure()
}

// AvailableExtent returns the extent left for panels after subtracting
// the combined thickness of all splitters. Degrades to zero for an
// unmeasured or hidden container.
func (c *Container) AvailableExtent() float64 {
	extent := c.measure()
	if extent <= 0 {
		return 0
	}
	for _, s := range c.reg.Splitters() {
		extent -= s.Size.Value
	}
	if extent < 0 {
		return 0
	}
	return extent
}

// RegisterPanel registers or replaces a panel at the given order.
// Sizes of all panels are reinitialized when the panel count changes.
func (c *Container) RegisterPanel(order int, opts registry.PanelOptions) error {
	_, countChanged, err := c.reg.RegisterPanel(order, opts)
	if err != nil {
		return err
	}
	if countChanged {
		c.reg.ResetSizes(c.AvailableExtent())
	}
	return nil
}

// RegisterSplitter registers or replaces a splitter at the given order.
func (c *Container) RegisterSplitter(order int, opts registry.SplitterOptions) error {
	_, err := c.reg.RegisterSplitter(order, opts)
	return err
}

// Unregister removes the panel or splitter at the given order.
func (c *Container) Unregister(order int) {
	if c.reg.Unregister(order) {
		c.reg.ResetSizes(c.AvailableExtent())
	}
}

// Registry exposes the ordered records for rendering.
func (c *Container) Registry() *registry.Registry {
	return c.reg
}

// Activate marks the splitter at the given order active. At most one
// splitter is active per container; activating a second one is an
// error the caller must resolve by deactivating first.
func (c *Container) Activate(order int) error {
	s := c.reg.Splitter(order)
	if s == nil {
		return fmt.Errorf("no splitter at order %d", order)
	}
	if c.active != nil && c.active != s {
		return fmt.Errorf("splitter at order %d is already active", c.active.Order)
	}
	s.Active = true
	c.active = s
	return nil
}

// Deactivate clears the active splitter, if any.
func (c *Container) Deactivate() {
	if c.active != nil {
		c.active.Active = false
		c.active = nil
	}
}

// ActiveOrder returns the order of the active splitter, if one exists.
func (c *Container) ActiveOrder() (int, bool) {
	if c.active == nil {
		return 0, false
	}
	return c.active.Order, true
}

// IsResizing reports whether a resize session is in progress.
func (c *Container) IsResizing() bool {
	return c.active != nil
}

// AdjacentPanels returns the nearest registered panels below and above
// the given splitter order. Either may be nil at the sequence boundary.
func (c *Container) AdjacentPanels(splitterOrder int) (prev, next *registry.Panel) {
	i := c.reg.IndexOf(splitterOrder)
	if i < 0 {
		return nil, nil
	}
	return c.nearestPanel(i, -1), c.nearestPanel(i, 1)
}

// SplitterNow returns the derived position of a splitter as a
// percentage of the previous panel's share, for accessibility-style
// "now" values. This is a projection of panel state, not stored state.
func (c *Container) SplitterNow(splitterOrder int) float64 {
	prev, _ := c.AdjacentPanels(splitterOrder)
	if prev == nil {
		return 0
	}
	return prev.Fraction * 100
}

// PanelPx returns the panel's current size in pixels along the axis.
func (c *Container) PanelPx(p *registry.Panel) float64 {
	return unit.FractionToPx(p.Fraction, c.AvailableExtent())
}
