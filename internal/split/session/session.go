// Package session translates drag gestures and key presses into calls
// into the resize engine. One Controller manages the sessions of one
// container; at most one splitter is active at a time.
package session

import (
	"github.com/llehouerou/resplit/internal/keymap"
	"github.com/llehouerou/resplit/internal/split"
	"github.com/llehouerou/resplit/internal/split/registry"
	"github.com/llehouerou/resplit/internal/split/unit"
)

// DefaultStep is the fraction applied per arrow-key press.
const DefaultStep = 0.01

// Controller drives drag and key resize sessions against a container.
type Controller struct {
	container *split.Container
	step      float64

	dragging  bool
	dragOrder int
}

// New creates a controller for the container. A non-positive step
// falls back to DefaultStep.
func New(container *split.Container, step float64) *Controller {
	if step <= 0 {
		step = DefaultStep
	}
	return &Controller{container: container, step: step}
}

// Dragging reports whether a drag session is in progress.
func (ct *Controller) Dragging() bool {
	return ct.dragging
}

// StartDrag opens a drag session on the splitter at the given order:
// the splitter becomes the single active one and both adjacent panels
// get their OnResizeStart hook.
func (ct *Controller) StartDrag(order int) error {
	if err := ct.container.Activate(order); err != nil {
		return err
	}
	ct.dragging = true
	ct.dragOrder = order

	prev, next := ct.container.AdjacentPanels(order)
	for _, p := range []*registry.Panel{prev, next} {
		if p != nil && p.Callbacks.OnResizeStart != nil {
			p.Callbacks.OnResizeStart()
		}
	}
	return nil
}

// Drag applies one pointer movement, given as a displacement in pixels
// along the layout axis. The displacement is converted to a fraction
// of the available space (container minus splitters) before being
// handed to the engine. Silently ignored outside a drag session or
// while the container is unmeasured.
func (ct *Controller) Drag(displacementPx float64) {
	if !ct.dragging {
		return
	}
	avail := ct.container.AvailableExtent()
	if avail <= 0 {
		return
	}
	ct.container.ApplyDelta(ct.dragOrder, displacementPx/avail)
}

// EndDrag closes the drag session: the active flag clears and both
// previously-adjacent panels get OnResizeEnd with their final size.
// A session abandoned mid-drag keeps whatever resize was applied;
// there is no rollback.
func (ct *Controller) EndDrag() {
	if !ct.dragging {
		return
	}
	order := ct.dragOrder
	ct.dragging = false
	ct.container.Deactivate()

	prev, next := ct.container.AdjacentPanels(order)
	for _, p := range []*registry.Panel{prev, next} {
		if p != nil && p.Callbacks.OnResizeEnd != nil {
			p.Callbacks.OnResizeEnd(unit.Fr(p.Fraction))
		}
	}
}

// Key applies a single discrete key action to the splitter at the
// given order. Arrow steps move by the configured step fraction,
// Home/End drive fully to one side, and toggle collapses the previous
// panel or restores it toward its initial size.
func (ct *Controller) Key(action keymap.Action, order int) {
	switch action {
	case keymap.ActionStepBackward:
		ct.keyDelta(order, -ct.step)
	case keymap.ActionStepForward:
		ct.keyDelta(order, ct.step)
	case keymap.ActionJumpStart:
		ct.keyDelta(order, -1)
	case keymap.ActionJumpEnd:
		ct.keyDelta(order, 1)
	case keymap.ActionToggleCollapse:
		ct.toggle(order)
	}
}

// keyDelta wraps a one-shot delta in an active session so styling and
// callbacks observe the same lifecycle as a drag.
func (ct *Controller) keyDelta(order int, delta float64) {
	if err := ct.StartDrag(order); err != nil {
		return
	}
	ct.container.ApplyDelta(order, delta)
	ct.EndDrag()
}

// toggle collapses the panel before the splitter, or restores it
// toward its configured initial size (a full share by default) when it
// is already pinned or collapsed.
func (ct *Controller) toggle(order int) {
	prev, _ := ct.container.AdjacentPanels(order)
	if prev == nil {
		return
	}

	if prev.IsPinnedAtMin() || prev.IsCollapsed() {
		target := 1.0
		if prev.InitialSize != nil {
			target = prev.InitialSize.ToFraction(ct.container.AvailableExtent())
		}
		ct.keyDelta(order, target-prev.Fraction)
		return
	}
	ct.keyDelta(order, -1)
}
