// Package registry stores the ordered panel/splitter records for one
// split container. Entries are kept in an arena-style sorted slice
// keyed by order, so neighbor lookups are index-based rather than
// pointer-chasing.
package registry

import (
	"fmt"
	"sort"

	"github.com/llehouerou/resplit/internal/split/unit"
)

// PanelState tracks where a panel sits in its resize lifecycle.
type PanelState uint8

const (
	// StateExpanded is the normal state: the panel is above its minimum.
	StateExpanded PanelState = iota
	// StatePinnedAtMin means the panel is clamped at its minimum size
	// and cannot shrink further without collapsing.
	StatePinnedAtMin
	// StateCollapsed means a collapsible panel has crossed its collapse
	// threshold and is pinned at its collapsed size until expanded.
	StateCollapsed
)

// PanelCallbacks are the lifecycle hooks registered with a panel.
// They fire synchronously, exactly once per qualifying transition,
// within the call that produced the transition.
type PanelCallbacks struct {
	OnResizeStart func()
	OnResize      func(size unit.Size)
	OnResizeEnd   func(size unit.Size)
	OnCollapse    func()
	OnExpand      func()
}

// PanelOptions configures a panel at registration time.
type PanelOptions struct {
	// InitialSize sets the starting size. Nil means an even share of
	// whatever space the explicitly-sized panels leave over.
	InitialSize *unit.Size
	// MinSize is the size below which the panel is pinned. Zero by default.
	MinSize unit.Size
	// Collapsible allows the panel to shrink past MinSize into its
	// collapsed size.
	Collapsible bool
	// DefaultCollapsed starts a collapsible panel in the collapsed state.
	DefaultCollapsed bool
	// CollapsedSize is the size a collapsed panel is pinned at. Zero by default.
	CollapsedSize unit.Size

	Callbacks PanelCallbacks
}

// Panel is a resizable content region. Its identity is its order.
// The current size is stored as a fraction of the available space
// (container extent minus the combined splitter sizes).
type Panel struct {
	Order            int
	Fraction         float64
	InitialSize      *unit.Size
	MinSize          unit.Size
	CollapsedSize    unit.Size
	Collapsible      bool
	DefaultCollapsed bool
	Callbacks        PanelCallbacks

	state PanelState
}

// State returns the panel's lifecycle state.
func (p *Panel) State() PanelState {
	return p.state
}

// SetState moves the panel to the given lifecycle state.
func (p *Panel) SetState(s PanelState) {
	p.state = s
}

// IsCollapsed reports whether the panel is currently collapsed.
func (p *Panel) IsCollapsed() bool {
	return p.state == StateCollapsed
}

// IsPinnedAtMin reports whether the panel is clamped at its minimum.
func (p *Panel) IsPinnedAtMin() bool {
	return p.state == StatePinnedAtMin
}

// CanShrink reports whether the panel can still absorb negative
// movement. A panel pinned at its minimum can keep shrinking only by
// collapsing; a collapsed panel is done.
func (p *Panel) CanShrink() bool {
	switch p.state {
	case StateCollapsed:
		return false
	case StatePinnedAtMin:
		return p.Collapsible
	default:
		return true
	}
}

// SplitterOptions configures a splitter at registration time.
type SplitterOptions struct {
	// Size is the splitter's thickness along the layout axis.
	// Splitters do not participate in fractional redistribution, so
	// only pixel sizes are accepted.
	Size unit.Size
}

// Splitter is the draggable divider between two panels.
type Splitter struct {
	Order  int
	Size   unit.Size
	Active bool
}

// Entry is one slot in the ordered sequence: either a panel or a
// splitter, never both.
type Entry struct {
	Order    int
	Panel    *Panel
	Splitter *Splitter
}

// Registry is the ordered collection of panels and splitters for one
// container. It is owned by a single goroutine; no internal locking.
type Registry struct {
	entries []Entry
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// At returns the entry at slice index i. The index must be in range.
func (r *Registry) At(i int) Entry {
	return r.entries[i]
}

// IndexOf returns the slice index of the entry with the given order,
// or -1 if no such entry is registered.
func (r *Registry) IndexOf(order int) int {
	i := sort.Search(len(r.entries), func(i int) bool {
		return r.entries[i].Order >= order
	})
	if i < len(r.entries) && r.entries[i].Order == order {
		return i
	}
	return -1
}

// RegisterPanel adds a panel at the given order, or replaces the
// options of an existing panel at that order in place (current size
// and state survive replacement). Returns true if the panel count
// changed, which is the caller's cue to reinitialize sizes.
func (r *Registry) RegisterPanel(order int, opts PanelOptions) (*Panel, bool, error) {
	if i := r.IndexOf(order); i >= 0 {
		existing := r.entries[i].Panel
		if existing == nil {
			return nil, false, fmt.Errorf("order %d: already registered as splitter", order)
		}
		existing.InitialSize = opts.InitialSize
		existing.MinSize = opts.MinSize
		existing.CollapsedSize = opts.CollapsedSize
		existing.Collapsible = opts.Collapsible
		existing.DefaultCollapsed = opts.DefaultCollapsed
		existing.Callbacks = opts.Callbacks
		return existing, false, nil
	}

	p := &Panel{
		Order:            order,
		InitialSize:      opts.InitialSize,
		MinSize:          opts.MinSize,
		CollapsedSize:    opts.CollapsedSize,
		Collapsible:      opts.Collapsible,
		DefaultCollapsed: opts.DefaultCollapsed,
		Callbacks:        opts.Callbacks,
	}
	r.insert(Entry{Order: order, Panel: p})
	return p, true, nil
}

// RegisterSplitter adds a splitter at the given order, or replaces an
// existing splitter's options in place.
func (r *Registry) RegisterSplitter(order int, opts SplitterOptions) (*Splitter, error) {
	if opts.Size.Kind != unit.KindPx {
		return nil, fmt.Errorf("splitter at order %d: size must be in px, got %q", order, opts.Size)
	}
	if i := r.IndexOf(order); i >= 0 {
		existing := r.entries[i].Splitter
		if existing == nil {
			return nil, fmt.Errorf("order %d: already registered as panel", order)
		}
		existing.Size = opts.Size
		return existing, nil
	}

	s := &Splitter{Order: order, Size: opts.Size}
	r.insert(Entry{Order: order, Splitter: s})
	return s, nil
}

// Unregister removes the entry at the given order. Returns true if a
// panel was removed (panel count changed).
func (r *Registry) Unregister(order int) bool {
	i := r.IndexOf(order)
	if i < 0 {
		return false
	}
	wasPanel := r.entries[i].Panel != nil
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	return wasPanel
}

// Panel returns the panel registered at the given order, or nil.
func (r *Registry) Panel(order int) *Panel {
	if i := r.IndexOf(order); i >= 0 {
		return r.entries[i].Panel
	}
	return nil
}

// Splitter returns the splitter registered at the given order, or nil.
func (r *Registry) Splitter(order int) *Splitter {
	if i := r.IndexOf(order); i >= 0 {
		return r.entries[i].Splitter
	}
	return nil
}

// Entries returns the entries sorted by ascending order. The slice is
// a fresh snapshot on each call.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Panels returns all panels in ascending order.
func (r *Registry) Panels() []*Panel {
	var out []*Panel
	for _, e := range r.entries {
		if e.Panel != nil {
			out = append(out, e.Panel)
		}
	}
	return out
}

// Splitters returns all splitters in ascending order.
func (r *Registry) Splitters() []*Splitter {
	var out []*Splitter
	for _, e := range r.entries {
		if e.Splitter != nil {
			out = append(out, e.Splitter)
		}
	}
	return out
}

// PanelCount returns the number of registered panels.
func (r *Registry) PanelCount() int {
	n := 0
	for _, e := range r.entries {
		if e.Panel != nil {
			n++
		}
	}
	return n
}

// ResetSizes reinitializes every panel's fraction. Called whenever the
// panel count changes. Panels with an explicit initial size take it
// (converted against the available extent for pixel sizes); collapsible
// panels configured to start collapsed take their collapsed size; the
// rest split the remaining share evenly.
func (r *Registry) ResetSizes(availableExtent float64) {
	panels := r.Panels()
	if len(panels) == 0 {
		return
	}

	var auto []*Panel
	claimed := 0.0
	for _, p := range panels {
		switch {
		case p.Collapsible && p.DefaultCollapsed:
			p.Fraction = p.CollapsedSize.ToFraction(availableExtent)
			p.state = StateCollapsed
			claimed += p.Fraction
		case p.InitialSize != nil:
			p.Fraction = p.InitialSize.ToFraction(availableExtent)
			p.state = StateExpanded
			claimed += p.Fraction
		default:
			p.state = StateExpanded
			auto = append(auto, p)
		}
	}

	if len(auto) == 0 {
		return
	}
	share := (1 - claimed) / float64(len(auto))
	if share < 0 {
		share = 0
	}
	for _, p := range auto {
		p.Fraction = share
	}
}

func (r *Registry) insert(e Entry) {
	i := sort.Search(len(r.entries), func(i int) bool {
		return r.entries[i].Order >= e.Order
	})
	r.entries = append(r.entries, Entry{})
	copy(r.entries[i+1:], r.entries[i:])
	r.entries[i] = e
}
