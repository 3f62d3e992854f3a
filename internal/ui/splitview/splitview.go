// Package splitview renders a resizable split layout and routes mouse
// drags and key presses into resize sessions.
package splitview

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/resplit/internal/config"
	"github.com/llehouerou/resplit/internal/keymap"
	"github.com/llehouerou/resplit/internal/split"
	"github.com/llehouerou/resplit/internal/split/registry"
	"github.com/llehouerou/resplit/internal/split/session"
	"github.com/llehouerou/resplit/internal/split/unit"
	"github.com/llehouerou/resplit/internal/ui"
)

// extentRef shares the measured layout extent between model copies and
// the container's measure function.
type extentRef struct {
	v float64
}

func (e *extentRef) get() float64 {
	return e.v
}

// Model is the split layout component.
type Model struct {
	ui.Base

	container *split.Container
	session   *session.Controller
	keys      *keymap.Resolver
	ext       *extentRef

	titles         map[int]string // panel order -> title
	splitterOrders []int
	vertical       bool

	focusIdx int // index into splitterOrders
	dragLast int // pointer position at the previous move event
	measured bool
}

// New builds the split layout from configuration. Malformed size
// strings in the config surface here, before any resize happens.
func New(cfg *config.Config) (Model, error) {
	ext := &extentRef{}

	dir := split.Horizontal
	if cfg.IsVertical() {
		dir = split.Vertical
	}
	container := split.New(dir, ext.get)

	context := "horizontal"
	if cfg.IsVertical() {
		context = "vertical"
	}

	m := Model{
		container: container,
		session:   session.New(container, cfg.GetKeyStep()),
		keys:      keymap.NewResolver(keymap.ForDirection(context)),
		ext:       ext,
		titles:    make(map[int]string),
		vertical:  cfg.IsVertical(),
	}

	panels := cfg.GetPanels()
	for i, pc := range panels {
		order := 2 * i
		opts, err := panelOptions(pc)
		if err != nil {
			return Model{}, fmt.Errorf("panel %q: %w", pc.Title, err)
		}
		if err := container.RegisterPanel(order, opts); err != nil {
			return Model{}, err
		}
		m.titles[order] = pc.Title

		if i < len(panels)-1 {
			splitterOrder := order + 1
			err := container.RegisterSplitter(splitterOrder, registry.SplitterOptions{
				Size: unit.Px(float64(cfg.GetSplitterSize())),
			})
			if err != nil {
				return Model{}, err
			}
			m.splitterOrders = append(m.splitterOrders, splitterOrder)
		}
	}

	return m, nil
}

// panelOptions translates a config panel into registry options.
func panelOptions(pc config.PanelConfig) (registry.PanelOptions, error) {
	var opts registry.PanelOptions
	opts.Collapsible = pc.Collapsible
	opts.DefaultCollapsed = pc.DefaultCollapsed

	if pc.Size != "" {
		s, err := unit.Parse(pc.Size)
		if err != nil {
			return opts, err
		}
		opts.InitialSize = &s
	}
	if pc.MinSize != "" {
		s, err := unit.Parse(pc.MinSize)
		if err != nil {
			return opts, err
		}
		opts.MinSize = s
	}
	if pc.CollapsedSize != "" {
		s, err := unit.Parse(pc.CollapsedSize)
		if err != nil {
			return opts, err
		}
		opts.CollapsedSize = s
	}
	return opts, nil
}

// Container exposes the engine for imperative layout calls.
func (m *Model) Container() *split.Container {
	return m.container
}

// SetSize updates the component dimensions and the extent the engine
// measures against. The first positive measurement reinitializes panel
// sizes so pixel-based initial sizes resolve against real space.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	if m.vertical {
		m.ext.v = float64(height)
	} else {
		m.ext.v = float64(width)
	}
	if !m.measured && m.ext.v > 0 {
		m.measured = true
		m.container.Registry().ResetSizes(m.container.AvailableExtent())
	}
}

// FocusedSplitter returns the order of the splitter keyboard actions
// target, or -1 when the layout has no splitters.
func (m Model) FocusedSplitter() int {
	if len(m.splitterOrders) == 0 {
		return -1
	}
	return m.splitterOrders[m.focusIdx]
}

// Update handles key and mouse input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	action := m.keys.Resolve(msg.String())
	if action == "" {
		return
	}
	if action == keymap.ActionSwitchFocus {
		if len(m.splitterOrders) > 0 {
			m.focusIdx = (m.focusIdx + 1) % len(m.splitterOrders)
		}
		return
	}

	order := m.FocusedSplitter()
	if order < 0 {
		return
	}
	m.session.Key(action, order)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	pos := msg.X
	if m.vertical {
		pos = msg.Y
	}

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		order, ok := m.splitterAt(pos)
		if !ok {
			return
		}
		if err := m.session.StartDrag(order); err != nil {
			return
		}
		m.dragLast = pos
		m.focusOn(order)

	case msg.Action == tea.MouseActionMotion && m.session.Dragging():
		m.session.Drag(float64(pos - m.dragLast))
		m.dragLast = pos

	case msg.Action == tea.MouseActionRelease:
		m.session.EndDrag()
	}
}

// splitterAt hit-tests a pointer position along the layout axis
// against the rendered cell spans.
func (m *Model) splitterAt(pos int) (int, bool) {
	reg := m.container.Registry()
	sizes := m.cellSizes()
	offset := 0
	for i, size := range sizes {
		if pos >= offset && pos < offset+size {
			if s := reg.At(i).Splitter; s != nil {
				return s.Order, true
			}
			return 0, false
		}
		offset += size
	}
	return 0, false
}

func (m *Model) focusOn(order int) {
	for i, o := range m.splitterOrders {
		if o == order {
			m.focusIdx = i
			return
		}
	}
}
