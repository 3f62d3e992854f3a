package splitview

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/resplit/internal/split/registry"
	"github.com/llehouerou/resplit/internal/ui"
	"github.com/llehouerou/resplit/internal/ui/render"
	"github.com/llehouerou/resplit/internal/ui/styles"
)

// View renders the panels and splitter bars along the layout axis.
func (m Model) View() string {
	reg := m.container.Registry()
	if reg.Len() == 0 || m.Width() <= 0 || m.Height() <= 0 {
		return ""
	}

	sizes := m.cellSizes()
	parts := make([]string, 0, reg.Len())
	for i := range reg.Len() {
		e := reg.At(i)
		switch {
		case e.Panel != nil:
			parts = append(parts, m.renderPanel(e.Panel, sizes[i]))
		case e.Splitter != nil:
			parts = append(parts, m.renderSplitter(e.Splitter, sizes[i]))
		}
	}

	if m.vertical {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// cellSizes maps each registry entry to whole terminal cells along the
// layout axis. Panel fractions are distributed with cumulative
// rounding so the total always fills the extent exactly.
func (m *Model) cellSizes() []int {
	reg := m.container.Registry()
	extent := m.Width()
	if m.vertical {
		extent = m.Height()
	}

	sizes := make([]int, reg.Len())
	splitterCells := 0
	for i := range reg.Len() {
		if s := reg.At(i).Splitter; s != nil {
			sizes[i] = int(s.Size.Value)
			splitterCells += sizes[i]
		}
	}

	available := extent - splitterCells
	if available < 0 {
		available = 0
	}
	acc, used := 0.0, 0
	for i := range reg.Len() {
		if p := reg.At(i).Panel; p != nil {
			acc += p.Fraction * float64(available)
			cells := int(math.Round(acc)) - used
			if cells < 0 {
				cells = 0
			}
			sizes[i] = cells
			used += cells
		}
	}
	return sizes
}

// renderPanel draws one panel box sized along the layout axis.
func (m *Model) renderPanel(p *registry.Panel, cells int) string {
	width, height := m.Width(), m.Height()
	if m.vertical {
		height = cells
	} else {
		width = cells
	}
	if width < ui.MinPanelCells || height < ui.MinPanelCells {
		// Too small for a border, fill the slot to keep alignment.
		return lipgloss.NewStyle().Width(width).Height(height).Render("")
	}

	style := styles.PanelStyle(m.panelFocused(p), p.IsCollapsed()).
		Width(width - ui.BorderWidth).
		Height(height - ui.BorderHeight)

	innerWidth := width - ui.BorderWidth
	var b strings.Builder
	b.WriteString(render.TruncateAndPad(m.titles[p.Order], innerWidth))
	b.WriteString("\n")
	b.WriteString(render.Separator(innerWidth))
	b.WriteString("\n")
	b.WriteString(render.Truncate(m.sizeLine(p), innerWidth))
	if line := stateLine(p); line != "" {
		b.WriteString("\n")
		b.WriteString(render.Truncate(line, innerWidth))
	}

	return style.Render(b.String())
}

// panelFocused reports whether the panel sits next to the splitter a
// session is running on.
func (m *Model) panelFocused(p *registry.Panel) bool {
	order, ok := m.container.ActiveOrder()
	if !ok {
		return false
	}
	prev, next := m.container.AdjacentPanels(order)
	return p == prev || p == next
}

// sizeLine shows the panel's share both ways: fraction and cells.
func (m *Model) sizeLine(p *registry.Panel) string {
	px := m.container.PanelPx(p)
	return styles.T().S().Muted.Render(
		fmt.Sprintf("%.3ffr · %.0fpx", p.Fraction, px),
	)
}

// stateLine labels pinned and collapsed panels.
func stateLine(p *registry.Panel) string {
	s := styles.T().S()
	switch p.State() {
	case registry.StatePinnedAtMin:
		return s.Warning.Render("at minimum")
	case registry.StateCollapsed:
		return s.Warning.Render("collapsed")
	default:
		return ""
	}
}

// renderSplitter draws the divider bar, highlighted while focused or
// held by a drag session.
func (m *Model) renderSplitter(s *registry.Splitter, cells int) string {
	if cells <= 0 {
		return ""
	}
	style := styles.SplitterStyle(s.Order == m.FocusedSplitter(), s.Active)

	if m.vertical {
		line := strings.Repeat("─", m.Width())
		rows := make([]string, cells)
		for i := range rows {
			rows[i] = style.Render(line)
		}
		return strings.Join(rows, "\n")
	}

	col := strings.Repeat("│", cells)
	rows := make([]string, m.Height())
	for i := range rows {
		rows[i] = style.Render(col)
	}
	return strings.Join(rows, "\n")
}
