package app

import (
	"fmt"

	"github.com/llehouerou/resplit/internal/split/unit"
	"github.com/llehouerou/resplit/internal/ui"
	"github.com/llehouerou/resplit/internal/ui/helppopup"
	"github.com/llehouerou/resplit/internal/ui/render"
	"github.com/llehouerou/resplit/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	var content string
	switch {
	case m.showHelp:
		content = helppopup.View(m.keymapContext(), m.width, m.contentHeight())
	case m.sizePopup != nil:
		content = m.sizePopup.View(m.width, m.contentHeight())
	default:
		content = m.splitView.View()
	}

	return m.headerView() + "\n" + content + "\n" + m.statusView()
}

func (m Model) headerView() string {
	t := styles.T()
	axis := "horizontal"
	if m.cfg.IsVertical() {
		axis = "vertical"
	}
	left := t.TitleGradient("resplit")
	right := t.S().Subtle.Render(axis)
	return render.Row(left, right, m.width)
}

func (m Model) statusView() string {
	s := styles.T().S()
	if m.status != "" {
		return s.Error.Render(render.Truncate(m.status, m.width))
	}

	arrows := "←/→"
	if m.cfg.IsVertical() {
		arrows = "↑/↓"
	}
	hint := "tab focus · " + arrows + " resize · enter collapse · s sizes · ? help · q quit"
	order := m.splitView.FocusedSplitter()
	if order < 0 {
		return s.Subtle.Render(render.Truncate(hint, m.width))
	}
	now := m.splitView.Container().SplitterNow(order)
	left := s.Subtle.Render(render.Truncate(hint, m.width-ui.MinPanelCells))
	right := s.Muted.Render(fmt.Sprintf("splitter %d · %.0f%%", order, now))
	return render.Row(left, right, m.width)
}

// currentSizes snapshots the panel fractions for the size popup.
func (m Model) currentSizes() []unit.Size {
	var sizes []unit.Size
	for _, p := range m.splitView.Container().Registry().Panels() {
		sizes = append(sizes, unit.Fr(p.Fraction))
	}
	return sizes
}
