package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/resplit/internal/errmsg"
	"github.com/llehouerou/resplit/internal/keymap"
	"github.com/llehouerou/resplit/internal/ui"
	"github.com/llehouerou/resplit/internal/ui/sizepopup"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.splitView.SetSize(msg.Width, m.contentHeight())
		return m, nil

	case sizepopup.SubmitMsg:
		m.sizePopup = nil
		m.status = ""
		if err := m.splitView.Container().SetPaneSizes(msg.Sizes); err != nil {
			m.status = errmsg.Format(errmsg.OpSetPaneSizes, err)
		}
		return m, nil

	case sizepopup.CancelMsg:
		m.sizePopup = nil
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.splitView, cmd = m.splitView.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modal surfaces first: help closes on any key, the size popup
	// owns all input while open.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.sizePopup != nil {
		popup, cmd := m.sizePopup.Update(msg)
		m.sizePopup = &popup
		return m, cmd
	}

	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.showHelp = true
		return m, nil
	case keymap.ActionSetSizes:
		popup := sizepopup.New(m.currentSizes())
		m.sizePopup = &popup
		return m, nil
	}

	m.status = ""
	var cmd tea.Cmd
	m.splitView, cmd = m.splitView.Update(msg)
	return m, cmd
}

func (m Model) contentHeight() int {
	return m.height - ui.HeaderHeight - ui.StatusHeight
}
