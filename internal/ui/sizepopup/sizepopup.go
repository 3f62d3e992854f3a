// Package sizepopup provides a small input dialog for setting all pane
// sizes at once, e.g. "0.6fr 0.4fr" or "200px 1fr".
package sizepopup

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/resplit/internal/split/unit"
	"github.com/llehouerou/resplit/internal/ui/styles"
)

// SubmitMsg carries the parsed sizes when the user confirms.
type SubmitMsg struct {
	Sizes []unit.Size
}

// CancelMsg signals the popup was dismissed.
type CancelMsg struct{}

// Model is the size input popup.
type Model struct {
	input textinput.Model
	err   string
}

// New creates the popup with the current sizes pre-filled.
func New(current []unit.Size) Model {
	ti := textinput.New()
	ti.Placeholder = "0.5fr 0.5fr"
	ti.CharLimit = 128
	ti.Width = 40
	ti.Focus()

	parts := make([]string, len(current))
	for i, s := range current {
		parts[i] = s.String()
	}
	ti.SetValue(strings.Join(parts, " "))

	return Model{input: ti}
}

// Update handles input. Enter parses and submits, esc cancels.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			return m, func() tea.Msg { return CancelMsg{} }
		case tea.KeyEnter:
			sizes, err := parseSizes(m.input.Value())
			if err != nil {
				m.err = err.Error()
				return m, nil
			}
			return m, func() tea.Msg { return SubmitMsg{Sizes: sizes} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// parseSizes parses a whitespace-separated list of size strings.
func parseSizes(value string) ([]unit.Size, error) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return nil, fmt.Errorf("enter one size per panel")
	}
	sizes := make([]unit.Size, len(fields))
	for i, f := range fields {
		s, err := unit.Parse(f)
		if err != nil {
			return nil, err
		}
		sizes[i] = s
	}
	return sizes, nil
}

// View renders the dialog centered in the given area.
func (m Model) View(width, height int) string {
	t := styles.T()

	var b strings.Builder
	b.WriteString(t.S().Title.Render("Set pane sizes"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.err != "" {
		b.WriteString(t.S().Error.Render(m.err))
	} else {
		b.WriteString(t.S().Subtle.Render("enter apply · esc cancel"))
	}

	dialog := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, dialog)
}
