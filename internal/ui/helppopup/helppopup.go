// Package helppopup renders a centered popup listing the key bindings
// for the active layout axis.
package helppopup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/resplit/internal/keymap"
	"github.com/llehouerou/resplit/internal/ui/render"
	"github.com/llehouerou/resplit/internal/ui/styles"
)

const keyColumnWidth = 12

// View renders the help dialog centered in the given area. The context
// selects which axis's movement bindings are shown.
func View(context string, width, height int) string {
	t := styles.T()
	s := t.S()

	var b strings.Builder
	b.WriteString(s.Title.Render("Key bindings"))
	b.WriteString("\n\n")
	for _, binding := range keymap.ForDirection(context) {
		keys := strings.Join(binding.Keys, ", ")
		b.WriteString(s.Base.Render(render.TruncateAndPad(keys, keyColumnWidth)))
		b.WriteString(" ")
		b.WriteString(s.Muted.Render(binding.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.Subtle.Render("any key to close"))

	dialog := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, dialog)
}
