// Package app wires configuration, the split view, and the popups into
// the root bubbletea model.
package app

import (
	"github.com/llehouerou/resplit/internal/config"
	"github.com/llehouerou/resplit/internal/keymap"
	"github.com/llehouerou/resplit/internal/ui/sizepopup"
	"github.com/llehouerou/resplit/internal/ui/splitview"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is the root application model.
type Model struct {
	cfg  *config.Config
	keys *keymap.Resolver

	splitView splitview.Model
	sizePopup *sizepopup.Model
	showHelp  bool

	status string // transient error text shown in the status line
	width  int
	height int
}

// New builds the application from configuration.
func New(cfg *config.Config) (Model, error) {
	sv, err := splitview.New(cfg)
	if err != nil {
		return Model{}, err
	}
	return Model{
		cfg:       cfg,
		keys:      keymap.NewResolver(keymap.ByContext("global")),
		splitView: sv,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// keymapContext returns the axis context for help generation.
func (m Model) keymapContext() string {
	if m.cfg.IsVertical() {
		return "vertical"
	}
	return "horizontal"
}
