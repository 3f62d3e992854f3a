package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/resplit/internal/split/unit"
)

type Config struct {
	Direction    string  `koanf:"direction"`     // "horizontal" or "vertical"
	SplitterSize int     `koanf:"splitter_size"` // splitter thickness in cells
	KeyStep      float64 `koanf:"key_step"`      // fraction applied per arrow key press

	// Panels define the demo layout. Empty means the built-in default
	// three-panel layout.
	Panels []PanelConfig `koanf:"panels"`
}

// PanelConfig describes one panel of the demo layout. Size strings use
// the "<number>fr" / "<number>px" forms.
type PanelConfig struct {
	Title            string `koanf:"title"`
	Size             string `koanf:"size"`     // initial size, empty = even share
	MinSize          string `koanf:"min_size"` // empty = 0fr
	Collapsible      bool   `koanf:"collapsible"`
	DefaultCollapsed bool   `koanf:"default_collapsed"`
	CollapsedSize    string `koanf:"collapsed_size"` // empty = 0fr
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/resplit/config.toml
		filepath.Join(xdg.ConfigHome, "resplit", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

// validate surfaces malformed size strings at load time so they never
// show up mid-resize.
func (c *Config) validate() error {
	if c.Direction != "" && c.Direction != "horizontal" && c.Direction != "vertical" {
		return fmt.Errorf("direction %q: must be \"horizontal\" or \"vertical\"", c.Direction)
	}
	for i, p := range c.Panels {
		for _, s := range []string{p.Size, p.MinSize, p.CollapsedSize} {
			if s == "" {
				continue
			}
			if _, err := unit.Parse(s); err != nil {
				return fmt.Errorf("panel %d: %w", i, err)
			}
		}
	}
	return nil
}

// IsVertical returns true if the configured layout axis is vertical.
func (c *Config) IsVertical() bool {
	return c.Direction == "vertical"
}

// GetSplitterSize returns the splitter thickness with the default applied.
func (c *Config) GetSplitterSize() int {
	if c.SplitterSize <= 0 {
		return 1
	}
	return c.SplitterSize
}

// GetKeyStep returns the per-keypress fraction with the default applied.
func (c *Config) GetKeyStep() float64 {
	if c.KeyStep <= 0 || c.KeyStep >= 1 {
		return 0.01
	}
	return c.KeyStep
}

// GetPanels returns the configured panels, or the default demo layout
// when none are configured.
func (c *Config) GetPanels() []PanelConfig {
	if len(c.Panels) > 0 {
		return c.Panels
	}
	return []PanelConfig{
		{Title: "sidebar", Size: "0.25fr", MinSize: "0.1fr", Collapsible: true},
		{Title: "editor", MinSize: "0.2fr"},
		{Title: "preview"},
	}
}
