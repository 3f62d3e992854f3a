package ui

// Layout constants for consistent sizing across UI components.
const (
	// HeaderHeight is the space for the application title bar.
	HeaderHeight = 1

	// StatusHeight is the space for the status line at the bottom.
	StatusHeight = 1

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// BorderWidth is the horizontal space consumed by a standard panel border.
	BorderWidth = 2

	// MinPanelCells is the smallest rendered width/height for a panel
	// before its content is dropped entirely.
	MinPanelCells = 3
)
