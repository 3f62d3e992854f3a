package keymap

// Binding describes a single key binding.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
	Context     string // "global", "horizontal", "vertical"
}

// All contains every key binding, for resolver construction and help
// generation. Splitter movement keys exist in a horizontal and a
// vertical variant; only the active axis's bindings are installed.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, ActionQuit, "Quit application", "global"},
	{[]string{"tab"}, ActionSwitchFocus, "Focus next splitter", "global"},
	{[]string{"?"}, ActionHelp, "Show help", "global"},
	{[]string{"s"}, ActionSetSizes, "Set pane sizes", "global"},
	{[]string{"home"}, ActionJumpStart, "Send splitter to start", "global"},
	{[]string{"end"}, ActionJumpEnd, "Send splitter to end", "global"},
	{[]string{"enter"}, ActionToggleCollapse, "Collapse/restore panel", "global"},

	// Horizontal layout
	{[]string{"left", "h"}, ActionStepBackward, "Move splitter left", "horizontal"},
	{[]string{"right", "l"}, ActionStepForward, "Move splitter right", "horizontal"},

	// Vertical layout
	{[]string{"up", "k"}, ActionStepBackward, "Move splitter up", "vertical"},
	{[]string{"down", "j"}, ActionStepForward, "Move splitter down", "vertical"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// ForDirection returns the global bindings plus the movement bindings
// for the given axis context ("horizontal" or "vertical").
func ForDirection(context string) []Binding {
	return append(ByContext("global"), ByContext(context)...)
}
