// Package keymap defines key bindings and action dispatch for the
// application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionSwitchFocus Action = "switch_focus"
	ActionHelp        Action = "help"
	ActionSetSizes    Action = "set_sizes"

	// Splitter actions
	ActionStepBackward   Action = "step_backward"   // move the splitter toward the start
	ActionStepForward    Action = "step_forward"    // move the splitter toward the end
	ActionJumpStart      Action = "jump_start"      // drive fully toward the start
	ActionJumpEnd        Action = "jump_end"        // drive fully toward the end
	ActionToggleCollapse Action = "toggle_collapse" // collapse/restore the previous panel
)
