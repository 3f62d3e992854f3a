package keymap

import "testing"

func TestResolveHorizontal(t *testing.T) {
	r := NewResolver(ForDirection("horizontal"))

	tests := []struct {
		key  string
		want Action
	}{
		{"left", ActionStepBackward},
		{"h", ActionStepBackward},
		{"right", ActionStepForward},
		{"l", ActionStepForward},
		{"home", ActionJumpStart},
		{"end", ActionJumpEnd},
		{"enter", ActionToggleCollapse},
		{"tab", ActionSwitchFocus},
		{"q", ActionQuit},
		// Vertical keys are not bound in a horizontal layout.
		{"up", ""},
		{"down", ""},
		{"j", ""},
		{"k", ""},
		{"unbound", ""},
	}

	for _, tt := range tests {
		if got := r.Resolve(tt.key); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestResolveVertical(t *testing.T) {
	r := NewResolver(ForDirection("vertical"))

	tests := []struct {
		key  string
		want Action
	}{
		{"up", ActionStepBackward},
		{"k", ActionStepBackward},
		{"down", ActionStepForward},
		{"j", ActionStepForward},
		{"left", ""},
		{"right", ""},
	}

	for _, tt := range tests {
		if got := r.Resolve(tt.key); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeysFor(t *testing.T) {
	r := NewResolver(ForDirection("horizontal"))

	keys := r.KeysFor(ActionStepBackward)
	if len(keys) != 2 || keys[0] != "left" || keys[1] != "h" {
		t.Errorf("KeysFor(ActionStepBackward) = %v, want [left h]", keys)
	}
}

func TestByContext(t *testing.T) {
	for _, b := range ByContext("vertical") {
		if b.Context != "vertical" {
			t.Errorf("ByContext returned binding with context %q", b.Context)
		}
	}
	if len(ByContext("vertical")) == 0 {
		t.Error("ByContext(vertical) returned no bindings")
	}
}
