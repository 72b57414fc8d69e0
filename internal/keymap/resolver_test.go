//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(All)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"l", ActionScrollForward},
		{"right", ActionScrollForward},
		{"H", ActionPagePrev},
		{" ", ActionToggleAutoplay},
		{"z", ""},
	}

	for _, tt := range tests {
		if got := r.Resolve(tt.key); got != tt.expected {
			t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.expected)
		}
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver(All)

	if got, want := r.KeysFor(ActionPageNext), []string{"L", "pgdown", "tab"}; !slices.Equal(got, want) {
		t.Errorf("KeysFor(page_next) = %v, want %v", got, want)
	}
	if got := r.KeysFor("unknown"); got != nil {
		t.Errorf("KeysFor(unknown) = %v, want nil", got)
	}
}

func TestResolver_KeysForReturnsCopy(t *testing.T) {
	r := NewResolver(All)

	keys := r.KeysFor(ActionQuit)
	keys[0] = "x"

	if got := r.KeysFor(ActionQuit)[0]; got != "q" {
		t.Errorf("KeysFor(quit)[0] = %q after caller edit, want q", got)
	}
}

func TestResolver_MergesDuplicateKeys(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q"}, "Quit", "global"},
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "banner"},
	})

	if got, want := r.KeysFor(ActionQuit), []string{"q", "ctrl+c"}; !slices.Equal(got, want) {
		t.Errorf("KeysFor(quit) = %v, want %v", got, want)
	}
	if got := r.Bindings(); len(got) != 1 || len(got[0].Keys) != 2 {
		t.Errorf("Bindings() = %v, want one merged quit binding", got)
	}
}

func TestResolver_LaterBindingTakesKey(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionSnap, []string{"s"}, "Snap", "scroll"},
		{ActionToggleStats, []string{"s", "i"}, "Stats", "banner"},
	})

	if got := r.Resolve("s"); got != ActionToggleStats {
		t.Errorf("Resolve(s) = %q, want toggle_stats", got)
	}
	if got := r.KeysFor(ActionSnap); len(got) != 0 {
		t.Errorf("KeysFor(snap) = %v, want none", got)
	}
	for _, b := range r.Bindings() {
		if b.Action == ActionSnap {
			t.Errorf("Bindings() lists snap without keys")
		}
	}
}

func TestResolver_DisplayAndHint(t *testing.T) {
	r := NewResolver(All)

	tests := []struct {
		action  Action
		display string
		hint    string
	}{
		{ActionPagePrev, "H/pgup/shift+tab", "H"},
		{ActionScrollForward, "l/→", "l"},
		{ActionToggleAutoplay, "space", "space"},
		{"unknown", "", ""},
	}

	for _, tt := range tests {
		if got := r.Display(tt.action); got != tt.display {
			t.Errorf("Display(%q) = %q, want %q", tt.action, got, tt.display)
		}
		if got := r.Hint(tt.action); got != tt.hint {
			t.Errorf("Hint(%q) = %q, want %q", tt.action, got, tt.hint)
		}
	}
}

func TestResolver_EmptyBindings(t *testing.T) {
	r := NewResolver(nil)
	if got := r.Resolve("q"); got != "" {
		t.Errorf("Resolve on empty resolver = %q", got)
	}
	if got := r.Bindings(); len(got) != 0 {
		t.Errorf("Bindings on empty resolver = %v", got)
	}
}
