// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Scrolling
	ActionScrollForward Action = "scroll_forward"
	ActionScrollBack    Action = "scroll_back"
	ActionPageNext      Action = "page_next"
	ActionPagePrev      Action = "page_prev"
	ActionFirst         Action = "first"
	ActionGoto          Action = "goto"
	ActionSnap          Action = "snap"

	// Banner
	ActionToggleAutoplay Action = "toggle_autoplay"
	ActionRelayout       Action = "relayout"
	ActionToggleStats    Action = "toggle_stats"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "scroll", "banner"
}

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Scroll
	{ActionScrollForward, []string{"l", "right"}, "Scroll forward", "scroll"},
	{ActionScrollBack, []string{"h", "left"}, "Scroll back", "scroll"},
	{ActionPageNext, []string{"L", "pgdown", "tab"}, "Next card", "scroll"},
	{ActionPagePrev, []string{"H", "pgup", "shift+tab"}, "Previous card", "scroll"},
	{ActionFirst, []string{"g", "home"}, "First card", "scroll"},
	{ActionGoto, []string{":"}, "Go to card", "scroll"},
	{ActionSnap, []string{"s"}, "Snap to nearest card", "scroll"},

	// Banner
	{ActionToggleAutoplay, []string{" "}, "Toggle autoplay", "banner"},
	{ActionRelayout, []string{"r"}, "Reset layout", "banner"},
	{ActionToggleStats, []string{"i"}, "Toggle pool stats", "banner"},
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

// DisplayKey returns the printable form of a key.
func DisplayKey(key string) string {
	switch key {
	case " ":
		return "space"
	case "right":
		return "→"
	case "left":
		return "←"
	default:
		return key
	}
}
