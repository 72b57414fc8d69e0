// Package helpbindings adapts the keymap bindings to the bubbles help footer.
package helpbindings

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{
	"scroll",
	"banner",
	"global",
}

// shortActions are shown in the collapsed one-line footer.
var shortActions = []keymap.Action{
	keymap.ActionPagePrev,
	keymap.ActionPageNext,
	keymap.ActionToggleAutoplay,
	keymap.ActionGoto,
	keymap.ActionHelp,
	keymap.ActionQuit,
}

// KeyMap implements help.KeyMap over a set of keymap bindings.
type KeyMap struct {
	short  []key.Binding
	groups [][]key.Binding
}

// NewKeyMap groups the resolver's bindings by context in display order.
func NewKeyMap(r *keymap.Resolver) KeyMap {
	var k KeyMap
	bindings := r.Bindings()
	byAction := make(map[keymap.Action]key.Binding, len(bindings))
	for _, ctx := range categoryOrder {
		var group []key.Binding
		for _, b := range bindings {
			if b.Context != ctx {
				continue
			}
			kb := toKey(r, b)
			byAction[b.Action] = kb
			group = append(group, kb)
		}
		if len(group) > 0 {
			k.groups = append(k.groups, group)
		}
	}
	for _, a := range shortActions {
		if kb, ok := byAction[a]; ok {
			k.short = append(k.short, kb)
		}
	}
	return k
}

func toKey(r *keymap.Resolver, b keymap.Binding) key.Binding {
	return key.NewBinding(
		key.WithKeys(r.KeysFor(b.Action)...),
		key.WithHelp(r.Display(b.Action), strings.ToLower(b.Description)),
	)
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return k.short
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return k.groups
}

// Model holds the state for the help footer.
type Model struct {
	ui.Base
	help help.Model
	keys KeyMap
}

// New creates a help footer over the resolver's bindings.
func New(r *keymap.Resolver) Model {
	h := help.New()
	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	h.Styles.ShortKey = keyStyle
	h.Styles.FullKey = keyStyle
	h.Styles.ShortDesc = t.S().Muted
	h.Styles.FullDesc = t.S().Muted
	h.Styles.ShortSeparator = t.S().Subtle
	h.Styles.FullSeparator = t.S().Subtle
	return Model{help: h, keys: NewKeyMap(r)}
}

// Toggle switches between the one-line and the full footer.
func (m *Model) Toggle() {
	m.help.ShowAll = !m.help.ShowAll
}

// ShowAll reports whether the full footer is shown.
func (m Model) ShowAll() bool {
	return m.help.ShowAll
}

// Keys returns the key map the footer renders.
func (m Model) Keys() KeyMap {
	return m.keys
}

// View renders the footer at the current width.
func (m Model) View() string {
	if m.Width() == 0 {
		return ""
	}
	h := m.help
	h.Width = m.Width()
	return h.View(m.keys)
}

// Lines returns the number of rows View occupies.
func (m Model) Lines() int {
	v := m.View()
	if v == "" {
		return 0
	}
	return lipgloss.Height(v)
}

// Contexts returns the binding contexts in display order.
func Contexts() []string {
	return slices.Clone(categoryOrder)
}
