package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/state"
)

// savePosition persists the current card and autoplay state.
func (m *Model) savePosition() {
	if m.opts.State == nil {
		return
	}
	m.opts.State.SavePosition(state.Position{
		FirstIndex: m.current(),
		ItemCount:  m.deck.ItemCount(),
		Autoplay:   m.autoplay,
	})
}

// restore scrolls to the saved card and resumes autoplay. It runs once,
// after the first layout.
func (m *Model) restore() tea.Cmd {
	var cmds []tea.Cmd
	if idx := m.saved.RestoreIndex(m.deck.ItemCount()); idx > 0 {
		cmds = append(cmds, m.startScroll(idx, carousel.NoPreference))
	}
	if m.saved != nil && m.saved.Autoplay {
		cmds = append(cmds, m.setAutoplay(true))
	}
	return tea.Batch(cmds...)
}
