package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/ui/prompt"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case FrameMsg:
		return m.handleFrame(msg)

	case SettleMsg:
		if msg.Gen != m.settle || m.scroll.active {
			return m, nil
		}
		return m, m.startScroll(-1, carousel.NoPreference)

	case AutoplayMsg:
		return m.handleAutoplay(msg)

	case ThumbnailsMsg:
		if [2]int{msg.Cols, msg.Rows} == m.thumbBox {
			m.thumbs = msg.Images
			if msg.Err != "" {
				m.status = msg.Err
			}
		}
		return m, nil

	case prompt.Result:
		return m.handleGotoResult(msg)
	}

	// Cursor blink and other input messages while the prompt is open.
	if m.prompt.Active() {
		_, cmd := m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.scroll.gen || !m.scroll.active {
		return m, nil
	}
	if m.stepScroll() {
		m.scroll.active = false
		m.savePosition()
		return m, nil
	}
	return m, FrameCmd(m.opts.FrameInterval, m.scroll.gen)
}

func (m Model) handleAutoplay(msg AutoplayMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.autoplayGen || !m.autoplay {
		return m, nil
	}
	next := AutoplayCmd(m.opts.AutoplayInterval, m.autoplayGen)
	// Hold still while the user is typing or another animation runs.
	if m.prompt.Active() || m.scroll.active {
		return m, next
	}
	return m, tea.Batch(m.page(carousel.Forward), next)
}

// setAutoplay switches autoplay and returns the first tick when enabled.
func (m *Model) setAutoplay(on bool) tea.Cmd {
	if m.opts.AutoplayInterval <= 0 || m.deck.ItemCount() < 2 {
		on = false
	}
	m.autoplay = on
	m.autoplayGen++
	if !on {
		return nil
	}
	return AutoplayCmd(m.opts.AutoplayInterval, m.autoplayGen)
}
