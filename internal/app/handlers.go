package app

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/app/handler"
	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/ui/prompt"
)

// handleKey routes a key press: the open prompt takes everything, then
// bound actions.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	_, cmd := handler.Chain(msg,
		m.handlePromptKey,
		handler.Dispatch(m.resolver, m.actions()),
	)
	return m, cmd
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) handler.Result {
	if !m.prompt.Active() {
		return handler.NotHandled
	}
	_, cmd := m.prompt.Update(msg)
	return handler.Handled(cmd)
}

// actions binds each keymap action to its effect on m.
func (m *Model) actions() handler.Actions {
	return handler.Actions{
		keymap.ActionQuit: m.quit,
		keymap.ActionHelp: func() tea.Cmd {
			m.help.Toggle()
			return m.relayout(m.current())
		},
		keymap.ActionScrollForward: func() tea.Cmd {
			return m.manualScroll(m.opts.ScrollStep)
		},
		keymap.ActionScrollBack: func() tea.Cmd {
			return m.manualScroll(-m.opts.ScrollStep)
		},
		keymap.ActionPageNext: func() tea.Cmd {
			return m.page(carousel.Forward)
		},
		keymap.ActionPagePrev: func() tea.Cmd {
			return m.page(carousel.Backward)
		},
		keymap.ActionFirst: func() tea.Cmd {
			return m.startScroll(0, carousel.NoPreference)
		},
		keymap.ActionGoto: func() tea.Cmd {
			n := m.deck.ItemCount()
			if n == 0 {
				return nil
			}
			return m.prompt.Start("Go to:", fmt.Sprintf("1-%d", n))
		},
		keymap.ActionSnap: func() tea.Cmd {
			return m.startScroll(-1, carousel.NoPreference)
		},
		keymap.ActionToggleAutoplay: func() tea.Cmd {
			cmd := m.setAutoplay(!m.autoplay)
			m.savePosition()
			return cmd
		},
		keymap.ActionRelayout: func() tea.Cmd {
			m.engine.InvalidateExtents()
			m.status = ""
			return m.relayout(m.current())
		},
		keymap.ActionToggleStats: func() tea.Cmd {
			m.showStats = !m.showStats
			return nil
		},
	}
}

func (m *Model) quit() tea.Cmd {
	m.stopScroll()
	m.savePosition()
	m.engine.Teardown()
	return tea.Quit
}

func (m Model) handleGotoResult(msg prompt.Result) (tea.Model, tea.Cmd) {
	if msg.Canceled {
		return m, nil
	}
	text := strings.TrimSpace(msg.Text)
	n := m.deck.ItemCount()
	num, err := strconv.Atoi(text)
	if err == nil && (num < 1 || num > n) {
		err = fmt.Errorf("out of range 1-%d", n)
	}
	if err != nil {
		m.status = errmsg.FormatWith(errmsg.OpGotoParse, text, err)
		return m, nil
	}
	m.status = ""
	return m, m.startScroll(num-1, carousel.NoPreference)
}

// handleMouse scrolls on wheel events. Both wheel axes scroll the strip.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		return m, m.manualScroll(m.opts.ScrollStep)
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		return m, m.manualScroll(-m.opts.ScrollStep)
	}
	return m, nil
}
