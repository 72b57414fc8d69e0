// Package prompt provides a one-line input prompt built on the bubbles
// text input.
package prompt

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// Height is the number of rows an open prompt occupies.
const Height = 1

// Result is sent when the prompt closes.
type Result struct {
	Text     string
	Canceled bool // True if user pressed Escape
}

// Model is a one-line prompt. It is inactive until Start is called.
type Model struct {
	ui.Base
	input  textinput.Model
	title  string
	active bool
}

// New creates a new prompt model.
func New() Model {
	ti := textinput.New()
	ti.CharLimit = 16
	ti.Prompt = " "
	ti.PromptStyle = styles.T().S().Subtle
	ti.TextStyle = styles.T().S().Base
	return Model{input: ti}
}

// Start opens the prompt with a title and placeholder.
func (m *Model) Start(title, placeholder string) tea.Cmd {
	m.title = title
	m.active = true
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	return m.input.Focus()
}

// Active reports whether the prompt is open.
func (m Model) Active() bool {
	return m.active
}

// Value returns the current text.
func (m Model) Value() string {
	return m.input.Value()
}

func (m *Model) close() {
	m.active = false
	m.input.Blur()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Enter and Escape close the prompt and emit
// a Result; everything else goes to the text input.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			m.close()
			return m, func() tea.Msg { return Result{Canceled: true} }
		case tea.KeyEnter:
			text := m.input.Value()
			m.close()
			return m, func() tea.Msg { return Result{Text: text} }
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.active || m.Width() == 0 {
		return ""
	}
	m.input.Width = max(m.Width()-len(m.title)-2, 1)
	return styles.T().S().Prompt.Render(m.title) + m.input.View()
}
