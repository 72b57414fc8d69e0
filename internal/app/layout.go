package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/ui/headerbar"
	"github.com/llehouerou/carousel/internal/ui/layout"
	"github.com/llehouerou/carousel/internal/ui/prompt"
)

// statusHeight is the status line, shared with the goto prompt.
const statusHeight = 1

func (m Model) contentOpts() layout.ContentOpts {
	return layout.ContentOpts{
		HeaderHeight: headerbar.Height,
		StatusHeight: statusHeight,
		HelpHeight:   m.help.Lines(),
	}
}

// contentHeight is the height left for the card strip.
func (m Model) contentHeight() int {
	return layout.ContentHeight(m.Height(), m.contentOpts())
}

// handleWindowSize resizes every component and lays the strip out again,
// keeping the current card in place. A repeated size is ignored.
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if m.restored && !m.Resized(msg.Width, msg.Height) {
		return m, nil
	}
	keep := m.current()
	m.SetSize(msg.Width, msg.Height)
	m.help.SetSize(msg.Width, msg.Height)
	m.prompt.SetSize(msg.Width, prompt.Height)

	cmds := []tea.Cmd{m.relayout(keep)}
	if !m.restored {
		m.restored = true
		cmds = append(cmds, m.restore())
	}
	return m, tea.Batch(cmds...)
}

// relayout measures the strip for the current window, rebuilds the attached
// views and moves back to keep. It returns the thumbnail load when the card
// box changed.
func (m *Model) relayout(keep int) tea.Cmd {
	width, height := m.Width(), m.contentHeight()
	pad := m.opts.Padding
	padding := carousel.Padding{Left: pad, Right: pad}
	stripW, stripH := width-2*pad, height
	if m.opts.Axis == carousel.Vertical {
		padding = carousel.Padding{Top: pad, Bottom: pad}
		stripW, stripH = width, height-2*pad
	}

	cw, ch := layout.CardSize(max(stripW, 0), max(stripH, 0), m.opts.CardWidth, m.opts.CardHeight)
	if cw != m.dims.width || ch != m.dims.height {
		m.dims.width, m.dims.height = cw, ch
		m.engine.InvalidateExtents()
	}

	m.stopScroll()
	m.engine.SetViewport(width, height, padding)
	var size carousel.Size
	if m.opts.Axis == carousel.Vertical {
		size = m.engine.Measure(carousel.AtMostSize(width), carousel.ExactSize(height))
	} else {
		size = m.engine.Measure(carousel.ExactSize(width), carousel.AtMostSize(height))
	}
	m.engine.SetViewport(size.Width, size.Height, padding)
	m.engine.LayoutInitial()
	if keep > 0 {
		m.jumpTo(keep)
	} else if m.opts.Snap {
		m.jumpTo(0)
	}

	m.logger.Debug("relayout",
		"window", [2]int{width, height},
		"strip", [2]int{size.Width, size.Height},
		"card", [2]int{cw, ch},
		"attached", m.engine.ChildCount())

	cols, rows := layout.ImageBox(cw, ch)
	if [2]int{cols, rows} == m.thumbBox {
		return nil
	}
	m.thumbBox = [2]int{cols, rows}
	m.thumbs = map[int]string{}
	return LoadThumbnailsCmd(m.deck.items, cols, rows, m.opts.Thumbnails)
}
