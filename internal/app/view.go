package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/icons"
	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/ui/card"
	"github.com/llehouerou/carousel/internal/ui/headerbar"
	"github.com/llehouerou/carousel/internal/ui/layout"
	"github.com/llehouerou/carousel/internal/ui/render"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// View renders the banner.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	header := headerbar.Render(headerbar.Info{
		Title:    m.opts.Title,
		Current:  m.current(),
		Count:    m.deck.ItemCount(),
		Autoplay: m.autoplay,
	}, m.Width())

	parts := []string{header, m.renderContent(), m.renderStatus()}
	if help := m.help.View(); help != "" {
		parts = append(parts, help)
	}
	return enforceHeight(strings.Join(parts, "\n"), m.Height())
}

// renderContent places the strip in the content area, centered on the
// cross axis.
func (m Model) renderContent() string {
	height := m.contentHeight()
	if height == 0 {
		return ""
	}
	if m.deck.ItemCount() == 0 {
		empty := styles.T().S().Muted.Render("No items")
		return lipgloss.Place(m.Width(), height, lipgloss.Center, lipgloss.Center, empty)
	}

	strip := m.renderStrip()
	if m.opts.Axis == carousel.Vertical {
		strip = lipgloss.PlaceHorizontal(m.Width(), lipgloss.Center, strip)
		return lipgloss.PlaceVertical(height, lipgloss.Top, strip)
	}
	return lipgloss.PlaceVertical(height, lipgloss.Center, strip)
}

// renderStrip composes the attached cards at their engine positions.
func (m Model) renderStrip() string {
	children := m.engine.Children()
	current := m.current()
	layers := make([]render.Layer, 0, len(children))
	width, height := 0, 0
	for _, child := range children {
		c, ok := child.View.(*card.Card)
		if !ok {
			continue
		}
		w, h := c.Content(child.Rect)
		body := c.Render(w, h, child.Index == current, m.thumbs[child.Index])
		layers = append(layers, render.Layer{
			X:     child.Rect.Left,
			Y:     child.Rect.Top,
			Width: w,
			Lines: strings.Split(body, "\n"),
		})
		width = max(width, child.Rect.Right)
		height = max(height, child.Rect.Bottom)
	}
	if m.opts.Axis == carousel.Vertical {
		return render.Compose(width, m.contentHeight(), layers)
	}
	return render.Compose(m.Width(), height, layers)
}

// renderStatus renders the prompt when open, otherwise the last message on
// the left and the pool counters on the right.
func (m Model) renderStatus() string {
	if m.prompt.Active() {
		return m.prompt.View()
	}
	s := styles.T().S()

	var right string
	if m.showStats && !layout.IsNarrowMode(m.Width()) {
		right = s.Muted.Render(m.statsLine())
	}
	// The message gives way to the counters rather than wrapping.
	room := max(m.Width()-lipgloss.Width(right)-1, 0)

	var left string
	switch {
	case room < 4: // no space for even an ellipsis
	case m.status != "":
		left = s.Error.Render(render.TruncateAndPad(m.status, room))
	default:
		left = s.Subtle.Render(render.TruncateAndPad(m.pageHint(), room))
	}
	return render.Row(left, right, m.Width())
}

// pageHint shows the keys that page through the cards, next to the arrows.
func (m Model) pageHint() string {
	prev, next := icons.Arrows()
	parts := []string{
		strings.TrimSpace(prev + " " + m.resolver.Hint(keymap.ActionPagePrev)),
		strings.TrimSpace(m.resolver.Hint(keymap.ActionPageNext) + " " + next),
	}
	return strings.TrimSpace(strings.Join(parts, "  "))
}

func (m Model) statsLine() string {
	st := m.recycler.Stats()
	return fmt.Sprintf("%s live · %s free · %s created · %s reused · %s cells",
		humanize.Comma(int64(st.Live)),
		humanize.Comma(int64(st.Free)),
		humanize.Comma(int64(st.Created)),
		humanize.Comma(int64(st.Reused)),
		humanize.Comma(int64(m.scrolled)))
}

// enforceHeight pads or truncates the view to exactly height lines.
func enforceHeight(view string, height int) string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
