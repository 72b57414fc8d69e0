// Package headerbar renders the title row above the card strip.
package headerbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/carousel/internal/icons"
	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/render"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// Height is the fixed height of the header bar (title row plus separator).
const Height = 2

// Info holds what the header shows.
type Info struct {
	Title    string
	Current  int // zero-based index of the card nearest the snap point, -1 if none
	Count    int
	Autoplay bool
}

// Render returns the header bar string for the given width.
func Render(info Info, width int) string {
	if width < 20 {
		return ""
	}
	s := styles.T().S()

	left := styles.Title(render.Truncate(info.Title, width/2))
	right := s.Muted.Render(icons.Autoplay(info.Autoplay) + " " + Counter(info.Current, info.Count))

	if dots := icons.Dots(info.Current, info.Count, ui.DotsLimit); dots != "" {
		dotsWidth := lipgloss.Width(dots)
		free := width - lipgloss.Width(left) - lipgloss.Width(right)
		if free >= dotsWidth+2 {
			pad := (free - dotsWidth) / 2
			left += render.EmptyLine(pad) + s.Active.Render(dots)
		}
	}

	row := render.Row(left, right, width)
	return row + "\n" + styles.Rule(width)
}

// Counter formats the one-based position, such as "3/12".
func Counter(current, count int) string {
	if count == 0 || current < 0 {
		return fmt.Sprintf("-/%d", count)
	}
	return fmt.Sprintf("%d/%d", current+1, count)
}
