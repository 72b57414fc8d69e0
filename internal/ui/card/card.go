// Package card implements the banner page view handed to the layout engine.
package card

import (
	"strconv"
	"strings"

	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/icons"
	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/layout"
	"github.com/llehouerou/carousel/internal/ui/render"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// Item is one banner page.
type Item struct {
	Title    string
	Subtitle string
	Image    string // optional PNG/JPEG path
}

// Card is a reusable view bound to one item at a time. Its decorated
// extent includes a trailing gap on the scroll axis.
type Card struct {
	index int
	item  Item
	bound bool

	width, height int
	gapW, gapH    int

	// rendered output for the current binding
	cached string
	key    renderKey
}

type renderKey struct {
	width, height int
	current       bool
	thumb         string
}

var _ carousel.View = (*Card)(nil)

// New creates an unbound card of the given outer size. The gap goes after
// the card along axis.
func New(width, height int, axis carousel.Axis) *Card {
	c := &Card{width: width, height: height}
	if axis == carousel.Vertical {
		c.gapH = ui.CardGap
	} else {
		c.gapW = ui.CardGap
	}
	return c
}

// Bind points the card at an item and drops any cached rendering.
func (c *Card) Bind(index int, item Item) {
	c.index = index
	c.item = item
	c.bound = true
	c.cached = ""
	c.key = renderKey{}
}

// Unbind clears the binding when the card goes back to the pool.
func (c *Card) Unbind() {
	c.index = -1
	c.item = Item{}
	c.bound = false
	c.cached = ""
	c.key = renderKey{}
}

// Index returns the bound item index, or -1 when unbound.
func (c *Card) Index() int {
	if !c.bound {
		return -1
	}
	return c.index
}

// Item returns the bound item.
func (c *Card) Item() Item {
	return c.item
}

// Resize changes the outer card size used by later measurements.
func (c *Card) Resize(width, height int) {
	if c.width == width && c.height == height {
		return
	}
	c.width, c.height = width, height
	c.cached = ""
}

// Measure implements carousel.View.
func (c *Card) Measure(width, height carousel.Constraint) carousel.Size {
	return carousel.Size{
		Width:  resolve(width, c.width+c.gapW),
		Height: resolve(height, c.height+c.gapH),
	}
}

func resolve(c carousel.Constraint, desired int) int {
	switch c.Mode {
	case carousel.Exact:
		return c.Size
	case carousel.AtMost:
		return min(desired, c.Size)
	default:
		return desired
	}
}

// Content returns the size of the card body inside a placed rectangle,
// the trailing gap excluded.
func (c *Card) Content(r carousel.Rect) (width, height int) {
	return max(r.Right-r.Left-c.gapW, 0), max(r.Bottom-r.Top-c.gapH, 0)
}

// Render draws the card into width x height cells. thumb is the pre-rendered
// half-block image, empty when the item has none.
func (c *Card) Render(width, height int, current bool, thumb string) string {
	key := renderKey{width: width, height: height, current: current, thumb: thumb}
	if c.cached != "" && c.key == key {
		return c.cached
	}
	c.cached = c.draw(width, height, current, thumb)
	c.key = key
	return c.cached
}

func (c *Card) draw(width, height int, current bool, thumb string) string {
	if width < ui.CardBorder+1 || height < ui.MinCardHeight {
		return strings.Join(render.Block("", width, height), "\n")
	}
	t := styles.T()
	innerW := width - ui.CardBorder
	innerH := height - ui.CardBorder

	title := t.S().Title
	if current {
		title = t.S().Active
	}
	lines := []string{
		title.Render(render.Center(icons.FormatTitle(c.item.Title, c.item.Image != ""), innerW)),
	}
	if innerH > 1 {
		lines = append(lines, t.S().Subtitle.Render(render.Center(c.item.Subtitle, innerW)))
	}

	cols, rows := layout.ImageBox(width, height)
	var body []string
	if rows > 0 {
		art := thumb
		if art == "" {
			art = placeholder(cols, rows, c.index)
		}
		body = render.Block(art, cols, rows)
	}

	content := strings.Join(append(body, lines...), "\n")
	return t.CardStyle(current).
		Width(innerW).
		Height(innerH).
		Render(content)
}

// placeholder fills the image area of cards without an image.
func placeholder(cols, rows, index int) string {
	label := render.Center("#"+strconv.Itoa(index+1), cols)
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = render.EmptyLine(cols)
	}
	if rows > 0 {
		lines[rows/2] = styles.T().S().Subtle.Render(label)
	}
	return strings.Join(lines, "\n")
}
