// Package layout provides pure functions for UI dimension calculations.
package layout

import "github.com/llehouerou/carousel/internal/ui"

// NarrowThreshold is the terminal width below which the status line drops
// its pool counters.
const NarrowThreshold = 60

// HeaderHeight is the height of the title row plus its separator.
const HeaderHeight = 2

// ContentOpts contains the parameters needed to calculate the banner height.
type ContentOpts struct {
	HeaderHeight int
	StatusHeight int // 0 when the status line is hidden
	PromptHeight int // 0 unless the goto prompt is open
	HelpHeight   int // height of the help footer
}

// ContentHeight calculates the height left for the card strip: the terminal
// height minus header, status line, prompt and help footer. Never negative.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.StatusHeight
	height -= opts.PromptHeight
	height -= opts.HelpHeight
	return max(height, 0)
}

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// CardSize clamps the configured card size to the strip. On the scroll
// axis a card may be as large as the strip; on the cross axis it never
// exceeds it. Non-positive configured values fill the strip.
func CardSize(stripWidth, stripHeight, cardWidth, cardHeight int) (width, height int) {
	width = cardWidth
	if width <= 0 || width > stripWidth {
		width = stripWidth
	}
	height = cardHeight
	if height <= 0 || height > stripHeight {
		height = stripHeight
	}
	return max(width, 0), max(height, 0)
}

// ImageBox returns the cell box available for a thumbnail inside a card of
// the given outer size, after the border and text rows.
func ImageBox(cardWidth, cardHeight int) (cols, rows int) {
	cols = cardWidth - ui.CardBorder
	rows = cardHeight - ui.CardBorder - ui.CardTextRows
	return max(cols, 0), max(rows, 0)
}

// StripOffset returns the cross-axis offset that centers a card of size
// card inside a strip of size strip.
func StripOffset(strip, card int) int {
	if card >= strip {
		return 0
	}
	return (strip - card) / 2
}
