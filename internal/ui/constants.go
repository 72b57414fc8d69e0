// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// CardBorder is the space consumed by a card border on each axis.
	CardBorder = 2

	// CardGap is the number of blank cells between two adjacent cards.
	CardGap = 1

	// CardTextRows is the number of rows a card reserves for title and subtitle.
	CardTextRows = 2

	// MinCardWidth is the narrowest card that still shows a truncated title.
	MinCardWidth = 8

	// MinCardHeight is the shortest card that still shows its title.
	MinCardHeight = CardBorder + 1

	// DotsLimit is the item count above which the page dots are replaced
	// by a numeric counter.
	DotsLimit = 12
)
