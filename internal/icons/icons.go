package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Image     string
	Playing   string
	Paused    string
	Current   string
	Other     string
	PrevArrow string
	NextArrow string
}

var (
	nerdIcons = Icons{
		Image:     "\uf03e ", // nf-fa-image
		Playing:   "\uf04b",  // nf-fa-play
		Paused:    "\uf04c",  // nf-fa-pause
		Current:   "\uf111",  // nf-fa-circle
		Other:     "\uf10c",  // nf-fa-circle_o
		PrevArrow: "\uf053",  // nf-fa-chevron_left
		NextArrow: "\uf054",  // nf-fa-chevron_right
	}

	unicodeIcons = Icons{
		Image:     "🖼 ",
		Playing:   "▶",
		Paused:    "⏸",
		Current:   "●",
		Other:     "○",
		PrevArrow: "◀",
		NextArrow: "▶",
	}

	noneIcons = Icons{
		Image:     "",
		Playing:   "[>]",
		Paused:    "[=]",
		Current:   "*",
		Other:     ".",
		PrevArrow: "<",
		NextArrow: ">",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// FormatTitle formats a card title, prefixed with the image icon when the
// card shows an image.
func FormatTitle(title string, hasImage bool) string {
	if !hasImage || current.Image == "" {
		return title
	}
	return current.Image + title
}

// Autoplay returns the autoplay state indicator.
func Autoplay(on bool) string {
	if on {
		return current.Playing
	}
	return current.Paused
}

// Dots renders a page indicator with the current page highlighted.
// Returns an empty string when count exceeds limit.
func Dots(current0, count, limit int) string {
	if count <= 0 || count > limit {
		return ""
	}
	var s string
	for i := range count {
		if i > 0 {
			s += " "
		}
		if i == current0 {
			s += current.Current
		} else {
			s += current.Other
		}
	}
	return s
}

// Arrows returns the previous and next arrows.
func Arrows() (prev, next string) {
	return current.PrevArrow, current.NextArrow
}
