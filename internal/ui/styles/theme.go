package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the banner.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - current card, active indicator
	Secondary lipgloss.Color // Gold - title gradient end

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Card titles
	FgMuted  lipgloss.Color // Subtitles, status line
	FgSubtle lipgloss.Color // Hints, inactive dots

	// Borders
	Border      lipgloss.Color // Other cards
	BorderFocus lipgloss.Color // Card under the snap point

	// Status colors
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base     lipgloss.Style // Default text
	Muted    lipgloss.Style // Dimmed text
	Subtle   lipgloss.Style // Very dim text
	Title    lipgloss.Style // Card title
	Subtitle lipgloss.Style // Card subtitle
	Active   lipgloss.Style // Current page marker
	Prompt   lipgloss.Style // Goto prompt label
	Error    lipgloss.Style
	Warning  lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:     base,
		Muted:    lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:   lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:    base.Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(t.FgMuted).Italic(true),
		Active: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Prompt:  lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}

// CardStyle returns the border style for a card. The card nearest the snap
// point is drawn with the focus color.
func (t *Theme) CardStyle(current bool) lipgloss.Style {
	color := t.Border
	if current {
		color = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color)
}
