package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"

	"github.com/llehouerou/carousel/internal/ui/render"
)

// fallbackGray stands in for colors that are not #rrggbb, such as ANSI
// palette indices, which cannot be blended.
var fallbackGray = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Gradient colors text from From to To, one step per grapheme cluster.
type Gradient struct {
	From, To lipgloss.Color
	Bold     bool
}

// TitleGradient is the bold gradient of the banner title.
func (t *Theme) TitleGradient() Gradient {
	return Gradient{From: t.Primary, To: t.Secondary, Bold: true}
}

// RuleGradient fades the header rule from the accent into the border color.
func (t *Theme) RuleGradient() Gradient {
	return Gradient{From: t.Primary, To: t.Border}
}

// Title renders the banner title with the theme's title gradient.
func Title(text string) string {
	return T().TitleGradient().Render(text)
}

// Rule renders a horizontal rule of width cells with the theme's rule
// gradient.
func Rule(width int) string {
	if width <= 0 {
		return ""
	}
	return T().RuleGradient().Render(render.Separator(width))
}

// Render returns text with every grapheme cluster in its own blended color.
func (g Gradient) Render(text string) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return g.style(g.From).Render(text)
	}

	var b strings.Builder
	for i, hex := range blend(len(clusters), g.From, g.To) {
		b.WriteString(g.style(lipgloss.Color(hex)).Render(clusters[i]))
	}
	return b.String()
}

func (g Gradient) style(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c).Bold(g.Bold)
}

// blend returns n hex colors from from to to, interpolated in HCL space so
// the steps look even.
func blend(n int, from, to lipgloss.Color) []string {
	a, b := toColorful(from), toColorful(to)
	out := make([]string, n)
	for i := range n {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = a.BlendHcl(b, t).Clamped().Hex()
	}
	return out
}

func toColorful(c lipgloss.Color) colorful.Color {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return fallbackGray
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return fallbackGray
	}
	return col
}
