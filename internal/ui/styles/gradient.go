package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Blend returns the color at fraction t between from and to, blended in HCL
// space. t is clamped to [0,1]. Colors that are not #rrggbb blend as gray.
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	switch {
	case t <= 0:
		return from
	case t >= 1:
		return to
	}
	c1 := toColorful(from)
	c2 := toColorful(to)
	return lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
}

// Gradient renders text with a color running from one end to the other,
// one step per grapheme cluster.
func Gradient(text string, from, to lipgloss.Color, bold bool) string {
	if text == "" {
		return ""
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	style := lipgloss.NewStyle().Bold(bold)
	if len(clusters) == 1 {
		return style.Foreground(from).Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, cluster := range clusters {
		c := Blend(from, to, float64(i)/last)
		b.WriteString(style.Foreground(c).Render(cluster))
	}
	return b.String()
}

func toColorful(c lipgloss.Color) colorful.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	col, _ := colorful.MakeColor(color.RGBA{R: 128, G: 128, B: 128, A: 255})
	return col
}
