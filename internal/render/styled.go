package render

import (
	"github.com/charmbracelet/lipgloss"

	"goraster/internal/graphics"
)

// KindStyled renders colored block cells for a terminal.
const KindStyled graphics.Kind = "styled"

func init() {
	graphics.Register(KindStyled, func() graphics.Renderer { return NewStyled() })
}

var (
	onFg  = lipgloss.Color("#7C3AED")
	offFg = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#243141"}
)

// Styled renders one glyph per pixel, colored through lipgloss. Colors
// degrade to plain glyphs when the output has no color support.
type Styled struct {
	On, Off       lipgloss.Style
	Filled, Blank string
}

// NewStyled returns the default palette: violet blocks on dim dots.
func NewStyled() Styled {
	return Styled{
		On:     lipgloss.NewStyle().Foreground(onFg),
		Off:    lipgloss.NewStyle().Foreground(offFg),
		Filled: "█",
		Blank:  "·",
	}
}

func (s Styled) Render(field [][]bool) string {
	return graphics.RenderField(field, graphics.Tokens{
		Filled: s.On.Render(s.Filled),
		Blank:  s.Off.Render(s.Blank),
		RowSep: "\n",
	})
}
