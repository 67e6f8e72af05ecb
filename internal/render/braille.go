package render

import (
	"strings"

	"goraster/internal/graphics"
)

// KindBraille packs 2x4 pixels into each braille rune.
const KindBraille graphics.Kind = "braille"

func init() {
	graphics.Register(KindBraille, func() graphics.Renderer { return Braille{} })
}

// Braille renders the field at a quarter of its height and half of its
// width. Cells with no pixel on are spaces.
type Braille struct{}

// dot bits for the micro pixel at column rx (0..1), row ry (0..3) of a cell
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func (Braille) Render(field [][]bool) string {
	h := len(field)
	if h == 0 {
		return ""
	}
	w := len(field[0])
	cw, ch := (w+1)/2, (h+3)/4

	m := make([][]uint8, ch)
	for i := range m {
		m[i] = make([]uint8, cw)
	}
	for y, row := range field {
		for x, on := range row {
			if on {
				m[y/4][x/2] |= brailleBits[x%2][y%4]
			}
		}
	}

	out := make([]string, ch)
	for cy := range m {
		line := make([]rune, cw)
		for cx, mask := range m[cy] {
			if mask == 0 {
				line[cx] = ' '
			} else {
				line[cx] = rune(0x2800 + int(mask))
			}
		}
		out[cy] = string(line)
	}
	return strings.Join(out, "\n")
}
