package render

import (
	"strings"

	svg "github.com/ajstarks/svgo"

	"goraster/internal/graphics"
)

// KindSVG renders the canvas as an SVG document of round dots, matching
// the look of the HTML renderer.
const KindSVG graphics.Kind = "svg"

// CellSize is the edge length of one pixel in SVG user units.
const CellSize = 10

func init() {
	graphics.Register(KindSVG, func() graphics.Renderer { return SVG{} })
}

var (
	svgOffStyle = "fill:#eee"
	svgOnStyle  = "fill:#333"
)

type SVG struct{}

func (SVG) Render(field [][]bool) string {
	w := 0
	if len(field) > 0 {
		w = len(field[0])
	}
	var sb strings.Builder
	s := svg.New(&sb)
	s.Start(w*CellSize, len(field)*CellSize)

	r := CellSize / 2
	for _, on := range []bool{false, true} {
		if on {
			s.Gstyle(svgOnStyle)
		} else {
			s.Gstyle(svgOffStyle)
		}
		for y, row := range field {
			for x, px := range row {
				if px == on {
					s.Circle(x*CellSize+r, y*CellSize+r, r)
				}
			}
		}
		s.Gend()
	}
	s.End()
	return sb.String()
}
