package tui

import (
	"goraster/internal/graphics"
	"goraster/internal/render"
)

// canvasSize is the pixel size of a w×h cell map for the current renderer.
func (m Model) canvasSize(w, h int) (int, int) {
	if m.Kind() == render.KindBraille {
		return w * 2, h * 4
	}
	return w, h
}

// drawShapes draws the visible layers, shifted by the pan offset, in pixels.
func (m Model) drawShapes(c *graphics.Canvas) {
	dx, dy := m.offsetX, m.offsetY
	if m.Kind() == render.KindBraille {
		dx, dy = dx*2, dy*4
	}
	if m.showRects {
		for _, r := range m.data.Rects {
			c.Draw(r.Translate(dx, dy))
		}
	}
	if m.showLines {
		for _, l := range m.data.Lines {
			c.Draw(l.Translate(dx, dy))
		}
	}
	if m.showPoints {
		for _, p := range m.data.Points {
			c.Draw(p.Translate(dx, dy))
		}
	}
}

// renderMap draws the data onto a fresh canvas filling a w×h cell area.
func (m Model) renderMap(w, h int) string {
	cw, ch := m.canvasSize(w, h)
	c := graphics.NewCanvas(cw, ch)
	m.drawShapes(c)
	out, err := c.RenderAs(m.Kind())
	if err != nil {
		return err.Error()
	}
	return out
}
