package graphics

import (
	"fmt"
	"log/slog"
)

// Drawable is anything that can put itself on a canvas.
type Drawable interface {
	Draw(c *Canvas)
}

// Canvas is a fixed-size grid of on/off pixels, all off initially.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width  int
	height int
	field  [][]bool // field[y][x]
}

// NewCanvas returns a blank canvas. Negative dimensions are treated as zero.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	field := make([][]bool, height)
	for y := range field {
		field[y] = make([]bool, width)
	}
	return &Canvas{width: width, height: height, field: field}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// SetPixel turns the pixel at (x, y) on. Coordinates outside the canvas
// are ignored, so shapes may extend past the edges.
func (c *Canvas) SetPixel(x, y int) {
	if !c.inBounds(x, y) {
		Logger().Debug("graphics: pixel out of range", slog.Int("x", x), slog.Int("y", y),
			slog.Int("width", c.width), slog.Int("height", c.height))
		return
	}
	c.field[y][x] = true
}

// PixelAt reports whether the pixel at (x, y) is on. It panics when (x, y)
// lies outside the canvas.
func (c *Canvas) PixelAt(x, y int) bool {
	if !c.inBounds(x, y) {
		panic(fmt.Sprintf("graphics: PixelAt(%d, %d) outside %dx%d canvas", x, y, c.width, c.height))
	}
	return c.field[y][x]
}

// Draw draws d onto the canvas.
func (c *Canvas) Draw(d Drawable) {
	d.Draw(c)
}

// DrawAll draws each shape in order.
func (c *Canvas) DrawAll(ds ...Drawable) {
	for _, d := range ds {
		d.Draw(c)
	}
}

// Clear turns every pixel off.
func (c *Canvas) Clear() {
	for _, row := range c.field {
		clear(row)
	}
}

// Field returns a copy of the pixel grid, rows outer.
func (c *Canvas) Field() [][]bool {
	out := make([][]bool, len(c.field))
	for y, row := range c.field {
		out[y] = append([]bool(nil), row...)
	}
	return out
}

// Render serializes the canvas with r.
func (c *Canvas) Render(r Renderer) string {
	return r.Render(c.field)
}

// RenderAs serializes the canvas with a new renderer of the given kind.
func (c *Canvas) RenderAs(kind Kind) (string, error) {
	r, err := NewRenderer(kind)
	if err != nil {
		return "", err
	}
	Logger().Debug("graphics: render", slog.String("kind", string(kind)),
		slog.Int("width", c.width), slog.Int("height", c.height))
	return c.Render(r), nil
}
