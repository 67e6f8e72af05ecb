package graphics

import "fmt"

// Rectangle is an axis-aligned box given by two opposite corners in any
// order. Zero-width and zero-height rectangles are valid; their canonical
// corners coincide pairwise.
type Rectangle struct {
	a, b Point
}

// NewRectangle builds a rectangle from either diagonal, in either order.
func NewRectangle(a, b Point) Rectangle {
	return Rectangle{a: a, b: b}
}

// The canonical corners below are picked from the four corners
// (a.X,a.Y) (b.X,b.Y) (a.X,b.Y) (b.X,a.Y) with y growing downwards:
//
//	TopLeft      min x, ties by min y
//	TopRight     min y, ties by max x
//	BottomLeft   max y, ties by min x
//	BottomRight  max x, ties by max y
//
// Every corner shares its x with a or b and its y with a or b, so each rule
// resolves to the extreme pair of coordinates.

func (r Rectangle) minX() int { return min(r.a.X, r.b.X) }
func (r Rectangle) maxX() int { return max(r.a.X, r.b.X) }
func (r Rectangle) minY() int { return min(r.a.Y, r.b.Y) }
func (r Rectangle) maxY() int { return max(r.a.Y, r.b.Y) }

// TopLeft returns the corner with minimal x, then minimal y.
func (r Rectangle) TopLeft() Point { return Point{X: r.minX(), Y: r.minY()} }

// TopRight returns the corner with minimal y, then maximal x.
func (r Rectangle) TopRight() Point { return Point{X: r.maxX(), Y: r.minY()} }

// BottomLeft returns the corner with maximal y, then minimal x.
func (r Rectangle) BottomLeft() Point { return Point{X: r.minX(), Y: r.maxY()} }

// BottomRight returns the corner with maximal x, then maximal y.
func (r Rectangle) BottomRight() Point { return Point{X: r.maxX(), Y: r.maxY()} }

// Corners returns the canonical corners in drawing order: top-left,
// top-right, bottom-right, bottom-left.
func (r Rectangle) Corners() [4]Point {
	return [4]Point{r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft()}
}

// Width is the number of pixel columns the rectangle spans.
func (r Rectangle) Width() int { return r.maxX() - r.minX() + 1 }

// Height is the number of pixel rows the rectangle spans.
func (r Rectangle) Height() int { return r.maxY() - r.minY() + 1 }

// Contains reports whether p lies on or inside the rectangle.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.minX() && p.X <= r.maxX() && p.Y >= r.minY() && p.Y <= r.maxY()
}

func (r Rectangle) Translate(dx, dy int) Rectangle {
	return Rectangle{a: r.a.Translate(dx, dy), b: r.b.Translate(dx, dy)}
}

// Equal reports whether both rectangles have the same canonical corners.
func (r Rectangle) Equal(o Rectangle) bool {
	return r.Corners() == o.Corners()
}

// Hash folds the canonical corners in drawing order.
func (r Rectangle) Hash() uint64 {
	h := hashSeed
	for _, c := range r.Corners() {
		h = mix(h, c.Hash())
	}
	return h
}

// Edges returns the four sides, top first and then clockwise.
func (r Rectangle) Edges() [4]Line {
	c := r.Corners()
	return [4]Line{
		NewLine(c[0], c[1]),
		NewLine(c[1], c[2]),
		NewLine(c[2], c[3]),
		NewLine(c[3], c[0]),
	}
}

// Draw outlines the rectangle on c.
func (r Rectangle) Draw(c *Canvas) {
	for _, e := range r.Edges() {
		e.Draw(c)
	}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("[%v %v]", r.TopLeft(), r.BottomRight())
}
