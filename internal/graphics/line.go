package graphics

import "fmt"

// Line is a segment between two points. The endpoints are unordered:
// NewLine(a, b) and NewLine(b, a) are equal and draw the same pixels.
type Line struct {
	a, b Point
}

// NewLine stores the endpoints as given. Use From and To for the canonical
// order.
func NewLine(a, b Point) Line {
	return Line{a: a, b: b}
}

// From returns the endpoint with the smaller x, or the smaller y when the
// x coordinates tie.
func (l Line) From() Point {
	if l.b.less(l.a) {
		return l.b
	}
	return l.a
}

// To returns the endpoint that is not From.
func (l Line) To() Point {
	if l.b.less(l.a) {
		return l.a
	}
	return l.b
}

// Canonical returns the same segment with its endpoints stored From, To.
// Canonical lines compare equal with == and can key a map.
func (l Line) Canonical() Line {
	return Line{a: l.From(), b: l.To()}
}

// Equal reports whether both lines join the same pair of points.
func (l Line) Equal(o Line) bool {
	return l.Canonical() == o.Canonical()
}

// Hash combines the endpoint hashes in canonical order, so it does not
// depend on the order the endpoints were supplied in.
func (l Line) Hash() uint64 {
	return mix(mix(hashSeed, l.From().Hash()), l.To().Hash())
}

func (l Line) Translate(dx, dy int) Line {
	return Line{a: l.a.Translate(dx, dy), b: l.b.Translate(dx, dy)}
}

// Points returns the rasterized pixels of the line, From first.
func (l Line) Points() []Point {
	return Bresenham(l.From(), l.To())
}

// Draw sets every rasterized pixel of the line on c.
func (l Line) Draw(c *Canvas) {
	for _, p := range l.Points() {
		c.SetPixel(p.X, p.Y)
	}
}

func (l Line) String() string {
	return fmt.Sprintf("%v-%v", l.From(), l.To())
}
