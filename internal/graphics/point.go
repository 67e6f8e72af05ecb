package graphics

import "fmt"

// Point is an integer lattice coordinate. The y axis grows downwards, so
// row 0 of a canvas is its top edge.
//
// Point is a comparable value and can be used directly as a map key.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Equal reports whether p and q have the same coordinates.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Hash returns a deterministic hash of the coordinates. Equal points hash
// identically.
func (p Point) Hash() uint64 {
	return mix(mix(hashSeed, uint64(int64(p.X))), uint64(int64(p.Y)))
}

// Translate returns p moved by (dx, dy).
func (p Point) Translate(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Draw turns on the pixel at p.
func (p Point) Draw(c *Canvas) {
	c.SetPixel(p.X, p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// less orders points by x, then y.
func (p Point) less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

const hashSeed uint64 = 0x9e3779b97f4a7c15

// mix folds v into h with a splitmix64 finalizer. The result depends on
// argument order, so composite hashes must feed parts in canonical order.
func mix(h, v uint64) uint64 {
	h ^= v + 0x9e3779b97f4a7c15 + (h << 6) + (h >> 2)
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return h
}
