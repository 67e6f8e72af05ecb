package geom

import "goraster/internal/graphics"

type BBox struct {
	MinX int
	MinY int
	MaxX int
	MaxY int
}

// Rect returns the box as a rectangle.
func (b BBox) Rect() graphics.Rectangle {
	return graphics.NewRectangle(graphics.Pt(b.MinX, b.MinY), graphics.Pt(b.MaxX, b.MaxY))
}

// Data is the set of shapes loaded from one source
type Data struct {
	Points []graphics.Point
	Lines  []graphics.Line
	Rects  []graphics.Rectangle
	BBox   BBox

	n int // vertices seen, for bbox seeding
}

func (d *Data) extend(p graphics.Point) {
	if d.n == 0 {
		d.BBox = BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
	} else {
		d.BBox.MinX = min(d.BBox.MinX, p.X)
		d.BBox.MinY = min(d.BBox.MinY, p.Y)
		d.BBox.MaxX = max(d.BBox.MaxX, p.X)
		d.BBox.MaxY = max(d.BBox.MaxY, p.Y)
	}
	d.n++
}

func (d *Data) addPoint(p graphics.Point) {
	d.Points = append(d.Points, p)
	d.extend(p)
}

// addPath appends one Line per consecutive pair of vertices.
func (d *Data) addPath(pts []graphics.Point) {
	for i, p := range pts {
		d.extend(p)
		if i > 0 {
			d.Lines = append(d.Lines, graphics.NewLine(pts[i-1], p))
		}
	}
}

// addRing is addPath with the ring closed back to its first vertex.
func (d *Data) addRing(pts []graphics.Point) {
	if len(pts) > 1 && pts[0] != pts[len(pts)-1] {
		pts = append(pts, pts[0])
	}
	d.addPath(pts)
}

func (d *Data) addRect(r graphics.Rectangle) {
	d.Rects = append(d.Rects, r)
	d.extend(r.TopLeft())
	d.extend(r.BottomRight())
}

// Merge appends o's shapes to d.
func (d *Data) Merge(o Data) {
	for _, p := range o.Points {
		d.addPoint(p)
	}
	for _, l := range o.Lines {
		d.Lines = append(d.Lines, l)
		d.extend(l.From())
		d.extend(l.To())
	}
	for _, r := range o.Rects {
		d.addRect(r)
	}
}

// Empty reports whether no shape was loaded.
func (d Data) Empty() bool {
	return len(d.Points) == 0 && len(d.Lines) == 0 && len(d.Rects) == 0
}

// Shapes returns every shape as a Drawable: points, then lines, then rectangles.
func (d Data) Shapes() []graphics.Drawable {
	out := make([]graphics.Drawable, 0, len(d.Points)+len(d.Lines)+len(d.Rects))
	for _, p := range d.Points {
		out = append(out, p)
	}
	for _, l := range d.Lines {
		out = append(out, l)
	}
	for _, r := range d.Rects {
		out = append(out, r)
	}
	return out
}

// CanvasSize is the smallest canvas anchored at the origin that holds
// every non-negative vertex.
func (d Data) CanvasSize() (w, h int) {
	if d.Empty() {
		return 0, 0
	}
	return max(d.BBox.MaxX+1, 0), max(d.BBox.MaxY+1, 0)
}
