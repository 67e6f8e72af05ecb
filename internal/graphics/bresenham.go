package graphics

// Bresenham returns the lattice points approximating the segment p1-p2
// using integer arithmetic only. Both endpoints are included and there is
// exactly one point per unit step along the dominant axis. The sequence
// runs from the endpoint with the smaller dominant coordinate, so swapping
// p1 and p2 yields the same points.
func Bresenham(p1, p2 Point) []Point {
	x0, y0, x1, y1 := p1.X, p1.Y, p2.X, p2.Y

	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	err := dx / 2
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	out := make([]Point, 0, dx+1)
	y := y0
	for x := x0; x <= x1; x++ {
		if steep {
			out = append(out, Point{X: y, Y: x})
		} else {
			out = append(out, Point{X: x, Y: y})
		}
		err -= dy
		// with dy == 0 the error never moves; a one-step run (dx == 1)
		// starts at zero and must not leave its row
		if err <= 0 && dy > 0 {
			y += sy
			err += dx
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
