package graphics

import (
	"slices"
	"testing"
)

func TestBresenhamWorkedExample(t *testing.T) {
	got := Bresenham(Pt(0, 0), Pt(3, 1))
	want := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 1)}
	if !slices.Equal(got, want) {
		t.Errorf("Bresenham((0,0),(3,1)) = %v, want %v", got, want)
	}
}

func TestBresenhamCases(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		want   []Point
	}{
		{"single", Pt(2, 2), Pt(2, 2), []Point{Pt(2, 2)}},
		{"horizontal pair", Pt(0, 0), Pt(1, 0), []Point{Pt(0, 0), Pt(1, 0)}},
		{"vertical pair", Pt(1, 1), Pt(1, 0), []Point{Pt(1, 0), Pt(1, 1)}},
		{"horizontal", Pt(4, 3), Pt(0, 3), []Point{Pt(0, 3), Pt(1, 3), Pt(2, 3), Pt(3, 3), Pt(4, 3)}},
		{"vertical", Pt(0, 0), Pt(0, 3), []Point{Pt(0, 0), Pt(0, 1), Pt(0, 2), Pt(0, 3)}},
		{"diagonal", Pt(0, 0), Pt(3, 3), []Point{Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3)}},
		{"anti-diagonal", Pt(0, 2), Pt(2, 0), []Point{Pt(0, 2), Pt(1, 1), Pt(2, 0)}},
		{"steep", Pt(0, 0), Pt(1, 3), []Point{Pt(0, 0), Pt(1, 1), Pt(1, 2), Pt(1, 3)}},
		{"shallow up", Pt(0, 1), Pt(4, 0), []Point{Pt(0, 1), Pt(1, 1), Pt(2, 0), Pt(3, 0), Pt(4, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bresenham(tt.p1, tt.p2)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Bresenham(%v, %v) = %v, want %v", tt.p1, tt.p2, got, tt.want)
			}
		})
	}
}

func TestBresenhamSymmetric(t *testing.T) {
	for x0 := -3; x0 <= 3; x0++ {
		for y0 := -3; y0 <= 3; y0++ {
			for _, p2 := range []Point{Pt(5, 2), Pt(-2, 6), Pt(0, -5), Pt(4, 4)} {
				p1 := Pt(x0, y0)
				a, b := Bresenham(p1, p2), Bresenham(p2, p1)
				if !slices.Equal(a, b) {
					t.Fatalf("Bresenham(%v, %v) = %v, reversed = %v", p1, p2, a, b)
				}
			}
		}
	}
}

func TestBresenhamProperties(t *testing.T) {
	for x := -6; x <= 6; x++ {
		for y := -6; y <= 6; y++ {
			p1, p2 := Pt(0, 0), Pt(x, y)
			pts := Bresenham(p1, p2)

			major := max(abs(x), abs(y))
			if len(pts) != major+1 {
				t.Fatalf("Bresenham(%v, %v) has %d points, want %d", p1, p2, len(pts), major+1)
			}
			if !slices.Contains(pts, p1) || !slices.Contains(pts, p2) {
				t.Fatalf("Bresenham(%v, %v) = %v misses an endpoint", p1, p2, pts)
			}
			for i := 1; i < len(pts); i++ {
				dx, dy := abs(pts[i].X-pts[i-1].X), abs(pts[i].Y-pts[i-1].Y)
				if dx > 1 || dy > 1 {
					t.Fatalf("Bresenham(%v, %v) gap between %v and %v", p1, p2, pts[i-1], pts[i])
				}
			}
		}
	}
}
