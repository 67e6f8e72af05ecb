package geom

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"goraster/internal/graphics"
)

// ParseWKT parses one integer WKT geometry.
// Supported: POINT(x y), MULTIPOINT(x y, ...), LINESTRING(x y, ...),
// POLYGON((x y, ...), ...) and the extension RECTANGLE(x0 y0, x1 y1).
// Lines and polygon rings become one Line per edge.
func ParseWKT(wkt string) (Data, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return Data{}, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	var d Data
	body := func(start, end string) (string, bool) {
		i := strings.Index(s, start)
		j := strings.LastIndex(s, end)
		if i < 0 || j <= i {
			return "", false
		}
		return s[i+len(start) : j], true
	}
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"):
		b, ok := body("(", ")")
		if !ok {
			return Data{}, errors.New("wkt multipoint: invalid")
		}
		// both MULTIPOINT(1 2, 3 4) and MULTIPOINT((1 2), (3 4))
		b = strings.NewReplacer("(", "", ")", "").Replace(b)
		for _, p := range parseTuples(b) {
			d.addPoint(p)
		}
	case strings.HasPrefix(up, "POINT"):
		b, ok := body("(", ")")
		if !ok {
			return Data{}, errors.New("wkt point: invalid")
		}
		for _, p := range parseTuples(b) {
			d.addPoint(p)
		}
	case strings.HasPrefix(up, "LINESTRING"):
		b, ok := body("(", ")")
		if !ok {
			return Data{}, errors.New("wkt linestring: invalid")
		}
		ls := parseTuples(b)
		if len(ls) < 2 {
			return Data{}, errors.New("wkt linestring: need at least two vertices")
		}
		d.addPath(ls)
	case strings.HasPrefix(up, "POLYGON"):
		b, ok := body("((", "))")
		if !ok {
			return Data{}, errors.New("wkt polygon: invalid")
		}
		// normalize spaces around ring separators
		rings := strings.ReplaceAll(b, "), (", "),(")
		rings = strings.ReplaceAll(rings, ") , (", "),(")
		for _, rp := range strings.Split(rings, "),(") {
			d.addRing(parseTuples(rp))
		}
	case strings.HasPrefix(up, "RECTANGLE"):
		b, ok := body("(", ")")
		if !ok {
			return Data{}, errors.New("wkt rectangle: invalid")
		}
		pts := parseTuples(b)
		if len(pts) != 2 {
			return Data{}, fmt.Errorf("wkt rectangle: want 2 corners, got %d", len(pts))
		}
		d.addRect(graphics.NewRectangle(pts[0], pts[1]))
	default:
		return Data{}, errors.New("unsupported wkt type")
	}
	if d.Empty() {
		return Data{}, errors.New("wkt: no coordinates parsed")
	}
	return d, nil
}

// parseTuples reads "x y, x y, ..." and skips tuples that are not integers.
func parseTuples(block string) []graphics.Point {
	var out []graphics.Point
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < 2 {
			continue
		}
		x, e1 := strconv.Atoi(parts[0])
		y, e2 := strconv.Atoi(parts[1])
		if e1 != nil || e2 != nil {
			continue
		}
		out = append(out, graphics.Pt(x, y))
	}
	return out
}

// LoadWKT reads a file holding one WKT geometry per line. Blank lines and
// lines starting with '#' are skipped.
func LoadWKT(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	var d Data
	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		g, err := ParseWKT(line)
		if err != nil {
			return Data{}, fmt.Errorf("%s:%d: %w", path, n, err)
		}
		d.Merge(g)
	}
	if err := sc.Err(); err != nil {
		return Data{}, err
	}
	if d.Empty() {
		return Data{}, errors.New("wkt: no geometries found")
	}
	return d, nil
}
