package geom

import (
	"encoding/json"
	"errors"
	"math"
	"os"

	"goraster/internal/graphics"
)

// LoadGeoJSON reads a GeoJSON file with integral coordinates.
func LoadGeoJSON(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}
	return ParseGeoJSON(b)
}

// ParseGeoJSON walks a geometry, Feature or FeatureCollection.
// Point/MultiPoint become points, LineString/MultiLineString become one
// Line per segment, Polygon/MultiPolygon rings become closed outlines.
// Positions with fractional or missing coordinates are skipped.
func ParseGeoJSON(b []byte) (Data, error) {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return Data{}, err
	}
	var d Data
	parsePoint := func(v any) (graphics.Point, bool) {
		a, ok := v.([]any)
		if !ok || len(a) < 2 {
			return graphics.Point{}, false
		}
		x, xok := integral(a[0])
		y, yok := integral(a[1])
		if !xok || !yok {
			return graphics.Point{}, false
		}
		return graphics.Pt(x, y), true
	}
	parseArrayPoints := func(v any) ([]graphics.Point, bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		var pts []graphics.Point
		for _, el := range arr {
			if pt, ok := parsePoint(el); ok {
				pts = append(pts, pt)
			}
		}
		return pts, true
	}
	each := func(v any, fn func(any)) {
		if arr, ok := v.([]any); ok {
			for _, el := range arr {
				fn(el)
			}
		}
	}
	addPolygon := func(v any) {
		each(v, func(ring any) {
			if pts, ok := parseArrayPoints(ring); ok {
				d.addRing(pts)
			}
		})
	}
	var walkGeom func(g map[string]any)
	walkGeom = func(g map[string]any) {
		gt, _ := g["type"].(string)
		switch gt {
		case "Point":
			if pt, ok := parsePoint(g["coordinates"]); ok {
				d.addPoint(pt)
			}
		case "MultiPoint":
			if pts, ok := parseArrayPoints(g["coordinates"]); ok {
				for _, p := range pts {
					d.addPoint(p)
				}
			}
		case "LineString":
			if ls, ok := parseArrayPoints(g["coordinates"]); ok {
				d.addPath(ls)
			}
		case "MultiLineString":
			each(g["coordinates"], func(el any) {
				if ls, ok := parseArrayPoints(el); ok {
					d.addPath(ls)
				}
			})
		case "Polygon":
			addPolygon(g["coordinates"])
		case "MultiPolygon":
			each(g["coordinates"], addPolygon)
		case "GeometryCollection":
			each(g["geometries"], func(el any) {
				if gm, ok := el.(map[string]any); ok {
					walkGeom(gm)
				}
			})
		}
	}
	t, _ := raw["type"].(string)
	switch t {
	case "Feature":
		if g, ok := raw["geometry"].(map[string]any); ok {
			walkGeom(g)
		}
	case "FeatureCollection":
		each(raw["features"], func(f any) {
			if fm, ok := f.(map[string]any); ok {
				if g, ok := fm["geometry"].(map[string]any); ok {
					walkGeom(g)
				}
			}
		})
	case "":
		return Data{}, errors.New("invalid geojson: missing type")
	default:
		walkGeom(raw)
	}
	if d.Empty() {
		return Data{}, errors.New("no geometries found")
	}
	return d, nil
}

// integral converts a decoded JSON number that has no fractional part.
func integral(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
