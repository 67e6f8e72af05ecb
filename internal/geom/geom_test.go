package geom

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"goraster/internal/graphics"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestParseWKT(t *testing.T) {
	tests := []struct {
		wkt    string
		points []graphics.Point
		lines  []graphics.Line
		rects  []graphics.Rectangle
		bbox   BBox
	}{
		{
			wkt:    "POINT(3 4)",
			points: []graphics.Point{graphics.Pt(3, 4)},
			bbox:   BBox{3, 4, 3, 4},
		},
		{
			wkt:    "MULTIPOINT((1 2), (5 0))",
			points: []graphics.Point{graphics.Pt(1, 2), graphics.Pt(5, 0)},
			bbox:   BBox{1, 0, 5, 2},
		},
		{
			wkt: "linestring(0 0, 4 0, 4 3)",
			lines: []graphics.Line{
				graphics.NewLine(graphics.Pt(0, 0), graphics.Pt(4, 0)),
				graphics.NewLine(graphics.Pt(4, 0), graphics.Pt(4, 3)),
			},
			bbox: BBox{0, 0, 4, 3},
		},
		{
			wkt: "POLYGON((0 0, 2 0, 0 2))",
			lines: []graphics.Line{
				graphics.NewLine(graphics.Pt(0, 0), graphics.Pt(2, 0)),
				graphics.NewLine(graphics.Pt(2, 0), graphics.Pt(0, 2)),
				graphics.NewLine(graphics.Pt(0, 2), graphics.Pt(0, 0)),
			},
			bbox: BBox{0, 0, 2, 2},
		},
		{
			wkt:   "RECTANGLE(6 1, 2 5)",
			rects: []graphics.Rectangle{graphics.NewRectangle(graphics.Pt(2, 1), graphics.Pt(6, 5))},
			bbox:  BBox{2, 1, 6, 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.wkt, func(t *testing.T) {
			d, err := ParseWKT(tt.wkt)
			if err != nil {
				t.Fatalf("ParseWKT: %v", err)
			}
			if !slices.Equal(d.Points, tt.points) {
				t.Errorf("Points = %v, want %v", d.Points, tt.points)
			}
			if !slices.EqualFunc(d.Lines, tt.lines, graphics.Line.Equal) {
				t.Errorf("Lines = %v, want %v", d.Lines, tt.lines)
			}
			if !slices.EqualFunc(d.Rects, tt.rects, graphics.Rectangle.Equal) {
				t.Errorf("Rects = %v, want %v", d.Rects, tt.rects)
			}
			if d.BBox != tt.bbox {
				t.Errorf("BBox = %+v, want %+v", d.BBox, tt.bbox)
			}
		})
	}
}

func TestParseWKTErrors(t *testing.T) {
	for _, wkt := range []string{
		"",
		"POINT 3 4",
		"POINT(a b)",
		"LINESTRING(1 1)",
		"RECTANGLE(1 1, 2 2, 3 3)",
		"CIRCLE(0 0, 5)",
		"POLYGON((x y))",
	} {
		if _, err := ParseWKT(wkt); err == nil {
			t.Errorf("ParseWKT(%q) succeeded, want error", wkt)
		}
	}
}

func TestLoadWKT(t *testing.T) {
	p := writeFile(t, "shapes.wkt", "# frame\nRECTANGLE(0 0, 9 4)\n\nLINESTRING(0 0, 9 4)\nPOINT(12 7)\n")
	d, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(d.Rects) != 1 || len(d.Lines) != 1 || len(d.Points) != 1 {
		t.Fatalf("got %d rects, %d lines, %d points, want 1 each", len(d.Rects), len(d.Lines), len(d.Points))
	}
	if w, h := d.CanvasSize(); w != 13 || h != 8 {
		t.Errorf("CanvasSize() = %d, %d, want 13, 8", w, h)
	}
	if n := len(d.Shapes()); n != 3 {
		t.Errorf("len(Shapes()) = %d, want 3", n)
	}
}

func TestLoadWKTReportsLine(t *testing.T) {
	p := writeFile(t, "bad.wkt", "POINT(1 1)\nTRIANGLE(0 0)\n")
	_, err := LoadWKT(p)
	if err == nil || !strings.Contains(err.Error(), "bad.wkt:2") {
		t.Errorf("LoadWKT error = %v, want position bad.wkt:2", err)
	}
}

func TestParseGeoJSON(t *testing.T) {
	src := `{
	  "type": "FeatureCollection",
	  "features": [
	    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [1, 2]}},
	    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [1.5, 2]}},
	    {"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[0, 0], [3, 0], [3, 3]]}},
	    {"type": "Feature", "geometry": {"type": "Polygon", "coordinates": [[[0, 0], [4, 0], [4, 4], [0, 0]]]}}
	  ]
	}`
	d, err := ParseGeoJSON([]byte(src))
	if err != nil {
		t.Fatalf("ParseGeoJSON: %v", err)
	}
	if !slices.Equal(d.Points, []graphics.Point{graphics.Pt(1, 2)}) {
		t.Errorf("Points = %v, want [(1, 2)]", d.Points)
	}
	if len(d.Lines) != 5 {
		t.Errorf("len(Lines) = %d, want 5", len(d.Lines))
	}
	if d.BBox != (BBox{0, 0, 4, 4}) {
		t.Errorf("BBox = %+v", d.BBox)
	}
}

func TestParseGeoJSONBareGeometry(t *testing.T) {
	d, err := ParseGeoJSON([]byte(`{"type": "MultiPoint", "coordinates": [[0, 0], [2, 1]]}`))
	if err != nil {
		t.Fatalf("ParseGeoJSON: %v", err)
	}
	if len(d.Points) != 2 {
		t.Errorf("len(Points) = %d, want 2", len(d.Points))
	}
}

func TestParseGeoJSONErrors(t *testing.T) {
	for _, src := range []string{
		`not json`,
		`{"coordinates": [1, 2]}`,
		`{"type": "Point", "coordinates": [0.5, 1]}`,
	} {
		if _, err := ParseGeoJSON([]byte(src)); err == nil {
			t.Errorf("ParseGeoJSON(%s) succeeded, want error", src)
		}
	}
}

func TestLoadCSV(t *testing.T) {
	p := writeFile(t, "pts.csv", "name, X, Y\na, 1, 2\nb, 3, x\nc, 4, 0\n")
	d, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []graphics.Point{graphics.Pt(1, 2), graphics.Pt(4, 0)}
	if !slices.Equal(d.Points, want) {
		t.Errorf("Points = %v, want %v", d.Points, want)
	}
}

func TestLoadCSVMissingColumns(t *testing.T) {
	p := writeFile(t, "pts.csv", "lat,lon\n1,2\n")
	if _, err := LoadCSV(p); err == nil {
		t.Error("LoadCSV succeeded without x/y columns")
	}
}

func TestLoadKML(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark><Point><coordinates>3,4,0</coordinates></Point></Placemark>
    <Placemark><LineString><coordinates>0,0 5,0 5,5</coordinates></LineString></Placemark>
  </Document>
</kml>`
	d, err := Load(writeFile(t, "doc.kml", src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !slices.Equal(d.Points, []graphics.Point{graphics.Pt(3, 4)}) {
		t.Errorf("Points = %v", d.Points)
	}
	if len(d.Lines) != 2 {
		t.Errorf("len(Lines) = %d, want 2", len(d.Lines))
	}
}

func TestLoadUnsupported(t *testing.T) {
	if _, err := Load("shapes.shp"); err == nil {
		t.Error("Load(.shp) succeeded")
	}
	if Supported("a.shp") || !Supported("A.WKT") {
		t.Error("Supported() disagrees with Extensions")
	}
}

func TestBBoxRect(t *testing.T) {
	r := BBox{MinX: 1, MinY: 2, MaxX: 5, MaxY: 6}.Rect()
	if r.TopLeft() != graphics.Pt(1, 2) || r.BottomRight() != graphics.Pt(5, 6) {
		t.Errorf("Rect() = %v", r)
	}
}
