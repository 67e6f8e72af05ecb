package geom

import (
	"encoding/xml"
	"errors"
	"os"
	"strconv"
	"strings"

	"goraster/internal/graphics"
)

// LoadKML extracts Point and LineString placemarks from a KML file.
// Coordinates are "x,y[,z]" integer tuples; z is ignored.
func LoadKML(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}

	type kmlCoords struct {
		Coordinates string `xml:"coordinates"`
	}
	type kmlPlacemark struct {
		Point      *kmlCoords `xml:"Point"`
		LineString *kmlCoords `xml:"LineString"`
	}
	type kmlDoc struct {
		Placemarks []kmlPlacemark `xml:"Document>Placemark"`
		Top        []kmlPlacemark `xml:"Placemark"`
	}

	var doc kmlDoc
	if err := xml.Unmarshal(b, &doc); err != nil {
		return Data{}, err
	}
	var d Data
	for _, pm := range append(doc.Top, doc.Placemarks...) {
		switch {
		case pm.Point != nil:
			for _, p := range kmlTuples(pm.Point.Coordinates) {
				d.addPoint(p)
			}
		case pm.LineString != nil:
			if ls := kmlTuples(pm.LineString.Coordinates); len(ls) > 1 {
				d.addPath(ls)
			}
		}
	}
	if d.Empty() {
		return Data{}, errors.New("kml: no placemarks found")
	}
	return d, nil
}

// kmlTuples parses whitespace separated "x,y[,z]" tuples.
func kmlTuples(s string) []graphics.Point {
	var out []graphics.Point
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		x, err1 := strconv.Atoi(strings.TrimSpace(vals[0]))
		y, err2 := strconv.Atoi(strings.TrimSpace(vals[1]))
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, graphics.Pt(x, y))
	}
	return out
}
