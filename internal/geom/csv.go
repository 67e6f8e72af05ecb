package geom

import (
	"encoding/csv"
	"errors"
	"os"
	"strconv"
	"strings"

	"goraster/internal/graphics"
)

// LoadCSV reads a CSV with x/y columns and returns one point per row.
// Column detection: x|col|column and y|row (case-insensitive).
func LoadCSV(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return Data{}, err
	}
	if len(recs) == 0 {
		return Data{}, errors.New("empty csv")
	}
	idxX, idxY := -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x", "col", "column":
			if idxX == -1 {
				idxX = i
			}
		case "y", "row":
			if idxY == -1 {
				idxY = i
			}
		}
	}
	if idxX == -1 || idxY == -1 {
		return Data{}, errors.New("csv: x/y columns not found")
	}
	var d Data
	for _, row := range recs[1:] {
		if idxX >= len(row) || idxY >= len(row) {
			continue
		}
		x, err1 := strconv.Atoi(strings.TrimSpace(row[idxX]))
		y, err2 := strconv.Atoi(strings.TrimSpace(row[idxY]))
		if err1 != nil || err2 != nil {
			continue
		}
		d.addPoint(graphics.Pt(x, y))
	}
	if d.Empty() {
		return Data{}, errors.New("csv: no valid points parsed")
	}
	return d, nil
}
