package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"goraster/internal/graphics"
)

// refreshAttrs rebuilds the shape table from the current data
func (m *Model) refreshAttrs() {
	rows := m.shapeRows()
	if len(rows) == 0 {
		m.showAttrs = false
		m.status = "no shapes loaded"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "kind", Width: 6},
		{Title: "from", Width: 12},
		{Title: "to", Width: 12},
		{Title: "pixels", Width: 7},
	}
	// clear rows first so they never disagree with the columns
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

// shapeRows lists every shape with its canonical endpoints and the number
// of distinct pixels it covers.
func (m *Model) shapeRows() []table.Row {
	var rows []table.Row
	add := func(kind string, from, to graphics.Point, pixels int) {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", len(rows)+1), kind, from.String(), to.String(), fmt.Sprintf("%d", pixels),
		})
	}
	for _, p := range m.data.Points {
		add("point", p, p, 1)
	}
	for _, l := range m.data.Lines {
		add("line", l.From(), l.To(), len(l.Points()))
	}
	for _, r := range m.data.Rects {
		add("rect", r.TopLeft(), r.BottomRight(), rectPixels(r))
	}
	return rows
}

// rectPixels counts the outline pixels once, corners included.
func rectPixels(r graphics.Rectangle) int {
	seen := map[graphics.Point]struct{}{}
	for _, e := range r.Edges() {
		for _, p := range e.Points() {
			seen[p] = struct{}{}
		}
	}
	return len(seen)
}
