// Package tui is an interactive terminal preview of a shape set drawn on
// the integer canvas.
package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"goraster/internal/geom"
	"goraster/internal/graphics"
	"goraster/internal/render"
)

// Kinds are the renderers the preview cycles through; all of them are
// readable in a terminal.
var Kinds = []graphics.Kind{render.KindStyled, render.KindBraille, graphics.KindAscii}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	data geom.Data

	// renderer, index into Kinds
	kind int

	// last rendered map size
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showPoints bool
	showLines  bool
	showRects  bool

	// shape table
	showAttrs bool
	tbl       table.Model
}

func New() Model {
	m := Model{
		helpVisible: true,
		status:      "goraster ready",
		showPoints:  true,
		showLines:   true,
		showRects:   true,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, LINESTRING, POLYGON, RECTANGLE), one per line. Enter renders; Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(path string) Model {
	m := New()
	m.loadPath(path)
	return m
}

// NewWithData starts the preview on shapes that are already loaded.
func NewWithData(d geom.Data, kind graphics.Kind) Model {
	m := New()
	m.data = d
	for i, k := range Kinds {
		if k == kind {
			m.kind = i
		}
	}
	return m
}

// Kind returns the renderer currently in use.
func (m Model) Kind() graphics.Kind { return Kinds[m.kind] }

func (m Model) Init() tea.Cmd { return nil }

// Run starts the preview on the alternate screen.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
