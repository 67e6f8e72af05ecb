package graphics

// Ascii renders on pixels as '@' and off pixels as '-', one line per row,
// without a trailing newline.
type Ascii struct{}

func (Ascii) Render(field [][]bool) string {
	return RenderField(field, Tokens{Filled: "@", Blank: "-", RowSep: "\n"})
}
