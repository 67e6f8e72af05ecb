package graphics

// HTMLHeader opens the document produced by the HTML renderer.
const HTMLHeader = `<!DOCTYPE html>
<html>
<head>
  <title>Rendered Canvas</title>
  <style type="text/css">
    .canvas {
      font-size: 1px;
      line-height: 1px;
    }
    .canvas * {
      display: inline-block;
      width: 10px;
      height: 10px;
      border-radius: 5px;
    }
    .canvas i {
      background-color: #eee;
    }
    .canvas b {
      background-color: #333;
    }
  </style>
</head>
<body>
  <div class="canvas">
`

// HTMLFooter closes the document produced by the HTML renderer.
const HTMLFooter = `
  </div>
</body>
</html>
`

// HTML renders each pixel as an inline element, <b> for on and <i> for
// off, with a <br> between rows.
type HTML struct{}

func (HTML) Render(field [][]bool) string {
	return HTMLHeader +
		RenderField(field, Tokens{Filled: "<b></b>", Blank: "<i></i>", RowSep: "<br>"}) +
		HTMLFooter
}
