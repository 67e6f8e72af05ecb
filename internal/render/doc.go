// Package render registers additional canvas renderers with the graphics
// package. Import it for its side effects:
//
//	import _ "goraster/internal/render"
//
// Kinds registered: "braille", "styled", "svg".
package render
