package graphics

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

// Renderer turns a row-major pixel grid (field[y][x]) into text.
// Implementations must not modify field.
type Renderer interface {
	Render(field [][]bool) string
}

// Tokens are the per-format pieces of the shared grid traversal.
type Tokens struct {
	Filled string // pixel on
	Blank  string // pixel off
	RowSep string // appended after each row
}

// RenderField writes Filled or Blank for each pixel and RowSep after each
// row, then drops the trailing RowSep.
func RenderField(field [][]bool, t Tokens) string {
	var sb strings.Builder
	for _, row := range field {
		for _, on := range row {
			if on {
				sb.WriteString(t.Filled)
			} else {
				sb.WriteString(t.Blank)
			}
		}
		sb.WriteString(t.RowSep)
	}
	return strings.TrimSuffix(sb.String(), t.RowSep)
}

// Kind names a registered renderer.
type Kind string

// Built-in kinds.
const (
	KindAscii Kind = "ascii"
	KindHTML  Kind = "html"
)

// Factory creates a renderer instance.
type Factory func() Renderer

var (
	registryMu sync.RWMutex
	renderers  = make(map[Kind]Factory)
)

func init() {
	Register(KindAscii, func() Renderer { return Ascii{} })
	Register(KindHTML, func() Renderer { return HTML{} })
}

// Register makes a renderer available under kind. It is meant to be
// called from init, following the database/sql driver pattern:
//
//	func init() {
//	    graphics.Register("braille", func() graphics.Renderer { return Braille{} })
//	}
//
// Register panics if factory is nil or kind is already registered.
func Register(kind Kind, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("graphics: Register factory is nil")
	}
	if _, dup := renderers[kind]; dup {
		panic("graphics: Register called twice for " + string(kind))
	}
	renderers[kind] = factory
}

// NewRenderer creates a renderer of the given kind.
func NewRenderer(kind Kind) (Renderer, error) {
	registryMu.RLock()
	factory, ok := renderers[kind]
	registryMu.RUnlock()

	if !ok {
		Logger().Warn("graphics: unknown renderer", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("graphics: unknown renderer %q (forgotten import?)", kind)
	}
	return factory(), nil
}

// Kinds returns the registered renderer kinds in sorted order.
func Kinds() []Kind {
	registryMu.RLock()
	defer registryMu.RUnlock()

	kinds := make([]Kind, 0, len(renderers))
	for k := range renderers {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
