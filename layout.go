// layout.go re-exports geometry types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package trui

import "github.com/trui-go/trui/internal/layout"

// Point is a cell coordinate.
type Point = layout.Point

// Size is a width/height pair in cells.
type Size = layout.Size

// Rect is an axis aligned cell rectangle.
type Rect = layout.Rect

// Edges holds a cell count for each side of a box.
type Edges = layout.Edges

// BoxConstraints bounds the size a widget may choose during layout.
type BoxConstraints = layout.BoxConstraints

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical and horizontal values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// Tight returns constraints that only admit exactly s.
func Tight(s Size) BoxConstraints {
	return layout.Tight(s)
}

// Loose returns constraints from zero up to s.
func Loose(s Size) BoxConstraints {
	return layout.Loose(s)
}
