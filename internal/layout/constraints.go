package layout

import "fmt"

// BoxConstraints bounds the size a widget may choose during layout.
// A widget must return a size between Min and Max inclusive.
type BoxConstraints struct {
	Min Size
	Max Size
}

// Tight returns constraints that only admit exactly s.
func Tight(s Size) BoxConstraints {
	return BoxConstraints{Min: s, Max: s}
}

// Loose returns constraints from zero up to s.
func Loose(s Size) BoxConstraints {
	return BoxConstraints{Max: s}
}

// IsTight reports whether only a single size satisfies the constraints.
func (bc BoxConstraints) IsTight() bool {
	return bc.Min == bc.Max
}

// Loosen drops the minimum, keeping the maximum.
func (bc BoxConstraints) Loosen() BoxConstraints {
	return BoxConstraints{Max: bc.Max}
}

// Constrain clamps s into the constraints.
func (bc BoxConstraints) Constrain(s Size) Size {
	return Size{
		Width:  clamp(s.Width, bc.Min.Width, bc.Max.Width),
		Height: clamp(s.Height, bc.Min.Height, bc.Max.Height),
	}
}

// Shrink removes w columns and h rows from both bounds, never going below zero.
func (bc BoxConstraints) Shrink(w, h int) BoxConstraints {
	return BoxConstraints{
		Min: Size{Width: max(0, bc.Min.Width-w), Height: max(0, bc.Min.Height-h)},
		Max: Size{Width: max(0, bc.Max.Width-w), Height: max(0, bc.Max.Height-h)},
	}
}

// WithWidth fixes the width to w, clamped into the current bounds.
func (bc BoxConstraints) WithWidth(w int) BoxConstraints {
	w = clamp(w, bc.Min.Width, bc.Max.Width)
	bc.Min.Width, bc.Max.Width = w, w
	return bc
}

// WithHeight fixes the height to h, clamped into the current bounds.
func (bc BoxConstraints) WithHeight(h int) BoxConstraints {
	h = clamp(h, bc.Min.Height, bc.Max.Height)
	bc.Min.Height, bc.Max.Height = h, h
	return bc
}

func (bc BoxConstraints) String() string {
	return fmt.Sprintf("BoxConstraints(%s..%s)", bc.Min, bc.Max)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
