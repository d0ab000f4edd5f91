package layout

import (
	"reflect"
	"testing"
)

func TestBoxConstraints_Constrain(t *testing.T) {
	type tc struct {
		bc   BoxConstraints
		in   Size
		want Size
	}

	tests := map[string]tc{
		"tight forces size": {
			bc:   Tight(Size{Width: 10, Height: 4}),
			in:   Size{Width: 2, Height: 20},
			want: Size{Width: 10, Height: 4},
		},
		"loose keeps smaller": {
			bc:   Loose(Size{Width: 10, Height: 4}),
			in:   Size{Width: 2, Height: 1},
			want: Size{Width: 2, Height: 1},
		},
		"loose clamps larger": {
			bc:   Loose(Size{Width: 10, Height: 4}),
			in:   Size{Width: 30, Height: 9},
			want: Size{Width: 10, Height: 4},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.bc.Constrain(tt.in); got != tt.want {
				t.Errorf("Constrain(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBoxConstraints_Shrink(t *testing.T) {
	bc := Tight(Size{Width: 10, Height: 5}).Shrink(2, 8)
	want := BoxConstraints{Min: Size{Width: 8}, Max: Size{Width: 8}}
	if bc != want {
		t.Errorf("Shrink() = %v, want %v", bc, want)
	}
	if !bc.IsTight() {
		t.Error("Shrink() of tight constraints should stay tight")
	}
}

func TestBoxConstraints_WithWidth(t *testing.T) {
	bc := Loose(Size{Width: 10, Height: 5}).WithWidth(40)
	if bc.Min.Width != 10 || bc.Max.Width != 10 {
		t.Errorf("WithWidth(40) = %v, want width clamped to 10", bc)
	}
	bc = Loose(Size{Width: 10, Height: 5}).WithHeight(3)
	if bc.Min.Height != 3 || bc.Max.Height != 3 || bc.Max.Width != 10 {
		t.Errorf("WithHeight(3) = %v", bc)
	}
}

func TestDistribute(t *testing.T) {
	type tc struct {
		total   int
		weights []float64
		want    []int
	}

	tests := map[string]tc{
		"even split": {
			total:   9,
			weights: []float64{1, 1, 1},
			want:    []int{3, 3, 3},
		},
		"remainder is spread": {
			total:   10,
			weights: []float64{1, 1, 1},
			want:    []int{3, 4, 3},
		},
		"proportional": {
			total:   12,
			weights: []float64{1, 2, 3},
			want:    []int{2, 4, 6},
		},
		"zero weight gets nothing": {
			total:   8,
			weights: []float64{0, 1, 1},
			want:    []int{0, 4, 4},
		},
		"no weights": {
			total:   8,
			weights: []float64{0, 0},
			want:    []int{0, 0},
		},
		"no space": {
			total:   0,
			weights: []float64{1, 2},
			want:    []int{0, 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Distribute(tt.total, tt.weights)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Distribute(%d, %v) = %v, want %v", tt.total, tt.weights, got, tt.want)
			}
		})
	}
}
