package trui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawBorder(t *testing.T) {
	type tc struct {
		rect  Rect
		sides BorderSides
		kind  BorderKind
		want  string
	}

	tests := map[string]tc{
		"plain box": {
			rect: NewRect(0, 0, 4, 3), sides: BorderAll, kind: BorderPlain,
			want: "┌──┐\n│  │\n└──┘",
		},
		"rounded box": {
			rect: NewRect(0, 0, 3, 2), sides: BorderAll, kind: BorderRounded,
			want: "╭─╮\n╰─╯\n",
		},
		"double box": {
			rect: NewRect(0, 0, 3, 3), sides: BorderAll, kind: BorderDouble,
			want: "╔═╗\n║ ║\n╚═╝",
		},
		"offset": {
			rect: NewRect(1, 1, 3, 2), sides: BorderAll, kind: BorderThick,
			want: "\n ┏━┓\n ┗━┛",
		},
		"top only has no corners": {
			rect: NewRect(0, 0, 4, 3), sides: BorderTop, kind: BorderPlain,
			want: "────\n\n",
		},
		"left and bottom": {
			rect: NewRect(0, 0, 3, 3), sides: BorderLeft | BorderBottom, kind: BorderPlain,
			want: "│\n│\n└──",
		},
		"clipped by buffer": {
			rect: NewRect(2, 1, 5, 5), sides: BorderAll, kind: BorderPlain,
			want: "\n  ┌─\n  │",
		},
		"no sides": {
			rect: NewRect(0, 0, 4, 3), sides: 0, kind: BorderPlain,
			want: "\n\n",
		},
		"empty rect": {
			rect: NewRect(0, 0, 0, 3), sides: BorderAll, kind: BorderPlain,
			want: "\n\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := NewBuffer(4, 3)
			DrawBorder(buf, tt.rect, tt.sides, tt.kind, Style{})
			assert.Equal(t, tt.want, buf.StringTrimmed())
		})
	}
}

func TestBorderSides_Edges(t *testing.T) {
	assert.Equal(t, EdgeAll(1), BorderAll.Edges())
	assert.Equal(t, Edges{Top: 1, Left: 1}, (BorderTop | BorderLeft).Edges())
	assert.Equal(t, Edges{}, BorderSides(0).Edges())
}

func TestBorderKind_Chars(t *testing.T) {
	assert.Equal(t, '┌', BorderPlain.Chars().TopLeft)
	assert.Equal(t, '╯', BorderRounded.Chars().BottomRight)
	assert.Equal(t, '┃', BorderThick.Chars().Left)
	assert.Equal(t, '═', BorderDouble.Chars().Bottom)
	assert.Equal(t, BorderPlain.Chars(), BorderKind(99).Chars())
}
