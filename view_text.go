package trui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"

	"github.com/trui-go/trui/internal/debug"
)

// TextOption configures a Text view.
type TextOption func(*textSpec)

type textSpec struct {
	text  string
	style Style
	wrap  bool
}

// WithTextStyle sets the style of every cell of the text.
func WithTextStyle(s Style) TextOption {
	return func(t *textSpec) { t.style = s }
}

// WithWrap breaks lines at word boundaries to fit the available width.
func WithWrap() TextOption {
	return func(t *textSpec) { t.wrap = true }
}

type textView[T, A any] struct {
	spec textSpec
}

// Text displays s. Escape sequences are stripped and newlines start a new
// row.
func Text[T, A any](s string, opts ...TextOption) View[T, A] {
	spec := textSpec{text: ansi.Strip(s)}
	for _, opt := range opts {
		opt(&spec)
	}
	return textView[T, A]{spec: spec}
}

func (v textView[T, A]) Build(cx *Cx) (Id, any, Widget) {
	return cx.NewId(), nil, &textWidget{spec: v.spec}
}

func (v textView[T, A]) Rebuild(cx *Cx, prev View[T, A], id *Id, state *any, w Widget) ChangeFlags {
	old := prev.(textView[T, A])
	tw := mustWidget[*textWidget](w)
	tw.spec = v.spec
	switch {
	case old.spec.text != v.spec.text || old.spec.wrap != v.spec.wrap:
		return ChangeLayout
	case old.spec.style != v.spec.style:
		return ChangePaint
	}
	return ChangeNone
}

func (v textView[T, A]) Message(path IdPath, state any, msg any, data *T) MessageResult[A] {
	return Stale[A](msg)
}

type textWidget struct {
	spec  textSpec
	lines []string
}

func (w *textWidget) Event(cx *EventCx, ev Event)                  {}
func (w *textWidget) Lifecycle(cx *LifecycleCx, ev LifecycleEvent) {}

func (w *textWidget) Layout(cx *LayoutCx, bc BoxConstraints) Size {
	text := w.spec.text
	if w.spec.wrap && bc.Max.Width > 0 {
		text = ansi.Wrap(text, bc.Max.Width, "")
	}
	w.lines = strings.Split(text, "\n")
	return bc.Constrain(measureLines(w.lines))
}

func (w *textWidget) Paint(cx *PaintCx) {
	paintLines(cx, w.lines, w.spec.style)
}

func measureLines(lines []string) Size {
	width := 0
	for _, l := range lines {
		width = max(width, StringWidth(l))
	}
	return Size{Width: width, Height: len(lines)}
}

func paintLines(cx *PaintCx, lines []string, style Style) {
	r := cx.Rect()
	for i, l := range lines {
		if i >= r.Height {
			break
		}
		cx.Buffer().SetStringClipped(r.X, r.Y+i, l, style, r)
	}
}

type markdownView[T, A any] struct {
	source string
}

// Markdown renders CommonMark source as plain styled text, wrapped to the
// available width.
func Markdown[T, A any](source string) View[T, A] {
	return markdownView[T, A]{source: source}
}

func (v markdownView[T, A]) Build(cx *Cx) (Id, any, Widget) {
	return cx.NewId(), nil, &markdownWidget{source: v.source}
}

func (v markdownView[T, A]) Rebuild(cx *Cx, prev View[T, A], id *Id, state *any, w Widget) ChangeFlags {
	if prev.(markdownView[T, A]).source == v.source {
		return ChangeNone
	}
	mw := mustWidget[*markdownWidget](w)
	mw.source = v.source
	mw.width = -1
	return ChangeLayout
}

func (v markdownView[T, A]) Message(path IdPath, state any, msg any, data *T) MessageResult[A] {
	return Stale[A](msg)
}

type markdownWidget struct {
	source string
	// width the lines were rendered for; -1 when stale.
	width int
	lines []string
}

func (w *markdownWidget) Event(cx *EventCx, ev Event)                  {}
func (w *markdownWidget) Lifecycle(cx *LifecycleCx, ev LifecycleEvent) {}

func (w *markdownWidget) Layout(cx *LayoutCx, bc BoxConstraints) Size {
	width := bc.Max.Width
	if w.lines == nil || w.width != width {
		w.lines = renderMarkdown(w.source, width)
		w.width = width
	}
	return bc.Constrain(measureLines(w.lines))
}

func (w *markdownWidget) Paint(cx *PaintCx) {
	paintLines(cx, w.lines, Style{})
}

func renderMarkdown(source string, width int) []string {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle("notty")}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	out, err := func() (string, error) {
		r, err := glamour.NewTermRenderer(opts...)
		if err != nil {
			return "", err
		}
		return r.Render(source)
	}()
	if err != nil {
		debug.Warnf("markdown: %v", err)
		out = source
	}
	lines := strings.Split(strings.Trim(ansi.Strip(out), "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}
