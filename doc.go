// Package trui is a reactive terminal UI runtime.
//
// An application is a view function over a data value. Every time the data
// may have changed, the view function produces a fresh, cheap tree of View
// values. The runtime diffs it against the previous tree and applies the
// differences to a long lived tree of widgets, each held in a Pod that
// caches its layout and tracks which passes it needs:
//
//	func view(d *Data) trui.View[Data, Action] {
//		return trui.VStack(
//			trui.OnClick(trui.Text[Data, Action](fmt.Sprint(d.Count)), func(d *Data) { d.Count++ }),
//		)
//	}
//
//	app, err := trui.New(&Data{}, view)
//	...
//	err = app.Run(ctx)
//
// Run drives two cooperating goroutines. The render loop owns the terminal
// and the widget tree: it reads input, routes events to widgets and paints
// frames. The logic task owns the data and the view tree: it runs the view
// function and delivers messages raised by widgets, addressed by IdPath, to
// the view nodes that registered handlers. Views that wait on async work,
// such as Defer, report pending Ids; the logic task holds the next frame for
// a short debounce window so that fast results skip the loading state.
package trui
