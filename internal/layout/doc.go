// Package layout holds the cell geometry used by the widget tree:
// points, sizes, rectangles, edge insets, box constraints and the
// weighted split used by linear layouts.
//
// Types are re-exported through the root trui package for public consumption.
package layout
