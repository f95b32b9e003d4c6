// Package layout computes weight-proportional linear layouts.
//
// # Overview
//
// A [Stack] arranges an ordered list of [Subview] values along one main
// axis, giving each subview a share of the available space proportional to
// its weight, and aligns every subview on the perpendicular cross axis.
// Row stacks ([Row]) use the horizontal axis as the main axis and column
// stacks ([Column]) the vertical one; both run the same algorithm.
//
// Layout happens in two passes, both pure functions of their inputs:
//
//   - [Stack.SizeThatFits] reports the size the stack wants under a
//     [Proposal]. A constrained main axis is filled completely. An
//     unconstrained main axis is sized so that every weighted subview
//     receives at least its natural main-axis size.
//   - [Stack.PlaceSubviews] walks the subviews in order and calls
//     [Subview.Place] with each subview's origin and its main-axis share.
//
// # Weights
//
// Weights are looked up through a [Weighter] rather than stored on the
// subviews:
//
//	sidebar, content := newBox(120, 40), newBox(300, 40)
//	row := layout.Row(layout.WithWeights(layout.Weights{
//	    sidebar: 1,
//	    content: 3,
//	}))
//
// A subview without a weight weighs 0 and receives no main-axis space.
// When every weight is 0 the stack distributes nothing rather than
// dividing by zero.
//
// # Spacing
//
// Subviews are separated by a fixed gap. When a stack has no explicit
// spacing it uses [DefaultSpacing]: 8 between row subviews and 10 between
// column subviews.
package layout
