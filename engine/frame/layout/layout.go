package layout

import (
	"errors"
	"fmt"

	"github.com/npillmayer/cssbox/core"
	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/core/parameters"
	"github.com/npillmayer/cssbox/engine/frame"
	"github.com/npillmayer/cssbox/engine/frame/inline"
	"github.com/npillmayer/cssbox/engine/frame/table"
)

// PerformLayout lays out the subtree of box id. The root box keeps the
// location and width set by the caller. Laying out the root clears the
// tree's actual size first.
//
// Panics within the subtree of a box are reported to the tree's error
// reporter as core.ELAYOUT, leaving the box with partial geometry. The
// layout of its siblings is not affected. table.ErrUnresolvedColumn is
// not recovered.
func PerformLayout(tree *frame.Tree, id frame.BoxID) {
	b := tree.Box(id)
	if b == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok && errors.Is(err, table.ErrUnresolvedColumn) {
				panic(r)
			}
			msg := fmt.Sprintf("failed layout of %s", b)
			tree.ReportError(core.ELAYOUT, msg, core.ErrorFromPanic(r))
		}
	}()
	if b == tree.Root() {
		tree.ResetActualSize()
	}
	layoutBox(tree, b)
}

// Unconstrained lays out a tree at its natural width. The root is laid
// out twice: first at width dimen.Unconstrained, finding the width of
// its content, then at this width. It returns the size of the content.
func Unconstrained(tree *frame.Tree) dimen.Size {
	root := tree.Root()
	if root == nil {
		return dimen.Size{}
	}
	root.SetWidth(dimen.Unconstrained)
	PerformLayout(tree, root.ID())
	w := tree.ActualSize().W - root.X()
	tracer().Debugf("natural width of %s is %v", root, w)
	root.SetWidth(w)
	PerformLayout(tree, root.ID())
	return tree.ActualSize()
}

// cells lays out table cells and captions for package table.
type cells struct{}

func (cells) LayoutCell(tree *frame.Tree, id frame.BoxID) {
	PerformLayout(tree, id)
}

var _ table.CellLayouter = cells{}

func params(tree *frame.Tree) *parameters.LayoutParameters {
	if tree.Params == nil {
		return parameters.Defaults()
	}
	return tree.Params
}

// layoutBox lays out a single box and its subtree.
func layoutBox(tree *frame.Tree, b *frame.Box) {
	display := b.Display()
	if display == frame.DisplayNone {
		hide(b)
		return
	}
	b.MeasureWords()
	if b.Kind == frame.SpacingPlaceholder {
		return // positioned by table layout
	}
	if needsPositioning(tree, b) {
		positionBlock(tree, b)
	}
	switch {
	case b.Kind == frame.Rule:
		layoutRule(tree, b)
	case b.Kind.IsReplaced():
		layoutReplaced(b)
	case display.Contains(frame.TableMode):
		table.Layout(tree, b.ID(), cells{})
	case hasInlineContentOnly(b):
		inline.Flow(tree, b.ID())
		shrinkBlock(b)
	default:
		layoutBlockChildren(tree, b)
	}
	if display.Contains(frame.ListItemMode) {
		layoutMarker(tree, b)
	}
	b.SetHeight(b.ActualBottom() - b.Y())
	if !b.IsFixed() {
		right := b.ActualRight()
		if right >= dimen.UnconstrainedLimit {
			right = 0
		}
		tree.GrowActualSize(right, b.ActualBottom())
	}
	tracer().Debugf("laid out %s at %v, bottom = %v", b, b.BorderRect(), b.ActualBottom())
}

// needsPositioning is true for block-level boxes below the root, except
// for table cells and captions, which are positioned by their table.
func needsPositioning(tree *frame.Tree, b *frame.Box) bool {
	if b == tree.Root() || b.Parent() == nil {
		return false
	}
	d := b.Display()
	if d.Overlaps(frame.TableCellMode | frame.TableCaptionMode | frame.TableRowMode |
		frame.TableRowGroupMode | frame.TableHeaderMode | frame.TableFooterMode) {
		return false
	}
	return d.IsBlockLike() || b.Kind == frame.Rule
}

// hide collapses a box which is not displayed.
func hide(b *frame.Box) {
	x, y := dimen.Dimen(0), dimen.Dimen(0)
	if p := b.Parent(); p != nil {
		x, y = p.ClientLeft(), p.ClientTop()
	}
	b.ResetGeometry()
	b.SetLocation(x, y)
	b.SetActualBottom(y)
}

// hasInlineContentOnly is true for boxes with children, all of which are
// inline.
func hasInlineContentOnly(b *frame.Box) bool {
	if b.ChildCount() == 0 {
		return false
	}
	for _, c := range b.ChildBoxes() {
		if !isInlineLevel(c) {
			return false
		}
	}
	return true
}

// isInlineLevel is true for boxes flowed into lines. Rules are always
// block-level.
func isInlineLevel(b *frame.Box) bool {
	return b.IsInline() && b.Kind != frame.Rule
}
