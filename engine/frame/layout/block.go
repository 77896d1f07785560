package layout

import (
	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/engine/frame"
	"github.com/npillmayer/cssbox/engine/style"
	"github.com/npillmayer/cssbox/engine/style/css"
)

// positionBlock sets location and width of a block-level box.
//
// The width is the content width of the containing block. An explicit
// width is resolved against it and denotes the border box, otherwise the
// box's horizontal margins are subtracted. Tables keep their width, it is
// computed by package table.
//
// The box is placed below its previous in-flow sibling, or at the top of
// its parent's content area, separated by the collapsed top margin.
// Boxes with position fixed are anchored at the origin.
func positionBlock(tree *frame.Tree, b *frame.Box) {
	cb := tree.ContainingBlock(b.ID())
	avail := cb.AvailableWidth()
	if !b.Display().Contains(frame.TableMode) {
		var w dimen.Dimen
		if b.HasExplicitWidth() {
			w = css.Resolve(b.Style(style.Width), avail, b.EmHeight())
		} else {
			w = avail - b.MarginLeft() - b.MarginRight()
		}
		if mw, ok := b.MaxWidth(avail); ok && w > mw {
			w = mw
		}
		b.SetWidth(dimen.Max(0, w))
	}
	if b.IsFixed() {
		b.SetCollapsedMarginTop(0)
		b.SetLocation(0, 0)
		return
	}
	x := cb.ClientLeft() + b.MarginLeft()
	m := collapseMarginTop(tree, b)
	var y dimen.Dimen
	if prev := tree.PreviousSibling(b.ID()); prev != nil {
		y = prev.ActualBottom() + m
	} else {
		y = b.Parent().ClientTop() + m
	}
	b.SetLocation(x, y)
}

// collapseMarginTop computes and stores the collapsed top margin of a
// block. The margin between siblings is the larger of both margins. The
// top margin of a first child collapses with its parent's top margin if
// neither has a top padding.
func collapseMarginTop(tree *frame.Tree, b *frame.Box) dimen.Dimen {
	own := b.MarginTop()
	if b.Kind == frame.Rule || b.Tag == "hr" {
		if own < 0.1 {
			own = b.EmHeight() * dimen.Dimen(params(tree).RuleFactor)
		}
	}
	m := own
	p := b.Parent()
	if prev := tree.PreviousSibling(b.ID()); prev != nil {
		m = dimen.Max(prev.MarginBottom(), own)
	} else if p != nil && b.PaddingTop() < 0.1 && p.PaddingTop() < 0.1 {
		m = dimen.Max(0, own-dimen.Max(p.MarginTop(), p.CollapsedMarginTop()))
	}
	b.SetCollapsedMarginTop(m)
	return m
}

// layoutBlockChildren lays out the children of a box as a stack of
// blocks. Runs of inline children are wrapped into anonymous blocks
// first. The bottom of the box is the lowest bottom of its children,
// including their bottom margins, plus bottom padding and border.
func layoutBlockChildren(tree *frame.Tree, b *frame.Box) {
	wrapInlineRuns(tree, b)
	bottom := b.ClientTop()
	for _, c := range b.ChildBoxes() {
		PerformLayout(tree, c.ID())
		if c.Display() == frame.DisplayNone || c.Position().IsOutOfFlow() {
			continue
		}
		bottom = dimen.Max(bottom, c.ActualBottom()+c.MarginBottom())
	}
	bottom += b.PaddingBottom() + b.BorderBottomWidth()
	if b.HasExplicitHeight() {
		h := b.Y() + b.ActualHeight()
		if b.ClipsOverflow() || bottom < h {
			bottom = h
		}
	}
	b.SetActualBottom(bottom)
	shrinkBlock(b)
}

// shrinkBlock narrows a box with an unconstrained width to the width of
// its children.
func shrinkBlock(b *frame.Box) {
	if b.ActualRight() < dimen.UnconstrainedLimit || b.ChildCount() == 0 {
		return
	}
	right := b.ClientLeft()
	for _, c := range b.ChildBoxes() {
		if c.Display() == frame.DisplayNone || c.IsFixed() || isInlineLevel(c) {
			continue
		}
		right = dimen.Max(right, c.ActualRight()+c.MarginRight())
	}
	b.SetActualRight(right + b.PaddingRight() + b.BorderRightWidth())
	tracer().Debugf("unconstrained %s shrinks to width %v", b, b.Width())
}

// wrapInlineRuns moves every run of inline children of a box with block
// children into an anonymous block box. Afterwards a box has either block
// children or inline children, never both.
func wrapInlineRuns(tree *frame.Tree, b *frame.Box) {
	children := b.ChildBoxes()
	hasBlocks := false
	for _, c := range children {
		if !isInlineLevel(c) {
			hasBlocks = true
			break
		}
	}
	if !hasBlocks {
		return
	}
	var anon *frame.Box
	for _, c := range children {
		if !isInlineLevel(c) {
			anon = nil
			continue
		}
		if anon == nil {
			anon = tree.NewBox(frame.Generic, "")
			anon.SetStyle(style.Display, "block")
			if err := tree.InsertChild(b.ID(), b.IndexOf(c.ID()), anon.ID()); err != nil {
				panic(err)
			}
		}
		if err := tree.AddChild(anon.ID(), c.ID()); err != nil {
			panic(err)
		}
	}
	tracer().Debugf("wrapped inline content of %s into anonymous blocks", b)
}
