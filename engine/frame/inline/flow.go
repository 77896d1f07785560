package inline

import (
	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/engine/frame"
	"github.com/npillmayer/cssbox/engine/style/css"
)

// FlowContext is the cursor state while flowing inline content.
type FlowContext struct {
	CurX, CurY  dimen.Dimen    // position of the next fragment
	StartX      dimen.Dimen    // left edge of lines
	LimitRight  dimen.Dimen    // right edge of lines
	LineSpacing dimen.Dimen    // extra space between lines
	Line        *frame.LineBox // current line
	MaxRight    dimen.Dimen    // rightmost fragment edge so far
	MaxBottom   dimen.Dimen    // lowest fragment edge so far
}

// Flow replaces the line boxes of a block with inline content. It places
// all fragments of the block's inline subtree and computes the bottom of
// the block. A block with an unconstrained width shrinks to its content.
func Flow(tree *frame.Tree, blockID frame.BoxID) {
	block := tree.Box(blockID)
	if block == nil {
		return
	}
	block.LineBoxes = nil
	startx := block.X() + block.PaddingLeft() + block.BorderLeftWidth()
	starty := block.Y() + block.PaddingTop() + block.BorderTopWidth()
	ctx := FlowContext{
		CurX:       startx + block.TextIndent(),
		CurY:       starty,
		StartX:     startx,
		LimitRight: block.ActualRight() - block.PaddingRight() - block.BorderRightWidth(),
		MaxRight:   startx,
		MaxBottom:  starty,
	}
	ctx.Line = tree.NewLineBox(blockID)
	ctx = flowBox(tree, block, block, ctx)
	if block.ActualRight() >= dimen.UnconstrainedLimit {
		block.SetActualRight(ctx.MaxRight + block.PaddingRight() + block.BorderRightWidth())
	}
	for _, line := range block.LineBoxes {
		alignHorizontally(tree, line)
		applyRightToLeft(tree, block, line)
		bubbleRectangles(tree, block, line)
		alignVertically(tree, line)
		line.AssignRectanglesToBoxes(tree)
	}
	block.SetActualBottom(ctx.MaxBottom + block.PaddingBottom() + block.BorderBottomWidth())
	if block.HasExplicitHeight() && block.ClipsOverflow() &&
		block.ActualBottom()-block.Y() > block.ActualHeight() {
		block.SetActualBottom(block.Y() + block.ActualHeight())
	}
	tracer().Debugf("flowed %s into %d lines, bottom at %v", block, len(block.LineBoxes), block.ActualBottom())
}

// leftSpacing returns margin, border and padding at the left of an inline
// box. Absolutely positioned boxes do not take space in the flow.
func leftSpacing(b *frame.Box) dimen.Dimen {
	if b.Position().IsOutOfFlow() {
		return 0
	}
	return b.MarginLeft() + b.BorderLeftWidth() + b.PaddingLeft()
}

func rightSpacing(b *frame.Box) dimen.Dimen {
	if b.Position().IsOutOfFlow() {
		return 0
	}
	return b.MarginRight() + b.BorderRightWidth() + b.PaddingRight()
}

// flowBox places the fragments of the children of box, recursing into
// children without fragments.
func flowBox(tree *frame.Tree, block, box *frame.Box, ctx FlowContext) FlowContext {
	startX, startY := ctx.CurX, ctx.CurY
	saved := ctx
	box.FirstHostingLine = ctx.Line.ID
	children := box.ChildBoxes()
	for _, b := range children {
		lspace, rspace := leftSpacing(b), rightSpacing(b)
		b.ResetRects()
		b.MeasureWords()
		ctx.CurX += lspace
		if words := b.Fragments(); len(words) > 0 {
			// an absolutely positioned box stays on the current line
			abs := b.Position() == css.PositionAbsolute
			placed := ctx
			ws := b.WhiteSpace()
			wrapNoWrap := false
			if ws == css.WSNoWrap && ctx.CurX > ctx.StartX {
				right := ctx.CurX
				for _, w := range words {
					right += w.FullWidth()
				}
				if right > ctx.LimitRight {
					wrapNoWrap = true
				}
			}
			if hasLeadingWhitespace(tree, b) {
				ctx.CurX += box.WordSpacing()
			}
			for i, w := range words {
				if ctx.MaxBottom-ctx.CurY < box.LineHeight() {
					ctx.MaxBottom += box.LineHeight() - (ctx.MaxBottom - ctx.CurY)
				}
				if !abs && ((ws.Wraps() && ctx.CurX+w.Width+rspace > ctx.LimitRight &&
					(ws != css.WSPreWrap || !w.IsSpaces())) || w.IsLineBreak() || wrapNoWrap) {
					wrapNoWrap = false
					ctx.CurX = ctx.StartX
					// a wrapped first child starts behind the parent's left decoration
					if b == children[0] && !w.IsLineBreak() && (i == 0 || (box.Parent() != nil && box.Parent().IsBlock())) {
						ctx.CurX += box.MarginLeft() + box.BorderLeftWidth() + box.PaddingLeft()
					}
					ctx.CurY = ctx.MaxBottom + ctx.LineSpacing
					ctx.Line = tree.NewLineBox(block.ID())
					if w.Image || i == 0 {
						ctx.CurX += lspace
					}
				}
				if i == 0 {
					b.FirstHostingLine = ctx.Line.ID
				}
				ctx.Line.ReportExistenceOf(w)
				w.Left, w.Top = ctx.CurX, ctx.CurY
				ctx.CurX = w.Left + w.FullWidth()
				ctx.MaxRight = dimen.Max(ctx.MaxRight, w.Right())
				ctx.MaxBottom = dimen.Max(ctx.MaxBottom, w.Bottom())
			}
			b.LastHostingLine = ctx.Line.ID
			if abs {
				ctx.CurX, ctx.MaxRight, ctx.MaxBottom = placed.CurX, placed.MaxRight, placed.MaxBottom
				adjustAbsolutePosition(tree, b, 0, 0)
			}
		} else {
			ctx = flowBox(tree, block, b, ctx)
		}
		ctx.CurX += rspace
	}
	if ctx.MaxBottom-startY < box.ActualHeight() {
		ctx.MaxBottom += box.ActualHeight() - (ctx.MaxBottom - startY)
	}
	if box.IsInline() {
		if w := ctx.CurX - startX; w >= 0 && w < box.ActualWidth() {
			ctx.CurX += box.ActualWidth() - w
			ctx.Line.SetRect(box.ID(), dimen.RectFromXYWH(startX, startY, box.ActualWidth(), box.ActualHeight()))
		}
	}
	if text, ok := box.Text(); ok && !box.IsImage() && box.IsInline() &&
		box.ChildCount() == 0 && !box.HasFragments() && isWhitespace(text) {
		ctx.CurX += box.WordSpacing()
	}
	if box.Position() == css.PositionAbsolute {
		ctx.CurX, ctx.MaxRight, ctx.MaxBottom = saved.CurX, saved.MaxRight, saved.MaxBottom
		adjustAbsolutePosition(tree, box, 0, 0)
	}
	box.LastHostingLine = ctx.Line.ID
	return ctx
}

// hasLeadingWhitespace is true for an inline box starting with white space
// which follows an inline sibling.
func hasLeadingWhitespace(tree *frame.Tree, b *frame.Box) bool {
	words := b.Fragments()
	if len(words) == 0 || words[0].Image || !words[0].SpaceBefore || !b.IsInline() {
		return false
	}
	sib := tree.PreviousSibling(b.ID())
	return sib != nil && sib.IsInline()
}

// adjustAbsolutePosition offsets the fragments of an absolutely positioned
// subtree by the margins of its boxes.
func adjustAbsolutePosition(tree *frame.Tree, box *frame.Box, left, top dimen.Dimen) {
	left += box.MarginLeft()
	top += box.MarginTop()
	if box.HasFragments() {
		for _, w := range box.Fragments() {
			w.Left += left
			w.Top += top
		}
		return
	}
	for _, c := range box.ChildBoxes() {
		adjustAbsolutePosition(tree, c, left, top)
	}
}

func isWhitespace(s string) bool {
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
		default:
			return false
		}
	}
	return true
}
