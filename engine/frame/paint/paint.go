package paint

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/npillmayer/cssbox/core"
	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/core/font"
	"github.com/npillmayer/cssbox/engine/frame"
	"github.com/npillmayer/cssbox/engine/style"
)

// Painter is a drawing surface.
//
// Text is positioned by the left end of its baseline. Clip regions form a
// stack: PushClip intersects the current region with a rectangle,
// PushClipExcluding subtracts a rectangle from it, and PopClip restores
// the region in effect before the last push.
type Painter interface {
	DrawRect(r dimen.Rect, c color.Color, fill bool)
	DrawLine(from, to dimen.Point, width dimen.Dimen, c color.Color)
	DrawText(text string, f font.Font, at dimen.Point, c color.Color)
	DrawImage(handle interface{}, r dimen.Rect)
	PushClip(r dimen.Rect)
	PushClipExcluding(r dimen.Rect)
	PopClip()
}

// PlaceholderColor is used to outline replaced elements without an image.
var PlaceholderColor = color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}

// Paint paints a laid-out box tree onto a painter.
func Paint(tree *frame.Tree, p Painter) {
	root := tree.Root()
	if root == nil {
		return
	}
	fixed := fixedBoxes(tree, root)
	for _, f := range fixed {
		p.PushClipExcluding(f.BorderRect())
	}
	w := walker{tree: tree, painter: p}
	w.paint(root)
	for range fixed {
		p.PopClip()
	}
	for _, f := range fixed {
		w.paint(f)
	}
	tracer().Debugf("painted %s with %d fixed boxes on top", root, len(fixed))
}

// fixedBoxes collects the displayed boxes with position fixed, outermost
// first.
func fixedBoxes(tree *frame.Tree, root *frame.Box) []*frame.Box {
	var fixed []*frame.Box
	tree.Walk(root.ID(), func(b *frame.Box) bool {
		if b.Display() == frame.DisplayNone {
			return false
		}
		if b != root && b.IsFixed() {
			fixed = append(fixed, b)
			return false
		}
		return true
	})
	return fixed
}

type walker struct {
	tree    *frame.Tree
	painter Painter
}

// paint paints a box and its descendants, except fixed descendants.
func (w walker) paint(b *frame.Box) {
	if b.Display() == frame.DisplayNone {
		return
	}
	clips := 0
	defer func() {
		for ; clips > 0; clips-- {
			w.painter.PopClip()
		}
		if r := recover(); r != nil {
			msg := fmt.Sprintf("failed painting %s", b)
			w.tree.ReportError(core.EPAINT, msg, core.ErrorFromPanic(r))
		}
	}()
	if b.IsVisible() {
		if b.IsInline() && !b.Kind.IsReplaced() {
			w.inlineBackground(b)
		} else {
			w.background(b)
			w.borders(b)
		}
		w.content(b)
		if m := b.Marker(); m != nil {
			w.text(m, b.Color())
		}
	}
	if b.ClipsOverflow() && !b.IsInline() {
		w.painter.PushClip(paddingBox(b))
		clips++
	}
	for _, c := range b.ChildBoxes() {
		if c.IsFixed() {
			continue // painted on top
		}
		w.paint(c)
	}
}

func (w walker) background(b *frame.Box) {
	if bg := b.BackgroundColor(); bg.A > 0 {
		w.painter.DrawRect(b.BorderRect(), bg, true)
	}
}

// inlineBackground paints the background of an inline box on every line
// it appears on.
func (w walker) inlineBackground(b *frame.Box) {
	bg := b.BackgroundColor()
	if bg.A == 0 {
		return
	}
	for _, lr := range b.LineRects() {
		w.painter.DrawRect(lr.Rect, bg, true)
	}
}

// borders paints each border side as a filled rectangle.
func (w walker) borders(b *frame.Box) {
	r := b.BorderRect()
	sides := [4]dimen.Rect{
		dimen.RectFromLTRB(r.Left(), r.Top(), r.Right(), r.Top()+b.BorderTopWidth()),
		dimen.RectFromLTRB(r.Right()-b.BorderRightWidth(), r.Top(), r.Right(), r.Bottom()),
		dimen.RectFromLTRB(r.Left(), r.Bottom()-b.BorderBottomWidth(), r.Right(), r.Bottom()),
		dimen.RectFromLTRB(r.Left(), r.Top(), r.Left()+b.BorderLeftWidth(), r.Bottom()),
	}
	for side, rect := range sides {
		if b.BorderWidth(side) > 0 && !rect.IsEmpty() {
			w.painter.DrawRect(rect, b.BorderColor(side), true)
		}
	}
}

func (w walker) content(b *frame.Box) {
	if b.Kind.IsReplaced() {
		for _, f := range b.Fragments() {
			if b.Replaced == nil || b.Replaced.Handle == nil {
				w.painter.DrawRect(f.Rect(), PlaceholderColor, false)
				continue
			}
			w.painter.DrawImage(b.Replaced.Handle, f.Rect())
		}
		return
	}
	w.text(b, b.Color())
}

// text paints the text fragments of a box, including text decoration.
func (w walker) text(b *frame.Box, c color.RGBA) {
	words := b.Fragments()
	if len(words) == 0 {
		return
	}
	f := b.Font()
	underline, strike := decoration(b)
	for _, word := range words {
		if word.Image || word.IsLineBreak() || word.IsSpaces() {
			continue
		}
		baseline := word.Top + f.Ascent()
		w.painter.DrawText(word.Text, f, dimen.Point{X: word.Left, Y: baseline}, c)
		right := word.Right()
		if word.SpaceAfter {
			right = word.Left + word.FullWidth()
		}
		if underline {
			y := baseline + f.UnderlineOffset()
			w.painter.DrawLine(dimen.Point{X: word.Left, Y: y}, dimen.Point{X: right, Y: y}, 1, c)
		}
		if strike {
			y := word.Top + word.Height/2
			w.painter.DrawLine(dimen.Point{X: word.Left, Y: y}, dimen.Point{X: right, Y: y}, 1, c)
		}
	}
}

// decoration finds text decorations of a box or of its inline ancestors,
// up to the enclosing block.
func decoration(b *frame.Box) (underline, strike bool) {
	for a := b; a != nil; a = a.Parent() {
		d := strings.ToLower(a.Style(style.TextDecoration).String())
		underline = underline || strings.Contains(d, "underline")
		strike = strike || strings.Contains(d, "line-through")
		if !a.IsInline() {
			break
		}
	}
	return
}

func paddingBox(b *frame.Box) dimen.Rect {
	return dimen.RectFromLTRB(
		b.X()+b.BorderLeftWidth(),
		b.Y()+b.BorderTopWidth(),
		b.ActualRight()-b.BorderRightWidth(),
		b.ActualBottom()-b.BorderBottomWidth(),
	)
}
