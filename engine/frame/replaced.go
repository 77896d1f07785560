package frame

import (
	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/engine/style"
	"github.com/npillmayer/cssbox/engine/style/css"
)

// measureReplaced sizes the image fragment of a replaced element.
//
// Explicit pixel dimensions are taken as given, a percentage width is
// relative to the containing block. Otherwise the natural size is used,
// scaled proportionally if only one dimension is given. Without a
// natural size, images get a small placeholder size and frames a default
// size. The fragment's height includes vertical border and padding.
func (b *Box) measureReplaced() {
	if len(b.fragments) == 0 || b.Replaced == nil {
		return
	}
	w := b.fragments[0]
	natural, hasNatural := b.Replaced.Natural, b.Replaced.HasNatural
	if !hasNatural && b.Kind == Frame {
		natural, hasNatural = dimen.Size{W: b.tree.Params.FrameWidth, H: b.tree.Params.FrameHeight}, true
	}
	cbWidth := dimen.Dimen(0)
	if cb := b.tree.ContainingBlock(b.id); cb != nil {
		cbWidth = cb.Width()
	}
	width, _ := css.ParseLength(string(b.Style(style.Width)))
	height, _ := css.ParseLength(string(b.Style(style.Height)))
	hasWidth := width.Number > 0 && !width.IsRelative()
	hasHeight := height.Number > 0 && !height.IsRelative()
	scaleHeight := false
	switch {
	case hasWidth:
		w.Width = width.ToPixels(0, b.EmHeight())
	case width.Number > 0 && width.IsPercentage():
		w.Width = width.ToPixels(cbWidth, 0)
		scaleHeight = true
	case hasNatural:
		w.Width = natural.W
	case hasHeight:
		w.Width = height.ToPixels(0, b.EmHeight()) / 1.14
	default:
		w.Width = b.tree.Params.ImageWidth
	}
	if maxw, ok := b.MaxWidth(cbWidth); ok && maxw > 0 && w.Width > maxw {
		w.Width = maxw
		scaleHeight = !hasHeight
	}
	switch {
	case hasHeight:
		w.Height = height.ToPixels(0, b.EmHeight())
	case hasNatural:
		w.Height = natural.H
	case w.Width > 0:
		w.Height = w.Width * 1.14
	default:
		w.Height = 22.8
	}
	if hasNatural && natural.W > 0 && natural.H > 0 {
		if (hasWidth && !hasHeight) || scaleHeight {
			w.Height *= w.Width / natural.W
		} else if hasHeight && !hasWidth {
			w.Width *= w.Height / natural.H
		}
	}
	w.Height += b.BorderTopWidth() + b.PaddingTop() + b.PaddingBottom() + b.BorderBottomWidth()
	tracer().Debugf("replaced element %s sized %v x %v", b, w.Width, w.Height)
}
