package layout

import (
	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/engine/frame"
	"github.com/npillmayer/cssbox/engine/frame/table"
	"github.com/npillmayer/cssbox/engine/style"
	"github.com/npillmayer/cssbox/engine/style/css"
)

// --- Rules ------------------------------------------------------------------

// layoutRule sizes a horizontal rule. Its width is at least the width of
// its borders and paddings, and so is a width of table.NoMaxWidth or more.
// A rule is at least 2 high. A rule without any border style is drawn as
// a thin top and bottom border.
func layoutRule(tree *frame.Tree, b *frame.Box) {
	bare := true
	for _, key := range style.BorderStyles {
		if css.HasBorderStyle(b.Style(key)) {
			bare = false
		}
	}
	if bare {
		b.SetStyle("border-top", "1px solid")
		b.SetStyle("border-bottom", "1px solid")
	}
	minimum := b.BorderLeftWidth() + b.PaddingLeft() + b.PaddingRight() + b.BorderRightWidth()
	w := b.Width()
	if w >= table.NoMaxWidth {
		w = minimum
	}
	b.SetWidth(dimen.Max(w, minimum))
	h := dimen.Max(2, b.ActualHeight())
	h = dimen.Max(h, b.BorderTopWidth()+b.BorderBottomWidth())
	b.SetActualBottom(b.Y() + h)
}

// --- Replaced elements -------------------------------------------------------

// layoutReplaced places the image fragment of a block-level replaced
// element into its content area. Inline replaced elements are placed by
// inline flow. The height of the fragment includes vertical borders and
// paddings.
func layoutReplaced(b *frame.Box) {
	words := b.Fragments()
	if len(words) == 0 {
		b.SetActualBottom(b.ClientTop())
		return
	}
	img := words[0]
	if !b.Display().IsBlockLike() {
		return
	}
	img.Left = b.ClientLeft()
	img.Top = b.ClientTop()
	b.SetWidth(img.Width + b.BorderLeftWidth() + b.PaddingLeft() + b.PaddingRight() + b.BorderRightWidth())
	b.SetActualBottom(b.Y() + img.Height)
}

// --- List markers -----------------------------------------------------------

// layoutMarker creates the marker box of a list item, if its
// list-style-type is not none, and places it left of the item.
func layoutMarker(tree *frame.Tree, b *frame.Box) {
	lst := b.Style(style.ListStyleType)
	if lst.Is("none") {
		return
	}
	m := b.Marker()
	if m == nil {
		m = tree.NewMarker(b.ID(), frame.MarkerText(lst, tree.ListIndex(b.ID())))
	}
	m.MeasureWords()
	words := m.Fragments()
	if len(words) == 0 {
		return
	}
	w := words[0]
	w.Left = b.X() - w.Width - params(tree).MarkerGap
	w.Top = b.Y() + b.BorderTopWidth() + b.PaddingTop()
	m.SetLocation(w.Left, w.Top)
	m.SetWidth(w.Width)
	m.SetActualBottom(w.Bottom())
	tracer().Debugf("list marker %q for %s", w.Text, b)
}
