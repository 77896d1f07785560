package frame

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/cssbox/core/dimen"
)

// Fragment is an atomic unit of inline content: a word of text or the
// placeholder of a replaced element.
type Fragment struct {
	Owner       BoxID  // box the fragment belongs to
	Text        string // empty for images
	Image       bool
	Left, Top   dimen.Dimen
	Width       dimen.Dimen
	Height      dimen.Dimen
	SpaceBefore bool // source text had white space before the fragment
	SpaceAfter  bool // source text had white space after the fragment
	spacing     dimen.Dimen
}

// Right returns the right edge of a fragment.
func (f *Fragment) Right() dimen.Dimen {
	return f.Left + f.Width
}

// Bottom returns the bottom edge of a fragment.
func (f *Fragment) Bottom() dimen.Dimen {
	return f.Top + f.Height
}

// Rect returns the rectangle of a fragment.
func (f *Fragment) Rect() dimen.Rect {
	return dimen.RectFromXYWH(f.Left, f.Top, f.Width, f.Height)
}

// FullWidth is the width of a fragment including trailing word spacing.
func (f *Fragment) FullWidth() dimen.Dimen {
	if f.SpaceAfter {
		return f.Width + f.spacing
	}
	return f.Width
}

// IsLineBreak is true for forced line breaks.
func (f *Fragment) IsLineBreak() bool {
	return f.Text == "\n"
}

// IsSpaces is true for fragments consisting of white space only.
func (f *Fragment) IsSpaces() bool {
	if f.Image || f.Text == "" {
		return false
	}
	return strings.TrimFunc(f.Text, unicode.IsSpace) == ""
}

func (f *Fragment) String() string {
	if f.Image {
		return fmt.Sprintf("[image %s]", f.Rect())
	}
	return fmt.Sprintf("%q %s", f.Text, f.Rect())
}

// MeasureWords measures the fragments of a box. Text is measured only
// if text or font changed since the last call. Line breaks have a width
// of 0. Replaced elements are sized every time, as their size may depend
// on the containing block.
func (b *Box) MeasureWords() {
	if b.Kind.IsReplaced() {
		b.measureReplaced()
		return
	}
	if b.measured || len(b.fragments) == 0 {
		return
	}
	f := b.Font()
	spacing := b.WordSpacing()
	m := b.tree.measurer()
	for _, w := range b.fragments {
		w.spacing = spacing
		if w.Image {
			continue
		}
		if w.IsLineBreak() {
			w.Width = 0
		} else {
			w.Width, _ = m.Measure(w.Text, f)
		}
		w.Height = f.Height()
	}
	b.measured = true
}
