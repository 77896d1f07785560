package inline

import (
	"strings"

	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/engine/frame"
	"github.com/npillmayer/cssbox/engine/style/css"
	"github.com/npillmayer/uax/bidi"
	xbidi "golang.org/x/text/unicode/bidi"
)

// --- Horizontal alignment --------------------------------------------------

func alignHorizontally(tree *frame.Tree, line *frame.LineBox) {
	owner := tree.Box(line.Owner)
	switch owner.TextAlign() {
	case css.AlignRight:
		shiftLine(tree, owner, line, 1)
	case css.AlignCenter:
		shiftLine(tree, owner, line, 2)
	case css.AlignJustify:
		justify(owner, line)
	}
}

// shiftLine moves the fragments of a line to the right, by the free space
// at the end of the line divided by div.
func shiftLine(tree *frame.Tree, owner *frame.Box, line *frame.LineBox, div dimen.Dimen) {
	if len(line.Words) == 0 {
		return
	}
	last := line.Words[len(line.Words)-1]
	right := owner.ActualRight() - owner.PaddingRight() - owner.BorderRightWidth()
	diff := right - last.Right()
	if lastOwner := tree.Box(last.Owner); lastOwner != nil {
		diff -= lastOwner.BorderRightWidth() + lastOwner.PaddingRight()
	}
	diff /= div
	if diff <= 0 {
		return
	}
	for _, w := range line.Words {
		w.Left += diff
	}
	line.ShiftRects(diff)
}

// justify distributes the free space of a line evenly between its
// fragments, so that the last fragment ends at the right edge of the
// block. The last line of a block is not justified.
func justify(owner *frame.Box, line *frame.LineBox) {
	lines := owner.LineBoxes
	if len(lines) == 0 || line == lines[len(lines)-1] || len(line.Words) < 2 {
		return
	}
	indent := dimen.Dimen(0)
	if line == lines[0] {
		indent = owner.TextIndent()
	}
	textWidth := dimen.Dimen(0)
	for _, w := range line.Words {
		textWidth += w.Width
	}
	avail := owner.ClientRight() - owner.ClientLeft() - indent
	gap := (avail - textWidth) / dimen.Dimen(len(line.Words)-1)
	x := owner.ClientLeft() + indent
	for _, w := range line.Words {
		w.Left = x
		x = w.Right() + gap
	}
	tracer().Debugf("justified line %d with gaps of %v", line.ID, gap)
}

// --- Right to left ---------------------------------------------------------

// applyRightToLeft mirrors fragments of right-to-left text. If the block
// is rtl the whole line is mirrored, otherwise the span of fragments of
// every rtl box on the line. Runs of words in a right-to-left script are
// mirrored as well.
func applyRightToLeft(tree *frame.Tree, block *frame.Box, line *frame.LineBox) {
	if block.IsRTL() {
		mirror(line.Words)
		return
	}
	defer mirrorScriptRuns(tree, line)
	for _, id := range line.RelatedBoxes {
		b := tree.Box(id)
		if b == nil || !b.IsRTL() {
			continue
		}
		first, last := -1, -1
		for i, w := range line.Words {
			if w.Owner == id {
				if first < 0 {
					first = i
				}
				last = i
			}
		}
		if first > -1 && last > first {
			mirror(line.Words[first : last+1])
		}
	}
}

// mirrorScriptRuns resolves the bidi levels of the text of a line and
// mirrors every run of consecutive right-to-left words. Words of rtl boxes
// have been mirrored already and end a run.
func mirrorScriptRuns(tree *frame.Tree, line *frame.LineBox) {
	var text strings.Builder
	starts := make([]uint64, len(line.Words))
	for i, w := range line.Words {
		starts[i] = uint64(text.Len())
		text.WriteString(w.Text)
		text.WriteByte(' ')
	}
	if !hasStrongRTL(text.String()) {
		return
	}
	levels := bidi.ResolveParagraph(strings.NewReader(text.String()), nil)
	first := -1
	for i := 0; i <= len(line.Words); i++ {
		rtl := false
		if i < len(line.Words) {
			w := line.Words[i]
			owner := tree.Box(w.Owner)
			rtl = !w.Image && w.Text != "" && !w.IsSpaces() && (owner == nil || !owner.IsRTL()) &&
				levels.DirectionAt(starts[i]) == bidi.RightToLeft
		}
		if rtl && first < 0 {
			first = i
		} else if !rtl && first >= 0 {
			if i-first > 1 {
				tracer().Debugf("mirroring %d rtl words", i-first)
				mirror(line.Words[first:i])
			}
			first = -1
		}
	}
}

// hasStrongRTL is true if text contains a character of bidi class R or AL.
func hasStrongRTL(text string) bool {
	for _, r := range text {
		props, _ := xbidi.LookupRune(r)
		if c := props.Class(); c == xbidi.R || c == xbidi.AL {
			return true
		}
	}
	return false
}

func mirror(words []*frame.Fragment) {
	if len(words) == 0 {
		return
	}
	left, right := words[0].Left, words[len(words)-1].Right()
	for _, w := range words {
		w.Left = right - (w.Left - left) - w.Width
	}
}

// --- Rectangles ------------------------------------------------------------

// bubbleRectangles unites the rectangles of all fragments of a box on a
// line and merges them into the line's rectangles for the box and its
// inline ancestors.
func bubbleRectangles(tree *frame.Tree, box *frame.Box, line *frame.LineBox) {
	if !box.HasFragments() {
		for _, c := range box.ChildBoxes() {
			bubbleRectangles(tree, c, line)
		}
		return
	}
	words := line.WordsOf(box.ID())
	if len(words) == 0 {
		return
	}
	owner := tree.Box(line.Owner)
	parent := box.Parent()
	var r dimen.Rect
	for i, w := range words {
		left := w.Left
		// wrapped lines do not start with the parent's left decoration
		if parent != nil && parent.Child(0) == box && w == box.Fragments()[0] &&
			w == line.Words[0] && line != owner.LineBoxes[0] && !w.IsLineBreak() {
			left -= parent.MarginLeft() + parent.BorderLeftWidth() + parent.PaddingLeft()
		}
		wr := dimen.RectFromLTRB(left, w.Top, w.Right(), w.Bottom())
		if i == 0 {
			r = wr
		} else {
			r = r.Union(wr)
		}
	}
	line.UpdateRectangle(tree, box.ID(), r.Left(), r.Top(), r.Right(), r.Bottom())
}

// --- Vertical alignment ----------------------------------------------------

// alignVertically aligns the boxes of a line to a common baseline, which
// is the lowest top of all rectangles of the line. Sub- and superscripts
// are shifted relative to it. Other vertical-align values do not move
// anything.
func alignVertically(tree *frame.Tree, line *frame.LineBox) {
	boxes := line.Boxes()
	if len(boxes) == 0 {
		return
	}
	baseline := -dimen.Infinity
	for _, id := range boxes {
		r, _ := line.Rect(id)
		baseline = dimen.Max(baseline, r.Top())
	}
	for _, id := range boxes {
		b := tree.Box(id)
		if b == nil {
			continue
		}
		r, _ := line.Rect(id)
		switch b.VerticalAlign() {
		case css.VAlignSub:
			setBaseline(tree, line, b, baseline+r.Height()*0.5)
		case css.VAlignSuper:
			setBaseline(tree, line, b, baseline-r.Height()*0.2)
		case css.VAlignBaseline, css.VAlignLength:
			setBaseline(tree, line, b, baseline)
		}
	}
}

// setBaseline moves the fragments of a box on a line to a new baseline,
// keeping their distance to the top of the box's rectangle. The rectangle
// moves as well if it is lower than the rectangle of the parent.
func setBaseline(tree *frame.Tree, line *frame.LineBox, b *frame.Box, baseline dimen.Dimen) {
	r, ok := line.Rect(b.ID())
	if !ok {
		return
	}
	words := line.WordsOf(b.ID())
	gap := dimen.Dimen(0)
	if len(words) > 0 {
		gap = words[0].Top - r.Top()
	} else if w := firstWordOnLine(tree, b, line); w != nil {
		gap = w.Top - r.Top()
	}
	newTop := baseline - gap
	if p := b.Parent(); p != nil {
		if pr, ok := line.Rect(p.ID()); ok && r.Height() < pr.Height() {
			line.SetRect(b.ID(), r.Offset(0, newTop-gap-r.Top()))
		}
	}
	for _, w := range words {
		if !w.Image {
			w.Top = newTop
		}
	}
}

func firstWordOnLine(tree *frame.Tree, b *frame.Box, line *frame.LineBox) *frame.Fragment {
	if b.HasFragments() {
		for _, w := range line.Words {
			if w.Owner == b.ID() {
				return w
			}
		}
		return nil
	}
	for _, c := range b.ChildBoxes() {
		if w := firstWordOnLine(tree, c, line); w != nil {
			return w
		}
	}
	return nil
}
