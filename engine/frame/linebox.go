package frame

import (
	"fmt"

	"github.com/npillmayer/cssbox/core/dimen"
)

// LineID identifies a line box. IDs are unique within a tree.
type LineID int32

// NoLine is the ID of no line at all.
const NoLine LineID = -1

// LineRect is the rectangle of a box on a line.
type LineRect struct {
	Line LineID
	Rect dimen.Rect
}

// LineBox is a line of inline content within a block. It holds the
// fragments placed on the line and, for every box contributing to the
// line, the bounding rectangle of that box on this line.
type LineBox struct {
	ID           LineID
	Owner        BoxID
	Words        []*Fragment
	RelatedBoxes []BoxID
	rects        map[BoxID]dimen.Rect
	rectOrder    []BoxID
}

// NewLineBox creates a line box and appends it to the lines of its owner.
func (t *Tree) NewLineBox(owner BoxID) *LineBox {
	lb := &LineBox{
		ID:    t.nextLine,
		Owner: owner,
		rects: make(map[BoxID]dimen.Rect),
	}
	t.nextLine++
	if b := t.Box(owner); b != nil {
		b.LineBoxes = append(b.LineBoxes, lb)
	}
	return lb
}

// ReportExistenceOf places a fragment on the line.
func (lb *LineBox) ReportExistenceOf(w *Fragment) {
	lb.Words = append(lb.Words, w)
	for _, id := range lb.RelatedBoxes {
		if id == w.Owner {
			return
		}
	}
	lb.RelatedBoxes = append(lb.RelatedBoxes, w.Owner)
}

// WordsOf returns the fragments of a box placed on this line.
func (lb *LineBox) WordsOf(id BoxID) []*Fragment {
	var words []*Fragment
	for _, w := range lb.Words {
		if w.Owner == id {
			words = append(words, w)
		}
	}
	return words
}

// Rect returns the rectangle of a box on this line.
func (lb *LineBox) Rect(id BoxID) (dimen.Rect, bool) {
	r, ok := lb.rects[id]
	return r, ok
}

// SetRect sets the rectangle of a box on this line.
func (lb *LineBox) SetRect(id BoxID, r dimen.Rect) {
	if _, ok := lb.rects[id]; !ok {
		lb.rectOrder = append(lb.rectOrder, id)
	}
	lb.rects[id] = r
}

// Boxes returns the boxes having a rectangle on this line, in the order
// their rectangles have been created.
func (lb *LineBox) Boxes() []BoxID {
	return lb.rectOrder
}

// ShiftRects moves all rectangles of this line horizontally.
func (lb *LineBox) ShiftRects(dx dimen.Dimen) {
	for id, r := range lb.rects {
		lb.rects[id] = r.Offset(dx, 0)
	}
}

// UpdateRectangle merges a rectangle (l, t, r, b) into the rectangle of a
// box on this line. The rectangle is expanded by border and padding of
// the box: left on the box's first line, right on its last line, top and
// bottom for all but images. Inline parents are updated as well.
func (lb *LineBox) UpdateRectangle(t *Tree, id BoxID, l, top, r, bottom dimen.Dimen) {
	box := t.Box(id)
	if box == nil {
		return
	}
	if box.FirstHostingLine == lb.ID || box.IsImage() {
		l -= box.BorderLeftWidth() + box.PaddingLeft()
	}
	if box.LastHostingLine == lb.ID || box.IsImage() {
		r += box.BorderRightWidth() + box.PaddingRight()
	}
	if !box.IsImage() {
		top -= box.BorderTopWidth() + box.PaddingTop()
		bottom += box.BorderBottomWidth() + box.PaddingBottom()
	}
	rect := dimen.RectFromLTRB(l, top, r, bottom)
	if old, ok := lb.rects[id]; ok {
		rect = old.Union(rect)
	}
	lb.SetRect(id, rect)
	if p := box.Parent(); p != nil && p.IsInline() {
		lb.UpdateRectangle(t, p.id, l, top, r, bottom)
	}
}

// AssignRectanglesToBoxes hands the rectangles of this line to their boxes.
func (lb *LineBox) AssignRectanglesToBoxes(t *Tree) {
	for _, id := range lb.rectOrder {
		if b := t.Box(id); b != nil {
			b.lineRects = append(b.lineRects, LineRect{Line: lb.ID, Rect: lb.rects[id]})
		}
	}
}

func (lb *LineBox) String() string {
	s := fmt.Sprintf("line#%d[", lb.ID)
	for i, w := range lb.Words {
		if i > 0 {
			s += " "
		}
		if w.Image {
			s += "[img]"
		} else {
			s += w.Text
		}
	}
	return s + "]"
}
