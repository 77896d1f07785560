package frame

/*
BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"fmt"

	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/core/option"
	"github.com/npillmayer/cssbox/engine/style"
	"golang.org/x/net/html"
)

// BoxID addresses a box within a tree.
type BoxID int32

// NoBox is the ID of no box at all.
const NoBox BoxID = -1

// Kind tells how a box is laid out and painted.
type Kind uint8

// Box kinds. Image and Frame are replaced elements.
const (
	Generic            Kind = iota
	Image                   // <img>
	Rule                    // <hr>
	Frame                   // <iframe>, <video>
	SpacingPlaceholder      // synthetic table cell for row spans
)

func (k Kind) String() string {
	return [...]string{"generic", "image", "rule", "frame", "spacer"}[k]
}

// IsReplaced is true for images and frames.
func (k Kind) IsReplaced() bool {
	return k == Image || k == Frame
}

// For padding, margins, etc. 4-way values always start at the top and travel
// clockwise.
const (
	Top int = iota
	Right
	Bottom
	Left
)

// ReplacedContent is the content of a replaced element.
// Handle is an opaque reference for painters, e.g. an image.Image.
type ReplacedContent struct {
	Handle     interface{}
	Natural    dimen.Size
	HasNatural bool
}

// Spacer holds the data of a spacing placeholder: the cell spanning rows
// and the range of rows it spans (zero-based, inclusive).
type Spacer struct {
	Cell     BoxID
	StartRow int
	EndRow   int
}

// Box type, following the CSS box model.
type Box struct {
	tree     *Tree
	id       BoxID
	parent   BoxID
	children []BoxID
	Kind     Kind
	Tag      string     // lower-case element name, empty for anonymous boxes
	Source   *html.Node // originating element, if any
	Replaced *ReplacedContent
	Spacer   *Spacer
	props    *style.PropertyMap
	attrs    map[string]string
	actuals  actuals
	// geometry
	location     dimen.Point
	size         dimen.Size
	actualBottom dimen.Dimen
	collapsedTop option.Maybe[dimen.Dimen]
	// content
	text      string
	hasText   bool
	fragments []*Fragment
	measured  bool
	// lines
	LineBoxes        []*LineBox // line boxes of a block with inline content
	lineRects        []LineRect
	FirstHostingLine LineID
	LastHostingLine  LineID
	// bookkeeping
	marker          BoxID
	SpansNormalized bool // set by table layout
	disposed        bool
}

// ID returns the ID of a box within its tree.
func (b *Box) ID() BoxID {
	return b.id
}

// Tree returns the tree a box lives in.
func (b *Box) Tree() *Tree {
	return b.tree
}

// Parent returns the parent box or nil for the root.
func (b *Box) Parent() *Box {
	return b.tree.Box(b.parent)
}

// ParentID returns the ID of the parent box.
func (b *Box) ParentID() BoxID {
	return b.parent
}

// Children returns the IDs of the child boxes in document order.
// Clients must not modify the slice.
func (b *Box) Children() []BoxID {
	return b.children
}

// ChildCount returns the number of child boxes.
func (b *Box) ChildCount() int {
	return len(b.children)
}

// Child returns child #i or nil.
func (b *Box) Child(i int) *Box {
	if i < 0 || i >= len(b.children) {
		return nil
	}
	return b.tree.Box(b.children[i])
}

// ChildBoxes returns the child boxes in document order.
func (b *Box) ChildBoxes() []*Box {
	boxes := make([]*Box, 0, len(b.children))
	for _, c := range b.children {
		if child := b.tree.Box(c); child != nil {
			boxes = append(boxes, child)
		}
	}
	return boxes
}

// IndexOf returns the position of a child or -1.
func (b *Box) IndexOf(child BoxID) int {
	for i, c := range b.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Fragments returns the content fragments of a box.
func (b *Box) Fragments() []*Fragment {
	return b.fragments
}

// HasFragments is true if a box carries content fragments.
func (b *Box) HasFragments() bool {
	return len(b.fragments) > 0
}

// Text returns the source text of a box, if any.
func (b *Box) Text() (string, bool) {
	return b.text, b.hasText
}

// Attr returns an attribute, either set explicitly or taken from the
// source element.
func (b *Box) Attr(key string) (string, bool) {
	if v, ok := b.attrs[key]; ok {
		return v, true
	}
	if b.Source != nil {
		for _, a := range b.Source.Attr {
			if a.Namespace == "" && a.Key == key {
				return a.Val, true
			}
		}
	}
	return "", false
}

// SetAttr sets an attribute of a box.
func (b *Box) SetAttr(key, value string) {
	if b.attrs == nil {
		b.attrs = make(map[string]string)
	}
	b.attrs[key] = value
}

// IsImage is true for replaced elements.
func (b *Box) IsImage() bool {
	return b.Kind.IsReplaced()
}

// Marker returns the list marker box of a list item or nil.
func (b *Box) Marker() *Box {
	return b.tree.Box(b.marker)
}

func (b *Box) String() string {
	if b == nil {
		return "<nil box>"
	}
	name := b.Tag
	if name == "" {
		name = "anon"
	}
	return fmt.Sprintf("%s#%d[%s]", name, b.id, b.Display())
}

// --- Geometry --------------------------------------------------------------

// Location returns the top left corner of the box's border box.
func (b *Box) Location() dimen.Point {
	return b.location
}

// X returns the left edge of the border box.
func (b *Box) X() dimen.Dimen { return b.location.X }

// Y returns the top edge of the border box.
func (b *Box) Y() dimen.Dimen { return b.location.Y }

// SetLocation sets the top left corner of the box.
func (b *Box) SetLocation(x, y dimen.Dimen) {
	b.location = dimen.Point{X: x, Y: y}
}

// Size returns the size of the box.
func (b *Box) Size() dimen.Size {
	return b.size
}

// Width returns the width of the box.
func (b *Box) Width() dimen.Dimen { return b.size.W }

// Height returns the height of the box.
func (b *Box) Height() dimen.Dimen { return b.size.H }

// SetSize sets width and height of a box.
func (b *Box) SetSize(w, h dimen.Dimen) {
	b.SetWidth(w)
	b.size.H = h
}

// SetWidth sets the width of a box. Actual values which are relative to
// the width are invalidated if the width changes.
func (b *Box) SetWidth(w dimen.Dimen) {
	if b.size.W != w {
		b.actuals.resetWidthDependent()
	}
	b.size.W = w
}

// SetHeight sets the height of a box.
func (b *Box) SetHeight(h dimen.Dimen) {
	b.size.H = h
}

// ActualRight returns the right edge of the border box.
func (b *Box) ActualRight() dimen.Dimen {
	return b.location.X + b.size.W
}

// SetActualRight sets the right edge of a box, changing its width.
func (b *Box) SetActualRight(r dimen.Dimen) {
	b.SetWidth(r - b.location.X)
}

// ActualBottom returns the bottom edge of the border box.
func (b *Box) ActualBottom() dimen.Dimen {
	return b.actualBottom
}

// SetActualBottom sets the bottom edge of a box.
func (b *Box) SetActualBottom(y dimen.Dimen) {
	b.actualBottom = y
}

// ClientLeft returns the left edge of the content area.
func (b *Box) ClientLeft() dimen.Dimen {
	return b.location.X + b.BorderLeftWidth() + b.PaddingLeft()
}

// ClientTop returns the top edge of the content area.
func (b *Box) ClientTop() dimen.Dimen {
	return b.location.Y + b.BorderTopWidth() + b.PaddingTop()
}

// ClientRight returns the right edge of the content area.
func (b *Box) ClientRight() dimen.Dimen {
	return b.ActualRight() - b.PaddingRight() - b.BorderRightWidth()
}

// ClientBottom returns the bottom edge of the content area.
func (b *Box) ClientBottom() dimen.Dimen {
	return b.actualBottom - b.PaddingBottom() - b.BorderBottomWidth()
}

// ClientRect returns the content area of a box.
func (b *Box) ClientRect() dimen.Rect {
	return dimen.RectFromLTRB(b.ClientLeft(), b.ClientTop(), b.ClientRight(), b.ClientBottom())
}

// BorderRect returns the border box of a box.
func (b *Box) BorderRect() dimen.Rect {
	return dimen.RectFromLTRB(b.location.X, b.location.Y, b.ActualRight(), b.actualBottom)
}

// AvailableWidth is the width of a box minus its borders and paddings.
func (b *Box) AvailableWidth() dimen.Dimen {
	return b.size.W - b.BorderLeftWidth() - b.PaddingLeft() - b.PaddingRight() - b.BorderRightWidth()
}

// CollapsedMarginTop returns the top margin after margin collapsing.
// Unless layout has collapsed margins for the box, it is 0.
func (b *Box) CollapsedMarginTop() dimen.Dimen {
	return b.collapsedTop.OrElse(0)
}

// SetCollapsedMarginTop is called by layout.
func (b *Box) SetCollapsedMarginTop(m dimen.Dimen) {
	b.collapsedTop.Set(m)
}

// LineRects returns the per-line rectangles of an inline box, in line order.
func (b *Box) LineRects() []LineRect {
	return b.lineRects
}

// RectOnLine returns the rectangle of a box on a given line.
func (b *Box) RectOnLine(line LineID) (dimen.Rect, bool) {
	for _, lr := range b.lineRects {
		if lr.Line == line {
			return lr.Rect, true
		}
	}
	return dimen.Rect{}, false
}

// OffsetRectOnLine moves the rectangle of a box on a line vertically.
func (b *Box) OffsetRectOnLine(line LineID, dy dimen.Dimen) {
	for i, lr := range b.lineRects {
		if lr.Line == line {
			b.lineRects[i].Rect = lr.Rect.Offset(0, dy)
		}
	}
}

// ResetRects clears the per-line rectangles of a box.
func (b *Box) ResetRects() {
	b.lineRects = b.lineRects[:0]
}

// ResetGeometry clears location, size and lines of a box, keeping
// properties and content.
func (b *Box) ResetGeometry() {
	b.location = dimen.Origin
	b.SetSize(0, 0)
	b.actualBottom = 0
	b.collapsedTop.Reset()
	b.LineBoxes = nil
	b.ResetRects()
	b.FirstHostingLine, b.LastHostingLine = NoLine, NoLine
}
