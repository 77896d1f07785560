package frame

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/core/font"
	"github.com/npillmayer/cssbox/core/parameters"
	"github.com/npillmayer/cssbox/engine/style"
)

// Errors for tree operations.
var (
	ErrNoSuchBox       = errors.New("no such box")
	ErrCyclicTree      = errors.New("box would become its own ancestor")
	ErrReplacedElement = errors.New("replaced elements cannot have children")
)

// RefreshFunc is called when content becomes available after layout,
// e.g. when an image has been loaded. If needsRelayout is true, the
// client has to run a complete new layout pass.
type RefreshFunc func(needsRelayout bool)

// Tree is an arena of boxes. All boxes of a tree are owned by the tree
// and addressed by their BoxID.
type Tree struct {
	boxes      []*Box
	root       BoxID
	nextLine   LineID
	actualSize dimen.Size
	Measurer   font.Measurer
	Reporter   ErrorReporter
	Refresh    RefreshFunc
	Params     *parameters.LayoutParameters
}

// NewTree creates an empty box tree. If measurer is nil, fonts are
// measured with a font.FaceMeasurer on the global font registry.
// If params is nil, default parameters are used.
func NewTree(measurer font.Measurer, params *parameters.LayoutParameters) *Tree {
	if params == nil {
		params = parameters.Defaults()
	}
	return &Tree{
		root:     NoBox,
		Measurer: measurer,
		Params:   params,
	}
}

func (t *Tree) measurer() font.Measurer {
	if t.Measurer == nil {
		t.Measurer = font.NewMeasurer(nil)
	}
	return t.Measurer
}

// NewBox creates a detached box. Replaced elements receive their image
// fragment, spacing placeholders their spacer data.
func (t *Tree) NewBox(kind Kind, tag string) *Box {
	b := &Box{
		tree:             t,
		id:               BoxID(len(t.boxes)),
		parent:           NoBox,
		Kind:             kind,
		Tag:              tag,
		props:            style.NewPropertyMap(),
		marker:           NoBox,
		FirstHostingLine: NoLine,
		LastHostingLine:  NoLine,
	}
	switch kind {
	case Image, Frame:
		b.Replaced = &ReplacedContent{}
		b.fragments = []*Fragment{{Owner: b.id, Image: true}}
	case SpacingPlaceholder:
		b.Spacer = &Spacer{Cell: NoBox}
	}
	t.boxes = append(t.boxes, b)
	if t.root == NoBox {
		t.root = b.id
	}
	return b
}

// NewAnonymousBox creates a detached, anonymous inline box holding text.
func (t *Tree) NewAnonymousBox(text string) *Box {
	b := t.NewBox(Generic, "")
	b.props.Set(style.Display, "inline")
	b.setText(text)
	return b
}

// Box returns the box for an ID, or nil.
func (t *Tree) Box(id BoxID) *Box {
	if id < 0 || int(id) >= len(t.boxes) {
		return nil
	}
	return t.boxes[id]
}

// Root returns the root box of a tree.
func (t *Tree) Root() *Box {
	return t.Box(t.root)
}

// SetRoot makes a box the root of the tree.
func (t *Tree) SetRoot(id BoxID) error {
	if t.Box(id) == nil {
		return ErrNoSuchBox
	}
	t.root = id
	return nil
}

// Len returns the number of live boxes.
func (t *Tree) Len() int {
	n := 0
	for _, b := range t.boxes {
		if b != nil {
			n++
		}
	}
	return n
}

// AddChild appends a box to the children of parent. A box with a
// different parent is moved.
func (t *Tree) AddChild(parent, child BoxID) error {
	return t.InsertChild(parent, -1, child)
}

// InsertChild inserts a child at a given position. A position < 0 or
// beyond the end appends the child.
func (t *Tree) InsertChild(parent BoxID, at int, child BoxID) error {
	p, c := t.Box(parent), t.Box(child)
	if p == nil || c == nil {
		return ErrNoSuchBox
	}
	if p.Kind.IsReplaced() {
		return ErrReplacedElement
	}
	for a := p; a != nil; a = a.Parent() {
		if a.id == child {
			return fmt.Errorf("%w: %s into %s", ErrCyclicTree, c, p)
		}
	}
	if p.hasText || len(p.fragments) > 0 {
		t.wrapText(p)
	}
	t.detach(c)
	c.parent = parent
	if at < 0 || at >= len(p.children) {
		p.children = append(p.children, child)
	} else {
		p.children = append(p.children, NoBox)
		copy(p.children[at+1:], p.children[at:])
		p.children[at] = child
	}
	if child == t.root {
		top := p
		for top.Parent() != nil {
			top = top.Parent()
		}
		t.root = top.id
	}
	c.reinherit()
	return nil
}

// reinherit refreshes everything a subtree inherits from its ancestors.
func (b *Box) reinherit() {
	b.actuals.reset()
	if b.hasText {
		b.splitText()
	}
	for _, c := range b.children {
		if child := b.tree.Box(c); child != nil {
			child.reinherit()
		}
	}
}

// RemoveChild detaches a box from its parent. The box is not disposed.
func (t *Tree) RemoveChild(child BoxID) error {
	c := t.Box(child)
	if c == nil {
		return ErrNoSuchBox
	}
	t.detach(c)
	return nil
}

func (t *Tree) detach(c *Box) {
	p := c.Parent()
	if p == nil {
		return
	}
	if i := p.IndexOf(c.id); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	c.parent = NoBox
}

// wrapText moves the text of a box into a new anonymous inline child.
func (t *Tree) wrapText(b *Box) {
	text := b.text
	b.text, b.hasText, b.fragments, b.measured = "", false, nil, false
	anon := t.NewAnonymousBox(text)
	anon.parent = b.id
	b.children = append(b.children, anon.id)
	anon.reinherit()
}

// SetText sets the text content of a box. Inline boxes without children
// hold the text fragments themselves, other boxes receive an anonymous
// inline child box for the text.
func (t *Tree) SetText(id BoxID, text string) error {
	b := t.Box(id)
	if b == nil {
		return ErrNoSuchBox
	}
	if b.Kind.IsReplaced() {
		return ErrReplacedElement
	}
	if b.IsInline() && len(b.children) == 0 {
		b.setText(text)
		return nil
	}
	anon := t.NewAnonymousBox(text)
	return t.AddChild(id, anon.id)
}

func (b *Box) setText(text string) {
	b.text, b.hasText = text, true
	b.splitText()
}

func (b *Box) splitText() {
	b.fragments = SplitWords(b.text, b.WhiteSpace(), b.WordBreak())
	for _, f := range b.fragments {
		f.Owner = b.id
	}
	b.measured = false
}

// SetImageHandle sets the painter's reference for a replaced element.
func (t *Tree) SetImageHandle(id BoxID, handle interface{}) error {
	b := t.Box(id)
	if b == nil || b.Replaced == nil {
		return ErrNoSuchBox
	}
	b.Replaced.Handle = handle
	return nil
}

// SetImageSize stores the natural size of a replaced element, usually
// after loading the image has finished. The refresh callback is invoked,
// requesting a new layout pass.
func (t *Tree) SetImageSize(id BoxID, w, h dimen.Dimen) error {
	b := t.Box(id)
	if b == nil || b.Replaced == nil {
		return ErrNoSuchBox
	}
	b.Replaced.Natural = dimen.Size{W: w, H: h}
	b.Replaced.HasNatural = true
	tracer().Infof("natural size of %s is %v x %v", b, w, h)
	if t.Refresh != nil {
		t.Refresh(true)
	}
	return nil
}

// Dispose removes a box and its subtree from the tree. Image handles
// implementing io.Closer are closed.
func (t *Tree) Dispose(id BoxID) {
	b := t.Box(id)
	if b == nil {
		return
	}
	t.detach(b)
	t.dispose(b)
	if id == t.root {
		t.root = NoBox
	}
}

func (t *Tree) dispose(b *Box) {
	for _, c := range b.children {
		if child := t.Box(c); child != nil {
			t.dispose(child)
		}
	}
	if m := b.Marker(); m != nil {
		t.dispose(m)
	}
	if b.Replaced != nil {
		if closer, ok := b.Replaced.Handle.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				tracer().Errorf("closing image of %s: %v", b, err)
			}
		}
		b.Replaced.Handle = nil
	}
	b.disposed = true
	b.children = nil
	t.boxes[b.id] = nil
}

// Walk visits a subtree in document order. If f returns false, the
// children of the box are skipped.
func (t *Tree) Walk(id BoxID, f func(*Box) bool) {
	b := t.Box(id)
	if b == nil {
		return
	}
	if !f(b) {
		return
	}
	for _, c := range b.children {
		t.Walk(c, f)
	}
}

// ContainingBlock returns the nearest ancestor which is a block,
// list-item, table or table-cell. The root is its own containing block.
func (t *Tree) ContainingBlock(id BoxID) *Box {
	b := t.Box(id)
	if b == nil {
		return nil
	}
	p := b.Parent()
	if p == nil {
		return b
	}
	for !p.Display().IsContainingBlock() && p.Parent() != nil {
		p = p.Parent()
	}
	return p
}

// PreviousSibling returns the previous in-flow sibling of a box.
// Siblings which are not displayed or positioned absolute or fixed are
// skipped.
func (t *Tree) PreviousSibling(id BoxID) *Box {
	b := t.Box(id)
	if b == nil {
		return nil
	}
	p := b.Parent()
	if p == nil {
		return nil
	}
	i := p.IndexOf(id)
	for i--; i >= 0; i-- {
		sib := p.Child(i)
		if sib == nil {
			continue
		}
		if sib.Display() != DisplayNone && !sib.Position().IsOutOfFlow() {
			return sib
		}
	}
	return nil
}

// IsLastChild is true if a box is the last child of its parent.
func (t *Tree) IsLastChild(id BoxID) bool {
	b := t.Box(id)
	if b == nil || b.Parent() == nil {
		return false
	}
	ch := b.Parent().children
	return ch[len(ch)-1] == id
}

// NewMarker creates the list marker box for a list item, if not already
// present. The marker inherits the item's styles but is not a child of it.
func (t *Tree) NewMarker(item BoxID, text string) *Box {
	b := t.Box(item)
	if b == nil {
		return nil
	}
	if m := b.Marker(); m != nil {
		return m
	}
	m := t.NewBox(Generic, "")
	m.props.Set(style.Display, "inline")
	m.parent = item
	m.setText(text)
	b.marker = m.id
	return m
}

// ActualSize returns the extent of all laid out content.
func (t *Tree) ActualSize() dimen.Size {
	return t.actualSize
}

// ResetActualSize clears the content extent, to be called before layout.
func (t *Tree) ResetActualSize() {
	t.actualSize = dimen.Size{}
}

// GrowActualSize widens the content extent to at least w x h.
func (t *Tree) GrowActualSize(w, h dimen.Dimen) {
	t.actualSize.W = dimen.Max(t.actualSize.W, w)
	t.actualSize.H = dimen.Max(t.actualSize.H, h)
}
