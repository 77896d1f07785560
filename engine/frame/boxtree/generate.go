package boxtree

// This module should have knowledge about:
// - which kind of box to create for each HTML element
// - where text goes and which white space is significant

import (
	"errors"
	"strings"

	douceur "github.com/aymerick/douceur/css"
	"github.com/npillmayer/cssbox/core/font"
	"github.com/npillmayer/cssbox/core/parameters"
	"github.com/npillmayer/cssbox/engine/frame"
	"github.com/npillmayer/cssbox/engine/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var ErrDOMRootIsNull = errors.New("DOM root is null")
var ErrNoBoxTreeCreated = errors.New("no box tree created")

// BuildBoxTree creates a box tree from an HTML parse tree, as returned by
// html.Parse. The root of the box tree is the box for the body element,
// or for the document element if there is no body.
//
// Measurer and params are handed to frame.NewTree and may be nil.
func BuildBoxTree(doc *html.Node, measurer font.Measurer, params *parameters.LayoutParameters) (*frame.Tree, error) {
	if doc == nil {
		return nil, ErrDOMRootIsNull
	}
	top := findElement(doc, atom.Body)
	if top == nil {
		top = findElement(doc, atom.Html)
	}
	if top == nil {
		return nil, ErrNoBoxTreeCreated
	}
	tree := frame.NewTree(measurer, params)
	bld := newBuilder(doc, tree)
	root := bld.element(top, nil)
	if root == nil {
		tracer().Errorf("no box created for <%s>", top.Data)
		return nil, ErrNoBoxTreeCreated
	}
	if err := tree.SetRoot(root.ID()); err != nil {
		return nil, err
	}
	tracer().Infof("box tree for <%s> contains %d boxes", top.Data, tree.Len())
	return tree, nil
}

// builder creates boxes for elements, given the cascaded declarations.
type builder struct {
	tree *frame.Tree
	*cascade
}

func newBuilder(doc *html.Node, tree *frame.Tree) *builder {
	return &builder{
		tree:    tree,
		cascade: newCascade(doc),
	}
}

// element creates the box for an element and its subtree and appends it
// to parent. Elements with display none do not get a box.
func (bld *builder) element(n *html.Node, parent *frame.Box) *frame.Box {
	decls := bld.declarations(n)
	if displayOf(decls).Is("none") {
		tracer().Debugf("no box for <%s> with display = none", n.Data)
		return nil
	}
	box := bld.tree.NewBox(kindOf(n), n.Data)
	box.Source = n
	for _, d := range decls {
		box.SetStyle(strings.ToLower(d.Property), style.Property(d.Value))
	}
	if parent != nil {
		if err := bld.tree.AddChild(parent.ID(), box.ID()); err != nil {
			tracer().Errorf("cannot attach <%s>: %v", n.Data, err)
			return nil
		}
	}
	if n.DataAtom == atom.Br {
		box.SetStyle(style.WhiteSpace, "pre")
		_ = bld.tree.SetText(box.ID(), "\n")
		return box
	}
	if box.Kind.IsReplaced() {
		return box // fallback content is not rendered
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			bld.element(c, box)
		case html.TextNode:
			bld.text(c, box)
		}
	}
	return box
}

// text adds the text of a text node to parent. White space only text is
// dropped, unless white space is preserved or the text separates two
// inline elements. In the latter case a single space is appended to the
// text preceding it.
func (bld *builder) text(n *html.Node, parent *frame.Box) {
	text := n.Data
	if strings.TrimSpace(text) == "" && !parent.WhiteSpace().PreservesSpaces() {
		if !bld.isInline(n.PrevSibling) || !bld.isInline(n.NextSibling) {
			return
		}
		if last := parent.ChildCount() - 1; last >= 0 {
			if t := trailingText(parent.Child(last)); t != nil {
				s, _ := t.Text()
				_ = bld.tree.SetText(t.ID(), s+" ")
			}
		}
		return
	}
	if _, hasText := parent.Text(); hasText {
		anon := bld.tree.NewAnonymousBox(text)
		_ = bld.tree.AddChild(parent.ID(), anon.ID())
		return
	}
	if err := bld.tree.SetText(parent.ID(), text); err != nil {
		tracer().Errorf("cannot set text of %s: %v", parent, err)
	}
}

// isInline is true for text nodes and elements displayed inline.
func (bld *builder) isInline(n *html.Node) bool {
	if n == nil {
		return false
	}
	switch n.Type {
	case html.TextNode:
		return true
	case html.ElementNode:
		d := frame.ParseDisplay(displayOf(bld.declarations(n)))
		return d.IsInline() && n.DataAtom != atom.Hr
	}
	return false
}

// trailingText finds the inline box holding the last text within b.
func trailingText(b *frame.Box) *frame.Box {
	if b == nil || !b.IsInline() {
		return nil
	}
	if _, ok := b.Text(); ok {
		return b
	}
	if n := b.ChildCount(); n > 0 {
		return trailingText(b.Child(n - 1))
	}
	return nil
}

// kindOf maps replaced elements and rules to box kinds.
func kindOf(n *html.Node) frame.Kind {
	switch n.DataAtom {
	case atom.Img:
		return frame.Image
	case atom.Iframe, atom.Video, atom.Embed, atom.Object:
		return frame.Frame
	case atom.Hr:
		return frame.Rule
	}
	return frame.Generic
}

// displayOf returns the winning display declaration.
func displayOf(decls []*douceur.Declaration) style.Property {
	display := style.InitialValue(style.Display)
	for _, d := range decls {
		if strings.EqualFold(d.Property, style.Display) {
			display = style.Property(d.Value)
		}
	}
	return display
}

// findElement finds the first element of a given type, depth first.
func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if e := findElement(c, a); e != nil {
			return e
		}
	}
	return nil
}
