package frame

import (
	"errors"
	"testing"

	"github.com/npillmayer/cssbox/core"
	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/engine/glyphing/monospace"
	"github.com/npillmayer/cssbox/engine/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTree() *Tree {
	return NewTree(monospace.Measurer(10, nil), nil)
}

func block(t *Tree, parent BoxID, tag string) *Box {
	b := t.NewBox(Generic, tag)
	b.SetStyle(style.Display, "block")
	if parent != NoBox {
		if err := t.AddChild(parent, b.ID()); err != nil {
			panic(err)
		}
	}
	return b
}

func TestTreeStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.frame")
	defer teardown()
	//
	tree := newTestTree()
	root := block(tree, NoBox, "body")
	div := block(tree, root.ID(), "div")
	p := block(tree, div.ID(), "p")
	assert.Equal(t, root, tree.Root())
	assert.Equal(t, div, p.Parent())
	assert.Equal(t, 0, div.IndexOf(p.ID()))
	err := tree.AddChild(p.ID(), root.ID())
	assert.True(t, errors.Is(err, ErrCyclicTree))
	err = tree.AddChild(p.ID(), p.ID())
	assert.True(t, errors.Is(err, ErrCyclicTree))
	img := tree.NewBox(Image, "img")
	require.NoError(t, tree.AddChild(p.ID(), img.ID()))
	assert.Equal(t, ErrReplacedElement, tree.AddChild(img.ID(), tree.NewBox(Generic, "").ID()))
	assert.Equal(t, div, tree.ContainingBlock(p.ID()))
	assert.Equal(t, root, tree.ContainingBlock(root.ID()))
	assert.Equal(t, p, tree.ContainingBlock(img.ID()))
}

func TestFragmentsXorChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.frame")
	defer teardown()
	//
	tree := newTestTree()
	root := block(tree, NoBox, "body")
	span := tree.NewBox(Generic, "span")
	require.NoError(t, tree.AddChild(root.ID(), span.ID()))
	require.NoError(t, tree.SetText(span.ID(), "hello world"))
	assert.Len(t, span.Fragments(), 2)
	em := tree.NewBox(Generic, "em")
	require.NoError(t, tree.AddChild(span.ID(), em.ID()))
	require.NoError(t, tree.SetText(root.ID(), "tail"))
	img := tree.NewBox(Image, "img")
	require.NoError(t, tree.AddChild(root.ID(), img.ID()))
	tree.Walk(root.ID(), func(b *Box) bool {
		if b.IsImage() {
			assert.Len(t, b.Fragments(), 1, "replaced element %s", b)
			assert.Equal(t, 0, b.ChildCount())
		} else {
			assert.False(t, b.HasFragments() && b.ChildCount() > 0, "box %s", b)
		}
		return true
	})
	assert.Len(t, span.Fragments(), 0)
	assert.Equal(t, 2, span.ChildCount())
	assert.Equal(t, 3, root.ChildCount())
}

type closer struct{ closed bool }

func (c *closer) Close() error {
	c.closed = true
	return nil
}

func TestDispose(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.frame")
	defer teardown()
	//
	tree := newTestTree()
	root := block(tree, NoBox, "body")
	div := block(tree, root.ID(), "div")
	img := tree.NewBox(Image, "img")
	require.NoError(t, tree.AddChild(div.ID(), img.ID()))
	handle := &closer{}
	require.NoError(t, tree.SetImageHandle(img.ID(), handle))
	tree.Dispose(div.ID())
	assert.True(t, handle.closed)
	assert.Nil(t, tree.Box(img.ID()))
	assert.Equal(t, 0, root.ChildCount())
	assert.Equal(t, 1, tree.Len())
}

func TestImageRefresh(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.frame")
	defer teardown()
	//
	tree := newTestTree()
	img := tree.NewBox(Image, "img")
	relayout := false
	tree.Refresh = func(needsRelayout bool) { relayout = needsRelayout }
	require.NoError(t, tree.SetImageSize(img.ID(), 40, 30))
	assert.True(t, relayout)
	assert.Equal(t, dimen.Size{W: 40, H: 30}, img.Replaced.Natural)
}

func TestInheritanceAndCaches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.frame")
	defer teardown()
	//
	tree := newTestTree()
	root := block(tree, NoBox, "body")
	p := block(tree, root.ID(), "p")
	root.SetStyle("font-size", "20px")
	root.SetStyle("margin", "5px")
	assert.Equal(t, dimen.Dimen(20), p.FontSize())
	assert.Equal(t, dimen.Dimen(0), p.MarginTop())
	p.SetStyle("margin-top", "1em")
	assert.Equal(t, dimen.Dimen(20), p.MarginTop())
	root.SetStyle("font-size", "10px")
	assert.Equal(t, dimen.Dimen(10), p.MarginTop(), "cache must be invalidated")
	p.SetStyle("padding-left", "10%")
	p.SetWidth(200)
	assert.Equal(t, dimen.Dimen(20), p.PaddingLeft())
	p.SetWidth(100)
	assert.Equal(t, dimen.Dimen(10), p.PaddingLeft())
	p.SetStyle("border-left-width", "3px")
	assert.Equal(t, dimen.Dimen(0), p.BorderLeftWidth(), "no border style")
	p.SetStyle("border-left-style", "solid")
	assert.Equal(t, dimen.Dimen(3), p.BorderLeftWidth())
	p.SetStyle("white-space", "inherit")
	root.SetStyle("white-space", "pre")
	assert.True(t, p.WhiteSpace().PreservesSpaces())
	assert.Equal(t, dimen.Dimen(10), p.WordSpacing())
}

func TestWhiteSpaceResplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.frame")
	defer teardown()
	//
	tree := newTestTree()
	root := block(tree, NoBox, "pre")
	require.NoError(t, tree.SetText(root.ID(), "a  b"))
	anon := root.Child(0)
	require.NotNil(t, anon)
	assert.Len(t, anon.Fragments(), 2)
	root.SetStyle("white-space", "pre")
	assert.Len(t, anon.Fragments(), 3)
	anon.MeasureWords()
	assert.Equal(t, dimen.Dimen(20), anon.Fragments()[1].Width)
}

func TestErrorLog(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.frame")
	defer teardown()
	//
	tree := newTestTree()
	elog := &ErrorLog{}
	tree.Reporter = elog
	tree.ReportError(core.ELAYOUT, "failed table layout", errors.New("boom"))
	require.Equal(t, 1, elog.Len())
	assert.Equal(t, core.ELAYOUT, core.Code(elog.Errors[0]))
	assert.Equal(t, "failed table layout", core.UserMessage(elog.Errors[0]))
}
