package boxtree_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/engine/frame"
	"github.com/npillmayer/cssbox/engine/frame/boxtree"
	"github.com/npillmayer/cssbox/engine/frame/layout"
	"github.com/npillmayer/cssbox/engine/glyphing/monospace"
	"github.com/npillmayer/cssbox/engine/style"
	"github.com/npillmayer/cssbox/engine/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func build(t *testing.T, doc string) *frame.Tree {
	h, err := html.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	tree, err := boxtree.BuildBoxTree(h, monospace.Measurer(10, nil), nil)
	require.NoError(t, err)
	require.NotNil(t, tree.Root())
	return tree
}

func first(t *testing.T, tree *frame.Tree, selector string) *frame.Box {
	b, err := boxtree.QueryFirst(tree, selector)
	require.NoError(t, err)
	require.NotNil(t, b, "no box for %q", selector)
	return b
}

var minihtml = `
<html><head>
<title>Mini</title>
<style>
  p.x { color: red; }
  #y { color: blue; }
  p { color: green; }
</style>
</head><body>
  <p class="x" id="y">Hello <b>World</b>!</p>
  <div style="display:none">gone</div>
  <p style="padding-left: 5px; position: fixed;">This is a test.</p>
</body>
`

func TestCSSAttributing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.boxtree")
	defer teardown()
	//
	tree := build(t, minihtml)
	root := tree.Root()
	assert.Equal(t, "body", root.Tag)
	assert.Equal(t, dimen.Dimen(8), root.MarginLeft())
	require.Equal(t, 2, root.ChildCount(), "display none and white space produce no boxes")
	p := root.Child(0)
	assert.Equal(t, style.Property("blue"), p.Style(style.Color), "id selector wins")
	assert.Equal(t, dimen.Dimen(16), p.MarginTop())
	assert.Equal(t, 3, p.ChildCount())
	b := first(t, tree, "b")
	text, ok := b.Text()
	assert.True(t, ok)
	assert.Equal(t, "World", text)
	assert.Equal(t, style.Property("bold"), b.Style(style.FontWeight))
	fixed := root.Child(1)
	assert.Equal(t, style.Property("green"), fixed.Style(style.Color))
	assert.Equal(t, dimen.Dimen(5), fixed.PaddingLeft())
	assert.True(t, fixed.IsFixed())
	titles, err := boxtree.Query(tree, "title")
	require.NoError(t, err)
	assert.Empty(t, titles)
}

func TestImportantDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.boxtree")
	defer teardown()
	//
	tree := build(t, `<style>p { color: green !important; background-color: red }</style>
		<p style="color: blue; background-color: yellow">x</p>`)
	p := first(t, tree, "p")
	assert.Equal(t, style.Property("green"), p.Style(style.Color))
	assert.Equal(t, style.Property("yellow"), p.Style(style.BackgroundColor))
}

func TestUnterminatedStyleAttribute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.boxtree")
	defer teardown()
	//
	tree := build(t, `<body><p style="display:none">a</p><p style="color: blue; margin-left: 7px">b</p>`+
		`<p style="  background-color: yellow ;  ">c</p></body>`)
	root := tree.Root()
	require.Equal(t, 2, root.ChildCount())
	p := root.Child(0)
	assert.Equal(t, style.Property("blue"), p.Style(style.Color))
	assert.Equal(t, dimen.Dimen(7), p.MarginLeft())
	assert.Equal(t, style.Property("yellow"), root.Child(1).Style(style.BackgroundColor))
}

func TestTableAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.boxtree")
	defer teardown()
	//
	tree := build(t, `<table cellspacing="3" cellpadding="4" border="1" width="200">
		<tr><td colspan="2" valign="top" align="right">a</td></tr></table>`)
	table := first(t, tree, "table")
	assert.True(t, table.Display().Contains(frame.TableMode))
	assert.Equal(t, style.Property("3px"), table.Style(style.BorderSpacing))
	assert.Equal(t, style.Property("200px"), table.Style(style.Width))
	assert.Equal(t, dimen.Dimen(1), table.BorderTopWidth())
	first(t, tree, "tbody")
	td := first(t, tree, "td")
	assert.Equal(t, dimen.Dimen(4), td.PaddingLeft())
	assert.Equal(t, dimen.Dimen(1), td.BorderLeftWidth())
	assert.Equal(t, 2, td.ColSpan())
	assert.Equal(t, css.VAlignTop, td.VerticalAlign())
	assert.Equal(t, css.AlignRight, td.TextAlign())
}

func TestReplacedElementsAndBreaks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.boxtree")
	defer teardown()
	//
	tree := build(t, `<p>one<br>two <img src="x.png" width="120" height="80"><hr size="3"></p>`)
	p := first(t, tree, "p")
	br := first(t, tree, "br")
	require.Len(t, br.Fragments(), 1)
	assert.True(t, br.Fragments()[0].IsLineBreak())
	img := first(t, tree, "img")
	assert.Equal(t, frame.Image, img.Kind)
	assert.Equal(t, style.Property("120px"), img.Style(style.Width))
	src, _ := img.Attr("src")
	assert.Equal(t, "x.png", src)
	assert.Equal(t, 0, img.ChildCount())
	hr := first(t, tree, "hr")
	assert.Equal(t, frame.Rule, hr.Kind)
	assert.Equal(t, style.Property("3px"), hr.Style(style.Height))
	assert.Equal(t, p, img.Parent())
}

func TestWhiteSpaceBetweenInlineElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.boxtree")
	defer teardown()
	//
	tree := build(t, "<body>\n  <p><b>a</b> <i>b</i></p>\n  <p>c</p>\n</body>")
	root := tree.Root()
	assert.Equal(t, 2, root.ChildCount())
	b, i := first(t, tree, "b"), first(t, tree, "i")
	text, _ := b.Text()
	assert.Equal(t, "a ", text)
	root.SetWidth(300)
	layout.PerformLayout(tree, root.ID())
	require.Len(t, i.Fragments(), 1)
	assert.Equal(t, dimen.Dimen(20), i.Fragments()[0].Left-b.Fragments()[0].Left)
}

func TestPreformattedText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.boxtree")
	defer teardown()
	//
	tree := build(t, "<pre>a  b\nc</pre>")
	pre := first(t, tree, "pre")
	require.Equal(t, 1, pre.ChildCount())
	anon := pre.Child(0)
	assert.Equal(t, "", anon.Tag)
	var texts []string
	for _, w := range anon.Fragments() {
		texts = append(texts, w.Text)
	}
	assert.Equal(t, []string{"a", "  ", "b", "\n", "c"}, texts)
}

func TestListsAndHeadings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.boxtree")
	defer teardown()
	//
	tree := build(t, `<h1>Title</h1><ol type="a"><li>x</li><li class="two">y</li><li>z</li></ol>`)
	h1 := first(t, tree, "h1")
	assert.Equal(t, dimen.Dimen(32), h1.FontSize())
	items, err := boxtree.Query(tree, "li")
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, li := range items {
		assert.True(t, li.Display().Contains(frame.ListItemMode))
		assert.Equal(t, style.Property("lower-alpha"), li.Style(style.ListStyleType))
	}
	assert.Equal(t, items[1], first(t, tree, "li.two"))
	assert.Equal(t, items[2], first(t, tree, "ol > li:nth-child(3)"))
	_, err = boxtree.Query(tree, "li[")
	assert.Error(t, err)
}

func TestBuildErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.boxtree")
	defer teardown()
	//
	_, err := boxtree.BuildBoxTree(nil, nil, nil)
	assert.ErrorIs(t, err, boxtree.ErrDOMRootIsNull)
	_, err = boxtree.BuildBoxTree(&html.Node{Type: html.DocumentNode}, nil, nil)
	assert.ErrorIs(t, err, boxtree.ErrNoBoxTreeCreated)
}
