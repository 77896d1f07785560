package frame

import (
	"testing"

	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func listOf(tree *Tree, n int) (*Box, []*Box) {
	ol := block(tree, NoBox, "ol")
	items := make([]*Box, n)
	for i := range items {
		items[i] = tree.NewBox(Generic, "li")
		items[i].SetStyle("display", "list-item")
		_ = tree.AddChild(ol.ID(), items[i].ID())
	}
	return ol, items
}

func TestListIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.frame")
	defer teardown()
	//
	tree := newTestTree()
	ol, items := listOf(tree, 3)
	assert.Equal(t, 1, tree.ListIndex(items[0].ID()))
	assert.Equal(t, 3, tree.ListIndex(items[2].ID()))
	ol.SetAttr("reversed", "")
	idx := []int{}
	for _, li := range items {
		idx = append(idx, tree.ListIndex(li.ID()))
	}
	assert.Equal(t, []int{3, 2, 1}, idx)
	ol.SetAttr("start", "10")
	assert.Equal(t, 9, tree.ListIndex(items[1].ID()))
	ol.SetAttr("start", "x")
	assert.Equal(t, 1, tree.ListIndex(items[0].ID()))
}

func TestMarkerTexts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.frame")
	defer teardown()
	//
	assert.Equal(t, "•", MarkerText("disc", 1))
	assert.Equal(t, "3.", MarkerText("decimal", 3))
	assert.Equal(t, "03.", MarkerText("decimal-leading-zero", 3))
	assert.Equal(t, "", MarkerText("none", 3))
	assert.Equal(t, "aa.", MarkerText("lower-alpha", 27))
	assert.Equal(t, "Z", AlphaNumber(26, "upper-latin"))
	assert.Equal(t, "xiv", AlphaNumber(14, "lower-roman"))
	assert.Equal(t, "MCMXCIV", AlphaNumber(1994, "upper-roman"))
	assert.Equal(t, "γ", AlphaNumber(3, "lower-greek"))
	assert.Equal(t, "αα", AlphaNumber(25, "lower-greek"))
	assert.Equal(t, "ԺԱ", AlphaNumber(11, "armenian"))
	assert.Equal(t, "იბ", AlphaNumber(12, "georgian"))
	assert.Equal(t, "טו", AlphaNumber(15, "hebrew"))
	assert.Equal(t, "קכג", AlphaNumber(123, "hebrew"))
	assert.Equal(t, "い", AlphaNumber(2, "hiragana"))
	assert.Equal(t, "ろ", AlphaNumber(2, "hiragana-iroha"))
	assert.Equal(t, "アア", AlphaNumber(49, "katakana"))
}

func TestMarkerBox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.frame")
	defer teardown()
	//
	tree := newTestTree()
	_, items := listOf(tree, 2)
	m := tree.NewMarker(items[1].ID(), "2.")
	assert.Equal(t, m, tree.NewMarker(items[1].ID(), "other"))
	assert.Equal(t, items[1], m.Parent())
	assert.Equal(t, 0, items[1].ChildCount())
	m.MeasureWords()
	assert.Equal(t, dimen.Dimen(20), m.Fragments()[0].Width)
}

func TestLineBoxRectangles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.frame")
	defer teardown()
	//
	tree := newTestTree()
	p := block(tree, NoBox, "p")
	span := tree.NewBox(Generic, "span")
	span.SetStyle("padding", "2px")
	_ = tree.AddChild(p.ID(), span.ID())
	_ = tree.SetText(span.ID(), "ab cd")
	span.MeasureWords()
	line := tree.NewLineBox(p.ID())
	assert.Len(t, p.LineBoxes, 1)
	span.FirstHostingLine, span.LastHostingLine = line.ID, line.ID
	for _, w := range span.Fragments() {
		line.ReportExistenceOf(w)
	}
	assert.Equal(t, []BoxID{span.ID()}, line.RelatedBoxes)
	line.UpdateRectangle(tree, span.ID(), 0, 0, 50, 10)
	r, ok := line.Rect(span.ID())
	assert.True(t, ok)
	assert.Equal(t, dimen.RectFromLTRB(-2, -2, 52, 12), r)
	line.AssignRectanglesToBoxes(tree)
	assert.Equal(t, []LineRect{{Line: line.ID, Rect: r}}, span.LineRects())
}
