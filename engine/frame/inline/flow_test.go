package inline

import (
	"testing"

	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/engine/frame"
	"github.com/npillmayer/cssbox/engine/glyphing/monospace"
	"github.com/npillmayer/cssbox/engine/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// paragraph creates a block of width w at the origin, holding text.
// Every character is 10 wide, lines are 16 high.
func paragraph(t *testing.T, w dimen.Dimen, text string, styles ...string) (*frame.Tree, *frame.Box) {
	tree := frame.NewTree(monospace.Measurer(10, nil), nil)
	p := tree.NewBox(frame.Generic, "p")
	p.SetStyle("display", "block")
	for i := 0; i+1 < len(styles); i += 2 {
		p.SetStyle(styles[i], style.Property(styles[i+1]))
	}
	require.NoError(t, tree.SetText(p.ID(), text))
	p.SetLocation(0, 0)
	p.SetWidth(w)
	return tree, p
}

func wordsOf(line *frame.LineBox) []string {
	s := make([]string, len(line.Words))
	for i, w := range line.Words {
		s[i] = w.Text
	}
	return s
}

func TestFlowWrapsLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.inline")
	defer teardown()
	//
	tree, p := paragraph(t, 100, "aaaaaa bbbbbb")
	Flow(tree, p.ID())
	require.Len(t, p.LineBoxes, 2)
	assert.Equal(t, []string{"aaaaaa"}, wordsOf(p.LineBoxes[0]))
	assert.Equal(t, []string{"bbbbbb"}, wordsOf(p.LineBoxes[1]))
	second := p.LineBoxes[1].Words[0]
	assert.Equal(t, dimen.Dimen(0), second.Left)
	assert.Equal(t, dimen.Dimen(16), second.Top)
	assert.Equal(t, dimen.Dimen(32), p.ActualBottom())
	anon := p.Child(0)
	assert.Len(t, anon.LineRects(), 2)
}

func TestFlowForcedBreak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.inline")
	defer teardown()
	//
	tree, p := paragraph(t, 100, "a\nb", "white-space", "pre")
	Flow(tree, p.ID())
	require.Len(t, p.LineBoxes, 2)
	assert.Equal(t, []string{"\n", "b"}, wordsOf(p.LineBoxes[1]))
	assert.Equal(t, dimen.Dimen(0), p.LineBoxes[1].Words[1].Left)
}

func TestFlowAlignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.inline")
	defer teardown()
	//
	tree, p := paragraph(t, 100, "ab cd", "text-align", "right")
	Flow(tree, p.ID())
	words := p.LineBoxes[0].Words
	assert.Equal(t, dimen.Dimen(50), words[0].Left)
	assert.Equal(t, dimen.Dimen(80), words[1].Left)
	//
	tree, p = paragraph(t, 100, "ab cd", "text-align", "center")
	Flow(tree, p.ID())
	assert.Equal(t, dimen.Dimen(25), p.LineBoxes[0].Words[0].Left)
	//
	tree, p = paragraph(t, 100, "aa bb cc dd", "text-align", "justify")
	Flow(tree, p.ID())
	require.Len(t, p.LineBoxes, 2)
	words = p.LineBoxes[0].Words
	assert.Equal(t, dimen.Dimen(0), words[0].Left)
	assert.Equal(t, dimen.Dimen(40), words[1].Left)
	assert.Equal(t, dimen.Dimen(100), words[2].Right())
	assert.Equal(t, dimen.Dimen(0), p.LineBoxes[1].Words[0].Left, "last line is not justified")
}

func TestFlowRightToLeft(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.inline")
	defer teardown()
	//
	tree, p := paragraph(t, 100, "ab cd", "direction", "rtl")
	Flow(tree, p.ID())
	words := p.LineBoxes[0].Words
	assert.Equal(t, dimen.Dimen(30), words[0].Left)
	assert.Equal(t, dimen.Dimen(0), words[1].Left)
}

func TestFlowHebrewRunInLeftToRightText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.inline")
	defer teardown()
	//
	tree, p := paragraph(t, 200, "ab אב גד cd")
	Flow(tree, p.ID())
	words := p.LineBoxes[0].Words
	require.Len(t, words, 4)
	assert.Equal(t, dimen.Dimen(0), words[0].Left)
	assert.Equal(t, dimen.Dimen(30), words[2].Left, "second Hebrew word is left of the first")
	assert.Equal(t, dimen.Dimen(60), words[1].Left)
	assert.Equal(t, dimen.Dimen(90), words[3].Left)
	//
	tree, p = paragraph(t, 200, "ab cd ef")
	Flow(tree, p.ID())
	assert.Equal(t, dimen.Dimen(30), p.LineBoxes[0].Words[1].Left, "latin text keeps its order")
}

func TestFlowUnconstrained(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.inline")
	defer teardown()
	//
	tree, p := paragraph(t, dimen.Unconstrained, "abc def")
	Flow(tree, p.ID())
	assert.Len(t, p.LineBoxes, 1)
	assert.Equal(t, dimen.Dimen(70), p.ActualRight())
}

func TestInlineBoxRectangles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.inline")
	defer teardown()
	//
	tree := frame.NewTree(monospace.Measurer(10, nil), nil)
	p := tree.NewBox(frame.Generic, "p")
	p.SetStyle("display", "block")
	p.SetWidth(100)
	span := tree.NewBox(frame.Generic, "span")
	span.SetStyle("padding", "0 0 0 5px")
	require.NoError(t, tree.AddChild(p.ID(), span.ID()))
	require.NoError(t, tree.SetText(span.ID(), "ab"))
	Flow(tree, p.ID())
	w := span.Fragments()[0]
	assert.Equal(t, dimen.Dimen(5), w.Left)
	rects := span.LineRects()
	require.Len(t, rects, 1)
	assert.Equal(t, dimen.RectFromLTRB(0, 0, 25, 16), rects[0].Rect)
}

func TestFlowSubscript(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.inline")
	defer teardown()
	//
	tree := frame.NewTree(monospace.Measurer(10, nil), nil)
	p := tree.NewBox(frame.Generic, "p")
	p.SetStyle("display", "block")
	p.SetWidth(100)
	require.NoError(t, tree.SetText(p.ID(), "x"))
	sub := tree.NewBox(frame.Generic, "sub")
	sub.SetStyle("vertical-align", "sub")
	require.NoError(t, tree.AddChild(p.ID(), sub.ID()))
	require.NoError(t, tree.SetText(sub.ID(), "2"))
	Flow(tree, p.ID())
	assert.Equal(t, dimen.Dimen(0), p.Child(0).Fragments()[0].Top)
	assert.Equal(t, dimen.Dimen(8), sub.Fragments()[0].Top)
}

// spans creates a block of width w holding one inline box per text.
// Styles of span i are taken from styles[i], if present.
func spans(t *testing.T, w dimen.Dimen, texts []string, styles ...map[string]string) (*frame.Tree, *frame.Box, []*frame.Box) {
	tree := frame.NewTree(monospace.Measurer(10, nil), nil)
	p := tree.NewBox(frame.Generic, "p")
	p.SetStyle("display", "block")
	p.SetLocation(0, 0)
	p.SetWidth(w)
	boxes := make([]*frame.Box, len(texts))
	for i, text := range texts {
		span := tree.NewBox(frame.Generic, "span")
		if i < len(styles) {
			for k, v := range styles[i] {
				span.SetStyle(k, style.Property(v))
			}
		}
		require.NoError(t, tree.AddChild(p.ID(), span.ID()))
		require.NoError(t, tree.SetText(span.ID(), text))
		boxes[i] = span
	}
	return tree, p, boxes
}

func TestFlowNoWrapBox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.inline")
	defer teardown()
	//
	nowrap := map[string]string{"white-space": "nowrap"}
	tree, p, boxes := spans(t, 100, []string{"aaaa ", "bbb ccc"}, nil, nowrap)
	Flow(tree, p.ID())
	require.Len(t, p.LineBoxes, 2, "nowrap box does not fit behind aaaa")
	words := boxes[1].Fragments()
	require.Len(t, words, 2)
	assert.Equal(t, dimen.Dimen(0), words[0].Left)
	assert.Equal(t, dimen.Dimen(16), words[0].Top)
	assert.Equal(t, dimen.Dimen(40), words[1].Left)
	assert.Equal(t, dimen.Dimen(16), words[1].Top)
	//
	tree, p, boxes = spans(t, 50, []string{"bbb ccc"}, nowrap)
	Flow(tree, p.ID())
	assert.Len(t, p.LineBoxes, 1, "nowrap box at line start overflows")
	assert.Equal(t, dimen.Dimen(70), boxes[0].Fragments()[1].Right())
}

func TestFlowPreWrapSpaces(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.inline")
	defer teardown()
	//
	tree, p := paragraph(t, 50, "abcd     ef", "white-space", "pre-wrap")
	Flow(tree, p.ID())
	require.Len(t, p.LineBoxes, 2)
	assert.Equal(t, []string{"abcd", "     "}, wordsOf(p.LineBoxes[0]), "spaces hang over the line end")
	assert.Equal(t, []string{"ef"}, wordsOf(p.LineBoxes[1]))
	assert.Equal(t, dimen.Dimen(40), p.LineBoxes[0].Words[1].Left)
	assert.Equal(t, dimen.Dimen(0), p.LineBoxes[1].Words[0].Left)
}

func TestFlowAbsoluteInlineBox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.inline")
	defer teardown()
	//
	abs := map[string]string{"position": "absolute", "margin-left": "7px"}
	tree, p, boxes := spans(t, 100, []string{"aaaa ", "bbb ccc", "zz", " dd"},
		nil, map[string]string{"white-space": "nowrap"}, abs)
	Flow(tree, p.ID())
	require.Len(t, p.LineBoxes, 2, "absolute box takes no space in the line")
	zz := boxes[2].Fragments()[0]
	assert.Equal(t, dimen.Dimen(77), zz.Left, "absolute box is offset by its margin")
	assert.Equal(t, dimen.Dimen(16), zz.Top)
	dd := boxes[3].Fragments()[0]
	assert.Equal(t, dimen.Dimen(16), dd.Top)
	assert.True(t, dd.Left < 100, "dd follows ccc on the same line, left = %v", dd.Left)
	assert.Equal(t, dimen.Dimen(32), p.ActualBottom())
}
