package paint_test

import (
	"image/color"
	"testing"

	"github.com/npillmayer/cssbox/backend/gfx"
	"github.com/npillmayer/cssbox/core"
	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/core/font"
	"github.com/npillmayer/cssbox/engine/frame"
	"github.com/npillmayer/cssbox/engine/frame/layout"
	"github.com/npillmayer/cssbox/engine/frame/paint"
	"github.com/npillmayer/cssbox/engine/glyphing/monospace"
	"github.com/npillmayer/cssbox/engine/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func document(t *testing.T) (*frame.Tree, *frame.Box) {
	tree := frame.NewTree(monospace.Measurer(10, nil), nil)
	root := tree.NewBox(frame.Generic, "body")
	root.SetStyle(style.Display, "block")
	root.SetWidth(200)
	return tree, root
}

func add(t *testing.T, tree *frame.Tree, parent *frame.Box, tag, display, text string) *frame.Box {
	b := tree.NewBox(frame.Generic, tag)
	b.SetStyle(style.Display, style.Property(display))
	require.NoError(t, tree.AddChild(parent.ID(), b.ID()))
	if text != "" {
		require.NoError(t, tree.SetText(b.ID(), text))
	}
	return b
}

func TestBackgroundBordersAndText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.paint")
	defer teardown()
	//
	tree, root := document(t)
	div := add(t, tree, root, "div", "block", "hi there")
	div.SetStyle(style.BackgroundColor, "yellow")
	div.SetStyle("border", "2px solid blue")
	layout.PerformLayout(tree, root.ID())
	rec := gfx.NewRecorder()
	paint.Paint(tree, rec)
	rects := rec.OpsOf(gfx.OpRect)
	require.Len(t, rects, 5)
	assert.Equal(t, div.BorderRect(), rects[0].Rect)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, A: 0xff}, rects[0].Color)
	assert.True(t, rects[0].Fill)
	top := rects[1].Rect
	assert.Equal(t, dimen.Dimen(2), top.Height())
	assert.Equal(t, dimen.Dimen(200), top.Width())
	assert.Equal(t, []string{"hi", "there"}, rec.Texts())
	texts := rec.OpsOf(gfx.OpText)
	words := div.Child(0).Fragments()
	assert.Equal(t, words[0].Top+dimen.Dimen(16)*3/5, texts[0].From.Y, "text is placed at its baseline")
}

func TestHiddenBoxesAreNotDrawn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.paint")
	defer teardown()
	//
	tree, root := document(t)
	p := add(t, tree, root, "p", "block", "")
	add(t, tree, p, "span", "inline", "seen ")
	hidden := add(t, tree, p, "span", "inline", "unseen ")
	hidden.SetStyle(style.Visibility, "hidden")
	inner := add(t, tree, hidden, "b", "inline", "again")
	inner.SetStyle(style.Visibility, "visible")
	add(t, tree, root, "div", "none", "gone")
	layout.PerformLayout(tree, root.ID())
	rec := gfx.NewRecorder()
	paint.Paint(tree, rec)
	assert.Equal(t, []string{"seen", "again"}, rec.Texts())
}

func TestOverflowClipping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.paint")
	defer teardown()
	//
	tree, root := document(t)
	box := add(t, tree, root, "div", "block", "")
	box.SetStyle("border", "1px solid black")
	box.SetStyle(style.Height, "20px")
	box.SetStyle(style.Overflow, "hidden")
	add(t, tree, box, "p", "block", "one two three four five six seven eight nine ten")
	layout.PerformLayout(tree, root.ID())
	rec := gfx.NewRecorder()
	paint.Paint(tree, rec)
	clips := rec.OpsOf(gfx.OpPushClip)
	require.Len(t, clips, 1)
	assert.Equal(t, dimen.RectFromLTRB(1, 1, 199, 19), clips[0].Rect)
	for _, op := range rec.OpsOf(gfx.OpText) {
		assert.Equal(t, 1, op.Depth, "text is clipped")
	}
	assert.Equal(t, 0, rec.Depth())
}

func TestFixedBoxesArePaintedLast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.paint")
	defer teardown()
	//
	tree, root := document(t)
	fixed := add(t, tree, root, "div", "block", "banner")
	fixed.SetStyle(style.Position, "fixed")
	fixed.SetStyle(style.Width, "100px")
	add(t, tree, root, "p", "block", "content")
	layout.PerformLayout(tree, root.ID())
	rec := gfx.NewRecorder()
	paint.Paint(tree, rec)
	require.NotEmpty(t, rec.Ops)
	assert.Equal(t, gfx.OpPushClipExcluding, rec.Ops[0].Kind)
	assert.Equal(t, fixed.BorderRect(), rec.Ops[0].Rect)
	assert.Equal(t, []string{"content", "banner"}, rec.Texts())
	texts := rec.OpsOf(gfx.OpText)
	assert.Equal(t, 1, texts[0].Depth)
	assert.Equal(t, 0, texts[1].Depth)
	assert.Equal(t, 0, rec.Depth())
}

func TestImagesAndDecoration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.paint")
	defer teardown()
	//
	tree, root := document(t)
	p := add(t, tree, root, "p", "block", "")
	img := tree.NewBox(frame.Image, "img")
	require.NoError(t, tree.AddChild(p.ID(), img.ID()))
	require.NoError(t, tree.SetImageSize(img.ID(), 30, 10))
	u := add(t, tree, p, "u", "inline", "link")
	u.SetStyle(style.TextDecoration, "underline")
	layout.PerformLayout(tree, root.ID())
	rec := gfx.NewRecorder()
	paint.Paint(tree, rec)
	rects := rec.OpsOf(gfx.OpRect)
	require.Len(t, rects, 1)
	assert.False(t, rects[0].Fill, "image without handle is outlined")
	lines := rec.OpsOf(gfx.OpLine)
	require.Len(t, lines, 1)
	assert.Equal(t, dimen.Dimen(40), lines[0].To.X-lines[0].From.X)
	//
	require.NoError(t, tree.SetImageHandle(img.ID(), "handle"))
	rec = gfx.NewRecorder()
	paint.Paint(tree, rec)
	images := rec.OpsOf(gfx.OpImage)
	require.Len(t, images, 1)
	assert.Equal(t, "handle", images[0].Handle)
	assert.Equal(t, dimen.Dimen(30), images[0].Rect.Width())
}

// boomPainter panics when asked to draw "boom".
type boomPainter struct {
	*gfx.Recorder
}

func (bp boomPainter) DrawText(text string, f font.Font, at dimen.Point, c color.Color) {
	if text == "boom" {
		panic("cannot draw")
	}
	bp.Recorder.DrawText(text, f, at, c)
}

func TestPaintFailuresAreReported(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.paint")
	defer teardown()
	//
	tree, root := document(t)
	elog := &frame.ErrorLog{}
	tree.Reporter = elog
	clip := add(t, tree, root, "div", "block", "")
	clip.SetStyle(style.Overflow, "hidden")
	add(t, tree, clip, "p", "block", "boom")
	add(t, tree, root, "p", "block", "fine")
	layout.PerformLayout(tree, root.ID())
	bp := boomPainter{gfx.NewRecorder()}
	paint.Paint(tree, bp)
	require.Equal(t, 1, elog.Len())
	assert.Equal(t, core.EPAINT, core.Code(elog.Errors[0]))
	assert.Equal(t, []string{"fine"}, bp.Texts())
	assert.Equal(t, 0, bp.Depth(), "clips are popped after failures")
}
