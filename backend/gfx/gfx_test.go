package gfx

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"

	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/core/font"
	"github.com/npillmayer/cssbox/engine/glyphing/monospace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	blue  = color.RGBA{B: 0xff, A: 0xff}
	green = color.RGBA{G: 0xff, A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func TestRasterClipping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.gfx")
	defer teardown()
	//
	r := NewRaster(20, 20, colornames.White)
	r.DrawRect(dimen.RectFromXYWH(0, 0, 10, 10), red, true)
	assert.Equal(t, red, r.Picture.RGBAAt(5, 5))
	assert.Equal(t, white, r.Picture.RGBAAt(15, 15))
	r.PushClip(dimen.RectFromXYWH(0, 0, 5, 5))
	r.DrawRect(dimen.RectFromXYWH(0, 0, 20, 20), blue, true)
	assert.Equal(t, blue, r.Picture.RGBAAt(2, 2))
	assert.Equal(t, red, r.Picture.RGBAAt(7, 7), "outside of clip region")
	r.PopClip()
	r.PushClipExcluding(dimen.RectFromXYWH(0, 0, 10, 10))
	r.DrawRect(dimen.RectFromXYWH(0, 0, 20, 20), green, true)
	assert.Equal(t, green, r.Picture.RGBAAt(15, 15))
	assert.Equal(t, blue, r.Picture.RGBAAt(2, 2), "excluded from clip region")
	r.PopClip()
	r.PopClip() // unbalanced, ignored
	assert.Nil(t, r.mask())
}

func TestRasterOutlineAndLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.gfx")
	defer teardown()
	//
	r := NewRaster(20, 20, colornames.White)
	r.DrawRect(dimen.RectFromXYWH(2, 2, 10, 10), red, false)
	assert.Equal(t, red, r.Picture.RGBAAt(2, 5))
	assert.Equal(t, white, r.Picture.RGBAAt(6, 6), "outline is not filled")
	r.DrawLine(dimen.Point{X: 0, Y: 16}, dimen.Point{X: 20, Y: 16}, 2, blue)
	assert.Equal(t, blue, r.Picture.RGBAAt(10, 15))
	r.DrawLine(dimen.Point{X: 0, Y: 0}, dimen.Point{X: 19, Y: 19}, 1, green)
	assert.Equal(t, green, r.Picture.RGBAAt(10, 10))
}

func TestRasterTextAndImages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.gfx")
	defer teardown()
	//
	r := NewRaster(40, 20, colornames.White)
	f := monospace.Measurer(10, nil).Font(font.Descriptor{Size: 16})
	r.DrawText("Hi", f, dimen.Point{X: 2, Y: 15}, color.Black)
	inked := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			if r.Picture.RGBAAt(x, y) != white {
				inked++
			}
		}
	}
	assert.Greater(t, inked, 0, "text leaves ink")
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	draw.Draw(src, src.Bounds(), image.NewUniform(red), image.Point{}, draw.Src)
	r.DrawImage(src, dimen.RectFromXYWH(30, 0, 8, 8))
	assert.Greater(t, r.Picture.RGBAAt(34, 4).R, uint8(200))
	r.DrawImage("not an image", dimen.RectFromXYWH(30, 10, 8, 8))
	var png1 bytes.Buffer
	require.NoError(t, r.Shipout(&png1))
	img, err := png.Decode(&png1)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 20), img.Bounds())
}

func TestRecorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.gfx")
	defer teardown()
	//
	rec := NewRecorder()
	rec.PushClip(dimen.RectFromXYWH(0, 0, 10, 10))
	rec.DrawText("x", nil, dimen.Point{X: 1, Y: 2}, color.Black)
	rec.PopClip()
	rec.PopClip()
	require.Len(t, rec.Ops, 3)
	assert.Equal(t, 1, rec.Ops[1].Depth)
	assert.Equal(t, 0, rec.Depth())
	assert.Equal(t, []string{"x"}, rec.Texts())
	assert.Equal(t, `text "x" at (1.00,2.00)`, rec.Ops[1].String())
	assert.Len(t, rec.OpsOf(OpPopClip), 1)
}
