package gfx

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/core/font"
	"github.com/npillmayer/cssbox/engine/frame/paint"
	xdraw "golang.org/x/image/draw"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Raster is a painter drawing into an RGBA image. Clip regions are kept
// as alpha masks covering the whole picture.
type Raster struct {
	Picture *image.RGBA
	clips   *arraystack.Stack // of *image.Alpha
}

var _ paint.Painter = &Raster{}

// NewRaster creates a raster painter for a picture of w × h pixels,
// filled with a background color.
func NewRaster(w, h int, bg color.Color) *Raster {
	pic := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(pic, pic.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Raster{Picture: pic, clips: arraystack.New()}
}

// Shipout encodes the picture as PNG.
func (r *Raster) Shipout(w io.Writer) error {
	return png.Encode(w, r.Picture)
}

// mask returns the current clip mask, or nil if drawing is not clipped.
func (r *Raster) mask() image.Image {
	if m, ok := r.clips.Peek(); ok {
		return m.(*image.Alpha)
	}
	return nil
}

func (r *Raster) fill(rect image.Rectangle, src image.Image, sp image.Point) {
	rect = rect.Intersect(r.Picture.Bounds())
	if rect.Empty() {
		return
	}
	if m := r.mask(); m != nil {
		draw.DrawMask(r.Picture, rect, src, sp.Add(rect.Min), m, rect.Min, draw.Over)
		return
	}
	draw.Draw(r.Picture, rect, src, sp.Add(rect.Min), draw.Over)
}

// DrawRect draws a filled rectangle or a 1 pixel outline.
func (r *Raster) DrawRect(rect dimen.Rect, c color.Color, fill bool) {
	pr := pixels(rect)
	src := image.NewUniform(c)
	if fill {
		r.fill(pr, src, image.Point{})
		return
	}
	r.fill(image.Rect(pr.Min.X, pr.Min.Y, pr.Max.X, pr.Min.Y+1), src, image.Point{})
	r.fill(image.Rect(pr.Min.X, pr.Max.Y-1, pr.Max.X, pr.Max.Y), src, image.Point{})
	r.fill(image.Rect(pr.Min.X, pr.Min.Y, pr.Min.X+1, pr.Max.Y), src, image.Point{})
	r.fill(image.Rect(pr.Max.X-1, pr.Min.Y, pr.Max.X, pr.Max.Y), src, image.Point{})
}

// DrawLine draws a line of a given width. Lines which are neither
// horizontal nor vertical are drawn as a sequence of squares.
func (r *Raster) DrawLine(from, to dimen.Point, width dimen.Dimen, c color.Color) {
	w := dimen.Max(1, width)
	src := image.NewUniform(c)
	switch {
	case from.Y == to.Y:
		rect := dimen.RectFromLTRB(dimen.Min(from.X, to.X), from.Y-w/2, dimen.Max(from.X, to.X), from.Y+w/2)
		r.fill(pixels(rect), src, image.Point{})
	case from.X == to.X:
		rect := dimen.RectFromLTRB(from.X-w/2, dimen.Min(from.Y, to.Y), from.X+w/2, dimen.Max(from.Y, to.Y))
		r.fill(pixels(rect), src, image.Point{})
	default:
		dx, dy := to.X-from.X, to.Y-from.Y
		n := int(math.Ceil(float64(dimen.Max(dimen.Abs(dx), dimen.Abs(dy)))))
		for i := 0; i <= n; i++ {
			t := dimen.Dimen(i) / dimen.Dimen(n)
			x, y := from.X+t*dx, from.Y+t*dy
			r.fill(pixels(dimen.RectFromLTRB(x-w/2, y-w/2, x+w/2, y+w/2)), src, image.Point{})
		}
	}
}

// DrawText draws text with its baseline starting at a point. Fonts other
// than font.TypeCase are drawn with a fixed-size bitmap font.
func (r *Raster) DrawText(text string, f font.Font, at dimen.Point, c color.Color) {
	face := faceOf(f)
	dot := fixed.Point26_6{X: toFixed(at.X), Y: toFixed(at.Y)}
	bounds, _ := xfont.BoundString(face, text)
	bounds = bounds.Add(dot)
	pr := image.Rect(bounds.Min.X.Floor(), bounds.Min.Y.Floor(), bounds.Max.X.Ceil(), bounds.Max.Y.Ceil())
	if pr.Empty() {
		return
	}
	layer := image.NewRGBA(pr)
	d := xfont.Drawer{
		Dst:  layer,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(text)
	r.fill(pr, layer, image.Point{})
}

func faceOf(f font.Font) xfont.Face {
	if tc, ok := f.(*font.TypeCase); ok && tc.Face() != nil {
		return tc.Face()
	}
	return basicfont.Face7x13
}

// DrawImage scales an image.Image into a rectangle. Other handles are
// drawn as a placeholder outline.
func (r *Raster) DrawImage(handle interface{}, rect dimen.Rect) {
	img, ok := handle.(image.Image)
	if !ok {
		tracer().Errorf("raster cannot draw image handle of type %T", handle)
		r.DrawRect(rect, paint.PlaceholderColor, false)
		return
	}
	pr := pixels(rect)
	var opts *xdraw.Options
	if m := r.mask(); m != nil {
		opts = &xdraw.Options{DstMask: m}
	}
	xdraw.ApproxBiLinear.Scale(r.Picture, pr, img, img.Bounds(), xdraw.Over, opts)
}

// PushClip restricts drawing to a rectangle within the current clip region.
func (r *Raster) PushClip(rect dimen.Rect) {
	m := image.NewAlpha(r.Picture.Bounds())
	pr := pixels(rect)
	if cur := r.mask(); cur != nil {
		draw.Draw(m, pr, cur, pr.Min, draw.Src)
	} else {
		draw.Draw(m, pr, image.Opaque, image.Point{}, draw.Src)
	}
	r.clips.Push(m)
}

// PushClipExcluding removes a rectangle from the current clip region.
func (r *Raster) PushClipExcluding(rect dimen.Rect) {
	m := image.NewAlpha(r.Picture.Bounds())
	if cur := r.mask(); cur != nil {
		draw.Draw(m, m.Bounds(), cur, image.Point{}, draw.Src)
	} else {
		draw.Draw(m, m.Bounds(), image.Opaque, image.Point{}, draw.Src)
	}
	draw.Draw(m, pixels(rect), image.Transparent, image.Point{}, draw.Src)
	r.clips.Push(m)
}

// PopClip restores the previous clip region.
func (r *Raster) PopClip() {
	if _, ok := r.clips.Pop(); !ok {
		tracer().Errorf("raster: pop from empty clip stack")
	}
}

// pixels rounds a rectangle to image pixels.
func pixels(r dimen.Rect) image.Rectangle {
	round := func(d dimen.Dimen) int { return int(math.Round(float64(d))) }
	return image.Rect(round(r.Left()), round(r.Top()), round(r.Right()), round(r.Bottom()))
}

func toFixed(d dimen.Dimen) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(d) * 64))
}
