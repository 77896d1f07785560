// Package dimen implements dimensions and units.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"fmt"
	"math"
)

// Dimen is a dimension type.
// Values are in CSS pixels (1/96 inch), stored as floating point numbers
// as layout arithmetic accumulates fractions of pixels.
type Dimen float64

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	PX   Dimen = 1           // CSS pixel
	IN   Dimen = 96          // inch
	PT   Dimen = 96.0 / 72.0 // printers point 1/72 inch
	PC   Dimen = 16          // pica = 12pt
	CM   Dimen = 96.0 / 2.54 // centimeters
	MM   Dimen = CM / 10     // millimeters
)

// Unconstrained is the width a caller sets on a root box if there is no
// width constraint. Layout compares against UnconstrainedLimit to find
// out if a width has been derived from this value. Both numbers are part
// of the layout contract and must not be changed.
const (
	Unconstrained      Dimen = 99999
	UnconstrainedLimit Dimen = 90999
)

// Infinity is the largest possible dimension
const Infinity = Dimen(math.MaxFloat32)

// Stringer implementation.
func (d Dimen) String() string {
	return fmt.Sprintf("%.2fpx", float64(d))
}

// Points returns a dimension in printer's points.
func (d Dimen) Points() float64 {
	return float64(d / PT)
}

// IsUnconstrained is true if d has been derived from Unconstrained.
func (d Dimen) IsUnconstrained() bool {
	return d >= UnconstrainedLimit
}

// Point is a point on a drawing surface.
type Point struct {
	X, Y Dimen
}

// Origin is origin
var Origin = Point{0, 0}

// Shift a point along a vector.
func (p *Point) Shift(vector Point) *Point {
	p.X += vector.X
	p.Y += vector.Y
	return p
}

// Size is a width/height pair.
type Size struct {
	W, H Dimen
}

// Rect is a rectangle (on a drawing surface).
type Rect struct {
	TopL, BotR Point
}

// RectFromLTRB creates a rectangle from its left, top, right and bottom edges.
func RectFromLTRB(l, t, r, b Dimen) Rect {
	return Rect{TopL: Point{l, t}, BotR: Point{r, b}}
}

// RectFromXYWH creates a rectangle from its top left corner and its size.
func RectFromXYWH(x, y, w, h Dimen) Rect {
	return Rect{TopL: Point{x, y}, BotR: Point{x + w, y + h}}
}

// Width returns the width of a rectangle, i.e. the difference between x-coordinates
// of bottom-right and top-left corner.
func (r Rect) Width() Dimen {
	return r.BotR.X - r.TopL.X
}

// Height returns the height of a rectangle, i.e. the difference between y-coordinates
// of bottom-right and top-left corner.
func (r Rect) Height() Dimen {
	return r.BotR.Y - r.TopL.Y
}

// Left edge of r.
func (r Rect) Left() Dimen { return r.TopL.X }

// Top edge of r.
func (r Rect) Top() Dimen { return r.TopL.Y }

// Right edge of r.
func (r Rect) Right() Dimen { return r.BotR.X }

// Bottom edge of r.
func (r Rect) Bottom() Dimen { return r.BotR.Y }

// IsEmpty is true for rectangles without area.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	return RectFromLTRB(
		Min(r.TopL.X, s.TopL.X), Min(r.TopL.Y, s.TopL.Y),
		Max(r.BotR.X, s.BotR.X), Max(r.BotR.Y, s.BotR.Y),
	)
}

// Intersect returns the largest rectangle contained in both r and s.
// If they do not overlap, the result is empty.
func (r Rect) Intersect(s Rect) Rect {
	x := RectFromLTRB(
		Max(r.TopL.X, s.TopL.X), Max(r.TopL.Y, s.TopL.Y),
		Min(r.BotR.X, s.BotR.X), Min(r.BotR.Y, s.BotR.Y),
	)
	if x.IsEmpty() {
		return Rect{}
	}
	return x
}

// Offset returns r moved by dx, dy.
func (r Rect) Offset(dx, dy Dimen) Rect {
	return RectFromLTRB(r.TopL.X+dx, r.TopL.Y+dy, r.BotR.X+dx, r.BotR.Y+dy)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%.2f,%.2f)-(%.2f,%.2f)",
		float64(r.TopL.X), float64(r.TopL.Y), float64(r.BotR.X), float64(r.BotR.Y))
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b Dimen) Dimen {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}

// Abs returns the absolute value of a dimension.
func Abs(a Dimen) Dimen {
	if a < 0 {
		return -a
	}
	return a
}

// Near is true if a and b differ by less than tolerance.
func Near(a, b, tolerance Dimen) bool {
	return Abs(a-b) < tolerance
}
