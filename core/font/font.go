/*
Package font is for typeface and font handling.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "typeface" is a family of fonts. An example is "Helvetica".

* A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Helvetica regular".

* A "typecase" is a scaled font, i.e. a font in a certain size.
The name is reminiscend on the wooden boxes of typesetters in the
aera of metal type. An example is "Helvetica regular 16px".

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

Layout needs fonts only for measuring text. Package font defines the
interfaces layout uses for this (Font and Measurer) and an implementation
based on golang.org/x/image/font.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import (
	"os"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/npillmayer/cssbox/core/dimen"
)

// tracer traces with key 'cssbox.font'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.font")
}

// ScalableFont is a font loaded from an OpenType or TrueType binary.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// TypeCase is a scalable font prepared for a certain size.
// It implements interface Font.
type TypeCase struct {
	scalableFontParent *ScalableFont
	mx                 sync.Mutex // x/image faces are not safe for concurrent use
	face               xfont.Face // Go uses 'face' and 'font' in an inverse manner
	size               dimen.Dimen
	metrics            xfont.Metrics
	space              dimen.Dimen // cached width of a space character
}

// LoadOpenTypeFont loads a font from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err == nil {
		f.Filepath = fontfile
	}
	return f, err
}

// ParseOpenTypeFont parses a font binary.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// PrepareCase creates a typecase for a given size in CSS pixels.
// Sizes outside of 1px…1000px are clamped.
func (sf *ScalableFont) PrepareCase(fontsize dimen.Dimen) (*TypeCase, error) {
	typecase := &TypeCase{}
	typecase.scalableFontParent = sf
	if fontsize < 1 || fontsize > 1000 {
		tracer().Errorf("font size must be 1px < size < 1000px, is %g (clamped)", float64(fontsize))
		fontsize = dimen.Max(1, dimen.Min(1000, fontsize))
	}
	options := &opentype.FaceOptions{
		Size:    float64(fontsize),
		DPI:     72, // 1pt = 1px
		Hinting: xfont.HintingNone,
	}
	f, err := opentype.NewFace(sf.SFNT, options)
	if err != nil {
		return nil, err
	}
	typecase.face = f
	typecase.size = fontsize
	typecase.metrics = f.Metrics()
	typecase.space = fromFixed(xfont.MeasureString(f, " "))
	return typecase, nil
}

// ScalableFontParent returns the font a typecase has been prepared from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// Size returns the size of the typecase in CSS pixels.
func (tc *TypeCase) Size() dimen.Dimen {
	return tc.size
}

// Face returns the x/image face of a typecase, e.g. for drawing text.
func (tc *TypeCase) Face() xfont.Face {
	return tc.face
}

// Height is the recommended line height.
func (tc *TypeCase) Height() dimen.Dimen {
	return fromFixed(tc.metrics.Height)
}

// Ascent is the distance from the top of a line to its baseline.
func (tc *TypeCase) Ascent() dimen.Dimen {
	return fromFixed(tc.metrics.Ascent)
}

// Descent is the distance from the baseline to the bottom of a line.
func (tc *TypeCase) Descent() dimen.Dimen {
	return fromFixed(tc.metrics.Descent)
}

// UnderlineOffset is the distance of an underline below the baseline.
// x/image does not expose the 'post' table, so it is approximated from
// the descent.
func (tc *TypeCase) UnderlineOffset() dimen.Dimen {
	return tc.Descent() / 2
}

// MeasureString returns the advance width of a text.
func (tc *TypeCase) MeasureString(text string) dimen.Dimen {
	tc.mx.Lock()
	defer tc.mx.Unlock()
	return fromFixed(xfont.MeasureString(tc.face, text))
}

func fromFixed(x fixed.Int26_6) dimen.Dimen {
	return dimen.Dimen(x) / 64
}

// --- Fallback fonts --------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. We use the Go fonts, in a variant matching style and weight.
func FallbackFont(style xfont.Style, weight xfont.Weight) *ScalableFont {
	fallbackFontLoading.Do(loadFallbackFonts)
	italic := style == xfont.StyleItalic || style == xfont.StyleOblique
	bold := weight >= xfont.WeightSemiBold
	switch {
	case italic && bold:
		return fallbackFonts[3]
	case bold:
		return fallbackFonts[1]
	case italic:
		return fallbackFonts[2]
	}
	return fallbackFonts[0]
}

// MonospaceFallbackFont returns Go Mono.
func MonospaceFallbackFont() *ScalableFont {
	fallbackFontLoading.Do(loadFallbackFonts)
	return fallbackFonts[4]
}

var fallbackFontLoading sync.Once

// fallbackFonts are Go Sans regular, bold, italic, bold italic and Go Mono.
var fallbackFonts [5]*ScalableFont

func loadFallbackFonts() {
	for i, ttf := range [][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF, gomono.TTF} {
		f, err := ParseOpenTypeFont(ttf)
		if err != nil {
			panic("cannot load default font") // this cannot happen
		}
		f.Filepath = "internal"
		fallbackFonts[i] = f
	}
}
