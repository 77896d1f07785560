package monospace

import (
	"strings"

	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/core/font"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
)

// Font is a monospace font of a given size.
type Font struct {
	size dimen.Dimen
}

var _ font.Font = Font{}

// Size returns the font size.
func (f Font) Size() dimen.Dimen { return f.size }

// Height returns the line height, which is the font size.
func (f Font) Height() dimen.Dimen { return f.size }

// Ascent returns 3/5 of the font size.
func (f Font) Ascent() dimen.Dimen { return f.size * 3 / 5 }

// UnderlineOffset returns 1/5 of the font size.
func (f Font) UnderlineOffset() dimen.Dimen { return f.size / 5 }

type msmeasure struct {
	advance          dimen.Dimen
	graphemeSplitter *segment.Segmenter
	context          *uax11.Context
}

// Measurer creates a measurer for monospace text.
// If advance is zero, a cell is as wide as the font size. Otherwise every
// cell is advance wide, independent of font size.
// context may be nil, in which case a Latin context is used.
func Measurer(advance dimen.Dimen, context *uax11.Context) font.Measurer {
	ms := &msmeasure{
		advance: advance,
		context: context,
	}
	if ms.context == nil {
		ms.context = uax11.LatinContext
	}
	grapheme.SetupGraphemeClasses()
	onGraphemes := grapheme.NewBreaker(1)
	ms.graphemeSplitter = segment.NewSegmenter(onGraphemes)
	return ms
}

// Font returns a monospace font for the descriptor's size. Family,
// style and weight do not matter.
func (ms *msmeasure) Font(desc font.Descriptor) font.Font {
	if desc.Size <= 0 {
		return Font{size: 16}
	}
	return Font{size: desc.Size}
}

// Measure returns the width and height of a text.
func (ms *msmeasure) Measure(text string, f font.Font) (w, h dimen.Dimen) {
	cells := ms.Cells(text)
	return dimen.Dimen(cells) * ms.cellWidth(f), f.Height()
}

// WhitespaceWidth returns the width of one cell.
func (ms *msmeasure) WhitespaceWidth(f font.Font) dimen.Dimen {
	return ms.cellWidth(f)
}

// Cells returns the number of cells a text occupies.
func (ms *msmeasure) Cells(text string) int {
	if text == "" {
		return 0
	}
	ms.graphemeSplitter.Init(strings.NewReader(text))
	cells := 0
	for ms.graphemeSplitter.Next() {
		g := ms.graphemeSplitter.Bytes()
		if len(g) == 1 && g[0] >= 0x20 && g[0] < 0x7f {
			cells++ // printable ASCII is always narrow
			continue
		}
		cells += uax11.Width(g, ms.context)
	}
	tracer().Debugf("text %q occupies %d cells", text, cells)
	return cells
}

func (ms *msmeasure) cellWidth(f font.Font) dimen.Dimen {
	if ms.advance > 0 {
		return ms.advance
	}
	if mf, ok := f.(Font); ok {
		return mf.size
	}
	return f.Height()
}
