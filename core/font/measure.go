package font

import (
	"strconv"
	"strings"

	xfont "golang.org/x/image/font"

	"github.com/npillmayer/cssbox/core/dimen"
)

// Font is a font in a certain size, as far as layout is concerned.
type Font interface {
	Height() dimen.Dimen          // recommended line height
	Ascent() dimen.Dimen          // top of line to baseline
	UnderlineOffset() dimen.Dimen // baseline to underline
}

// Descriptor describes a font as requested by CSS properties.
type Descriptor struct {
	Family string
	Size   dimen.Dimen
	Style  xfont.Style
	Weight xfont.Weight
}

// Measurer measures text. Layout calls it synchronously and caches results
// per fragment.
type Measurer interface {
	Font(desc Descriptor) Font
	Measure(text string, f Font) (w, h dimen.Dimen)
	WhitespaceWidth(f Font) dimen.Dimen
}

// FaceMeasurer is a Measurer using golang.org/x/image fonts from a registry.
type FaceMeasurer struct {
	registry *Registry
}

var _ Measurer = &FaceMeasurer{}

// NewMeasurer creates a measurer on top of a registry. If registry is nil,
// the global registry is used.
func NewMeasurer(registry *Registry) *FaceMeasurer {
	if registry == nil {
		registry = GlobalRegistry()
	}
	return &FaceMeasurer{registry: registry}
}

// Font returns a typecase for a font descriptor. Missing fonts are replaced
// by fallback fonts.
func (m *FaceMeasurer) Font(desc Descriptor) Font {
	tc, err := m.registry.TypeCase(desc.Family, desc.Style, desc.Weight, desc.Size)
	if err != nil {
		tracer().Debugf("using fallback font: %v", err)
	}
	return tc
}

// Measure returns width and height of a text.
func (m *FaceMeasurer) Measure(text string, f Font) (w, h dimen.Dimen) {
	tc, ok := f.(*TypeCase)
	if !ok {
		tracer().Errorf("face measurer cannot measure with font of type %T", f)
		return 0, f.Height()
	}
	return tc.MeasureString(text), tc.Height()
}

// WhitespaceWidth returns the width of a space character.
func (m *FaceMeasurer) WhitespaceWidth(f Font) dimen.Dimen {
	if tc, ok := f.(*TypeCase); ok {
		return tc.space
	}
	w, _ := m.Measure(" ", f)
	return w
}

// ParseWeight converts a CSS font-weight value to an x/image weight.
func ParseWeight(s string) xfont.Weight {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bold", "bolder":
		return xfont.WeightBold
	case "lighter":
		return xfont.WeightLight
	case "", "normal":
		return xfont.WeightNormal
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 100 || n > 900 {
		return xfont.WeightNormal
	}
	return xfont.Weight(n/100 - 4) // 400 ⇒ WeightNormal = 0
}

// ParseStyle converts a CSS font-style value to an x/image style.
func ParseStyle(s string) xfont.Style {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "italic":
		return xfont.StyleItalic
	case "oblique":
		return xfont.StyleOblique
	}
	return xfont.StyleNormal
}
