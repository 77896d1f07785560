package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xfont "golang.org/x/image/font"

	"github.com/npillmayer/cssbox/core/dimen"
)

type sw struct {
	s xfont.Style
	w xfont.Weight
}

func TestGuess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.font")
	defer teardown()
	//
	for k, v := range map[string]sw{
		"fonts/Clarendon-bold.ttf":               {xfont.StyleNormal, xfont.WeightBold},
		"Microsoft/Gill Sans MT Bold Italic.ttf": {xfont.StyleItalic, xfont.WeightBold},
		"Cambria Math.ttf":                       {xfont.StyleNormal, xfont.WeightNormal},
	} {
		style, weight := GuessStyleAndWeight(k)
		assert.Equal(t, v.s, style, k)
		assert.Equal(t, v.w, weight, k)
	}
}

func TestMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.font")
	defer teardown()
	//
	assert.True(t, Matches("fonts/Clarendon-bold.ttf", "clarendon", xfont.StyleNormal, xfont.WeightBold))
	assert.True(t, Matches("Microsoft/Gill Sans MT Bold Italic.ttf", "gill sans", xfont.StyleItalic, xfont.WeightBold))
	assert.False(t, Matches("Cambria Math.ttf", "cambria", xfont.StyleItalic, xfont.WeightNormal))
}

func TestNormalizeFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.font")
	defer teardown()
	//
	n := NormalizeFontname("Clarendon", xfont.StyleItalic, xfont.WeightBold)
	assert.Equal(t, "clarendon-italic-bold", n)
	assert.Equal(t, []string{"Helvetica Neue", "Arial", "sans-serif"},
		SplitFamilies(`"Helvetica Neue", Arial,sans-serif`))
}

func TestFallbackMeasurer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.font")
	defer teardown()
	//
	m := NewMeasurer(NewRegistry())
	f := m.Font(Descriptor{Family: "sans-serif", Size: 16})
	require.NotNil(t, f)
	assert.Greater(t, float64(f.Height()), 10.0)
	assert.Greater(t, float64(f.Ascent()), 0.0)
	w1, h := m.Measure("x", f)
	w2, _ := m.Measure("xx", f)
	assert.Greater(t, float64(w1), 0.0)
	assert.InDelta(t, float64(2*w1), float64(w2), 0.5)
	assert.Equal(t, f.Height(), h)
	assert.Greater(t, float64(m.WhitespaceWidth(f)), 0.0)
	bold := m.Font(Descriptor{Family: "no-such-font-family, monospace", Size: 16, Weight: xfont.WeightBold})
	assert.NotNil(t, bold)
	assert.NotEqual(t, dimen.Zero, bold.Height())
}

func TestParseWeight(t *testing.T) {
	assert.Equal(t, xfont.WeightBold, ParseWeight("bold"))
	assert.Equal(t, xfont.WeightBold, ParseWeight("700"))
	assert.Equal(t, xfont.WeightNormal, ParseWeight("400"))
	assert.Equal(t, xfont.WeightNormal, ParseWeight("heavy-ish"))
	assert.Equal(t, xfont.StyleItalic, ParseStyle("italic"))
}
