package css

import (
	"errors"
	"testing"

	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/engine/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/bidi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.style")
	defer teardown()
	//
	l, err := ParseLength("12px")
	require.NoError(t, err)
	assert.Equal(t, Length{12, PX}, l)
	l, err = ParseLength(" -1.5EM")
	require.NoError(t, err)
	assert.Equal(t, Length{-1.5, EM}, l)
	l, err = ParseLength("50%")
	require.NoError(t, err)
	assert.True(t, l.IsPercentage())
	l, err = ParseLength(".5")
	require.NoError(t, err)
	assert.Equal(t, NoUnit, l.Unit)
	_, err = ParseLength("12furlongs")
	assert.True(t, errors.Is(err, ErrLengthFormat))
	_, err = ParseLength("12qq")
	assert.True(t, errors.Is(err, ErrLengthFormat))
	_, err = ParseLength("auto")
	assert.Error(t, err)
}

func TestLengthToPixels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.style")
	defer teardown()
	//
	assert.Equal(t, dimen.Dimen(100), Resolve("50%", 200, 16))
	assert.Equal(t, dimen.Dimen(32), Resolve("2em", 200, 16))
	assert.Equal(t, dimen.Dimen(8), Resolve("1ex", 200, 16))
	assert.Equal(t, dimen.Dimen(96), Resolve("1in", 0, 0))
	assert.True(t, dimen.Near(Resolve("12pt", 0, 0), 16, 0.001))
	assert.Equal(t, dimen.Dimen(7), Resolve("7", 0, 0))
	assert.Equal(t, dimen.Dimen(0), Resolve("auto", 100, 16))
	assert.True(t, dimen.Near(Resolve("2.54cm", 0, 0), 96, 0.001))
}

func TestKeywordLengths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.style")
	defer teardown()
	//
	assert.Equal(t, dimen.Dimen(1), BorderWidth("thin", 16))
	assert.Equal(t, dimen.Dimen(4), BorderWidth("thick", 16))
	assert.Equal(t, dimen.Dimen(3), BorderWidth("3px", 16))
	assert.Equal(t, dimen.Dimen(32), FontSize("xx-large", 16, 16))
	assert.Equal(t, dimen.Dimen(24), FontSize("2em", 12, 16))
	assert.Equal(t, dimen.Dimen(6), FontSize("50%", 12, 16))
	assert.True(t, dimen.Near(FontSize("larger", 10, 16), 12, 0.001))
	assert.Equal(t, dimen.Dimen(10), FontSize("bogus", 10, 16))
	assert.Equal(t, dimen.Dimen(30), LineHeight("1.5", 20, 22))
	assert.Equal(t, dimen.Dimen(22), LineHeight("normal", 20, 22))
	h, v := BorderSpacing("2px 4px", 16)
	assert.Equal(t, dimen.Dimen(2), h)
	assert.Equal(t, dimen.Dimen(4), v)
	assert.Equal(t, 1, ParseInt("x"))
	assert.Equal(t, 3, ParseInt(" 3"))
}

func TestKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.style")
	defer teardown()
	//
	assert.Equal(t, WSPreWrap, ParseWhiteSpace("Pre-Wrap"))
	assert.True(t, WSPre.PreservesSpaces())
	assert.False(t, WSPreLine.PreservesSpaces())
	assert.True(t, WSPreLine.PreservesNewlines())
	assert.False(t, WSNoWrap.Wraps())
	assert.Equal(t, AlignJustify, ParseTextAlign("justify"))
	assert.Equal(t, VAlignSuper, ParseVerticalAlign("super"))
	assert.Equal(t, VAlignLength, ParseVerticalAlign("3px"))
	assert.True(t, ParsePosition("fixed").IsOutOfFlow())
	assert.Equal(t, WordBreakAll, ParseWordBreak("break-all"))
	assert.Equal(t, bidi.RightToLeft, ParseDirection("rtl"))
	assert.False(t, IsRTL(style.Property("ltr")))
	assert.False(t, HasBorderStyle("none"))
	assert.True(t, HasBorderStyle("dashed"))
}
