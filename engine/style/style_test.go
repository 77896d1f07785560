package style

import (
	"image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestPropertyMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.style")
	defer teardown()
	//
	pmap := NewPropertyMap()
	pmap.Set(MarginTop, "10px")
	pmap.Set(Color, "red")
	p, ok := pmap.Get(MarginTop)
	assert.True(t, ok)
	assert.Equal(t, Property("10px"), p)
	pmap.Set(Color, NullStyle)
	_, ok = pmap.Get(Color)
	assert.False(t, ok)
	assert.Equal(t, "{margin-top: 10px}", pmap.String())
	assert.True(t, IsInherited(WhiteSpace))
	assert.False(t, IsInherited(MarginTop))
	assert.Equal(t, Property("normal"), InitialValue(WhiteSpace))
}

func TestExpandShorthands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.style")
	defer teardown()
	//
	kv := Expand("margin", "1px 2px 3px")
	assert.Equal(t, []KeyValue{
		{MarginTop, "1px"}, {MarginRight, "2px"}, {MarginBottom, "3px"}, {MarginLeft, "2px"},
	}, kv)
	kv = Expand("border-left", "2px solid rgb(1, 2, 3)")
	assert.Equal(t, []KeyValue{
		{BorderLeftWidth, "2px"}, {BorderLeftStyle, "solid"}, {BorderLeftColor, "rgb(1, 2, 3)"},
	}, kv)
	assert.Len(t, Expand("border", "1px solid"), 8)
	assert.Equal(t, []KeyValue{{ListStyleType, "upper-roman"}, {ListStylePosition, "inside"}},
		Expand("list-style", "upper-roman inside"))
	assert.Equal(t, []KeyValue{{"white-space", "pre"}}, Expand(" White-Space", "pre "))
}

func TestColors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.style")
	defer teardown()
	//
	c, ok := ParseColor("#f00")
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{0xff, 0, 0, 0xff}, c)
	c, _ = ParseColor("rgb(0, 128, 255)")
	assert.Equal(t, color.RGBA{0, 128, 255, 0xff}, c)
	c, _ = ParseColor("Gray")
	assert.Equal(t, color.RGBA{0x80, 0x80, 0x80, 0xff}, c)
	_, ok = ParseColor("no-color")
	assert.False(t, ok)
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, Property("no-color").Color())
	c, _ = ParseColor("transparent")
	assert.Equal(t, Transparent, c)
}
