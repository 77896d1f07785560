package option_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/npillmayer/cssbox/core/option"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestOptionMaybe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.core")
	defer teardown()
	//
	x := option.Some(42)
	y1 := option.Match(x, func() int { return 7 }, func(v int) int { return v + 1 })
	assert.Equal(t, 43, y1)
	//
	x = option.None[int]()
	y2 := option.Match(x, func() string { return "No Value" }, stringify)
	assert.Equal(t, "No Value", y2)
	//
	_, err := option.MatchE(x, nil, stringify)
	assert.ErrorIs(t, err, option.ErrCannotMatchUnsetValue)
}

func TestOptionLazy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.core")
	defer teardown()
	//
	var cache option.Maybe[float64]
	calls := 0
	compute := func() float64 { calls++; return math.NaN() }
	v := cache.Lazy(compute)
	assert.True(t, math.IsNaN(v))
	cache.Lazy(compute)
	assert.Equal(t, 1, calls, "NaN is a legal cached value and must not trigger recomputation")
	cache.Reset()
	assert.True(t, cache.IsNone())
	cache.Lazy(compute)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 5.0, option.None[float64]().OrElse(5))
}

func stringify(v int) string {
	return fmt.Sprintf("%d", v)
}
