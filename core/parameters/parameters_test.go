package parameters

import (
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/cssbox/core/dimen"
)

func TestDefaultsWithoutConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.core")
	defer teardown()
	//
	p := FromConfig(nil)
	assert.Equal(t, dimen.Dimen(16), p.FontSize)
	assert.Equal(t, 15, p.TableIterations)
	assert.Equal(t, 1.1, p.RuleFactor)
}

func TestParametersFromConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.core")
	defer teardown()
	//
	conf := testconfig.Conf{
		KeyFontFamily:      "DejaVu Sans",
		KeyFontSize:        "12.5",
		KeyTableIterations: "20",
		KeyMarkerGap:       "oops",
	}
	p := FromConfig(conf)
	assert.Equal(t, "DejaVu Sans", p.FontFamily)
	assert.Equal(t, dimen.Dimen(12.5), p.FontSize)
	assert.Equal(t, 20, p.TableIterations)
	assert.Equal(t, dimen.Dimen(5), p.MarkerGap, "malformed values fall back to defaults")
}
