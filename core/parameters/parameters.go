/*
Package parameters holds the tunable parameters of the layout engine.

Parameters are read from a schuko.Configuration. Keys not present in the
configuration fall back to defaults.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"strconv"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/cssbox/core/dimen"
)

// tracer traces with key 'cssbox.core'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.core")
}

// Configuration keys.
const (
	KeyFontFamily      = "layout.font.family"
	KeyFontSize        = "layout.font.size"
	KeyMarkerGap       = "layout.marker.gap"
	KeyRuleFactor      = "layout.hr.factor"
	KeyTableIterations = "layout.table.iterations"
	KeyTableShaveSteps = "layout.table.shavesteps"
	KeyImageWidth      = "layout.image.width"
	KeyFrameWidth      = "layout.frame.width"
	KeyFrameHeight     = "layout.frame.height"
)

// LayoutParameters is a set of parameters which influence layout decisions
// without being part of any box's style.
type LayoutParameters struct {
	FontFamily      string      // initial font family
	FontSize        dimen.Dimen // initial font size, value of 'medium'
	MarkerGap       dimen.Dimen // gap between list marker and list item
	RuleFactor      float64     // top margin of a bare <hr> in units of em-height
	TableIterations int         // cap for max-width driven column adjustment
	TableShaveSteps int         // cap for one-unit column reductions
	ImageWidth      dimen.Dimen // placeholder width of images without size
	FrameWidth      dimen.Dimen // default width of frames
	FrameHeight     dimen.Dimen // default height of frames
	Tolerance       dimen.Dimen // numerical tolerance for width comparisons
}

// Defaults returns the default parameter set.
func Defaults() *LayoutParameters {
	return &LayoutParameters{
		FontFamily:      "Go Sans",
		FontSize:        16,
		MarkerGap:       5,
		RuleFactor:      1.1,
		TableIterations: 15,
		TableShaveSteps: 10000,
		ImageWidth:      20,
		FrameWidth:      300,
		FrameHeight:     150,
		Tolerance:       0.1,
	}
}

// FromConfig reads layout parameters from a configuration. conf may be nil.
func FromConfig(conf schuko.Configuration) *LayoutParameters {
	p := Defaults()
	if conf == nil {
		return p
	}
	if conf.IsSet(KeyFontFamily) {
		p.FontFamily = conf.GetString(KeyFontFamily)
	}
	p.FontSize = dimenValue(conf, KeyFontSize, p.FontSize)
	p.MarkerGap = dimenValue(conf, KeyMarkerGap, p.MarkerGap)
	p.RuleFactor = float64(dimenValue(conf, KeyRuleFactor, dimen.Dimen(p.RuleFactor)))
	p.TableIterations = intValue(conf, KeyTableIterations, p.TableIterations)
	p.TableShaveSteps = intValue(conf, KeyTableShaveSteps, p.TableShaveSteps)
	p.ImageWidth = dimenValue(conf, KeyImageWidth, p.ImageWidth)
	p.FrameWidth = dimenValue(conf, KeyFrameWidth, p.FrameWidth)
	p.FrameHeight = dimenValue(conf, KeyFrameHeight, p.FrameHeight)
	return p
}

func dimenValue(conf schuko.Configuration, key string, dflt dimen.Dimen) dimen.Dimen {
	if !conf.IsSet(key) {
		return dflt
	}
	f, err := strconv.ParseFloat(conf.GetString(key), 64)
	if err != nil || f <= 0 {
		tracer().Errorf("configuration value for %s is not a positive number: %q", key, conf.GetString(key))
		return dflt
	}
	return dimen.Dimen(f)
}

func intValue(conf schuko.Configuration, key string, dflt int) int {
	if !conf.IsSet(key) {
		return dflt
	}
	if n := conf.GetInt(key); n > 0 {
		return n
	}
	tracer().Errorf("configuration value for %s is not a positive integer: %q", key, conf.GetString(key))
	return dflt
}
