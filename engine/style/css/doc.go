/*
Package css resolves raw CSS property values to numbers and keywords.

The central type is Length, a number together with its unit. Lengths
are parsed from property strings and then converted to pixels, given the
reference sizes for relative units: the font size for em and ex, and a
"hundred percent" size for percentages.

	l, err := css.ParseLength("2em")
	px := l.ToPixels(containerWidth, emHeight)

Parsing never panics. Unparsable input results in ErrLengthFormat, and
the Resolve helpers then fall back to zero.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbox.style'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.style")
}
