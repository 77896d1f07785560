/*
Package frame holds the box tree, the central data structure of layout.

Boxes follow the CSS box model. Every box carries raw CSS property
values, from which it derives "actual" values (margins, paddings, border
widths, colors, fonts) on demand. Actual values are cached per box and
invalidated whenever a property is set.

Boxes live in an arena, type Tree, and are addressed by BoxID. A box
holds either child boxes or content fragments (words of text), never
both. Replaced elements (images, frames) hold a single image fragment.

Layout algorithms are implemented in sub-packages:

	inline    flows inline content into line boxes
	table     resolves table column widths and places cells
	layout    drives layout of a whole box tree

The tree is not safe for concurrent use. Clients have to serialize
layout runs on a tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbox.frame'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.frame")
}
