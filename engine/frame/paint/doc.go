/*
Package paint turns the geometry of a laid-out box tree into drawing
calls on a Painter.

Boxes are painted in document order: background, borders, content, then
children. Boxes with overflow hidden clip their descendants to their
padding box. Boxes with position fixed are painted last, on top of
everything else, and the area they cover is excluded from the clip
region of all other boxes. Boxes with visibility hidden are not drawn,
but their descendants may be.

Failures while painting a box are reported to the tree's error reporter
with code core.EPAINT. Painting continues with the next box.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package paint

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbox.paint'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.paint")
}
