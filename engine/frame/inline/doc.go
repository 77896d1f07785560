/*
Package inline flows inline content into line boxes.

Flow walks the inline subtree of a block box, placing the fragments
of every box on lines, breaking lines where the right edge of the block
is reached or where a forced line break occurs. The cursor state of this
walk is held in a FlowContext, which is passed into every recursive step
and handed back from it.

After all fragments are placed, each line is post-processed:

	1. horizontal alignment (left, right, center, justify)
	2. right-to-left reordering of fragments
	3. bubbling fragment rectangles up to their inline ancestors
	4. vertical alignment (baseline, sub, super)

Finally every box receives its rectangles, one per line it occupies.

_________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbox.inline'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.inline")
}
