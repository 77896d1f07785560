/*
Package layout lays out a tree of boxes.

PerformLayout is the entry point. It walks the box tree top-down. Block
boxes get their width from their containing block and are stacked
vertically, with margins collapsing between siblings. A block holding
only inline content hands it to package inline, tables are handed to
package table. Rules and replaced elements are sized here, and list
items receive a marker box.

Failures are isolated per box: a panic while laying out a box is
reported to the tree's error reporter, and layout continues with the
box's siblings.

A root box with an unconstrained width shrinks to its content. Function
Unconstrained runs the two passes needed to lay out a tree at its natural
width.

Invaluable:
https://developer.mozilla.org/en-US/docs/Web/CSS/Visual_formatting_model

_________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbox.layout'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.layout")
}
