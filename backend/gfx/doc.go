/*
Package gfx implements painters for laid-out box trees.

Recorder records drawing operations, which is useful for tests and for
forwarding drawing to another process. Raster draws into an RGBA image,
using golang.org/x/image for text and image scaling. Both keep their clip
regions on a stack.

Coordinates are CSS pixels. A raster picture maps one CSS pixel to one
image pixel.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gfx

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbox.gfx'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.gfx")
}
