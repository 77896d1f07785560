/*
Package style holds the raw CSS property values of boxes.

Properties are stored as strings, exactly as they result from the cascade
or from inline style declarations. Turning them into numbers and colors
is the job of package css (lengths, keywords) and of the box tree, which
caches resolved values per box.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbox.style'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.style")
}
