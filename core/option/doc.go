/*
Package option implements optional values.

Layout caches resolved style values per box. A cache slot is either set
or unset, and an unset slot is computed on first access. Using a
dedicated wrapper type keeps "not yet computed" apart from any value a
computation might legitimately produce (including NaN).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbox.core'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.core")
}
