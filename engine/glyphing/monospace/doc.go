/*
Package monospace implements a simple text measurer for monospace output.

Every grapheme occupies one or two cells, as determined by Unicode
UAX#11 (East Asian Width). Measurements are therefore exact and
predictable, which makes this measurer the natural choice for tests and
for character-cell output.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package monospace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbox.font'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.font")
}
