/*
Package html reads HTML documents for layout.

Documents are decoded to UTF-8 (honoring a byte order mark, a charset
given by the transport, and <meta> declarations) and parsed with the HTML5
parsing algorithm of golang.org/x/net/html. The document's base location,
used to resolve relative references to images, is taken from a <base>
element if present, and from the document's location otherwise.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbox.input'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.input")
}
