/*
Package boxtree produces a box tree from an HTML parse tree.

Boxes are created for the body element of a document and all of its
displayed descendants. Styles are cascaded from

	- a built-in user agent stylesheet
	- presentational HTML attributes (table cellspacing, img width, etc.)
	- <style> elements of the document
	- style attributes of elements

in this order of precedence. Selectors are matched with
github.com/andybalholm/cascadia, stylesheets and declarations are parsed with
github.com/aymerick/douceur. Rules of a stylesheet are ordered by an
approximation of selector specificity, then by document order.

Text is held by anonymous inline boxes. White space between block-level
elements is dropped.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boxtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbox.boxtree'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.boxtree")
}
