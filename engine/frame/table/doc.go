/*
Package table lays out CSS tables.

A table box is laid out in phases:

	1. Classify the children of the table into captions, header rows,
	   body rows, footer rows and columns.
	2. Normalize row spans: every row receives a spacing placeholder for
	   each cell from a previous row spanning into it, so that all rows
	   have the same logical number of columns.
	3. Seed column widths from explicit column or cell widths.
	4. Resolve the remaining columns from the content widths of cells.
	5. Widen columns below the minimum width of their content.
	6. Shrink columns to the available width and to max-width.
	7. Place and lay out all cells, row by row, and align their content
	   vertically.

All loops over the column widths are bounded, as floating point
accumulation may prevent exact convergence.

Cells are laid out as ordinary blocks. As package table cannot depend on
the layout driver, the driver hands in a CellLayouter.

_________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package table

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbox.table'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.table")
}
