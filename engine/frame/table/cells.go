package table

import (
	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/engine/frame"
	"github.com/npillmayer/cssbox/engine/style/css"
)

// placedCell is a cell waiting for the row its row span ends in.
type placedCell struct {
	box     *frame.Box
	lastRow int
}

// layoutCells positions captions, rows and cells, lays out the cells and
// sets the final geometry of the table.
func (tl *tableLayout) layoutCells() {
	t := tl.table
	tableWidth := tl.totalWidth()
	t.SetWidth(tableWidth)
	left := t.X() + t.BorderLeftWidth() + t.PaddingLeft()
	innerWidth := tableWidth - tl.decoration()
	y := t.Y() + t.BorderTopWidth() + t.PaddingTop()
	for _, caption := range tl.captions {
		caption.SetLocation(left, y)
		caption.SetWidth(innerWidth)
		tl.cells.LayoutCell(tl.tree, caption.ID())
		y = caption.ActualBottom()
	}
	y += tl.vspace
	var open []placedCell
	rowTops := make([]dimen.Dimen, len(tl.rows))
	for r, row := range tl.rows {
		rowTops[r] = y
		x := left + tl.hspace
		col := 0
		var ending []*frame.Box
		for _, cell := range cellsOf(row) {
			span := cell.ColSpan()
			if col+span > tl.ncols {
				span = tl.ncols - col
			}
			if span <= 0 {
				tl.hide(cell, x, y)
				continue
			}
			w := widthSum(tl.widths, col, col+span) + dimen.Dimen(span-1)*tl.hspace
			cell.SetLocation(x, y)
			cell.SetWidth(w)
			if cell.Kind == frame.SpacingPlaceholder {
				cell.SetActualBottom(y)
			} else {
				cell.SetCollapsedMarginTop(0)
				tl.cells.LayoutCell(tl.tree, cell.ID())
				if last := r + cell.RowSpan() - 1; last > r && last < len(tl.rows) {
					open = append(open, placedCell{box: cell, lastRow: last})
				} else {
					ending = append(ending, cell)
				}
			}
			x += w + tl.hspace
			col += span
		}
		var still []placedCell
		for _, pc := range open {
			if pc.lastRow == r {
				ending = append(ending, pc.box)
			} else {
				still = append(still, pc)
			}
		}
		open = still
		bottom := y
		for _, cell := range ending {
			bottom = dimen.Max(bottom, cell.ActualBottom())
		}
		if row.HasExplicitHeight() {
			bottom = dimen.Max(bottom, y+row.ActualHeight())
		}
		alignCells(ending, bottom)
		for _, cell := range cellsOf(row) {
			if cell.Kind == frame.SpacingPlaceholder {
				cell.SetActualBottom(bottom)
			}
		}
		row.SetLocation(left, y)
		row.SetWidth(innerWidth)
		row.SetActualBottom(bottom)
		y = bottom + tl.vspace
	}
	tl.placeGroups(left, innerWidth)
	tl.placeColumns(left, rowTops, y-tl.vspace)
	t.SetActualBottom(y + t.PaddingBottom() + t.BorderBottomWidth())
}

// hide collapses a cell which does not fit into the columns of its row.
func (tl *tableLayout) hide(cell *frame.Box, x, y dimen.Dimen) {
	cell.SetLocation(x, y)
	cell.SetWidth(0)
	cell.SetActualBottom(y)
}

// placeGroups gives row groups the union of the geometry of their rows.
func (tl *tableLayout) placeGroups(left, width dimen.Dimen) {
	for _, g := range tl.groups {
		rows := rowsOf(g)
		if len(rows) == 0 {
			g.SetLocation(left, tl.table.Y())
			g.SetWidth(0)
			g.SetActualBottom(tl.table.Y())
			continue
		}
		g.SetLocation(left, rows[0].Y())
		g.SetWidth(width)
		g.SetActualBottom(rows[len(rows)-1].ActualBottom())
	}
}

// placeColumns gives column boxes the geometry of their columns, spanning
// all rows. Painters use it for column backgrounds.
func (tl *tableLayout) placeColumns(left dimen.Dimen, rowTops []dimen.Dimen, bottom dimen.Dimen) {
	if len(tl.columns) == 0 {
		return
	}
	top := bottom
	if len(rowTops) > 0 {
		top = rowTops[0]
	}
	x := left + tl.hspace
	for i := 0; i < tl.ncols; {
		col := tl.columns[i]
		n := 1
		for i+n < tl.ncols && tl.columns[i+n] == col {
			n++
		}
		w := widthSum(tl.widths, i, i+n) + dimen.Dimen(n-1)*tl.hspace
		col.SetLocation(x, top)
		col.SetWidth(w)
		col.SetActualBottom(bottom)
		x += w + tl.hspace
		i += n
	}
}

// --- Vertical alignment -----------------------------------------------------

// alignCells stretches cells to a common bottom and moves their content
// according to vertical-align. Cells aligned to the baseline share the
// top of their first line.
func alignCells(cells []*frame.Box, bottom dimen.Dimen) {
	baseline, hasBaseline := -dimen.Infinity, false
	for _, cell := range cells {
		if cellAlign(cell) == css.VAlignBaseline {
			if top, ok := firstLineTop(cell); ok {
				baseline = dimen.Max(baseline, top)
				hasBaseline = true
			}
		}
	}
	for _, cell := range cells {
		contentBottom := cell.ActualBottom()
		var dy dimen.Dimen
		switch cellAlign(cell) {
		case css.VAlignMiddle:
			dy = (bottom - contentBottom) / 2
		case css.VAlignBottom:
			dy = bottom - contentBottom
		case css.VAlignBaseline:
			if top, ok := firstLineTop(cell); ok && hasBaseline {
				dy = baseline - top
			}
		}
		if dy > 0 {
			for _, c := range cell.ChildBoxes() {
				shift(c, dy)
			}
			for _, line := range cell.LineBoxes {
				for _, w := range line.Words {
					w.Top += dy
				}
			}
		}
		cell.SetActualBottom(bottom)
	}
}

// cellAlign returns the vertical alignment of a cell. Cells spanning rows
// do not take part in baseline alignment of the row they end in.
func cellAlign(cell *frame.Box) css.VerticalAlign {
	switch a := cell.VerticalAlign(); a {
	case css.VAlignTop, css.VAlignMiddle, css.VAlignBottom:
		return a
	}
	if cell.RowSpan() > 1 {
		return css.VAlignTop
	}
	return css.VAlignBaseline
}

// firstLineTop finds the top of the first fragment within a cell.
func firstLineTop(cell *frame.Box) (dimen.Dimen, bool) {
	if len(cell.LineBoxes) > 0 && len(cell.LineBoxes[0].Words) > 0 {
		return cell.LineBoxes[0].Words[0].Top, true
	}
	for _, c := range cell.ChildBoxes() {
		if c.IsInline() {
			continue
		}
		if top, ok := firstLineTop(c); ok {
			return top, true
		}
	}
	return 0, false
}

// shift moves a box and its block content down by dy. Fragments are moved
// through the line boxes of the block which flowed them.
func shift(b *frame.Box, dy dimen.Dimen) {
	b.SetLocation(b.X(), b.Y()+dy)
	b.SetActualBottom(b.ActualBottom() + dy)
	for _, lr := range b.LineRects() {
		b.OffsetRectOnLine(lr.Line, dy)
	}
	for _, line := range b.LineBoxes {
		for _, w := range line.Words {
			w.Top += dy
		}
	}
	for _, c := range b.ChildBoxes() {
		shift(c, dy)
	}
}
