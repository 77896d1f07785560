package table

import (
	"errors"
	"strconv"

	"github.com/npillmayer/cssbox/core"
	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/core/option"
	"github.com/npillmayer/cssbox/core/parameters"
	"github.com/npillmayer/cssbox/engine/frame"
	"github.com/npillmayer/cssbox/engine/style"
)

// NoMaxWidth is the max-width of tables without an explicit max-width.
const NoMaxWidth dimen.Dimen = 9999

// ErrUnresolvedColumn is raised (as a panic) if a column width is used
// before it has been resolved. It flags a bug in the width solver and is
// never recovered by Layout.
var ErrUnresolvedColumn = errors.New("table column width is unresolved")

// CellLayouter lays out a table cell or caption as a block. The table has
// set location and width of the box beforehand. After LayoutCell returns,
// the actual bottom of the box must be valid.
type CellLayouter interface {
	LayoutCell(tree *frame.Tree, id frame.BoxID)
}

// CellLayouterFunc adapts a function to the CellLayouter interface.
type CellLayouterFunc func(tree *frame.Tree, id frame.BoxID)

// LayoutCell calls f(tree, id).
func (f CellLayouterFunc) LayoutCell(tree *frame.Tree, id frame.BoxID) {
	f(tree, id)
}

// tableLayout holds the state of laying out a single table.
type tableLayout struct {
	tree     *frame.Tree
	table    *frame.Box
	cells    CellLayouter
	params   *parameters.LayoutParameters
	captions []*frame.Box
	groups   []*frame.Box // row groups, header and footer included
	header   []*frame.Box
	body     []*frame.Box
	footer   []*frame.Box
	rows     []*frame.Box // header, body and footer rows, in this order
	columns  []*frame.Box // column boxes, repeated by their span
	ncols    int
	avail    dimen.Dimen // available width for the table's border box
	hspace   dimen.Dimen // horizontal border spacing
	vspace   dimen.Dimen // vertical border spacing
	widths   []option.Maybe[dimen.Dimen]
	minW     []dimen.Dimen // minimum content width per column
	maxW     []dimen.Dimen // maximum content width per column
}

// Layout lays out the table box id. The table's location must have been
// set by the caller, its width is computed here. Cells are laid out by
// cells.
//
// A failing table is reported to the tree's error reporter and left with
// zero geometry. Siblings of the table are not affected.
func Layout(tree *frame.Tree, id frame.BoxID, cells CellLayouter) {
	t := tree.Box(id)
	if t == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok && errors.Is(err, ErrUnresolvedColumn) {
				panic(r)
			}
			x, y := t.X(), t.Y()
			t.ResetGeometry()
			t.SetLocation(x, y)
			t.SetActualBottom(y)
			tree.ReportError(core.ELAYOUT, "failed table layout", core.ErrorFromPanic(r))
		}
	}()
	tl := newTableLayout(tree, t, cells)
	tl.classify()
	tl.normalizeSpans()
	tl.seedColumnWidths()
	tl.determineMissingColumnWidths()
	tl.enforceMinimumSize()
	tl.enforceMaximumSize()
	tl.layoutCells()
	tracer().Debugf("table %s laid out with %d columns, width %v", t, tl.ncols, t.Width())
}

func newTableLayout(tree *frame.Tree, t *frame.Box, cells CellLayouter) *tableLayout {
	tl := &tableLayout{tree: tree, table: t, cells: cells, params: tree.Params}
	if tl.params == nil {
		tl.params = parameters.Defaults()
	}
	tl.hspace, tl.vspace = t.BorderSpacing()
	if tl.hspace < 0 { // collapsed borders
		tl.hspace, tl.vspace = 0, 0
	}
	tl.avail = tl.availableWidth()
	return tl
}

// availableWidth is the width of the containing block minus the table's
// horizontal margins, or the explicit width of the table.
func (tl *tableLayout) availableWidth() dimen.Dimen {
	t := tl.table
	outer := t.Width()
	if p := t.Parent(); p != nil {
		outer = p.AvailableWidth()
	}
	if t.HasExplicitWidth() {
		return lengthOf(t, style.Width, outer)
	}
	return outer - t.MarginLeft() - t.MarginRight()
}

// decoration is the horizontal border and padding of the table.
func (tl *tableLayout) decoration() dimen.Dimen {
	t := tl.table
	return t.BorderLeftWidth() + t.PaddingLeft() + t.PaddingRight() + t.BorderRightWidth()
}

// cellSpace is the width available for columns, without spacing.
func (tl *tableLayout) cellSpace() dimen.Dimen {
	return tl.avail - tl.decoration() - dimen.Dimen(tl.ncols+1)*tl.hspace
}

// --- Classification --------------------------------------------------------

// classify sorts the children of the table into captions, rows and
// columns. Boxes which are none of these are ignored.
func (tl *tableLayout) classify() {
	for _, c := range tl.table.ChildBoxes() {
		d := c.Display()
		switch {
		case d.Contains(frame.TableCaptionMode):
			tl.captions = append(tl.captions, c)
		case d.Contains(frame.TableHeaderMode):
			tl.groups = append(tl.groups, c)
			tl.header = append(tl.header, rowsOf(c)...)
		case d.Contains(frame.TableFooterMode):
			tl.groups = append(tl.groups, c)
			tl.footer = append(tl.footer, rowsOf(c)...)
		case d.Contains(frame.TableRowGroupMode):
			tl.groups = append(tl.groups, c)
			tl.body = append(tl.body, rowsOf(c)...)
		case d.Contains(frame.TableRowMode):
			tl.body = append(tl.body, c)
		case d.Contains(frame.TableColGroupMode):
			cols := 0
			for _, col := range c.ChildBoxes() {
				if col.Display().Contains(frame.TableColumnMode) {
					tl.addColumn(col)
					cols++
				}
			}
			if cols == 0 {
				tl.addColumn(c)
			}
		case d.Contains(frame.TableColumnMode):
			tl.addColumn(c)
		}
	}
	tl.rows = make([]*frame.Box, 0, len(tl.header)+len(tl.body)+len(tl.footer))
	tl.rows = append(tl.rows, tl.header...)
	tl.rows = append(tl.rows, tl.body...)
	tl.rows = append(tl.rows, tl.footer...)
	tracer().Debugf("table has %d rows, %d explicit columns", len(tl.rows), len(tl.columns))
}

func (tl *tableLayout) addColumn(col *frame.Box) {
	for i := 0; i < col.Span(); i++ {
		tl.columns = append(tl.columns, col)
	}
}

func rowsOf(group *frame.Box) []*frame.Box {
	var rows []*frame.Box
	for _, c := range group.ChildBoxes() {
		if c.Display().Contains(frame.TableRowMode) {
			rows = append(rows, c)
		}
	}
	return rows
}

// cellsOf returns the cells of a row, spacing placeholders included.
func cellsOf(row *frame.Box) []*frame.Box {
	var cells []*frame.Box
	for _, c := range row.ChildBoxes() {
		if c.Kind == frame.SpacingPlaceholder || c.Display().Contains(frame.TableCellMode) {
			cells = append(cells, c)
		}
	}
	return cells
}

// --- Row spans ------------------------------------------------------------

// normalizeSpans inserts a spacing placeholder into every row a cell
// spans into, at the cell's column. This is done once per table, as it
// changes the children of rows.
func (tl *tableLayout) normalizeSpans() {
	if tl.table.SpansNormalized {
		return
	}
	tl.table.SpansNormalized = true
	for r, row := range tl.rows {
		col := 0
		for _, cell := range cellsOf(row) {
			span := cell.RowSpan()
			if cell.Kind != frame.SpacingPlaceholder && span > 1 {
				last := r + span - 1
				if last >= len(tl.rows) {
					last = len(tl.rows) - 1
				}
				for rr := r + 1; rr <= last; rr++ {
					tl.insertPlaceholder(tl.rows[rr], col, cell, r, last)
				}
			}
			col += cell.ColSpan()
		}
	}
}

func (tl *tableLayout) insertPlaceholder(row *frame.Box, col int, cell *frame.Box, start, end int) {
	ph := tl.tree.NewBox(frame.SpacingPlaceholder, "")
	ph.SetStyle("display", "table-cell")
	ph.Spacer.Cell, ph.Spacer.StartRow, ph.Spacer.EndRow = cell.ID(), start, end
	if span := cell.ColSpan(); span > 1 {
		ph.SetAttr("colspan", strconv.Itoa(span))
	}
	at, c := row.ChildCount(), 0
	for _, cl := range cellsOf(row) {
		if c >= col {
			at = row.IndexOf(cl.ID())
			break
		}
		c += cl.ColSpan()
	}
	if err := tl.tree.InsertChild(row.ID(), at, ph.ID()); err != nil {
		panic(err)
	}
	tracer().Debugf("inserted spacer for %s into row %s at column %d", cell, row, col)
}
