package table

import (
	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/core/option"
	"github.com/npillmayer/cssbox/engine/frame"
	"github.com/npillmayer/cssbox/engine/style"
	"github.com/npillmayer/cssbox/engine/style/css"
)

const epsilon dimen.Dimen = 0.01

func lengthOf(b *frame.Box, key string, hundredPercent dimen.Dimen) dimen.Dimen {
	return css.Resolve(b.Style(key), hundredPercent, b.EmHeight())
}

func hasWidth(b *frame.Box) bool {
	p := b.Style(style.Width)
	return css.IsLength(p) && !css.IsAuto(p)
}

// widthSum returns the sum of the widths of columns [from…to). It panics
// with ErrUnresolvedColumn if one of the columns is unresolved.
func widthSum(widths []option.Maybe[dimen.Dimen], from, to int) dimen.Dimen {
	var sum dimen.Dimen
	for i := from; i < to && i < len(widths); i++ {
		w, ok := widths[i].Get()
		if !ok {
			panic(ErrUnresolvedColumn)
		}
		sum += w
	}
	return sum
}

// --- Seeding ----------------------------------------------------------------

// seedColumnWidths determines the number of columns and sets the widths
// of columns with an explicit width. Explicit columns take precedence over
// cell widths.
func (tl *tableLayout) seedColumnWidths() {
	tl.ncols = len(tl.columns)
	if tl.ncols == 0 {
		for _, row := range tl.rows {
			n := 0
			for _, cell := range cellsOf(row) {
				n += cell.ColSpan()
			}
			if n > tl.ncols {
				tl.ncols = n
			}
		}
	}
	tl.widths = make([]option.Maybe[dimen.Dimen], tl.ncols)
	space := tl.cellSpace()
	if len(tl.columns) > 0 {
		for i, col := range tl.columns {
			if hasWidth(col) {
				tl.widths[i] = option.Some(lengthOf(col, style.Width, space))
			}
		}
		return
	}
	for _, row := range tl.rows {
		col := 0
		for _, cell := range cellsOf(row) {
			span := cell.ColSpan()
			if cell.Kind != frame.SpacingPlaceholder && hasWidth(cell) {
				w := lengthOf(cell, style.Width, space) / dimen.Dimen(span)
				for c := col; c < col+span && c < tl.ncols; c++ {
					if w > tl.widths[c].OrElse(0) {
						tl.widths[c] = option.Some(w)
					}
				}
			}
			col += span
		}
	}
}

// --- Content widths ---------------------------------------------------------

// contentWidths returns the minimum and maximum width of the content of
// a box, including its horizontal decoration. The minimum is the widest
// unbreakable fragment, the maximum the width of all content on a single
// line.
func contentWidths(b *frame.Box) (min, max dimen.Dimen) {
	b.MeasureWords()
	if words := b.Fragments(); len(words) > 0 {
		for _, w := range words {
			min = dimen.Max(min, w.Width)
			max += w.FullWidth()
		}
	} else {
		var run dimen.Dimen // inline siblings share a line
		for _, c := range b.ChildBoxes() {
			if c.Position().IsOutOfFlow() {
				continue
			}
			cmin, cmax := contentWidths(c)
			min = dimen.Max(min, cmin)
			if c.IsInline() {
				run += cmax
				max = dimen.Max(max, run)
			} else {
				run = 0
				max = dimen.Max(max, cmax)
			}
		}
	}
	if hasWidth(b) && !b.Display().Contains(frame.TableCellMode) {
		if w := lengthOf(b, style.Width, 0); w > 0 {
			min = dimen.Max(min, w)
			max = dimen.Max(max, w)
		}
	}
	deco := b.HorizontalDecoration()
	return min + deco, max + deco
}

// measureColumns computes minimum and maximum content widths per column.
// Cells spanning columns distribute any excess evenly to their columns.
func (tl *tableLayout) measureColumns() {
	tl.minW = make([]dimen.Dimen, tl.ncols)
	tl.maxW = make([]dimen.Dimen, tl.ncols)
	type spanning struct {
		col, span int
		min, max  dimen.Dimen
	}
	var spans []spanning
	for _, row := range tl.rows {
		col := 0
		for _, cell := range cellsOf(row) {
			span := cell.ColSpan()
			if col+span > tl.ncols {
				span = tl.ncols - col
			}
			if span > 0 && cell.Kind != frame.SpacingPlaceholder {
				min, max := contentWidths(cell)
				if span == 1 {
					tl.minW[col] = dimen.Max(tl.minW[col], min)
					tl.maxW[col] = dimen.Max(tl.maxW[col], max)
				} else {
					spans = append(spans, spanning{col, span, min, max})
				}
			}
			col += cell.ColSpan()
		}
	}
	for _, s := range spans {
		inner := dimen.Dimen(s.span-1) * tl.hspace
		distribute(tl.minW[s.col:s.col+s.span], s.min-inner)
		distribute(tl.maxW[s.col:s.col+s.span], s.max-inner)
	}
	for i := range tl.maxW {
		tl.maxW[i] = dimen.Max(tl.maxW[i], tl.minW[i])
	}
}

// distribute widens columns evenly if their sum is less than w.
func distribute(cols []dimen.Dimen, w dimen.Dimen) {
	var sum dimen.Dimen
	for _, c := range cols {
		sum += c
	}
	if sum >= w {
		return
	}
	add := (w - sum) / dimen.Dimen(len(cols))
	for i := range cols {
		cols[i] += add
	}
}

// --- Resolving --------------------------------------------------------------

// determineMissingColumnWidths resolves all columns without an explicit
// width.
//
// For tables with an explicit width, columns narrower than their fair share
// of the remaining width get their maximum content width. This repeats
// until no column qualifies, then the rest of the width is split evenly
// among the unresolved columns. If there are none left, it is split
// proportionally among the columns resolved here.
//
// Other tables start every column at its minimum content width and hand
// out the space left toward the maximum content widths.
func (tl *tableLayout) determineMissingColumnWidths() {
	tl.measureColumns()
	var unresolved []int
	remaining := tl.cellSpace()
	for i, w := range tl.widths {
		if v, ok := w.Get(); ok {
			remaining -= v
		} else {
			unresolved = append(unresolved, i)
		}
	}
	if len(unresolved) == 0 {
		return
	}
	if !tl.table.HasExplicitWidth() {
		for _, i := range unresolved {
			tl.widths[i] = option.Some(tl.minW[i])
			remaining -= tl.minW[i]
		}
		tl.growTowardsMax(unresolved, remaining)
		return
	}
	var resolved []int
	for n := 0; n < tl.ncols && len(unresolved) > 0; n++ {
		share := remaining / dimen.Dimen(len(unresolved))
		var rest []int
		for _, i := range unresolved {
			if tl.maxW[i] < share {
				tl.widths[i] = option.Some(tl.maxW[i])
				remaining -= tl.maxW[i]
				resolved = append(resolved, i)
			} else {
				rest = append(rest, i)
			}
		}
		if len(rest) == len(unresolved) {
			break
		}
		unresolved = rest
	}
	if len(unresolved) > 0 {
		share := dimen.Max(0, remaining/dimen.Dimen(len(unresolved)))
		for _, i := range unresolved {
			tl.widths[i] = option.Some(share)
		}
		return
	}
	if remaining <= 0 {
		return
	}
	var total dimen.Dimen
	for _, i := range resolved {
		total += tl.widths[i].Unwrap()
	}
	for _, i := range resolved {
		w := tl.widths[i].Unwrap()
		if total > 0 {
			w += remaining * w / total
		} else {
			w += remaining / dimen.Dimen(len(resolved))
		}
		tl.widths[i] = option.Some(w)
	}
}

// growTowardsMax hands out slack to columns below their maximum content
// width, in equal shares.
func (tl *tableLayout) growTowardsMax(cols []int, slack dimen.Dimen) dimen.Dimen {
	for n := 0; n <= tl.ncols && slack > epsilon; n++ {
		var below []int
		for _, i := range cols {
			if tl.maxW[i]-tl.widths[i].Unwrap() > epsilon {
				below = append(below, i)
			}
		}
		if len(below) == 0 {
			break
		}
		share := slack / dimen.Dimen(len(below))
		for _, i := range below {
			w := tl.widths[i].Unwrap()
			add := dimen.Min(share, tl.maxW[i]-w)
			tl.widths[i] = option.Some(w + add)
			slack -= add
		}
	}
	return slack
}

// --- Constraints ------------------------------------------------------------

// enforceMinimumSize widens columns below their minimum content width.
// The difference is taken from the next column, as far as that column is
// wider than its own minimum.
func (tl *tableLayout) enforceMinimumSize() {
	for i := 0; i < tl.ncols; i++ {
		w := widthSum(tl.widths, i, i+1)
		if w >= tl.minW[i] {
			continue
		}
		diff := tl.minW[i] - w
		tl.widths[i] = option.Some(tl.minW[i])
		if i+1 < tl.ncols {
			next := widthSum(tl.widths, i+1, i+2)
			if spare := next - tl.minW[i+1]; spare > 0 {
				tl.widths[i+1] = option.Some(next - dimen.Min(diff, spare))
			}
		}
		tracer().Debugf("column %d widened to its minimum %v", i, tl.minW[i])
	}
}

// totalWidth is the width of the table's border box for the current
// column widths.
func (tl *tableLayout) totalWidth() dimen.Dimen {
	return widthSum(tl.widths, 0, tl.ncols) + dimen.Dimen(tl.ncols+1)*tl.hspace + tl.decoration()
}

// enforceMaximumSize shrinks columns to make the table fit into the
// available width, one unit at a time, never below a column's minimum.
// Then max-width is enforced, which may clip columns below their minimum:
// the widest columns are reduced first. If the table is narrower than
// max-width, columns grow towards their maximum content width.
func (tl *tableLayout) enforceMaximumSize() {
	if tl.ncols == 0 {
		return
	}
	total := tl.totalWidth()
	for step, i, stuck := 0, 0, 0; total-tl.avail > epsilon && step < tl.params.TableShaveSteps && stuck < tl.ncols; step++ {
		w := tl.widths[i].Unwrap()
		if d := dimen.Min(dimen.Min(1, total-tl.avail), w-tl.minW[i]); d > 0 {
			tl.widths[i] = option.Some(w - d)
			total -= d
			stuck = 0
		} else {
			stuck++
		}
		i = (i + 1) % tl.ncols
	}
	maxw, ok := tl.table.MaxWidth(tl.avail)
	if !ok {
		maxw = NoMaxWidth
	}
	if total > maxw {
		tl.clipToMaxWidth(maxw)
	} else if maxw != NoMaxWidth && !tl.table.HasExplicitWidth() {
		all := make([]int, tl.ncols)
		for i := range all {
			all[i] = i
		}
		tl.growTowardsMax(all, dimen.Min(maxw, tl.avail)-total)
	}
}

// clipToMaxWidth reduces the widest columns until the table is not wider
// than maxw. Columns of equal width share the reduction.
func (tl *tableLayout) clipToMaxWidth(maxw dimen.Dimen) {
	for n := 0; n < tl.params.TableIterations; n++ {
		excess := tl.totalWidth() - maxw
		if excess <= epsilon {
			return
		}
		var widest, second dimen.Dimen
		for _, w := range tl.widths {
			widest = dimen.Max(widest, w.Unwrap())
		}
		var cols []int
		for i, w := range tl.widths {
			if widest-w.Unwrap() <= epsilon {
				cols = append(cols, i)
			} else {
				second = dimen.Max(second, w.Unwrap())
			}
		}
		cut := excess / dimen.Dimen(len(cols))
		if len(cols) < tl.ncols {
			cut = dimen.Min(cut, widest-second)
		}
		cut = dimen.Min(cut, widest)
		if cut <= 0 {
			return
		}
		for _, i := range cols {
			tl.widths[i] = option.Some(tl.widths[i].Unwrap() - cut)
		}
		tracer().Debugf("clipped %d columns by %v for max-width %v", len(cols), cut, maxw)
	}
}
